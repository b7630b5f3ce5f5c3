package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glamour-lush-server/internal/auth"
	"glamour-lush-server/internal/domain/user"
	apperrors "glamour-lush-server/pkg/errors"
)

// claimsKey is the gin context key holding the authenticated claims.
const claimsKey = "auth_claims"

// TokenVerifier verifies a bearer token and returns its decoded claims.
type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// Authenticate extracts and verifies the bearer token from the
// Authorization header. A missing header rejects with "No Token", a bad or
// expired token with "Invalid Token"; on success the decoded claims are
// attached to the request context for the downstream role check.
func Authenticate(verifier TokenVerifier, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			deny(c, apperrors.ErrNoToken)
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		claims, err := verifier.Verify(token)
		if err != nil {
			log.Debug("token verification failed", zap.Error(err))
			deny(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole authorizes the authenticated identity for one role. The
// claim's email is re-resolved against the user store on every request;
// the token is never trusted for role membership. Must run after
// Authenticate.
func RequireRole(resolver auth.IdentityResolver, role user.Role, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := ClaimsFrom(c)
		if claims == nil {
			// Authenticate did not run; treat as an unauthenticated request.
			deny(c, apperrors.ErrNoToken)
			return
		}

		u, err := resolver.Resolve(c.Request.Context(), claims.Email)
		if err != nil {
			log.Error("identity resolution failed", zap.String("email", claims.Email), zap.Error(err))
			deny(c, apperrors.NewStoreError("failed to resolve identity", err))
			return
		}

		if !auth.Decide(role, u) {
			log.Debug("role check denied",
				zap.String("email", claims.Email), zap.String("required_role", string(role)))
			deny(c, apperrors.ErrForbidden)
			return
		}

		c.Next()
	}
}

// ClaimsFrom returns the authenticated claims attached by Authenticate,
// or nil when the request did not pass authentication.
func ClaimsFrom(c *gin.Context) *auth.Claims {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(*auth.Claims)
	return claims
}

// deny aborts the request with the error's transport status and its
// client-contract message body.
func deny(c *gin.Context, err error) {
	c.AbortWithStatusJSON(apperrors.StatusOf(err), gin.H{"message": err.Error()})
}
