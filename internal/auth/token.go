package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "glamour-lush-server/pkg/errors"
)

// Verification failure modes. Callers distinguish a request that never
// presented a token from one that presented a bad or expired token.
var (
	ErrMissingToken = apperrors.ErrNoToken
	ErrInvalidToken = apperrors.ErrInvalidToken
)

// Claims is the identity payload embedded in a session token. Email is the
// only application claim; role is never carried in the token and is always
// re-resolved from the user store.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies stateless HS256 session tokens. Validity
// is fully determined by signature and expiry; nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService creates a token service with the given signing secret and
// token lifetime.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token embedding the email claim with the configured expiry.
func (s *TokenService) Issue(email string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a signed token, returning the decoded claims.
// An empty input yields ErrMissingToken; any signature, format or expiry
// failure yields ErrInvalidToken.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
