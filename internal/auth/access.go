package auth

import (
	"context"

	"glamour-lush-server/internal/domain/user"
)

// IdentityResolver looks up the account behind a verified token claim.
// Implementations return (nil, nil) for an unknown email; callers treat an
// unknown identity and a known identity lacking the role identically.
type IdentityResolver interface {
	Resolve(ctx context.Context, email string) (*user.User, error)
}

// Decide is the single role-membership rule shared by every protected
// route: the resolved account must exist and carry exactly the required
// role. Account status plays no part in the decision.
func Decide(required user.Role, u *user.User) bool {
	if u == nil {
		return false
	}
	return u.Role == required
}
