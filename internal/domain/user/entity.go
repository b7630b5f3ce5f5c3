package user

// Role is the authorization role stored on a user record.
// An empty role means a plain customer.
type Role string

const (
	RoleSeller Role = "seller"
	RoleAdmin  Role = "admin"
)

// User represents a storefront account. Email is the unique key used to
// join tokens, wishlist/cart rows and product ownership.
type User struct {
	ID     int64  // ID is the store-assigned identifier
	Name   string // Name is the display name
	Email  string // Email is the unique account email
	Role   Role   // Role is "seller", "admin" or empty for customers
	Status string // Status is a free-form account state, e.g. "pending"
}

// IsSeller reports whether the account may manage its own products.
func (u *User) IsSeller() bool {
	return u != nil && u.Role == RoleSeller
}

// IsAdmin reports whether the account may manage other users.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
