package entity

import "time"

// Role is the authorization role carried by a user and embedded in tokens.
type Role string

const (
	RoleUser   Role = "user"
	RoleSeller Role = "seller"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleSeller
}

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash and is never serialized outward.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
