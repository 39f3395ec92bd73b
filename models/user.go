package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleStaff  = "staff"
	RoleMember = "member"
)

// User is a login identity with a bcrypt-hashed password.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	UserID    int64     `bun:"user_id,pk,autoincrement"`
	FirstName string    `bun:"first_name,notnull"`
	LastName  string    `bun:"last_name,notnull,default:''"`
	Email     string    `bun:"email,notnull,unique"`
	Password  string    `bun:"password,notnull"`
	Phone     *string   `bun:"phone"`
	Address   *string   `bun:"address"`
	Role      string    `bun:"role,notnull,default:'member'"`
	CreatedAt time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// IsValidRole reports whether role is one of the known user roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleMember:
		return true
	}
	return false
}
