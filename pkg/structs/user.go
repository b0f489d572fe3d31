package structs

import (
	"strings"
)

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleDispatcher Role = "dispatcher"
	RoleTechnician Role = "technician"
)

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

// User is someone who can act on jobs. Identity (sign in etc) is handled upstream;
// we keep the fields we need to authorise actions.
type User struct {
	// ID as issued by the identity provider
	ID string `json:"id"`

	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Role        Role       `json:"role"`
	Status      UserStatus `json:"status"`

	// ETag is used when updating a user for optimistic locking
	ETag string `json:"etag"`

	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}

// Ref returns an ObjectRef pinning this user at its current version.
func (u *User) Ref() *ObjectRef {
	return NewObjectRef(u.ID, u.ETag).User()
}

// IsActive returns if the user may act at all.
func (u *User) IsActive() bool {
	return u != nil && u.Status == UserActive
}

// CanDispatch returns if the user may create & manage jobs.
func (u *User) CanDispatch() bool {
	return u.IsActive() && (u.Role == RoleAdmin || u.Role == RoleDispatcher)
}

// IsAdmin returns if the user may manage other users.
func (u *User) IsAdmin() bool {
	return u.IsActive() && u.Role == RoleAdmin
}

func ToRole(s string) Role {
	switch strings.ToLower(s) {
	case "admin":
		return RoleAdmin
	case "dispatcher":
		return RoleDispatcher
	case "technician":
		return RoleTechnician
	default:
		return ""
	}
}

func ToUserStatus(s string) UserStatus {
	switch strings.ToLower(s) {
	case "active":
		return UserActive
	case "inactive":
		return UserInactive
	default:
		return ""
	}
}
