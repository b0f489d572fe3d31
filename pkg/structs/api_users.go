package structs

// RoleRequest changes a user's role.
type RoleRequest struct {
	ETag string `json:"etag"`
	Role Role   `json:"role"`
}

// UserStatusRequest activates or deactivates a user.
type UserStatusRequest struct {
	ETag   string     `json:"etag"`
	Status UserStatus `json:"status"`
}
