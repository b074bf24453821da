package requests

// CreateUserRequest represents an administrative user-provisioning request
type CreateUserRequest struct {
	GoogleID *string `json:"googleId,omitempty"`
	Email    string  `json:"email" validate:"required,email"`
	Name     string  `json:"name" validate:"required"`
	Picture  *string `json:"picture,omitempty"`
	IsAdmin  bool    `json:"isAdmin"`
}

// UpdateUserRequest represents a user update request; omitted fields are
// left unchanged
type UpdateUserRequest struct {
	GoogleID *string `json:"googleId,omitempty"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Name     *string `json:"name,omitempty"`
	Picture  *string `json:"picture,omitempty"`
	IsAdmin  *bool   `json:"isAdmin,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}
