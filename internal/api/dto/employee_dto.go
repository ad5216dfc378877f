package dto

import (
	"time"

	"github.com/AhmedEssamEsmail/SwapTool/internal/domain"
)

// LoginRequest payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued token and its subject.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
	Employee  EmployeeResponse `json:"employee"`
}

// ChangePasswordRequest payload.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// CreateEmployeeRequest payload.
type CreateEmployeeRequest struct {
	Name     string              `json:"name"`
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Role     domain.EmployeeRole `json:"role"`
}

// UpdateEmployeeRequest carries optional directory mutations.
type UpdateEmployeeRequest struct {
	Name   *string              `json:"name"`
	Role   *domain.EmployeeRole `json:"role"`
	Active *bool                `json:"active"`
}

// EmployeeResponse is the public directory view; it never carries the
// password hash.
type EmployeeResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Email     string              `json:"email"`
	Role      domain.EmployeeRole `json:"role"`
	Active    bool                `json:"active"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}
