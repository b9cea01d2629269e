package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpdateUserRequest struct {
	FullName *string `json:"full_name" validate:"omitempty,min=2"`
	Phone    *string `json:"phone" validate:"omitempty,phone"`
	Email    *string `json:"email" validate:"omitempty,email"`
}

// HasUpdates reports whether any field was supplied.
func (r *UpdateUserRequest) HasUpdates() bool {
	return r.FullName != nil || r.Phone != nil || r.Email != nil
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
