package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is the panel permission level of an account.
type Role string

const (
	RoleOwner Role = "owner"
	RoleStaff Role = "staff"
)

// PanelAccount is a management-panel login bound to a single business.
// Owners can do everything; staff are restricted to day-to-day order handling.
type PanelAccount struct {
	ID           uuid.UUID `json:"id"`
	BusinessID   uuid.UUID `json:"business_id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
