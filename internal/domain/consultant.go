package domain

import (
	"time"

	"github.com/google/uuid"
)

type Consultant struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Specialization string    `json:"specialization"`
	IsActive       bool      `json:"is_active"`
	FullName       string    `json:"full_name,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
