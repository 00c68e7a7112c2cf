package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserRole string

const (
	UserRoleCustomer   UserRole = "customer"
	UserRoleConsultant UserRole = "consultant"
	UserRoleStaff      UserRole = "staff"
	UserRoleAdmin      UserRole = "admin"
)

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleCustomer, UserRoleConsultant, UserRoleStaff, UserRoleAdmin:
		return true
	}
	return false
}

// Actor is the author snapshot stored on schedule records. It is captured
// once when the record is created and is never re-synced with the user.
type Actor struct {
	UserID uuid.UUID `json:"user_id"`
	Role   UserRole  `json:"role"`
	Name   string    `json:"name"`
}

func NewActor(u User) Actor {
	return Actor{
		UserID: u.ID,
		Role:   u.Role,
		Name:   u.FullName,
	}
}
