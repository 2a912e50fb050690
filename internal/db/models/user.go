// Package models contains database model definitions.
package models

import (
	"time"
)

// Role represents the access level of a user account.
type Role string

const (
	// RoleUser is the default role for accounts created by the identity service.
	RoleUser Role = "USER"
	// RoleAdmin grants access to the admin console write operations.
	RoleAdmin Role = "ADMIN"
)

// User represents an account known to the system.
// Accounts usually arrive with the subject id assigned by the external
// identity service; a fresh UUID is only generated for rows created locally.
type User struct {
	// ID is the stable external identity of the user, assigned by the writer.
	ID string `gorm:"primaryKey;size:36" json:"id"`
	// Email is the unique login email.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	// Name is the display name.
	Name string `gorm:"size:255" json:"name"`
	// Role is the access level (USER or ADMIN).
	Role Role `gorm:"type:varchar(16);not null;default:'USER'" json:"role"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"updatedAt"`
}
