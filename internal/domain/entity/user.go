// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owner of a personal library. Every other entity hangs off a user.
type User struct {
	ID           uuid.UUID `json:"id"`        // The Global Unique Identifier (GUID) for the user.
	Email        string    `json:"email"`     // Login identifier, unique across the system.
	Name         string    `json:"name"`      // Display name.
	PasswordHash string    `json:"-"`         // bcrypt hash, never serialized.
	CreatedAt    time.Time `json:"createdAt"` // Timestamp of when this account was created.
	UpdatedAt    time.Time `json:"updatedAt"` // Timestamp of the last profile or password change.
}
