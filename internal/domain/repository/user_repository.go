// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies name, email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user and, through cascading keys, everything they own.
	Delete(ctx context.Context, id uuid.UUID) error
}
