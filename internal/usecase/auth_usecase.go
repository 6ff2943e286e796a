// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"shelf/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput changes display name and email.
type UpdateProfileInput struct {
	Name  string
	Email string
}

// ChangePasswordInput requires the current password before setting a new one.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
}

// --- Output DTOs ---

// AuthOutput carries the issued access token and the authenticated user.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	Me(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}
