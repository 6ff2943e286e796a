// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"strings"
	"unicode"

	"shelf/config"
	domainerrors "shelf/internal/domain/errors"
	"shelf/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost     int
	strength config.PasswordStrengthConfig
}

// NewBcryptHasher builds the hasher from the auth and passwordStrength config sections.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	strength := config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72}
	if cfg.PasswordStrength != nil {
		strength = *cfg.PasswordStrength
	}

	return NewBcryptHasherWithCost(cost, strength)
}

// NewBcryptHasherWithCost is used directly by tests to keep hashing fast.
func NewBcryptHasherWithCost(cost int, strength config.PasswordStrengthConfig) service.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &bcryptHasher{cost: cost, strength: strength}
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces the configured rules and reports the first one violated.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))

	switch {
	case h.strength.MinLength > 0 && length < h.strength.MinLength:
		return h.weak("password must be at least %d characters long", h.strength.MinLength)
	case h.strength.MaxLength > 0 && len(password) > h.strength.MaxLength:
		return h.weak("password must be at most %d bytes long", h.strength.MaxLength)
	case h.strength.RequireLowercase && !hasRune(password, unicode.IsLower):
		return h.weak("password must contain at least one lowercase letter")
	case h.strength.RequireUppercase && !hasRune(password, unicode.IsUpper):
		return h.weak("password must contain at least one uppercase letter")
	case h.strength.RequireNumbers && !hasRune(password, unicode.IsDigit):
		return h.weak("password must contain at least one number")
	case h.strength.RequireSpecial && !hasRune(password, isSpecial):
		return h.weak("password must contain at least one special character")
	}

	return nil
}

func (h *bcryptHasher) weak(format string, args ...any) error {
	return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf(format, args...))
}

func hasRune(s string, pred func(rune) bool) bool {
	return strings.IndexFunc(s, pred) >= 0
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
