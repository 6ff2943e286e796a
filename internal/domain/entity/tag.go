package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a user-scoped label attached to books through a book-tag association.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	BookCount int       `json:"bookCount"`
	CreatedAt time.Time `json:"createdAt"`
}
