package entity

import (
	"time"

	"github.com/google/uuid"
)

// Quote is a passage recorded from a book.
type Quote struct {
	ID        uuid.UUID    `json:"id"`
	UserID    uuid.UUID    `json:"userId"`
	BookID    uuid.UUID    `json:"bookId"`
	Text      string       `json:"text"`
	Page      *int         `json:"page"`
	Note      string       `json:"note"`
	Book      *BookSummary `json:"book,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}
