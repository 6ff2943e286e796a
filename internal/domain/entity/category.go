package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryColor is applied when a category is created without a colour.
const DefaultCategoryColor = "#3B82F6"

// Category groups books. Names are unique per user.
type Category struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	BookCount int       `json:"bookCount"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
