package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table. Names are unique per user.
type CategoryModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_name,priority:1"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_user_name,priority:2"`
	Color     string    `gorm:"type:varchar(7);not null;default:'#3B82F6'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// BookCount is filled by aggregate selects only.
	BookCount int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
