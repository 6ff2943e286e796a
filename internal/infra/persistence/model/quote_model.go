package model

import (
	"time"

	"github.com/google/uuid"
)

// QuoteModel mirrors the 'quotes' table.
type QuoteModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_quotes_user_created,priority:1"`
	BookID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Text      string    `gorm:"type:text;not null"`
	Page      *int      `gorm:"type:integer"`
	Note      string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"index:idx_quotes_user_created,priority:2"`
	UpdatedAt time.Time

	Book *BookModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (QuoteModel) TableName() string {
	return "quotes"
}
