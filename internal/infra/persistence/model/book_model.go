package model

import (
	"time"

	"github.com/google/uuid"
)

// BookModel mirrors the 'books' table.
type BookModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_books_user_status,priority:1;index:idx_books_user_updated,priority:1"`
	Title       string     `gorm:"type:varchar(500);not null"`
	Author      string     `gorm:"type:varchar(255);not null"`
	ISBN        string     `gorm:"type:varchar(20)"`
	Description string     `gorm:"type:text"`
	CoverImage  string     `gorm:"type:text"`
	TotalPages  *int       `gorm:"type:integer"`
	CurrentPage int        `gorm:"type:integer;not null;default:0"`
	Status      string     `gorm:"type:varchar(20);not null;default:TO_READ;index:idx_books_user_status,priority:2"`
	Rating      *int       `gorm:"type:smallint"`
	StartDate   *time.Time `gorm:"type:timestamptz"`
	EndDate     *time.Time `gorm:"type:timestamptz"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time  `gorm:"index:idx_books_user_updated,priority:2"`

	Category *CategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	BookTags []BookTagModel `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Quotes   []QuoteModel   `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookModel) TableName() string {
	return "books"
}

// BookTagModel mirrors the 'book_tags' join table. The composite key rejects duplicate tagging.
type BookTagModel struct {
	BookID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	TagID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time

	Tag *TagModel `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (BookTagModel) TableName() string {
	return "book_tags"
}
