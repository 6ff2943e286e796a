package model

import (
	"time"

	"github.com/google/uuid"
)

// TagModel mirrors the 'tags' table. Names are unique per user.
type TagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tags_user_name,priority:1"`
	Name      string    `gorm:"type:varchar(50);not null;uniqueIndex:idx_tags_user_name,priority:2"`
	CreatedAt time.Time

	BookTags []BookTagModel `gorm:"foreignKey:TagID;constraint:OnDelete:CASCADE"`

	// BookCount is filled by aggregate selects only.
	BookCount int `gorm:"->;-:migration"`
}

// TableName explicitly sets the table name for GORM.
func (TagModel) TableName() string {
	return "tags"
}
