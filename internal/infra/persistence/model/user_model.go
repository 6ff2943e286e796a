// Package model holds the GORM persistence models. Entities are mapped to and from
// these types by the postgres repositories.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Owned rows are removed by cascading foreign keys.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Books      []BookModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Categories []CategoryModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Tags       []TagModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Quotes     []QuoteModel    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
