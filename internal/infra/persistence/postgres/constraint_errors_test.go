package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert")))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("boom")))
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23505"}))
}
