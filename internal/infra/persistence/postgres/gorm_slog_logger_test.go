package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"shelf/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestStatementKind(t *testing.T) {
	tests := map[string]string{
		`SELECT * FROM "books"`:          "select",
		"  insert into tags values (1)":  "insert",
		`UPDATE "books" SET "title"='x'`: "update",
		`DELETE FROM "book_tags"`:        "delete",
		"BEGIN":                          "other",
		"":                               "other",
	}

	for sql, want := range tests {
		assert.Equal(t, want, statementKind(sql), sql)
	}
}

func TestGormSlogLogger_Trace(t *testing.T) {
	newLogger := func(debug bool) (*gormSlogLogger, *bytes.Buffer) {
		var buf bytes.Buffer
		cfg := &config.Config{}
		cfg.Env.Debug = debug
		base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
	}
	stmt := func() (string, int64) { return `SELECT * FROM "books"`, 1 }
	ctx := context.Background()

	t.Run("record not found is silent", func(t *testing.T) {
		l, buf := newLogger(false)
		l.Trace(ctx, time.Now(), stmt, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
	})

	t.Run("failures are errors", func(t *testing.T) {
		l, buf := newLogger(false)
		l.Trace(ctx, time.Now(), stmt, gorm.ErrInvalidData)

		assert.Contains(t, buf.String(), `"msg":"query failed"`)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), stmt, nil)

		assert.Contains(t, buf.String(), `"msg":"slow query"`)
	})

	t.Run("fast queries only in debug", func(t *testing.T) {
		l, buf := newLogger(false)
		l.Trace(ctx, time.Now(), stmt, nil)
		assert.Empty(t, buf.String())

		l, buf = newLogger(true)
		l.Trace(ctx, time.Now(), stmt, nil)
		assert.Contains(t, buf.String(), `"msg":"query"`)
	})
}
