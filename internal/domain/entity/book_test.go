package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestBook_Progress(t *testing.T) {
	tests := []struct {
		name    string
		total   *int
		current int
		want    int
	}{
		{name: "half read", total: intPtr(300), current: 150, want: 50},
		{name: "no page count", total: nil, current: 40, want: 0},
		{name: "zero page count", total: intPtr(0), current: 10, want: 0},
		{name: "overshoot is capped", total: intPtr(100), current: 180, want: 100},
		{name: "rounds to nearest", total: intPtr(3), current: 2, want: 67},
		{name: "not started", total: intPtr(250), current: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{TotalPages: tt.total, CurrentPage: tt.current}
			assert.Equal(t, tt.want, b.Progress())
		})
	}
}

func TestBook_TransitionTo(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	earlier := now.Add(-48 * time.Hour)

	t.Run("stamps start date on first move into reading", func(t *testing.T) {
		b := &Book{Status: StatusToRead}
		b.TransitionTo(StatusReading, now)

		assert.Equal(t, StatusReading, b.Status)
		assert.Equal(t, now, *b.StartDate)
		assert.Nil(t, b.EndDate)
	})

	t.Run("keeps an existing start date", func(t *testing.T) {
		b := &Book{Status: StatusToRead, StartDate: &earlier}
		b.TransitionTo(StatusReading, now)

		assert.Equal(t, earlier, *b.StartDate)
	})

	t.Run("stamps end date on completion", func(t *testing.T) {
		b := &Book{Status: StatusReading, StartDate: &earlier}
		b.TransitionTo(StatusCompleted, now)

		assert.Equal(t, now, *b.EndDate)
		assert.Equal(t, earlier, *b.StartDate)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		b := &Book{Status: StatusCompleted}
		b.TransitionTo(StatusCompleted, now)

		assert.Nil(t, b.EndDate)
	})

	t.Run("abandoning stamps nothing", func(t *testing.T) {
		b := &Book{Status: StatusReading}
		b.TransitionTo(StatusAbandoned, now)

		assert.Equal(t, StatusAbandoned, b.Status)
		assert.Nil(t, b.StartDate)
		assert.Nil(t, b.EndDate)
	})
}

func TestReadingStatus_IsValid(t *testing.T) {
	for _, s := range ReadingStatuses {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, ReadingStatus("PAUSED").IsValid())
	assert.False(t, ReadingStatus("").IsValid())
}
