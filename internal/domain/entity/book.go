package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Book is a single title in a user's library.
type Book struct {
	ID          uuid.UUID     `json:"id"`
	UserID      uuid.UUID     `json:"userId"`
	Title       string        `json:"title"`
	Author      string        `json:"author"`
	ISBN        string        `json:"isbn"`
	Description string        `json:"description"`
	CoverImage  string        `json:"coverImage"`
	TotalPages  *int          `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Status      ReadingStatus `json:"status"`
	Rating      *int          `json:"rating"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	CategoryID  *uuid.UUID    `json:"categoryId"`
	Category    *Category     `json:"category"`
	Tags        []*Tag        `json:"tags"`
	Quotes      []*Quote      `json:"quotes,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// Progress returns the reading progress as a whole percentage in [0, 100].
// Books without a positive page count report 0.
func (b *Book) Progress() int {
	if b.TotalPages == nil || *b.TotalPages <= 0 {
		return 0
	}

	pct := float64(b.CurrentPage) / float64(*b.TotalPages) * 100
	if pct < 0 {
		return 0
	}

	return int(math.Round(math.Min(pct, 100)))
}

// TransitionTo sets the status and stamps StartDate on the first move into READING
// and EndDate on the first move into COMPLETED. Existing dates are never overwritten.
func (b *Book) TransitionTo(status ReadingStatus, now time.Time) {
	if b.Status == status {
		return
	}

	b.Status = status

	switch status {
	case StatusReading:
		if b.StartDate == nil {
			b.StartDate = &now
		}
	case StatusCompleted:
		if b.EndDate == nil {
			b.EndDate = &now
		}
	case StatusToRead, StatusAbandoned:
	}
}

// BookSummary is the compact book shape embedded in quote listings.
type BookSummary struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	CoverImage string    `json:"coverImage"`
}
