package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadingStats is the aggregation snapshot of one user's library.
type ReadingStats struct {
	Overview        StatsOverview   `json:"overview"`
	BooksByCategory []CategoryCount `json:"booksByCategory"`
	MonthlyStats    []MonthlyCount  `json:"monthlyStats"`
	TopAuthors      []AuthorCount   `json:"topAuthors"`
}

type StatsOverview struct {
	TotalBooks       int `json:"totalBooks"`
	CompletedBooks   int `json:"completedBooks"`
	CurrentlyReading int `json:"currentlyReading"`
	ToReadBooks      int `json:"toReadBooks"`
	AbandonedBooks   int `json:"abandonedBooks"`
	TotalQuotes      int `json:"totalQuotes"`
	AvgPages         int `json:"avgPages"`
	AvgReadingSpeed  int `json:"avgReadingSpeed"` // pages per day
}

type CategoryCount struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Count int       `json:"count"`
	Color string    `json:"color"`
}

type MonthlyCount struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Count int `json:"count"`
}

type AuthorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReadingSample is a completed book with both dates and a page count,
// used to estimate reading speed.
type ReadingSample struct {
	TotalPages int
	StartDate  time.Time
	EndDate    time.Time
}
