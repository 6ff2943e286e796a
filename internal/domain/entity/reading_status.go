package entity

// ReadingStatus is the mutually exclusive lifecycle state of a book.
type ReadingStatus string

const (
	StatusToRead    ReadingStatus = "TO_READ"
	StatusReading   ReadingStatus = "READING"
	StatusCompleted ReadingStatus = "COMPLETED"
	StatusAbandoned ReadingStatus = "ABANDONED"
)

// ReadingStatuses lists every valid status in display order.
var ReadingStatuses = []ReadingStatus{StatusToRead, StatusReading, StatusCompleted, StatusAbandoned}

// IsValid reports whether s is one of the known statuses.
func (s ReadingStatus) IsValid() bool {
	switch s {
	case StatusToRead, StatusReading, StatusCompleted, StatusAbandoned:
		return true
	default:
		return false
	}
}

func (s ReadingStatus) String() string {
	return string(s)
}
