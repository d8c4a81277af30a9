package types

// DeadlineType classifies an admission deadline.
type DeadlineType string

// Deadline types recognized by the deadlines extraction.
const (
	DeadlineRegular     DeadlineType = "regular"
	DeadlineEarly       DeadlineType = "early"
	DeadlineScholarship DeadlineType = "scholarship"
	DeadlineExam        DeadlineType = "exam"
)

// ValidDeadlineType reports whether t is one of the recognized deadline types.
func ValidDeadlineType(t DeadlineType) bool {
	switch t {
	case DeadlineRegular, DeadlineEarly, DeadlineScholarship, DeadlineExam:
		return true
	}
	return false
}

// DeadlineRecord is a single extracted admission date.
type DeadlineRecord struct {
	DeadlineType DeadlineType `json:"deadline_type"`
	Date         string       `json:"date"` // ISO date (2006-01-02)
	Description  string       `json:"description"`
	IsRecurring  bool         `json:"is_recurring"`
}

// Document is acquired plain text together with its classified category.
type Document struct {
	SourceURL string `json:"source_url"`
	Category  string `json:"category"`
	Text      string `json:"text"`
}
