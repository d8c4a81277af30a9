package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/aqqnoor/aunichance/internal/types"
)

// DefaultTipsLimit is how many saved tips are returned when the caller does
// not specify a limit.
const DefaultTipsLimit = 10

// Program represents a degree program joined with its university row. The
// Requirements field is the raw JSONB container; normalization into a
// canonical record happens in the requirements package.
type Program struct {
	ID             uuid.UUID      `json:"id"`
	Title          string         `json:"title"`
	DegreeLevel    string         `json:"degree_level"`
	Field          string         `json:"field"`
	UniversityName string         `json:"university_name"`
	CountryCode    string         `json:"country_code"`
	City           string         `json:"city"`
	QSRank         *int           `json:"qs_rank,omitempty"`
	Requirements   map[string]any `json:"requirements,omitempty"`
	LastUpdated    *time.Time     `json:"last_updated,omitempty"`
}

// SavedTip is an improvement tip read back from storage.
type SavedTip struct {
	ID        uuid.UUID `json:"id"`
	ProgramID uuid.UUID `json:"program_id"`
	types.Tip
	CreatedAt time.Time `json:"created_at"`
}
