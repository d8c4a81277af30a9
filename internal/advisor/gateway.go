package advisor

import (
	"context"

	"github.com/google/uuid"

	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/types"
)

// Gateway is the persistence surface the advisor depends on. *db.DB satisfies
// it; tests substitute fakes.
type Gateway interface {
	GetProgram(ctx context.Context, programID uuid.UUID) (*db.Program, error)
	UpsertRequirements(ctx context.Context, programID uuid.UUID, record *types.RequirementRecord) error
	UpsertDeadlines(ctx context.Context, programID uuid.UUID, deadlines []types.DeadlineRecord) error
	AppendTip(ctx context.Context, programID uuid.UUID, tip types.Tip) error
	ListTips(ctx context.Context, programID uuid.UUID, limit int) ([]db.SavedTip, error)
}
