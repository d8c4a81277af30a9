package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/aqqnoor/aunichance/internal/types"
)

// AppendTip stores one generated tip for a program. Tips are append-only:
// regeneration adds rows, never updates them.
func (db *DB) AppendTip(ctx context.Context, programID uuid.UUID, tip types.Tip) error {
	resourcesJSON, err := json.Marshal(tip.Resources)
	if err != nil {
		return fmt.Errorf("failed to marshal tip resources: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO improvement_tips
		 (program_id, gap_type, gap_value, title, description, timeframe, resources, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())`,
		programID, tip.GapType, tip.GapValue, tip.Title, tip.Description, tip.Timeframe, resourcesJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to append tip: %w", err)
	}
	return nil
}

// ListTips returns a program's saved tips ordered by recency, newest first.
// limit <= 0 uses DefaultTipsLimit.
func (db *DB) ListTips(ctx context.Context, programID uuid.UUID, limit int) ([]SavedTip, error) {
	if limit <= 0 {
		limit = DefaultTipsLimit
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, program_id, gap_type, gap_value, title, description, timeframe, resources, created_at
		 FROM improvement_tips
		 WHERE program_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		programID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tips: %w", err)
	}
	defer rows.Close()

	var tips []SavedTip
	for rows.Next() {
		var tip SavedTip
		var resourcesJSON []byte
		if err := rows.Scan(&tip.ID, &tip.ProgramID, &tip.GapType, &tip.GapValue,
			&tip.Title, &tip.Description, &tip.Timeframe, &resourcesJSON, &tip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tip: %w", err)
		}
		tip.Resources = decodeResources(tip.ID, resourcesJSON)
		tips = append(tips, tip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tips: %w", err)
	}

	return tips, nil
}

// decodeResources parses a stored tip resource list, tolerating NULL.
// Malformed JSONB is logged and treated as absent rather than failing the
// whole listing.
func decodeResources(tipID uuid.UUID, data []byte) []string {
	if data == nil {
		return nil
	}
	var resources []string
	if err := json.Unmarshal(data, &resources); err != nil {
		log.Printf("[db] malformed resources JSON for tip %s: %v", tipID, err)
		return nil
	}
	return resources
}
