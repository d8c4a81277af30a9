package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/aqqnoor/aunichance/internal/types"
)

// GetProgram retrieves a program joined with its university. Returns nil (no
// error) when the program does not exist; callers map that to their own
// not-found error.
func (db *DB) GetProgram(ctx context.Context, programID uuid.UUID) (*Program, error) {
	var p Program
	var requirementsJSON []byte

	err := db.pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.degree_level, p.field, p.requirements, p.last_updated,
		        u.name, u.country_code, u.city, u.qs_rank
		 FROM programs p
		 JOIN universities u ON p.university_id = u.id
		 WHERE p.id = $1`,
		programID,
	).Scan(&p.ID, &p.Title, &p.DegreeLevel, &p.Field, &requirementsJSON, &p.LastUpdated,
		&p.UniversityName, &p.CountryCode, &p.City, &p.QSRank)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get program: %w", err)
	}

	p.Requirements = decodeRequirements(p.ID, requirementsJSON)

	return &p, nil
}

// decodeRequirements parses a stored requirements payload, tolerating NULL.
// Malformed JSONB is logged and treated as absent rather than failing the
// whole program read.
func decodeRequirements(programID uuid.UUID, data []byte) map[string]any {
	if data == nil {
		return nil
	}
	var requirements map[string]any
	if err := json.Unmarshal(data, &requirements); err != nil {
		log.Printf("[db] malformed requirements JSON for program %s: %v", programID, err)
		return nil
	}
	return requirements
}

// UpsertRequirements replaces a program's stored requirements with the given
// canonical record. Last write wins.
func (db *DB) UpsertRequirements(ctx context.Context, programID uuid.UUID, record *types.RequirementRecord) error {
	jsonBytes, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE programs
		 SET requirements = $1::jsonb, last_updated = NOW(), source = 'llm_document_parser'
		 WHERE id = $2`,
		jsonBytes, programID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert requirements: %w", err)
	}
	return nil
}

// UpsertDeadlines replaces a program's stored admission deadlines.
func (db *DB) UpsertDeadlines(ctx context.Context, programID uuid.UUID, deadlines []types.DeadlineRecord) error {
	jsonBytes, err := json.Marshal(deadlines)
	if err != nil {
		return fmt.Errorf("failed to marshal deadlines: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`UPDATE programs
		 SET deadlines = $1::jsonb, last_updated = NOW(), source = 'llm_document_parser'
		 WHERE id = $2`,
		jsonBytes, programID,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert deadlines: %w", err)
	}
	return nil
}
