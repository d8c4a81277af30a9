// Package advisor exposes the caller-facing operations of the admission
// advisor: generating improvement tips for a profile against a program, and
// parsing admission documents into stored requirement and deadline records.
package advisor

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/aqqnoor/aunichance/internal/classify"
	"github.com/aqqnoor/aunichance/internal/db"
	"github.com/aqqnoor/aunichance/internal/extraction"
	"github.com/aqqnoor/aunichance/internal/fetch"
	"github.com/aqqnoor/aunichance/internal/gap"
	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/observability"
	"github.com/aqqnoor/aunichance/internal/requirements"
	"github.com/aqqnoor/aunichance/internal/tips"
	"github.com/aqqnoor/aunichance/internal/types"
)

// DefaultTimeout bounds each suspending call (document fetch, LLM round trip)
// unless overridden in Options.
const DefaultTimeout = 30 * time.Second

// Options configures a Service.
type Options struct {
	FetchTimeout time.Duration
	LLMTimeout   time.Duration
	UseBrowser   bool
	// Verbose, when set, receives formatted stage summaries as each
	// operation runs.
	Verbose io.Writer
}

// Service wires the pipeline stages behind the three advisor operations.
type Service struct {
	gateway     Gateway
	adapter     *extraction.Adapter
	synthesizer *tips.Synthesizer
	printer     *observability.Printer
	opts        Options
}

// NewService creates a Service over the given persistence gateway and LLM
// client. Zero timeouts in opts fall back to DefaultTimeout.
func NewService(gateway Gateway, client llm.Client, opts Options) *Service {
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = DefaultTimeout
	}
	if opts.LLMTimeout <= 0 {
		opts.LLMTimeout = DefaultTimeout
	}
	s := &Service{
		gateway:     gateway,
		adapter:     extraction.NewAdapter(client),
		synthesizer: tips.NewSynthesizer(client),
		opts:        opts,
	}
	if opts.Verbose != nil {
		s.printer = observability.NewPrinter(opts.Verbose)
	}
	return s
}

// ParseResult is the outcome of a document parse: exactly one of Requirements
// or Deadlines is populated, depending on the document category.
type ParseResult struct {
	Category     classify.Category        `json:"category"`
	Requirements *types.RequirementRecord `json:"requirements,omitempty"`
	Deadlines    []types.DeadlineRecord   `json:"deadlines,omitempty"`
	TextLength   int                      `json:"text_length"`
	Saved        bool                     `json:"saved"`
}

// GenerateTips computes the profile's ranked gaps against the program's stored
// requirements and synthesizes one tip per gap. Tips are persisted only after
// the entire batch is computed; a persistence failure does not discard the
// in-memory result.
func (s *Service) GenerateTips(ctx context.Context, programID uuid.UUID, profile *types.Profile) ([]types.Tip, error) {
	if err := profile.Validate(); err != nil {
		return nil, &InvalidProfileError{Cause: err}
	}

	program, err := s.gateway.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}

	record := requirements.Normalize(program.Requirements)
	gaps := gap.Analyze(profile, &record)
	if s.printer != nil {
		s.printer.PrintGaps(gaps)
	}
	if len(gaps) == 0 {
		return []types.Tip{}, nil
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.opts.LLMTimeout)
	defer cancel()

	generated, err := s.synthesizer.Generate(llmCtx, programContext(program), gaps)
	if err != nil {
		return nil, err
	}
	if s.printer != nil {
		s.printer.PrintTips(generated)
	}

	for _, tip := range generated {
		if err := s.gateway.AppendTip(ctx, programID, tip); err != nil {
			log.Printf("[advisor] failed to persist tip %q for program %s: %v", tip.Title, programID, err)
		}
	}

	return generated, nil
}

// ParseDocument acquires the document at uri, routes it by category, extracts
// the corresponding structured record, and persists it when a program is
// given. The write happens only after extraction fully succeeds.
func (s *Service) ParseDocument(ctx context.Context, uri string, programID *uuid.UUID) (*ParseResult, error) {
	category := classify.Classify(uri)

	fetchCtx, cancelFetch := context.WithTimeout(ctx, s.opts.FetchTimeout)
	defer cancelFetch()

	text, err := fetch.Acquire(fetchCtx, uri, &fetch.Options{
		Timeout:    s.opts.FetchTimeout,
		UseBrowser: s.opts.UseBrowser,
	})
	if err != nil {
		return nil, err
	}

	window := classify.Window(category, text)
	result := &ParseResult{Category: category, TextLength: len(window)}

	llmCtx, cancelLLM := context.WithTimeout(ctx, s.opts.LLMTimeout)
	defer cancelLLM()

	switch category {
	case classify.CategoryDeadlines:
		deadlines, err := s.adapter.ExtractDeadlines(llmCtx, window)
		if err != nil {
			return nil, err
		}
		result.Deadlines = deadlines
		if s.printer != nil {
			s.printer.PrintDeadlines(deadlines)
		}
		if programID != nil {
			if err := s.gateway.UpsertDeadlines(ctx, *programID, deadlines); err != nil {
				return nil, err
			}
			result.Saved = true
		}
	default:
		record, err := s.adapter.ExtractRequirements(llmCtx, window)
		if err != nil {
			return nil, err
		}
		result.Requirements = record
		if s.printer != nil {
			s.printer.PrintRequirements(record)
		}
		if programID != nil {
			if err := s.gateway.UpsertRequirements(ctx, *programID, record); err != nil {
				return nil, err
			}
			result.Saved = true
		}
	}

	return result, nil
}

// GetSavedTips returns the program's most recent stored tips.
func (s *Service) GetSavedTips(ctx context.Context, programID uuid.UUID) ([]db.SavedTip, error) {
	program, err := s.gateway.GetProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, ErrProgramNotFound
	}
	return s.gateway.ListTips(ctx, programID, db.DefaultTipsLimit)
}

// programContext projects the stored program row into the fields the tip
// prompt names.
func programContext(program *db.Program) tips.ProgramContext {
	return tips.ProgramContext{
		Title:       program.Title,
		University:  program.UniversityName,
		Country:     program.CountryCode,
		DegreeLevel: program.DegreeLevel,
		Field:       program.Field,
	}
}
