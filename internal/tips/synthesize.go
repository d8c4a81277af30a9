// Package tips turns ranked gap records into concrete, resource-backed,
// time-boxed improvement recommendations.
package tips

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/aqqnoor/aunichance/internal/extraction"
	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/prompts"
	"github.com/aqqnoor/aunichance/internal/schemas"
	"github.com/aqqnoor/aunichance/internal/types"
)

// maxConcurrent bounds parallel generation calls per request.
const maxConcurrent = 3

// ProgramContext carries the program fields named in the generation prompt.
type ProgramContext struct {
	Title       string
	University  string
	Country     string
	DegreeLevel string
	Field       string
}

func (p ProgramContext) String() string {
	return fmt.Sprintf("Program: %s\nUniversity: %s\nCountry: %s\nLevel: %s\nField: %s",
		p.Title, p.University, p.Country, p.DegreeLevel, p.Field)
}

// Synthesizer generates one Tip per gap via the generation capability.
type Synthesizer struct {
	client llm.Client
}

// NewSynthesizer creates a Synthesizer backed by the given LLM client.
func NewSynthesizer(client llm.Client) *Synthesizer {
	return &Synthesizer{client: client}
}

// Generate produces validated Tips for the given gaps, preserving the gaps'
// rank order. Tips failing validation are dropped from the output set rather
// than failing the batch; a transport failure is surfaced only when it left
// nothing to return.
func (s *Synthesizer) Generate(ctx context.Context, program ProgramContext, gaps []types.GapRecord) ([]types.Tip, error) {
	if len(gaps) == 0 {
		return []types.Tip{}, nil
	}

	results := make([]*types.Tip, len(gaps))
	failures := make([]error, len(gaps))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, gapRecord := range gaps {
		g.Go(func() error {
			tip, err := s.generateOne(groupCtx, program, gapRecord)
			if err != nil {
				failures[i] = err
				return nil
			}
			results[i] = tip
			return nil
		})
	}
	_ = g.Wait()

	tips := make([]types.Tip, 0, len(gaps))
	for i, tip := range results {
		if tip == nil {
			log.Printf("[tips] dropped tip for %s: %v", gaps[i].Dimension, failures[i])
			continue
		}
		tips = append(tips, *tip)
	}

	if len(tips) == 0 {
		for _, err := range failures {
			if transport, ok := err.(*extraction.TransportError); ok {
				return nil, transport
			}
		}
	}

	return tips, nil
}

// generateOne builds the per-gap prompt, invokes the capability, and
// validates the returned Tip.
func (s *Synthesizer) generateOne(ctx context.Context, program ProgramContext, gapRecord types.GapRecord) (*types.Tip, error) {
	template := prompts.MustGet("tips.json", "generate-tip")
	prompt := prompts.Format(template, map[string]string{
		"Program":   program.String(),
		"Dimension": string(gapRecord.Dimension),
		"Current":   formatValue(gapRecord.Dimension, gapRecord.Current),
		"Required":  formatValue(gapRecord.Dimension, gapRecord.Required),
		"Deficit":   formatValue(gapRecord.Dimension, gapRecord.Raw),
	})

	raw, err := s.client.GenerateJSON(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return nil, &extraction.TransportError{Message: "tip generation failed", Cause: err}
	}

	if err := schemas.Validate(schemas.Tip, []byte(raw)); err != nil {
		return nil, err
	}

	var tip types.Tip
	if err := json.Unmarshal([]byte(raw), &tip); err != nil {
		return nil, fmt.Errorf("failed to parse tip JSON: %w", err)
	}

	// The gap identity comes from the engine, not the model.
	tip.GapType = string(gapRecord.Dimension)
	tip.GapValue = gapRecord.Raw

	if err := ValidateTip(&tip); err != nil {
		return nil, err
	}

	return &tip, nil
}

// formatValue renders a gap value the way the dimension is spoken about:
// integers for point-scored tests, decimals for band scores.
func formatValue(dim types.Dimension, v float64) string {
	switch dim {
	case types.DimTOEFL, types.DimSAT, types.DimGREVerbal, types.DimExperience, types.DimPortfolio:
		return strconv.Itoa(int(v))
	default:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
}
