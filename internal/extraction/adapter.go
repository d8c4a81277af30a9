package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/aqqnoor/aunichance/internal/llm"
	"github.com/aqqnoor/aunichance/internal/prompts"
	"github.com/aqqnoor/aunichance/internal/requirements"
	"github.com/aqqnoor/aunichance/internal/schemas"
	"github.com/aqqnoor/aunichance/internal/types"
)

// MinUsefulLength is the minimum acquired-text length worth sending to the
// extraction capability.
const MinUsefulLength = 50

// Adapter invokes the structured-extraction capability and coerces its output
// into canonical records. Partial success is the normal case given noisy
// source text: individual violating sub-fields are repaired or dropped rather
// than rejecting the whole record.
type Adapter struct {
	client llm.Client
}

// NewAdapter creates an Adapter backed by the given LLM client.
func NewAdapter(client llm.Client) *Adapter {
	return &Adapter{client: client}
}

// ExtractRequirements extracts a RequirementRecord from already-truncated
// admission document text.
func (a *Adapter) ExtractRequirements(ctx context.Context, text string) (*types.RequirementRecord, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	template := prompts.MustGet("extraction.json", "extract-requirements")
	prompt := prompts.Format(template, map[string]string{"Text": text})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &TransportError{Message: "requirements extraction failed", Cause: err}
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &SchemaError{Category: "requirements", Cause: err}
	}

	// Schema violations inside an otherwise-decodable object are repaired by
	// dropping the offending fields, not by rejecting the record.
	var violatingFields []string
	if err := schemas.Validate(schemas.RequirementRecord, []byte(raw)); err != nil {
		var ve *schemas.ValidationError
		if !errors.As(err, &ve) {
			return nil, &SchemaError{Category: "requirements", Cause: err}
		}
		violatingFields = ve.Fields()
		dropFields(decoded, violatingFields)
	}

	record := requirements.Normalize(decoded)
	if record.Empty() && len(violatingFields) > 0 {
		// Nothing survived repair; surface which fields failed.
		return nil, &SchemaError{Category: "requirements", Fields: violatingFields}
	}

	return &record, nil
}

// ExtractDeadlines extracts admission deadlines from already-truncated
// document text. Entries with an unknown type or an unparseable date are
// dropped individually.
func (a *Adapter) ExtractDeadlines(ctx context.Context, text string) ([]types.DeadlineRecord, error) {
	if err := checkInput(text); err != nil {
		return nil, err
	}

	template := prompts.MustGet("extraction.json", "extract-deadlines")
	prompt := prompts.Format(template, map[string]string{"Text": text})

	// Deadline lists are a flat shape; the lite tier handles them.
	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return nil, &TransportError{Message: "deadlines extraction failed", Cause: err}
	}

	var decoded []types.DeadlineRecord
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, &SchemaError{Category: "deadlines", Cause: err}
	}

	schemaErr := schemas.Validate(schemas.DeadlineList, []byte(raw))

	valid := make([]types.DeadlineRecord, 0, len(decoded))
	for _, record := range decoded {
		if !types.ValidDeadlineType(record.DeadlineType) {
			continue
		}
		if !validISODate(record.Date) {
			continue
		}
		valid = append(valid, record)
	}

	if len(valid) == 0 && schemaErr != nil {
		var ve *schemas.ValidationError
		if errors.As(schemaErr, &ve) {
			return nil, &SchemaError{Category: "deadlines", Fields: ve.Fields()}
		}
		return nil, &SchemaError{Category: "deadlines", Cause: schemaErr}
	}

	return valid, nil
}

// checkInput fails fast on degenerate text before any capability call.
func checkInput(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < MinUsefulLength {
		return &EmptyInputError{Length: len(trimmed)}
	}
	return nil
}
