// Package gap compares a student profile against canonical program
// requirements and produces ranked, cross-dimension-comparable deficits.
package gap

import (
	"sort"

	"github.com/aqqnoor/aunichance/internal/types"
)

// MaxGaps bounds how many top-ranked deficits are reported.
const MaxGaps = 5

// experienceRange is the scale range used to normalize experience deficits.
// There is no testing-body scale for experience; ten years covers every
// requirement seen in practice.
const experienceRange = 10.0

// Analyze computes one GapRecord per dimension where both a profile value and
// a requirement minimum are present (or where a portfolio is required but
// absent). Surpluses produce no gap. Results are ranked by normalized deficit
// descending, ties broken by the fixed dimension priority order, and capped at
// MaxGaps. An empty result means the profile meets every stated requirement;
// callers must treat it as "no tips", not an error.
func Analyze(profile *types.Profile, record *types.RequirementRecord) []types.GapRecord {
	if profile == nil || record == nil {
		return nil
	}

	gaps := make([]types.GapRecord, 0, len(dimensions))
	for _, spec := range dimensions {
		if gap, ok := spec.compute(profile, record); ok {
			gaps = append(gaps, gap)
		}
	}

	// Stable sort over the fixed evaluation order keeps output deterministic
	// even when normalized values and priorities both tie.
	sort.SliceStable(gaps, func(i, j int) bool {
		if gaps[i].Normalized != gaps[j].Normalized {
			return gaps[i].Normalized > gaps[j].Normalized
		}
		return priorityOf(gaps[i].Dimension) < priorityOf(gaps[j].Dimension)
	})

	if len(gaps) > MaxGaps {
		gaps = gaps[:MaxGaps]
	}
	return gaps
}

// numericGap builds a GapRecord for a numeric dimension. A surplus (deficit
// <= 0) yields no gap.
func numericGap(dim types.Dimension, current, required, scaleRange float64) (types.GapRecord, bool) {
	raw := required - current
	if raw <= 0 || scaleRange <= 0 {
		return types.GapRecord{}, false
	}
	return types.GapRecord{
		Dimension:  dim,
		Raw:        raw,
		Normalized: raw / scaleRange,
		Current:    current,
		Required:   required,
	}, true
}

// gpaScale picks the grading scale shared by profile and requirement,
// preferring the scale the requirement source declared.
func gpaScale(profile *types.Profile, record *types.RequirementRecord) float64 {
	if record.GPAScale != nil && *record.GPAScale > 0 {
		return *record.GPAScale
	}
	return profile.Scale()
}
