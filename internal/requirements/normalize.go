// Package requirements maps heterogeneous stored or extracted requirement
// fields into the canonical RequirementRecord.
package requirements

import (
	"github.com/aqqnoor/aunichance/internal/types"
)

// Normalize converts a JSON-like requirements container into a canonical
// RequirementRecord. Absent fields stay absent - a missing GPA requirement
// means "no constraint", never GPA >= 0. A nil or non-object container yields
// an empty record rather than an error; the recommended >= min invariant is
// enforced by dropping violating recommended values.
func Normalize(raw map[string]any) types.RequirementRecord {
	var record types.RequirementRecord
	if raw == nil {
		return record
	}

	record.GPA = asBand(raw["gpa"])
	record.GPAScale = asFloat(raw["gpa_scale"])
	if record.GPAScale == nil {
		// Some sources nest the scale inside the gpa object.
		if gpa, ok := raw["gpa"].(map[string]any); ok {
			record.GPAScale = asFloat(gpa["scale"])
		}
	}
	record.IELTS = asBand(raw["ielts"])
	record.TOEFL = asBand(raw["toefl"])
	record.SAT = asBand(raw["sat"])

	record.GREVerbal = asFloat(raw["gre_verbal"])
	record.GREQuant = asFloat(raw["gre_quant"])
	if gre, ok := raw["gre"].(map[string]any); ok {
		// Older records store GRE as a nested object.
		if record.GREVerbal == nil {
			record.GREVerbal = asFloat(gre["verbal"])
		}
		if record.GREQuant == nil {
			record.GREQuant = asFloat(gre["quant"])
		}
	}

	record.ExperienceYears = asInt(raw["experience_years"])
	record.Portfolio = asBool(raw["portfolio"])
	record.RequirementsList = asStringList(raw["requirements_list"])
	record.Tuition = asFloat(raw["tuition"])
	record.Scholarships = asScholarships(raw["scholarships"])

	record.Repair()
	return record
}

// asBand accepts either a {"min": x, "recommended": y} object or a bare
// number (interpreted as the minimum).
func asBand(v any) *types.Band {
	switch value := v.(type) {
	case map[string]any:
		band := &types.Band{
			Min:         asFloat(value["min"]),
			Recommended: asFloat(value["recommended"]),
		}
		if band.Empty() {
			return nil
		}
		return band
	case float64, int, int64:
		return &types.Band{Min: asFloat(value)}
	default:
		return nil
	}
}

func asFloat(v any) *float64 {
	switch value := v.(type) {
	case float64:
		return &value
	case int:
		f := float64(value)
		return &f
	case int64:
		f := float64(value)
		return &f
	default:
		return nil
	}
}

func asInt(v any) *int {
	switch value := v.(type) {
	case float64:
		i := int(value)
		return &i
	case int:
		return &value
	case int64:
		i := int(value)
		return &i
	default:
		return nil
	}
}

func asBool(v any) *bool {
	if value, ok := v.(bool); ok {
		return &value
	}
	return nil
}

func asStringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var result []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			result = append(result, s)
		}
	}
	return result
}

func asScholarships(v any) []types.Scholarship {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var result []types.Scholarship
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["name"].(string)
		if name == "" {
			continue
		}
		deadline, _ := entry["deadline"].(string)
		result = append(result, types.Scholarship{
			Name:     name,
			Amount:   asFloat(entry["amount"]),
			Deadline: deadline,
		})
	}
	return result
}
