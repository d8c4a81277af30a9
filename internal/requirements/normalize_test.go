package requirements

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeNilAndNonObject(t *testing.T) {
	fromNil := Normalize(nil)
	assert.True(t, fromNil.Empty())
	fromEmpty := Normalize(map[string]any{})
	assert.True(t, fromEmpty.Empty())
}

func TestNormalizeBands(t *testing.T) {
	record := Normalize(map[string]any{
		"gpa":   map[string]any{"min": 3.5, "recommended": 3.8},
		"ielts": map[string]any{"min": 6.5},
		"toefl": 90.0,
	})

	require.NotNil(t, record.GPA)
	assert.Equal(t, 3.5, *record.GPA.Min)
	assert.Equal(t, 3.8, *record.GPA.Recommended)

	require.NotNil(t, record.IELTS)
	assert.Equal(t, 6.5, *record.IELTS.Min)
	assert.Nil(t, record.IELTS.Recommended)

	// A bare number is the minimum.
	require.NotNil(t, record.TOEFL)
	assert.Equal(t, 90.0, *record.TOEFL.Min)
}

func TestNormalizeRepairsRecommendedBelowMin(t *testing.T) {
	record := Normalize(map[string]any{
		"ielts": map[string]any{"min": 7.0, "recommended": 6.0},
	})

	require.NotNil(t, record.IELTS)
	assert.Equal(t, 7.0, *record.IELTS.Min)
	assert.Nil(t, record.IELTS.Recommended)
}

func TestNormalizeGPAScale(t *testing.T) {
	t.Run("Top-level scale", func(t *testing.T) {
		record := Normalize(map[string]any{"gpa_scale": 5.0})
		require.NotNil(t, record.GPAScale)
		assert.Equal(t, 5.0, *record.GPAScale)
	})

	t.Run("Scale nested inside gpa object", func(t *testing.T) {
		record := Normalize(map[string]any{
			"gpa": map[string]any{"min": 4.0, "scale": 5.0},
		})
		require.NotNil(t, record.GPAScale)
		assert.Equal(t, 5.0, *record.GPAScale)
	})
}

func TestNormalizeGRE(t *testing.T) {
	t.Run("Flat fields", func(t *testing.T) {
		record := Normalize(map[string]any{"gre_verbal": 155.0, "gre_quant": 160.0})
		require.NotNil(t, record.GREVerbal)
		assert.Equal(t, 155.0, *record.GREVerbal)
		require.NotNil(t, record.GREQuant)
		assert.Equal(t, 160.0, *record.GREQuant)
	})

	t.Run("Nested object fallback", func(t *testing.T) {
		record := Normalize(map[string]any{
			"gre": map[string]any{"verbal": 150.0, "quant": 158.0},
		})
		require.NotNil(t, record.GREVerbal)
		assert.Equal(t, 150.0, *record.GREVerbal)
		require.NotNil(t, record.GREQuant)
		assert.Equal(t, 158.0, *record.GREQuant)
	})
}

func TestNormalizeScalars(t *testing.T) {
	record := Normalize(map[string]any{
		"experience_years":  2.0,
		"portfolio":         true,
		"tuition":           25000.0,
		"requirements_list": []any{"motivation letter", "", "two references"},
	})

	require.NotNil(t, record.ExperienceYears)
	assert.Equal(t, 2, *record.ExperienceYears)
	require.NotNil(t, record.Portfolio)
	assert.True(t, *record.Portfolio)
	require.NotNil(t, record.Tuition)
	assert.Equal(t, 25000.0, *record.Tuition)
	assert.Equal(t, []string{"motivation letter", "two references"}, record.RequirementsList)
}

func TestNormalizeScholarships(t *testing.T) {
	record := Normalize(map[string]any{
		"scholarships": []any{
			map[string]any{"name": "Merit Award", "amount": 5000.0, "deadline": "2026-01-15"},
			map[string]any{"amount": 1000.0}, // no name, dropped
			"not an object",
		},
	})

	require.Len(t, record.Scholarships, 1)
	assert.Equal(t, "Merit Award", record.Scholarships[0].Name)
	assert.Equal(t, 5000.0, *record.Scholarships[0].Amount)
	assert.Equal(t, "2026-01-15", record.Scholarships[0].Deadline)
}

func TestNormalizeWrongTypesStayAbsent(t *testing.T) {
	record := Normalize(map[string]any{
		"gpa":              "3.5",
		"ielts":            []any{6.5},
		"portfolio":        "yes",
		"experience_years": "two",
	})

	assert.Nil(t, record.GPA)
	assert.Nil(t, record.IELTS)
	assert.Nil(t, record.Portfolio)
	assert.Nil(t, record.ExperienceYears)
	assert.True(t, record.Empty())
}
