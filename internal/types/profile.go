// Package types provides the value objects shared by the admission advisor pipeline.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "fmt"

// Default score scale bounds. GPA programs declare their own scale (4.0 or 5.0);
// the rest are fixed by the testing bodies.
const (
	DefaultGPAScale = 4.0
	MaxGPAScale     = 5.0
	IELTSMax        = 9.0
	TOEFLMax        = 120
	SATMin          = 400
	SATMax          = 1600
	GREMin          = 130
	GREMax          = 170
)

// Profile represents a student's admission attributes. Absent numeric scores are
// nil pointers, meaning "unknown"; they are never coerced to zero.
type Profile struct {
	GPA             *float64 `json:"gpa,omitempty"`
	GPAScale        *float64 `json:"gpa_scale,omitempty"` // 4.0 or 5.0; defaults to 4.0
	IELTS           *float64 `json:"ielts,omitempty"`
	TOEFL           *int     `json:"toefl,omitempty"`
	SAT             *int     `json:"sat,omitempty"`
	GREVerbal       *int     `json:"gre_verbal,omitempty"`
	GREQuant        *int     `json:"gre_quant,omitempty"`
	ExperienceYears int      `json:"experience_years"`
	HasPortfolio    bool     `json:"has_portfolio"`
	Achievements    []string `json:"achievements,omitempty"`
}

// Scale returns the GPA scale for the profile, defaulting to 4.0.
func (p *Profile) Scale() float64 {
	if p.GPAScale != nil && *p.GPAScale > 0 {
		return *p.GPAScale
	}
	return DefaultGPAScale
}

// Validate checks that every present score lies within its declared scale.
func (p *Profile) Validate() error {
	if p.GPAScale != nil && *p.GPAScale != DefaultGPAScale && *p.GPAScale != MaxGPAScale {
		return fmt.Errorf("gpa_scale must be 4.0 or 5.0, got %g", *p.GPAScale)
	}
	if p.GPA != nil && (*p.GPA < 0 || *p.GPA > p.Scale()) {
		return fmt.Errorf("gpa %g outside 0-%g scale", *p.GPA, p.Scale())
	}
	if p.IELTS != nil && (*p.IELTS < 0 || *p.IELTS > IELTSMax) {
		return fmt.Errorf("ielts %g outside 0-%g scale", *p.IELTS, IELTSMax)
	}
	if p.TOEFL != nil && (*p.TOEFL < 0 || *p.TOEFL > TOEFLMax) {
		return fmt.Errorf("toefl %d outside 0-%d scale", *p.TOEFL, TOEFLMax)
	}
	if p.SAT != nil && (*p.SAT < SATMin || *p.SAT > SATMax) {
		return fmt.Errorf("sat %d outside %d-%d scale", *p.SAT, SATMin, SATMax)
	}
	if p.GREVerbal != nil && (*p.GREVerbal < GREMin || *p.GREVerbal > GREMax) {
		return fmt.Errorf("gre_verbal %d outside %d-%d scale", *p.GREVerbal, GREMin, GREMax)
	}
	if p.GREQuant != nil && (*p.GREQuant < GREMin || *p.GREQuant > GREMax) {
		return fmt.Errorf("gre_quant %d outside %d-%d scale", *p.GREQuant, GREMin, GREMax)
	}
	if p.ExperienceYears < 0 {
		return fmt.Errorf("experience_years must be non-negative, got %d", p.ExperienceYears)
	}
	return nil
}
