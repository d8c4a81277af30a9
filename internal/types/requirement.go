package types

// Band holds a minimum and an optional recommended value for one score dimension.
// Invariant: Recommended >= Min whenever both are present; violating recommended
// values are dropped during normalization rather than failing the record.
type Band struct {
	Min         *float64 `json:"min,omitempty"`
	Recommended *float64 `json:"recommended,omitempty"`
}

// Repair drops a recommended value that falls below the minimum. Returns true
// if the band was modified.
func (b *Band) Repair() bool {
	if b.Min != nil && b.Recommended != nil && *b.Recommended < *b.Min {
		b.Recommended = nil
		return true
	}
	return false
}

// Empty reports whether the band carries no values at all.
func (b *Band) Empty() bool {
	return b == nil || (b.Min == nil && b.Recommended == nil)
}

// Scholarship is a program scholarship captured during requirements extraction.
// Stored verbatim; never gap-analyzed.
type Scholarship struct {
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount,omitempty"`
	Deadline string   `json:"deadline,omitempty"` // ISO date when the source states one
}

// RequirementRecord is the canonical program requirement set. Fields absent in
// the source document are nil, meaning "no constraint": a missing GPA
// requirement is not GPA >= 0.
type RequirementRecord struct {
	GPA             *Band    `json:"gpa,omitempty"`
	GPAScale        *float64 `json:"gpa_scale,omitempty"`
	IELTS           *Band    `json:"ielts,omitempty"`
	TOEFL           *Band    `json:"toefl,omitempty"`
	SAT             *Band    `json:"sat,omitempty"`
	GREVerbal       *float64 `json:"gre_verbal,omitempty"`
	GREQuant        *float64 `json:"gre_quant,omitempty"`
	ExperienceYears *int     `json:"experience_years,omitempty"`
	Portfolio       *bool    `json:"portfolio,omitempty"`

	RequirementsList []string      `json:"requirements_list,omitempty"`
	Tuition          *float64      `json:"tuition,omitempty"`
	Scholarships     []Scholarship `json:"scholarships,omitempty"`
}

// Scale returns the GPA scale declared by the requirement source, defaulting to 4.0.
func (r *RequirementRecord) Scale() float64 {
	if r.GPAScale != nil && *r.GPAScale > 0 {
		return *r.GPAScale
	}
	return DefaultGPAScale
}

// Repair enforces the recommended >= min invariant on every band, dropping
// violating recommended values. Returns the names of repaired fields.
func (r *RequirementRecord) Repair() []string {
	var repaired []string
	for _, band := range []struct {
		name string
		b    *Band
	}{
		{"gpa", r.GPA},
		{"ielts", r.IELTS},
		{"toefl", r.TOEFL},
		{"sat", r.SAT},
	} {
		if band.b != nil && band.b.Repair() {
			repaired = append(repaired, band.name)
		}
	}
	return repaired
}

// Empty reports whether the record carries no requirement at all.
func (r *RequirementRecord) Empty() bool {
	return r.GPA.Empty() && r.IELTS.Empty() && r.TOEFL.Empty() && r.SAT.Empty() &&
		r.GREVerbal == nil && r.GREQuant == nil && r.ExperienceYears == nil &&
		r.Portfolio == nil && len(r.RequirementsList) == 0 &&
		r.Tuition == nil && len(r.Scholarships) == 0
}
