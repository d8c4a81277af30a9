package gap

import "github.com/aqqnoor/aunichance/internal/types"

// dimensionSpec describes how one dimension is compared. compute returns the
// gap and whether the dimension was comparable at all: a gap exists only when
// both sides are present, never fabricated for an absent requirement or an
// absent profile value.
type dimensionSpec struct {
	dim     types.Dimension
	compute func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool)
}

// dimensions is the fixed evaluation order. Ranking ties are broken by
// priority (see priorityOf): language tests, then standardized tests, then
// experience, then portfolio.
var dimensions = []dimensionSpec{
	{types.DimGPA, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if p.GPA == nil || r.GPA == nil || r.GPA.Min == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimGPA, *p.GPA, *r.GPA.Min, gpaScale(p, r))
	}},
	{types.DimIELTS, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if p.IELTS == nil || r.IELTS == nil || r.IELTS.Min == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimIELTS, *p.IELTS, *r.IELTS.Min, types.IELTSMax)
	}},
	{types.DimTOEFL, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if p.TOEFL == nil || r.TOEFL == nil || r.TOEFL.Min == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimTOEFL, float64(*p.TOEFL), *r.TOEFL.Min, float64(types.TOEFLMax))
	}},
	{types.DimSAT, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if p.SAT == nil || r.SAT == nil || r.SAT.Min == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimSAT, float64(*p.SAT), *r.SAT.Min, float64(types.SATMax-types.SATMin))
	}},
	{types.DimGREVerbal, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if p.GREVerbal == nil || r.GREVerbal == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimGREVerbal, float64(*p.GREVerbal), *r.GREVerbal, float64(types.GREMax-types.GREMin))
	}},
	{types.DimExperience, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if r.ExperienceYears == nil {
			return types.GapRecord{}, false
		}
		return numericGap(types.DimExperience, float64(p.ExperienceYears), float64(*r.ExperienceYears), experienceRange)
	}},
	{types.DimPortfolio, func(p *types.Profile, r *types.RequirementRecord) (types.GapRecord, bool) {
		if r.Portfolio == nil || !*r.Portfolio || p.HasPortfolio {
			return types.GapRecord{}, false
		}
		// A required-but-missing portfolio is a full deficit on a 0-1 scale.
		return types.GapRecord{
			Dimension:  types.DimPortfolio,
			Raw:        1,
			Normalized: 1,
			Current:    0,
			Required:   1,
		}, true
	}},
	// Achievements has no canonical requirement minimum in stored records, so
	// it never becomes comparable; it stays in the evaluation order for when
	// one is introduced.
	{types.DimAchievements, func(_ *types.Profile, _ *types.RequirementRecord) (types.GapRecord, bool) {
		return types.GapRecord{}, false
	}},
}

// priorities breaks ranking ties: lower ranks first.
var priorities = map[types.Dimension]int{
	types.DimIELTS:        1,
	types.DimTOEFL:        2,
	types.DimSAT:          3,
	types.DimGREVerbal:    4,
	types.DimGPA:          5,
	types.DimExperience:   6,
	types.DimPortfolio:    7,
	types.DimAchievements: 8,
}

func priorityOf(dim types.Dimension) int {
	if p, ok := priorities[dim]; ok {
		return p
	}
	return len(priorities) + 1
}
