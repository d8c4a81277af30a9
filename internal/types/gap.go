package types

// Dimension identifies a single comparable admission metric.
type Dimension string

// Dimensions compared by the gap engine, in evaluation order.
const (
	DimGPA          Dimension = "gpa"
	DimIELTS        Dimension = "ielts"
	DimTOEFL        Dimension = "toefl"
	DimSAT          Dimension = "sat"
	DimGREVerbal    Dimension = "gre_verbal"
	DimExperience   Dimension = "experience_years"
	DimPortfolio    Dimension = "portfolio"
	DimAchievements Dimension = "achievements"
)

// GapRecord is one deficit between a profile value and a requirement minimum.
// Raw is the deficit in the dimension's native units; Normalized expresses it
// as a fraction of the dimension's scale range so gaps rank across dimensions.
type GapRecord struct {
	Dimension  Dimension `json:"dimension"`
	Raw        float64   `json:"raw"`
	Normalized float64   `json:"normalized"`
	Current    float64   `json:"current"`
	Required   float64   `json:"required"`
}
