package types

// Tip is one time-boxed, resource-backed improvement recommendation.
type Tip struct {
	GapType     string   `json:"gap_type"` // dimension identifier or "general"
	GapValue    float64  `json:"gap_value"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Timeframe   string   `json:"timeframe"` // e.g. "4-6 weeks"
	Resources   []string `json:"resources"`
}
