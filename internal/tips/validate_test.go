package tips

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aqqnoor/aunichance/internal/types"
)

func validTip() types.Tip {
	return types.Tip{
		GapType:     "ielts",
		GapValue:    0.5,
		Title:       "Raise IELTS to 6.5",
		Description: "Structured daily practice with weekly mock tests.",
		Timeframe:   "2-3 months",
		Resources:   []string{"IELTS Liz", "Cambridge practice tests"},
	}
}

func TestValidateTip(t *testing.T) {
	t.Run("Valid tip passes", func(t *testing.T) {
		tip := validTip()
		assert.NoError(t, ValidateTip(&tip))
	})

	tests := []struct {
		name   string
		mutate func(*types.Tip)
	}{
		{"Empty title", func(tip *types.Tip) { tip.Title = "  " }},
		{"Empty description", func(tip *types.Tip) { tip.Description = "" }},
		{"No resources", func(tip *types.Tip) { tip.Resources = nil }},
		{"Blank resource entry", func(tip *types.Tip) { tip.Resources = []string{"ok", " "} }},
		{"Timeframe too long", func(tip *types.Tip) { tip.Timeframe = "12 months" }},
		{"Timeframe unreadable", func(tip *types.Tip) { tip.Timeframe = "eventually" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tip := validTip()
			tt.mutate(&tip)
			assert.Error(t, ValidateTip(&tip))
		})
	}
}

func TestTimeframeWithinBound(t *testing.T) {
	tests := []struct {
		name      string
		timeframe string
		within    bool
	}{
		{"Weeks range", "4-6 weeks", true},
		{"Months range", "2-3 months", true},
		{"Single month", "1 month", true},
		{"Six months exactly", "6 months", true},
		{"Seven months", "7 months", false},
		{"Days under bound", "90 days", true},
		{"Days over bound", "200 days", false},
		{"Weeks over bound", "30 weeks", false},
		{"Range upper bound decides", "3-8 months", false},
		{"Case insensitive", "2 MONTHS", true},
		{"Spaced range", "4 - 6 weeks", true},
		{"Prose around the bound", "about 6 weeks of practice", true},
		{"No recognizable bound", "as long as it takes", false},
		{"Years rejected", "2 years", false},
		{"Empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.within, TimeframeWithinBound(tt.timeframe))
		})
	}
}
