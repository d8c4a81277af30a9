package tips

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/aqqnoor/aunichance/internal/types"
)

// The advisor only suggests short-term, actionable remediation: any tip whose
// timeframe exceeds roughly six months of effort is rejected.
const (
	maxDays   = 183
	maxWeeks  = 26
	maxMonths = 6
)

// timeframePattern matches bounds like "4-6 weeks", "2-3 months", "90 days".
// The last captured number before the unit is the effective upper bound.
var timeframePattern = regexp.MustCompile(`(?i)(\d+)\s*(?:-\s*(\d+)\s*)?(day|week|month)s?`)

// ValidateTip checks structural validity of a generated tip: non-empty title,
// description and resources, and a timeframe bounded to short-term effort.
func ValidateTip(tip *types.Tip) error {
	if strings.TrimSpace(tip.Title) == "" {
		return fmt.Errorf("tip has empty title")
	}
	if strings.TrimSpace(tip.Description) == "" {
		return fmt.Errorf("tip has empty description")
	}
	if len(tip.Resources) == 0 {
		return fmt.Errorf("tip has no resources")
	}
	for _, resource := range tip.Resources {
		if strings.TrimSpace(resource) == "" {
			return fmt.Errorf("tip has an empty resource entry")
		}
	}
	if !TimeframeWithinBound(tip.Timeframe) {
		return fmt.Errorf("tip timeframe %q exceeds the six-month bound", tip.Timeframe)
	}
	return nil
}

// TimeframeWithinBound reports whether a human-readable timeframe denotes at
// most roughly six months of effort. Unrecognized formats are rejected: a tip
// whose bound cannot be read cannot be trusted to be short-term.
func TimeframeWithinBound(timeframe string) bool {
	match := timeframePattern.FindStringSubmatch(timeframe)
	if match == nil {
		return false
	}

	bound, err := strconv.Atoi(match[1])
	if err != nil {
		return false
	}
	if match[2] != "" {
		upper, err := strconv.Atoi(match[2])
		if err != nil {
			return false
		}
		if upper > bound {
			bound = upper
		}
	}

	switch strings.ToLower(match[3]) {
	case "day":
		return bound <= maxDays
	case "week":
		return bound <= maxWeeks
	case "month":
		return bound <= maxMonths
	}
	return false
}
