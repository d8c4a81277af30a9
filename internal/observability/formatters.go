// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/aqqnoor/aunichance/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs a human-readable summary of an extracted
// requirement record.
func (p *Printer) PrintRequirements(record *types.RequirementRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	writeBand := func(name string, band *types.Band) {
		if band == nil || band.Empty() {
			return
		}
		sb.WriteString(fmt.Sprintf("%-12s", name+":"))
		if band.Min != nil {
			sb.WriteString(fmt.Sprintf(" min %g", *band.Min))
		}
		if band.Recommended != nil {
			sb.WriteString(fmt.Sprintf(" recommended %g", *band.Recommended))
		}
		sb.WriteString("\n")
	}

	writeBand("GPA", record.GPA)
	writeBand("IELTS", record.IELTS)
	writeBand("TOEFL", record.TOEFL)
	writeBand("SAT", record.SAT)
	if record.GREVerbal != nil {
		sb.WriteString(fmt.Sprintf("%-12s %g\n", "GRE verbal:", *record.GREVerbal))
	}
	if record.GREQuant != nil {
		sb.WriteString(fmt.Sprintf("%-12s %g\n", "GRE quant:", *record.GREQuant))
	}
	if record.ExperienceYears != nil {
		sb.WriteString(fmt.Sprintf("%-12s %d years\n", "Experience:", *record.ExperienceYears))
	}
	if record.Portfolio != nil {
		sb.WriteString(fmt.Sprintf("%-12s %t\n", "Portfolio:", *record.Portfolio))
	}
	if record.Tuition != nil {
		sb.WriteString(fmt.Sprintf("%-12s %g\n", "Tuition:", *record.Tuition))
	}

	if len(record.RequirementsList) > 0 {
		sb.WriteString("\nOther requirements:\n")
		count := min(len(record.RequirementsList), maxItemsToShow)
		for i := 0; i < count; i++ {
			item := record.RequirementsList[i]
			if len(item) > 50 {
				item = item[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", item))
		}
		if len(record.RequirementsList) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(record.RequirementsList)-maxItemsToShow))
		}
	}

	p.printBox("EXTRACTED REQUIREMENTS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDeadlines outputs the extracted admission deadlines.
func (p *Printer) PrintDeadlines(deadlines []types.DeadlineRecord) {
	if len(deadlines) == 0 {
		p.printBox("EXTRACTED DEADLINES", "No deadlines found")
		return
	}

	var sb strings.Builder
	count := min(len(deadlines), maxItemsToShow)
	for i := 0; i < count; i++ {
		d := deadlines[i]
		sb.WriteString(fmt.Sprintf("%s  %-12s", d.Date, d.DeadlineType))
		if d.IsRecurring {
			sb.WriteString(" (recurring)")
		}
		sb.WriteString("\n")
		if d.Description != "" {
			desc := d.Description
			if len(desc) > 50 {
				desc = desc[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  %s\n", desc))
		}
	}
	if len(deadlines) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(deadlines)-maxItemsToShow))
	}

	p.printBox("EXTRACTED DEADLINES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGaps outputs the ranked gap records with normalized severities.
func (p *Printer) PrintGaps(gaps []types.GapRecord) {
	if len(gaps) == 0 {
		p.printBox("GAP ANALYSIS", "No gaps: profile meets all stated requirements")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d gaps:\n\n", len(gaps)))

	for i, gap := range gaps {
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, gap.Dimension))
		sb.WriteString(fmt.Sprintf("    current %g, required %g (deficit %g)\n",
			gap.Current, gap.Required, gap.Raw))
		sb.WriteString(fmt.Sprintf("    severity %.3f\n", gap.Normalized))
		if i < len(gaps)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("GAP ANALYSIS", sb.String())
}

// PrintTips outputs the generated improvement tips.
func (p *Printer) PrintTips(tips []types.Tip) {
	if len(tips) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Generated %d tips:\n\n", len(tips)))

	count := min(len(tips), maxItemsToShow)
	for i := 0; i < count; i++ {
		tip := tips[i]
		title := tip.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("• %s\n", title))
		sb.WriteString(fmt.Sprintf("  [%s, %s]\n", tip.GapType, tip.Timeframe))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(tips) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more tips", len(tips)-maxItemsToShow))
	}

	p.printBox("IMPROVEMENT TIPS", sb.String())
}
