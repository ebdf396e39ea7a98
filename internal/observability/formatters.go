// Package observability provides metrics collectors and formatted output for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/writing-highlighter/internal/types"
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

	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCriteria outputs the normalized criteria an annotation run will use.
func (p *Printer) PrintCriteria(criteria []types.Criterion) {
	if len(criteria) == 0 {
		return
	}

	var sb strings.Builder
	for _, c := range criteria {
		sb.WriteString(fmt.Sprintf("[%d/2] %s\n", c.Score, c.Name))
		if c.Justification != "" {
			sb.WriteString(fmt.Sprintf("      %s\n", c.Justification))
		}
	}

	p.printBox(fmt.Sprintf("CRITERIA (%d)", len(criteria)), sb.String())
}

// PrintEvidence outputs the top candidates found for one criterion.
func (p *Printer) PrintEvidence(criterion string, candidates []types.EvidenceCandidate) {
	var sb strings.Builder
	if len(candidates) == 0 {
		sb.WriteString("No evidence found\n")
	}

	count := min(len(candidates), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := candidates[i]
		sb.WriteString(fmt.Sprintf("%d. %q\n", i+1, c.Text))
		sb.WriteString(fmt.Sprintf("   %s  priority %d  confidence %.2f\n", c.Source, c.Priority, c.Confidence))
	}
	if len(candidates) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(candidates)-maxItemsToShow))
	}

	p.printBox("EVIDENCE: "+criterion, sb.String())
}

// PrintReports outputs a per-criterion summary of an annotation run.
func (p *Printer) PrintReports(reports []types.CriterionReport, spans int) {
	var sb strings.Builder
	for _, r := range reports {
		line := fmt.Sprintf("%-28s score %d  cand %d  hits %d", r.Criterion, r.Score, r.Candidates, r.Matches)
		if r.Category != "" {
			line += "  [" + r.Category + "]"
		}
		if r.Withheld {
			line += " withheld"
		}
		sb.WriteString(line + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Annotated spans: %d\n", spans))

	p.printBox("ANNOTATION SUMMARY", sb.String())
}
