// ABOUTME: Text rendering of diff results: score line, interpretation, batch table
// ABOUTME: Renders a proportional bar chart per snapshot pair with threshold colors

package report

import (
	"fmt"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/atomicul/website-differ/core/domain"
	"github.com/charmbracelet/lipgloss"
)

// BarWidth is the number of cells in the proportional score bar.
const BarWidth = 40

var (
	majorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	significantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	minorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	headerStyle      = lipgloss.NewStyle().Bold(true)
)

// FormatScoreLine renders the one-line machine-readable result. The numeric
// score is the last whitespace-separated token, with four decimal digits,
// so consumers can extract it as the last field of the first output line.
func FormatScoreLine(result domain.DiffResult) string {
	return fmt.Sprintf("Diff Score: %.4f", result.Score)
}

// Interpretation renders the human-readable line for a label.
func Interpretation(label string) string {
	switch label {
	case domain.LabelMajor:
		return "Major structural rewrite detected"
	case domain.LabelSignificant:
		return "Significant layout modifications detected"
	default:
		return "Minor structural changes"
	}
}

// FormatResult renders the two-line report for a single comparison.
func FormatResult(result domain.DiffResult) string {
	return FormatScoreLine(result) + "\n" + Interpretation(result.Label)
}

// RenderTable renders the batch report: one row per consecutive snapshot
// pair with a proportional bar, the score, and the label.
func RenderTable(records []domain.DiffRecord) string {
	if len(records) == 0 {
		return "No snapshot pairs to compare.\n"
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("TRANSITION"),
		headerStyle.Render("CHANGE"),
		headerStyle.Render("SCORE"),
		headerStyle.Render("LABEL"))

	for _, rec := range records {
		style := labelStyle(rec.Result.Label)
		fmt.Fprintf(w, "%s -> %s\t%s\t%.4f\t%s\n",
			rec.OldSnapshot,
			rec.NewSnapshot,
			style.Render(scoreBar(rec.Result.Score)),
			rec.Result.Score,
			style.Render(rec.Result.Label))
	}

	w.Flush()
	return sb.String()
}

// scoreBar builds a BarWidth-cell bar with round(score*BarWidth) filled cells.
func scoreBar(score float64) string {
	filled := int(math.Round(score * BarWidth))
	if filled < 0 {
		filled = 0
	}
	if filled > BarWidth {
		filled = BarWidth
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", BarWidth-filled)
}

func labelStyle(label string) lipgloss.Style {
	switch label {
	case domain.LabelMajor:
		return majorStyle
	case domain.LabelSignificant:
		return significantStyle
	default:
		return minorStyle
	}
}
