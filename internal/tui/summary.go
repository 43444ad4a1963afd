package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/menta2k/photobatch/internal/batch"
)

type SummaryRow struct {
	Label string
	Value string
}

// RenderSummary draws the run totals as a small aligned table.
func RenderSummary(rows []SummaryRow) string {
	labelWidth := 0
	valueWidth := 0
	for _, row := range rows {
		if len(row.Label) > labelWidth {
			labelWidth = len(row.Label)
		}
		if len(row.Value) > valueWidth {
			valueWidth = len(row.Value)
		}
	}

	hline := strings.Repeat("-", labelWidth+valueWidth+3)
	lines := []string{hline}

	for _, row := range rows {
		label := padRight(row.Label, labelWidth)
		value := padRight(row.Value, valueWidth)
		line := fmt.Sprintf("%s | %s", labelStyle.Render(label), valueStyle.Render(value))
		lines = append(lines, line)
	}

	lines = append(lines, hline)
	return strings.Join(lines, "\n")
}

// RenderFailures itemizes per-file failures, one bullet per file. Successful
// outcomes are skipped.
func RenderFailures(outcomes []batch.Outcome) string {
	var lines []string
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %s %s",
			failBulletStyle.Render("-"),
			failValueStyle.Render(outcome.Err.Error()),
		))
	}
	if len(lines) == 0 {
		return ""
	}
	header := failHeaderStyle.Render(fmt.Sprintf("Failures (%d):", len(lines)))
	return header + "\n" + strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

var (
	valueStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	failHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorWarn)
	failValueStyle  = lipgloss.NewStyle().Foreground(ColorInk)
	failBulletStyle = lipgloss.NewStyle().Foreground(ColorDim)
)
