package cli

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"footprint/internal/equiv"
	"footprint/internal/footprint"
	"footprint/internal/history"
	"footprint/internal/store"
)

// Display colors.
const (
	ColorHeader  = lipgloss.Color("12") // bright blue
	ColorLabel   = lipgloss.Color("8")  // gray
	ColorValue   = lipgloss.Color("15") // white
	ColorOK      = lipgloss.Color("10") // green
	ColorWarning = lipgloss.Color("11") // yellow
	ColorBad     = lipgloss.Color("9")  // red
)

// Bar chart layout.
const (
	barWidth          = 30
	categoryColWidth  = 10
	percentEpsilonKg  = 1e-9
	sparklineMaxWidth = 60
)

// sparkLevels are the eight block characters used for trend sparklines,
// lowest to highest.
//
//nolint:gochecknoglobals // Fixed glyph table.
var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// renderSummary renders the full calc output: total, band narrative,
// breakdown bars, comparison, and equivalencies.
func renderSummary(result footprint.Result, cmp history.Comparison, eq equiv.Output) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		Padding(0, 1)

	sb.WriteString(titleStyle.Render("Carbon Footprint Estimate"))
	sb.WriteString("\n\n")

	valueStyle := lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)

	sb.WriteString(labelStyle.Render("Annual total: "))
	sb.WriteString(valueStyle.Render(fmt.Sprintf("%.2f tonnes CO2e", result.TotalTonnes)))
	sb.WriteString("\n")
	sb.WriteString(renderBandLine(result.TotalTonnes))
	sb.WriteString("\n\n")

	sb.WriteString(renderBreakdown(result.BreakdownKg))
	sb.WriteString("\n")
	sb.WriteString(renderComparison(cmp))

	if !eq.IsEmpty {
		sb.WriteString("\n")
		sb.WriteString(labelStyle.Render(eq.DisplayText))
		sb.WriteString("\n")
	}

	return sb.String()
}

// renderBandLine renders the footprint band narrative. The band thresholds
// (<4, 4-8, >=8 tonnes) are a presentation contract shared with the engine.
func renderBandLine(totalTonnes float64) string {
	band := footprint.BandFor(totalTonnes)

	var color lipgloss.Color
	var text string
	switch band {
	case footprint.BandLow:
		color = ColorOK
		text = "Below the global average — nice work."
	case footprint.BandAverage:
		color = ColorWarning
		text = "Around the global average. Room to improve."
	default:
		color = ColorBad
		text = "Above the global average. See 'footprint tips'."
	}

	style := lipgloss.NewStyle().Foreground(color)
	return style.Render(fmt.Sprintf("%s footprint: %s", strings.ToUpper(band.String()[:1])+band.String()[1:], text))
}

// renderBreakdown renders one bar row per category with its share of the
// total. Negative categories (net waste credit) render an empty bar with the
// raw value still shown.
func renderBreakdown(breakdownKg map[string]float64) string {
	var sb strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	barStyle := lipgloss.NewStyle().Foreground(ColorHeader)

	// Share denominator: sum of positive contributions only, so one
	// negative category can't push the others over 100%.
	var positiveTotal float64
	for _, kg := range breakdownKg {
		if kg > 0 {
			positiveTotal += kg
		}
	}

	for _, category := range footprint.Categories {
		kg, ok := breakdownKg[category]
		if !ok {
			continue
		}

		share := 0.0
		if positiveTotal > percentEpsilonKg && kg > 0 {
			share = kg / positiveTotal
		}

		filled := int(math.Round(share * barWidth))
		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		sb.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", categoryColWidth, category)))
		sb.WriteString(barStyle.Render(bar))
		sb.WriteString(fmt.Sprintf(" %7.1f kg (%4.1f%%)\n", kg, share*100))
	}

	return sb.String()
}

// renderComparison renders the change-vs-last-time narrative. The
// no-prior-data state is distinct from a zero delta.
func renderComparison(cmp history.Comparison) string {
	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)

	switch cmp.Direction() {
	case history.DirectionNoHistory:
		return labelStyle.Render("No previous calculation to compare against.") + "\n"
	case history.DirectionUnchanged:
		style := lipgloss.NewStyle().Foreground(ColorLabel)
		return style.Render("No significant change from your last calculation.") + "\n"
	case history.DirectionIncrease:
		style := lipgloss.NewStyle().Foreground(ColorBad).Bold(true)
		return style.Render(fmt.Sprintf("↑ Up %.2f t (%.1f%%) from your last calculation.",
			cmp.DeltaTonnes, cmp.PercentChange)) + "\n"
	default:
		style := lipgloss.NewStyle().Foreground(ColorOK).Bold(true)
		return style.Render(fmt.Sprintf("↓ Down %.2f t (%.1f%%) from your last calculation.",
			math.Abs(cmp.DeltaTonnes), math.Abs(cmp.PercentChange))) + "\n"
	}
}

// renderHistoryTable renders entries newest-first with a trend sparkline of
// the full (oldest-first) series above it.
func renderHistoryTable(entries []store.Entry) string {
	var sb strings.Builder

	labelStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	headerStyle := lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.CO2eTonnes
	}
	sb.WriteString(labelStyle.Render("Trend: "))
	sb.WriteString(sparkline(values))
	sb.WriteString("\n\n")

	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-28s %-10s %10s  %s", "ID", "DATE", "TONNES", "NOTES")))
	sb.WriteString("\n")

	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		sb.WriteString(fmt.Sprintf("%-28s %-10s %10.2f  %s\n",
			e.ID, e.Timestamp.Format("2006-01-02"), e.CO2eTonnes, e.Notes))
	}

	return sb.String()
}

// sparkline maps a series onto block characters scaled between its min and
// max. A flat series renders mid-level blocks; values beyond
// sparklineMaxWidth are downsampled by taking the last N points.
func sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	if len(values) > sparklineMaxWidth {
		values = values[len(values)-sparklineMaxWidth:]
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	var sb strings.Builder
	span := hi - lo
	for _, v := range values {
		idx := len(sparkLevels) / 2
		if span > 0 {
			idx = int((v - lo) / span * float64(len(sparkLevels)-1))
		}
		sb.WriteRune(sparkLevels[idx])
	}
	return sb.String()
}
