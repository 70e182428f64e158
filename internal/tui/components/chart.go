package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color).Background(t.Surface)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// BarChart renders a vertical bar chart with a y-axis and per-bar labels.
// The unit, if any, is appended to every tick label ("5%", "10%").
// Falls back to a sparkline when the area is too small for real bars.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int, unit string) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	// Y-axis: tick step and ceiling
	tickStep := chartTickStep(maxVal)
	maxIntervals := height / 2
	if maxIntervals < 2 {
		maxIntervals = 2
	}
	for int(math.Ceil(maxVal/tickStep)) > maxIntervals {
		tickStep *= 2
	}
	ceiling := math.Ceil(maxVal/tickStep) * tickStep
	numIntervals := int(math.Round(ceiling / tickStep))
	if numIntervals < 1 {
		numIntervals = 1
	}

	rowsPerTick := height / numIntervals
	if rowsPerTick < 2 {
		rowsPerTick = 2
	}
	chartH := rowsPerTick * numIntervals

	yLabelW := len(formatChartLabel(ceiling)) + len(unit) + 1
	if yLabelW < 4 {
		yLabelW = 4
	}
	tickLabels := make(map[int]string)
	for i := 1; i <= numIntervals; i++ {
		tickLabels[i*rowsPerTick] = formatChartLabel(tickStep*float64(i)) + unit
	}

	chartW := width - yLabelW - 1
	if chartW < 5 {
		chartW = 5
	}

	n := len(values)
	gap := 1
	if n <= 1 {
		gap = 0
	}
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	}
	if barW < 2 {
		// Too many bars for the area.
		return Sparkline(values, color)
	}
	if barW > 6 {
		barW = 6
	}
	axisLen := n*barW + (n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	fillStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder

	for row := chartH; row >= 1; row-- {
		rowTop := ceiling * float64(row) / float64(chartH)
		rowBottom := ceiling * float64(row-1) / float64(chartH)
		rowPct := float64(row) / float64(chartH)

		// Brighter toward the top of the chart
		var barColor lipgloss.Color
		switch {
		case rowPct > 0.8:
			barColor = t.AccentBright
		case rowPct > 0.5:
			barColor = color
		default:
			barColor = t.Accent
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, tickLabels[row])))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(fillStyle.Render(" "))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(fillStyle.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	// X-axis line
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "0")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	// X-axis labels, skipping any that would overlap
	if len(labels) == n {
		buf := make([]byte, axisLen)
		for i := range buf {
			buf[i] = ' '
		}
		lastEnd := -1
		for i, lbl := range labels {
			pos := i * (barW + gap)
			end := pos + len(lbl)
			if pos <= lastEnd || end > axisLen {
				continue
			}
			copy(buf[pos:end], lbl)
			lastEnd = end
		}

		b.WriteString("\n")
		labelStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
		b.WriteString(fillStyle.Render(strings.Repeat(" ", yLabelW+1)))
		b.WriteString(labelStyle.Render(strings.TrimRight(string(buf), " ")))
	}

	return b.String()
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	exp := math.Floor(math.Log10(rough))
	base := math.Pow(10, exp)
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	switch {
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v == math.Trunc(v):
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.1f", v)
	}
}
