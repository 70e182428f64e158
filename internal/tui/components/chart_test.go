package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

func TestSparklineWidth(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	s := Sparkline(values, theme.Active.Blue)
	if got := lipgloss.Width(s); got != len(values) {
		t.Errorf("Sparkline width = %d, want %d (one cell per value)", got, len(values))
	}
}

func TestSparklineEmpty(t *testing.T) {
	if got := Sparkline(nil, theme.Active.Blue); got != "" {
		t.Errorf("Sparkline(nil) = %q, want empty", got)
	}
}

func TestSparklineAllZero(t *testing.T) {
	// A zero peak must not divide by zero.
	s := Sparkline([]float64{0, 0, 0}, theme.Active.Blue)
	if lipgloss.Width(s) != 3 {
		t.Errorf("Sparkline of zeros width = %d, want 3", lipgloss.Width(s))
	}
}

func TestBarChartEmpty(t *testing.T) {
	if got := BarChart(nil, nil, theme.Active.Blue, 60, 8, ""); got != "" {
		t.Errorf("BarChart(nil) = %q, want empty", got)
	}
}

func TestBarChartHasAxis(t *testing.T) {
	values := []float64{7.1, 7.0, 6.75, 13.5, 12.0}
	labels := []string{"PPF", "FD", "RD", "ELSS", "Index"}

	chart := BarChart(values, labels, theme.Active.Blue, 60, 8, "%")
	if !strings.Contains(chart, "└") {
		t.Error("chart is missing the x-axis corner")
	}
	if !strings.Contains(chart, "│") {
		t.Error("chart is missing the y-axis")
	}
	if !strings.Contains(chart, "PPF") {
		t.Error("chart is missing the first x label")
	}
	if !strings.Contains(chart, "%") {
		t.Error("tick labels are missing the unit suffix")
	}
}

func TestBarChartTinyAreaFallsBack(t *testing.T) {
	values := []float64{1, 2, 3}
	chart := BarChart(values, nil, theme.Active.Blue, 10, 2, "%")
	if strings.Contains(chart, "└") {
		t.Error("tiny chart should fall back to a sparkline, got axes")
	}
	if got := lipgloss.Width(chart); got != len(values) {
		t.Errorf("fallback sparkline width = %d, want %d", got, len(values))
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{10, 2},
		{25, 5},
		{100, 20},
		{7, 1},
		{0, 1},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{7, "7"},
		{7.5, "7.5"},
		{1500, "1.5k"},
		{2000, "2k"},
		{1500000, "1.5M"},
	}
	for _, tt := range tests {
		if got := formatChartLabel(tt.v); got != tt.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestPercentBarClampsAndLabels(t *testing.T) {
	bar := PercentBar(0.5, 10, theme.Active.Green)
	if !strings.Contains(bar, "50%") {
		t.Errorf("PercentBar(0.5) missing label: %q", bar)
	}
	if !strings.Contains(bar, "█████") {
		t.Errorf("PercentBar(0.5, 10) should fill five cells: %q", bar)
	}

	over := PercentBar(1.7, 10, theme.Active.Green)
	if !strings.Contains(over, "100%") {
		t.Errorf("PercentBar(1.7) should clamp to 100%%: %q", over)
	}
	if strings.Contains(over, "░") {
		t.Errorf("clamped full bar should have no empty cells: %q", over)
	}

	under := PercentBar(-3, 10, theme.Active.Green)
	if !strings.Contains(under, "0%") {
		t.Errorf("PercentBar(-3) should clamp to 0%%: %q", under)
	}
}
