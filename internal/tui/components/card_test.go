package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/aumai/dhansetu/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
	theme.SetActive("flexoki-dark")
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatalf("setup: short card (%d lines) should be shorter than tall card (%d)", shortLines, tallLines)
	}

	joined := CardRow([]string{tallCard, shortCard})
	if got := lipgloss.Height(joined); got != tallLines {
		t.Errorf("joined height = %d, want %d (tallest card)", got, tallLines)
	}
}

func TestCardRowPaddingKeepsBackground(t *testing.T) {
	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	joined := CardRow([]string{tallCard, shortCard})

	// The rows below the short card are padding; without background
	// styling they render as unstyled gaps in the terminal.
	for i, line := range strings.Split(joined, "\n") {
		if i < shortLines {
			continue
		}
		if !strings.Contains(line, "\x1b[") {
			t.Errorf("padding line %d has no ANSI styling", i)
		}
	}
}

func TestCardRowWidthConsistency(t *testing.T) {
	shortCard := ContentCard("Short", "A", 30)
	tallCard := ContentCard("Tall", "A\nB\nC\nD\nE\nF", 20)

	joined := CardRow([]string{tallCard, shortCard})

	lines := strings.Split(joined, "\n")
	want := lipgloss.Width(lines[0])
	for i, line := range lines {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("line %d width = %d, want %d", i, got, want)
		}
	}
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{120, 3},
		{121, 3},
		{122, 3},
		{97, 2},
		{50, 5},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
		// First columns absorb the remainder, so widths never increase.
		for i := 1; i < len(widths); i++ {
			if widths[i] > widths[i-1] {
				t.Errorf("LayoutRow(%d, %d)[%d] = %d > previous %d", tt.total, tt.n, i, widths[i], widths[i-1])
			}
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	row := MetricCardRow([]Metric{
		{Label: "Income", Value: "Rs 25,000"},
		{Label: "Savings", Value: "Rs 5,000", Hint: "per month"},
		{Label: "Emergency", Value: "6 months"},
	}, 90)

	for i, line := range strings.Split(row, "\n") {
		if got := lipgloss.Width(line); got != 90 {
			t.Errorf("row line %d width = %d, want 90", i, got)
		}
	}
}

func TestCardInnerWidth(t *testing.T) {
	if got := CardInnerWidth(40); got != 36 {
		t.Errorf("CardInnerWidth(40) = %d, want 36", got)
	}
	if got := CardInnerWidth(5); got != 10 {
		t.Errorf("CardInnerWidth(5) = %d, want the 10 floor", got)
	}
}
