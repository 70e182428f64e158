package tui

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a := NewApp(content.Default())
	return updateApp(t, a, tea.WindowSizeMsg{Width: 140, Height: 40})
}

func updateApp(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	m, _ := a.Update(msg)
	next, ok := m.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", m)
	}
	return next
}

func pressKey(t *testing.T, a App, key string) App {
	t.Helper()
	return updateApp(t, a, keyMsg(key))
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func TestTabJumpKeys(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"s", tabSchemes},
		{"i", tabInvest},
		{"u", tabUPI},
		{"c", tabConcepts},
	}
	for _, tt := range tests {
		a := pressKey(t, newTestApp(t), tt.key)
		if a.activeTab != tt.want {
			t.Errorf("key %q -> tab %d, want %d", tt.key, a.activeTab, tt.want)
		}
	}
}

func TestAdvisorTabAutoStartsForm(t *testing.T) {
	a := pressKey(t, newTestApp(t), "a")
	if a.activeTab != tabAdvisor {
		t.Fatalf("key \"a\" -> tab %d, want %d", a.activeTab, tabAdvisor)
	}
	if a.adv.form == nil {
		t.Error("entering the Advisor tab should start the checkup form")
	}
}

func TestTabArrowCycle(t *testing.T) {
	a := pressKey(t, newTestApp(t), "right")
	if a.activeTab != tabSchemes {
		t.Errorf("right from Concepts -> tab %d, want %d", a.activeTab, tabSchemes)
	}

	a = pressKey(t, newTestApp(t), "left")
	if a.activeTab != tabAdvisor {
		t.Errorf("left from Concepts -> tab %d, want %d (wraps)", a.activeTab, tabAdvisor)
	}
	if a.adv.form == nil {
		t.Error("wrapping onto the Advisor tab should start the checkup form")
	}
}

func TestConceptsSearchFlow(t *testing.T) {
	a := pressKey(t, newTestApp(t), "/")
	if !a.concepts.searching {
		t.Fatal("/ should enter search mode")
	}

	a = pressKey(t, a, "deposit")
	a = pressKey(t, a, "enter")

	if a.concepts.searching {
		t.Error("enter should leave search mode")
	}
	if a.concepts.searchQuery != "deposit" {
		t.Errorf("searchQuery = %q, want %q", a.concepts.searchQuery, "deposit")
	}
	if a.concepts.cursor != 0 {
		t.Errorf("cursor = %d, want 0 after applying a search", a.concepts.cursor)
	}

	got := len(a.visibleConcepts())
	if got == 0 {
		t.Fatal("search for \"deposit\" matched nothing")
	}
	if got == a.nConcepts {
		t.Errorf("search for \"deposit\" matched all %d concepts, filter had no effect", got)
	}

	a = pressKey(t, a, "esc")
	if a.concepts.searchQuery != "" {
		t.Errorf("esc should clear the filter, still %q", a.concepts.searchQuery)
	}
	if len(a.visibleConcepts()) != a.nConcepts {
		t.Error("clearing the filter should restore the full table")
	}
}

func TestConceptsSearchCancel(t *testing.T) {
	a := pressKey(t, newTestApp(t), "/")
	a = pressKey(t, a, "xyz")
	a = pressKey(t, a, "esc")

	if a.concepts.searching {
		t.Error("esc should leave search mode")
	}
	if a.concepts.searchQuery != "" {
		t.Errorf("cancelled search applied a query: %q", a.concepts.searchQuery)
	}
}

func TestConceptDetailToggle(t *testing.T) {
	a := pressKey(t, newTestApp(t), "enter")
	if a.concepts.viewMode != conceptViewDetail {
		t.Fatal("enter should expand the detail view")
	}

	a = pressKey(t, a, "esc")
	if a.concepts.viewMode != conceptViewSplit {
		t.Fatal("esc should collapse back to the split view")
	}
}

func TestQuitCollapsesDetailFirst(t *testing.T) {
	a := pressKey(t, newTestApp(t), "enter")

	m, cmd := a.Update(keyMsg("q"))
	a = m.(App)
	if cmd != nil {
		t.Fatal("q in detail view should collapse, not quit")
	}
	if a.concepts.viewMode != conceptViewSplit {
		t.Fatal("q in detail view should return to split view")
	}

	_, cmd = a.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q in split view should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q returned %T, want tea.QuitMsg", cmd())
	}
}

func TestListNavigationClamps(t *testing.T) {
	a := pressKey(t, newTestApp(t), "k")
	if a.concepts.cursor != 0 {
		t.Errorf("k at the top moved cursor to %d", a.concepts.cursor)
	}

	a = pressKey(t, a, "G")
	if a.concepts.cursor != a.nConcepts-1 {
		t.Errorf("G -> cursor %d, want %d", a.concepts.cursor, a.nConcepts-1)
	}

	a = pressKey(t, a, "j")
	if a.concepts.cursor != a.nConcepts-1 {
		t.Errorf("j at the bottom moved cursor to %d", a.concepts.cursor)
	}

	a = pressKey(t, a, "g")
	if a.concepts.cursor != 0 {
		t.Errorf("g -> cursor %d, want 0", a.concepts.cursor)
	}
}

func TestDetailScrollKeys(t *testing.T) {
	a := pressKey(t, newTestApp(t), "s")

	a = pressKey(t, a, "J")
	a = pressKey(t, a, "J")
	if a.schemes.detailScroll != 2 {
		t.Errorf("JJ -> detailScroll %d, want 2", a.schemes.detailScroll)
	}

	a = pressKey(t, a, "K")
	if a.schemes.detailScroll != 1 {
		t.Errorf("K -> detailScroll %d, want 1", a.schemes.detailScroll)
	}

	// Moving the selection resets the scroll.
	a = pressKey(t, a, "j")
	if a.schemes.detailScroll != 0 {
		t.Errorf("j should reset detailScroll, got %d", a.schemes.detailScroll)
	}
}

func TestMouseWheelMovesSelection(t *testing.T) {
	a := newTestApp(t)

	a = updateApp(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelDown})
	if a.concepts.cursor != 1 {
		t.Errorf("wheel down -> cursor %d, want 1", a.concepts.cursor)
	}

	a = updateApp(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	a = updateApp(t, a, tea.MouseMsg{Button: tea.MouseButtonWheelUp})
	if a.concepts.cursor != 0 {
		t.Errorf("wheel up past the top -> cursor %d, want 0", a.concepts.cursor)
	}
}

func TestMouseClickSwitchesTab(t *testing.T) {
	a := newTestApp(t)

	// " Concepts " spans x 0-9, the separator is x 10, " Schemes " starts at 11.
	a = updateApp(t, a, tea.MouseMsg{X: 12, Y: 0, Button: tea.MouseButtonLeft})
	if a.activeTab != tabSchemes {
		t.Errorf("click at x=12 -> tab %d, want %d", a.activeTab, tabSchemes)
	}

	// Clicks below the header are not tab clicks.
	a = updateApp(t, a, tea.MouseMsg{X: 2, Y: 10, Button: tea.MouseButtonLeft})
	if a.activeTab != tabSchemes {
		t.Errorf("click below the header switched tabs to %d", a.activeTab)
	}
}

func TestHelpOverlay(t *testing.T) {
	a := pressKey(t, newTestApp(t), "?")
	if !a.showHelp {
		t.Fatal("? should open the help overlay")
	}

	a = pressKey(t, a, "j")
	if a.showHelp {
		t.Error("any key should dismiss the help overlay")
	}
	if a.concepts.cursor != 0 {
		t.Error("the dismissing key should not also act on the list")
	}
}

func TestAdvisorFormEscCancels(t *testing.T) {
	a := pressKey(t, newTestApp(t), "a")
	if a.adv.form == nil {
		t.Fatal("expected an active form")
	}

	a = pressKey(t, a, "esc")
	if a.adv.form != nil {
		t.Error("esc should cancel the checkup form")
	}
	if a.adv.completed {
		t.Error("a cancelled form should not mark the checkup complete")
	}

	a = pressKey(t, a, "e")
	if a.adv.form == nil {
		t.Error("e should restart the checkup form")
	}
}

func TestApplyAdvisorProfile(t *testing.T) {
	a := newTestApp(t)
	a.adv.vals = &advisorValues{
		income:     "30000",
		age:        "28",
		occupation: "salaried",
		risk:       string(model.RiskModerate),
	}

	a.applyAdvisorProfile()

	if !a.adv.completed {
		t.Fatal("applyAdvisorProfile should mark the checkup complete")
	}
	if a.adv.plan.Income != 30000 {
		t.Errorf("plan income = %v, want 30000", a.adv.plan.Income)
	}
	if len(a.adv.options) == 0 {
		t.Fatal("no investment suggestions for moderate risk")
	}
	for _, opt := range a.adv.options {
		if opt.RiskLevel != model.RiskModerate {
			t.Errorf("%s has risk %s, want moderate only", opt.Name, opt.RiskLevel)
		}
	}
	if len(a.adv.schemes) == 0 {
		t.Error("a 28 year old salaried profile should match at least one scheme")
	}
}

func TestApplyAdvisorProfileBadIncome(t *testing.T) {
	a := newTestApp(t)
	a.adv.vals = &advisorValues{income: "not a number"}

	a.applyAdvisorProfile()

	if a.adv.completed {
		t.Error("an unparseable income should not complete the checkup")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	for _, key := range []string{"c", "s", "i", "u", "a"} {
		a := pressKey(t, newTestApp(t), key)
		view := a.View()
		if view == "" {
			t.Fatalf("tab %q rendered an empty view", key)
		}
		if got := lipgloss.Height(view); got != 40 {
			t.Errorf("tab %q view height = %d, want 40", key, got)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := updateApp(t, NewApp(content.Default()), tea.WindowSizeMsg{Width: 60, Height: 20})
	view := a.View()
	if want := "needs at least 80 columns"; !strings.Contains(view, want) {
		t.Errorf("narrow view missing %q", want)
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "short line", 20, []string{"short line"}},
		{"wraps", "a bb ccc", 5, []string{"a bb", "ccc"}},
		{"empty", "", 10, []string{""}},
		{"paragraphs", "hello\n\nworld", 10, []string{"hello", "", "world"}},
		{"long word kept whole", "abcdefghij", 4, []string{"abcdefghij"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapText(tt.in, tt.width)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestListWindow(t *testing.T) {
	tests := []struct {
		name            string
		cursor, visible int
		total           int
		wantStart       int
		wantEnd         int
	}{
		{"all fit", 3, 10, 5, 0, 5},
		{"centered", 10, 6, 20, 7, 13},
		{"clamped top", 1, 6, 20, 0, 6},
		{"clamped bottom", 19, 6, 20, 14, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := listWindow(tt.cursor, tt.visible, tt.total)
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("listWindow(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.cursor, tt.visible, tt.total, start, end, tt.wantStart, tt.wantEnd)
			}
			if tt.cursor < start || tt.cursor >= end {
				t.Errorf("cursor %d falls outside window (%d, %d)", tt.cursor, start, end)
			}
		})
	}
}

func TestScrollBody(t *testing.T) {
	body := "a\nb\nc"

	if got := scrollBody(body, 0); got != body {
		t.Errorf("offset 0 changed the body: %q", got)
	}
	if got := scrollBody(body, 1); got != "b\nc" {
		t.Errorf("offset 1 = %q, want %q", got, "b\nc")
	}
	if got := scrollBody(body, 10); got != "c" {
		t.Errorf("over-scroll = %q, want the last line", got)
	}
}

func TestTruncStr(t *testing.T) {
	if got := truncStr("hello", 10); got != "hello" {
		t.Errorf("truncStr kept = %q", got)
	}
	if got := truncStr("hello world", 8); got != "hello w…" {
		t.Errorf("truncStr(8) = %q, want %q", got, "hello w…")
	}
	if got := truncStr("hello", 0); got != "" {
		t.Errorf("truncStr(0) = %q, want empty", got)
	}
}
