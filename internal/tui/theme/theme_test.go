package theme

import "testing"

func TestByName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"flexoki-dark", "flexoki-dark"},
		{"catppuccin-mocha", "catppuccin-mocha"},
		{"gruvbox-dark", "gruvbox-dark"},
		{"Tokyo-Night", "tokyo-night"},
		{"TERMINAL", "terminal"},
		{"solarized", "flexoki-dark"},
		{"", "flexoki-dark"},
	}
	for _, tt := range tests {
		if got := ByName(tt.in).Name; got != tt.want {
			t.Errorf("ByName(%q).Name = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNamesCoverAll(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names() returned %d entries, want %d", len(names), len(All))
	}
	for i, th := range All {
		if names[i] != th.Name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], th.Name)
		}
	}
}

func TestSetActiveUnknownFallsBack(t *testing.T) {
	prev := Active
	defer func() { Active = prev }()

	SetActive("no-such-theme")
	if Active.Name != FlexokiDark.Name {
		t.Errorf("Active.Name = %q, want the default %q", Active.Name, FlexokiDark.Name)
	}
}
