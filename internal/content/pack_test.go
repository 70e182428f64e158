package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aumai/dhansetu/internal/model"
)

func writePack(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return path
}

func TestLoadAppendsPackEntries(t *testing.T) {
	path := writePack(t, `
[[concepts]]
topic = "savings"
title = "Post Office Monthly Income Scheme"
explanation = "Fixed monthly payout scheme offered through post offices."
examples = ["MIS at 7.4% payout"]
level = "intermediate"
key_terms = ["monthly payout"]

[[schemes]]
name = "State Widow Pension"
description = "Monthly pension for widows below the poverty line."
eligibility = "Widows aged 18-79 with BPL card"
benefits = "Rs 1,000 per month via DBT"
how_to_apply = "Apply at the block development office"
ministry = "State Government"
min_age = 18
max_age = 79
target_group = "all"

[[investments]]
name = "Corporate Bond Fund"
risk_level = "moderate"
expected_return_pct = "7-9%"
lock_in_years = 0.0
tax_benefit = false
min_investment = 1000.0
description = "Invests in high-rated corporate debt"

[[upi_guides]]
slug = "autopay"
topic = "UPI AutoPay Mandates"
steps = ["1. Open your UPI app", "2. Approve the mandate request"]
tips = ["Review active mandates monthly"]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if got := len(s.Concepts()); got != 17 {
		t.Errorf("concepts after pack = %d, want 17", got)
	}
	if got := len(s.Schemes()); got != 11 {
		t.Errorf("schemes after pack = %d, want 11", got)
	}
	if got := len(s.Investments()); got != 10 {
		t.Errorf("investments after pack = %d, want 10", got)
	}

	topics := s.UPITopics()
	if len(topics) != 5 || topics[4] != "autopay" {
		t.Errorf("UPITopics() = %v, want builtin order plus \"autopay\"", topics)
	}
	if _, ok := s.UPIGuide("autopay"); !ok {
		t.Error("UPIGuide(\"autopay\") returned !ok after pack load")
	}

	concepts := s.Concepts()
	last := concepts[len(concepts)-1]
	if last.Title != "Post Office Monthly Income Scheme" {
		t.Errorf("pack concept appended out of order, last title = %q", last.Title)
	}
	if last.Topic != model.TopicSavings || last.Level != model.LevelIntermediate {
		t.Errorf("pack concept enums = (%q, %q), want (savings, intermediate)", last.Topic, last.Level)
	}
}

func TestLoadPackGuideOverridesBuiltinSlug(t *testing.T) {
	path := writePack(t, `
[[upi_guides]]
slug = "limits"
topic = "Revised UPI Limits"
steps = ["1. Check the revised per-transaction cap"]
`)

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	entry, ok := s.UPIGuide("limits")
	if !ok {
		t.Fatal("UPIGuide(\"limits\") returned !ok")
	}
	if entry.Topic != "Revised UPI Limits" {
		t.Errorf("overridden guide topic = %q, want %q", entry.Topic, "Revised UPI Limits")
	}
	if got := len(s.UPITopics()); got != 4 {
		t.Errorf("overriding a builtin slug changed topic count to %d, want 4", got)
	}
}

func TestLoadRejectsBadPacks(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name: "unknown topic",
			body: "[[concepts]]\ntopic = \"crypto\"\ntitle = \"Bitcoin\"\nexplanation = \"x\"\nlevel = \"beginner\"\n",
			wantErr: "unknown topic",
		},
		{
			name: "unknown level",
			body: "[[concepts]]\ntopic = \"savings\"\ntitle = \"X\"\nexplanation = \"x\"\nlevel = \"expert\"\n",
			wantErr: "unknown level",
		},
		{
			name: "missing concept title",
			body: "[[concepts]]\ntopic = \"savings\"\nexplanation = \"x\"\nlevel = \"beginner\"\n",
			wantErr: "missing title",
		},
		{
			name: "scheme ages inverted",
			body: "[[schemes]]\nname = \"X\"\ndescription = \"d\"\neligibility = \"e\"\nbenefits = \"b\"\nhow_to_apply = \"h\"\nmin_age = 50\nmax_age = 18\n",
			wantErr: "exceeds max_age",
		},
		{
			name: "scheme missing benefits",
			body: "[[schemes]]\nname = \"X\"\ndescription = \"d\"\neligibility = \"e\"\nhow_to_apply = \"h\"\n",
			wantErr: "missing benefits",
		},
		{
			name: "bad risk level",
			body: "[[investments]]\nname = \"X\"\nrisk_level = \"medium\"\nexpected_return_pct = \"7%\"\nlock_in_years = 0.0\ntax_benefit = false\nmin_investment = 100.0\ndescription = \"d\"\n",
			wantErr: "unknown risk level",
		},
		{
			name: "negative lock-in",
			body: "[[investments]]\nname = \"X\"\nrisk_level = \"low\"\nexpected_return_pct = \"7%\"\nlock_in_years = -1.0\ntax_benefit = false\nmin_investment = 100.0\ndescription = \"d\"\n",
			wantErr: "negative lock_in_years",
		},
		{
			name: "guide without steps",
			body: "[[upi_guides]]\nslug = \"empty\"\ntopic = \"Empty\"\n",
			wantErr: "no steps",
		},
		{
			name: "guide without slug",
			body: "[[upi_guides]]\ntopic = \"No Slug\"\nsteps = [\"1. x\"]\n",
			wantErr: "missing slug",
		},
		{
			name:    "not toml",
			body:    "{\"concepts\": []}",
			wantErr: "parsing content pack",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writePack(t, tt.body))
			if err == nil {
				t.Fatal("Load accepted an invalid pack")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("Load succeeded for a missing file")
	}
	if !strings.Contains(err.Error(), "reading content pack") {
		t.Errorf("error = %q, want a reading content pack error", err)
	}
}
