package advisor

import (
	"testing"

	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

func schemeNames(schemes []model.Scheme) map[string]bool {
	names := make(map[string]bool, len(schemes))
	for _, s := range schemes {
		names[s.Name] = true
	}
	return names
}

func TestFindEligibleAgeBounds(t *testing.T) {
	m := NewMatcher(content.Default())

	got := schemeNames(m.FindEligible(intp(45), nil, ""))
	if got["Atal Pension Yojana (APY)"] {
		t.Error("age 45 matched APY, which caps at 40")
	}
	if !got["Pradhan Mantri Jan Dhan Yojana (PMJDY)"] {
		t.Error("age 45 should match PMJDY, which has no age bound")
	}
	if !got["PM Jeevan Jyoti Bima Yojana (PMJJBY)"] {
		t.Error("age 45 should match PMJJBY (18-50)")
	}
	if got["Senior Citizens Saving Scheme (SCSS)"] {
		t.Error("age 45 matched SCSS, which starts at 60")
	}
}

func TestFindEligibleGirlChildCutoff(t *testing.T) {
	m := NewMatcher(content.Default())

	if got := schemeNames(m.FindEligible(intp(5), nil, "")); !got["Sukanya Samriddhi Yojana (SSY)"] {
		t.Error("age 5 should match SSY")
	}
	if got := schemeNames(m.FindEligible(intp(10), nil, "")); got["Sukanya Samriddhi Yojana (SSY)"] {
		t.Error("age 10 matched SSY, which requires under 10")
	}
	if got := schemeNames(m.FindEligible(nil, nil, "")); !got["Sukanya Samriddhi Yojana (SSY)"] {
		t.Error("unknown age should not exclude SSY")
	}
}

func TestFindEligibleOccupationKeywords(t *testing.T) {
	m := NewMatcher(content.Default())

	farmer := schemeNames(m.FindEligible(nil, nil, "farmer"))
	if !farmer["PM Kisan Samman Nidhi (PM-KISAN)"] {
		t.Error("occupation farmer should match PM-KISAN")
	}
	if farmer["Stand Up India"] {
		t.Error("occupation farmer matched Stand Up India")
	}

	salaried := schemeNames(m.FindEligible(nil, nil, "salaried"))
	if salaried["PM Kisan Samman Nidhi (PM-KISAN)"] {
		t.Error("occupation salaried matched PM-KISAN")
	}

	agri := schemeNames(m.FindEligible(nil, nil, "Agriculture labourer"))
	if !agri["PM Kisan Samman Nidhi (PM-KISAN)"] {
		t.Error("occupation with agri should match PM-KISAN")
	}

	women := schemeNames(m.FindEligible(nil, nil, "women entrepreneur"))
	if !women["Stand Up India"] {
		t.Error("occupation women entrepreneur should match Stand Up India")
	}
}

// The sc_st_women keyword match is a substring check, so occupations that
// merely contain "sc" or "st" slip through. Locked in here so a future
// tightening shows up as a deliberate behavior change.
func TestFindEligibleKeywordFalsePositives(t *testing.T) {
	m := NewMatcher(content.Default())

	if got := schemeNames(m.FindEligible(nil, nil, "student")); !got["Stand Up India"] {
		t.Error("occupation student no longer matches Stand Up India")
	}
	if got := schemeNames(m.FindEligible(nil, nil, "scientist")); !got["Stand Up India"] {
		t.Error("occupation scientist no longer matches Stand Up India")
	}
	if got := schemeNames(m.FindEligible(nil, nil, "plumber")); got["Stand Up India"] {
		t.Error("occupation plumber matched Stand Up India")
	}
}

func TestFindEligibleIncomeHasNoFilter(t *testing.T) {
	m := NewMatcher(content.Default())

	without := m.FindEligible(intp(30), nil, "salaried")
	with := m.FindEligible(intp(30), floatp(5000000), "salaried")
	if len(with) != len(without) {
		t.Fatalf("income changed eligibility: %d schemes with income, %d without", len(with), len(without))
	}
	for i := range without {
		if with[i].Name != without[i].Name {
			t.Errorf("scheme %d differs: %q vs %q", i, with[i].Name, without[i].Name)
		}
	}
}

func TestFindEligibleEmptyProfileMatchesAll(t *testing.T) {
	m := NewMatcher(content.Default())
	got := m.FindEligible(nil, nil, "")
	if want := len(m.All()); len(got) != want {
		t.Errorf("empty profile matched %d schemes, want all %d", len(got), want)
	}
}

func TestFindEligiblePreservesTableOrder(t *testing.T) {
	m := NewMatcher(content.Default())
	all := m.All()
	got := m.FindEligible(intp(45), nil, "")

	idx := 0
	for _, s := range all {
		if idx < len(got) && got[idx].Name == s.Name {
			idx++
		}
	}
	if idx != len(got) {
		t.Error("eligible schemes are not in table order")
	}
}

func TestFindPartialName(t *testing.T) {
	m := NewMatcher(content.Default())

	scheme, ok := m.Find("jan dhan")
	if !ok {
		t.Fatal("Find(\"jan dhan\") returned !ok")
	}
	if scheme.Name != "Pradhan Mantri Jan Dhan Yojana (PMJDY)" {
		t.Errorf("Find(\"jan dhan\") = %q", scheme.Name)
	}

	scheme, ok = m.Find("JYOTI")
	if !ok || scheme.Name != "PM Jeevan Jyoti Bima Yojana (PMJJBY)" {
		t.Errorf("Find(\"JYOTI\") = %q, ok=%v", scheme.Name, ok)
	}

	if _, ok := m.Find("nonexistent scheme"); ok {
		t.Error("Find matched a nonexistent scheme")
	}
}
