package advisor

import (
	"strings"

	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

// Matcher answers government scheme eligibility queries.
type Matcher struct {
	store *content.Store
}

// NewMatcher returns a Matcher reading from store.
func NewMatcher(store *content.Store) *Matcher {
	return &Matcher{store: store}
}

// FindEligible returns the schemes whose constraints are all satisfied by
// the given profile, in table order. Filters are skip-if-unknown: a nil age
// or empty occupation never excludes a scheme on that axis. income is
// accepted for callers that have it but no scheme filter keys off it yet;
// income_limit on the records is informational.
func (m *Matcher) FindEligible(age *int, income *float64, occupation string) []model.Scheme {
	_ = income

	occ := strings.ToLower(occupation)
	schemes := m.store.Schemes()
	eligible := make([]model.Scheme, 0, len(schemes))

	for _, scheme := range schemes {
		if scheme.MinAge != nil && age != nil && *age < *scheme.MinAge {
			continue
		}
		if scheme.MaxAge != nil && age != nil && *age > *scheme.MaxAge {
			continue
		}

		switch scheme.TargetGroup {
		case "farmers":
			if occ != "" && !strings.Contains(occ, "farm") && !strings.Contains(occ, "agri") {
				continue
			}
		case "girl_child":
			if age != nil && *age >= 10 {
				continue
			}
		case "senior_citizens":
			if age != nil && *age < 55 {
				continue
			}
		case "sc_st_women":
			// Known false-positive risk: the substring check also matches
			// occupations like "student" or "scientist".
			if occ != "" && !strings.Contains(occ, "sc") && !strings.Contains(occ, "st") && !strings.Contains(occ, "women") {
				continue
			}
		}

		eligible = append(eligible, scheme)
	}
	return eligible
}

// Find returns the first scheme whose name contains the query
// case-insensitively, in table order.
func (m *Matcher) Find(name string) (model.Scheme, bool) {
	q := strings.ToLower(name)
	for _, scheme := range m.store.Schemes() {
		if strings.Contains(strings.ToLower(scheme.Name), q) {
			return scheme, true
		}
	}
	return model.Scheme{}, false
}

// All returns the full scheme table.
func (m *Matcher) All() []model.Scheme {
	return m.store.Schemes()
}
