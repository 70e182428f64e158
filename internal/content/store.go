// Package content holds the built-in financial literacy tables and the
// optional TOML content pack loader that extends them.
package content

import (
	"strings"

	"github.com/aumai/dhansetu/internal/model"
)

// Store is an immutable snapshot of the content tables. Build one with
// Default or Load and share it; accessors hand out fresh copies so callers
// cannot mutate the tables underneath each other.
type Store struct {
	concepts    []model.Concept
	schemes     []model.Scheme
	investments []model.InvestmentOption
	upiGuides   map[string]model.UPIGuideEntry
	upiTopics   []string
}

// Default returns a store holding only the built-in tables.
func Default() *Store {
	guides := make(map[string]model.UPIGuideEntry, len(builtinUPIGuides))
	for slug, entry := range builtinUPIGuides {
		guides[slug] = entry
	}
	return &Store{
		concepts:    append([]model.Concept(nil), builtinConcepts...),
		schemes:     append([]model.Scheme(nil), builtinSchemes...),
		investments: append([]model.InvestmentOption(nil), builtinInvestments...),
		upiGuides:   guides,
		upiTopics:   append([]string(nil), upiTopicOrder...),
	}
}

// Concepts returns all concepts in table order.
func (s *Store) Concepts() []model.Concept {
	return append([]model.Concept(nil), s.concepts...)
}

// Schemes returns all government schemes in table order.
func (s *Store) Schemes() []model.Scheme {
	return append([]model.Scheme(nil), s.schemes...)
}

// Investments returns all investment options in table order.
func (s *Store) Investments() []model.InvestmentOption {
	return append([]model.InvestmentOption(nil), s.investments...)
}

// UPIGuide looks up a guide by topic slug, case-insensitively.
func (s *Store) UPIGuide(slug string) (model.UPIGuideEntry, bool) {
	entry, ok := s.upiGuides[strings.ToLower(slug)]
	return entry, ok
}

// UPITopics returns the guide topic slugs in listing order.
func (s *Store) UPITopics() []string {
	return append([]string(nil), s.upiTopics...)
}

// Guides returns a copy of the full slug-to-guide map.
func (s *Store) Guides() map[string]model.UPIGuideEntry {
	out := make(map[string]model.UPIGuideEntry, len(s.upiGuides))
	for slug, entry := range s.upiGuides {
		out[slug] = entry
	}
	return out
}
