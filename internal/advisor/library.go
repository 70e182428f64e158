// Package advisor implements the read-only query components over the
// content tables: concept lookup, budget planning, scheme eligibility,
// investment comparison, and UPI guidance. Every operation is a pure
// function over the store snapshot; nothing here mutates.
package advisor

import (
	"strings"

	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

// Library answers concept queries.
type Library struct {
	store *content.Store
}

// NewLibrary returns a Library reading from store.
func NewLibrary(store *content.Store) *Library {
	return &Library{store: store}
}

// ByTopic returns every concept under one topic, in table order.
func (l *Library) ByTopic(topic model.Topic) []model.Concept {
	concepts := l.store.Concepts()
	out := make([]model.Concept, 0, len(concepts))
	for _, c := range concepts {
		if c.Topic == topic {
			out = append(out, c)
		}
	}
	return out
}

// ByLevel returns every concept at one literacy level, in table order.
func (l *Library) ByLevel(level model.Level) []model.Concept {
	concepts := l.store.Concepts()
	out := make([]model.Concept, 0, len(concepts))
	for _, c := range concepts {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// ByTopicAndLevel returns concepts matching both filters.
func (l *Library) ByTopicAndLevel(topic model.Topic, level model.Level) []model.Concept {
	concepts := l.store.Concepts()
	out := make([]model.Concept, 0, len(concepts))
	for _, c := range concepts {
		if c.Topic == topic && c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// Search returns concepts whose title or explanation contains the query,
// case-insensitively. An empty query matches everything.
func (l *Library) Search(query string) []model.Concept {
	q := strings.ToLower(query)
	concepts := l.store.Concepts()
	out := make([]model.Concept, 0, len(concepts))
	for _, c := range concepts {
		if strings.Contains(strings.ToLower(c.Title), q) || strings.Contains(strings.ToLower(c.Explanation), q) {
			out = append(out, c)
		}
	}
	return out
}

// All returns the full concept table.
func (l *Library) All() []model.Concept {
	return l.store.Concepts()
}
