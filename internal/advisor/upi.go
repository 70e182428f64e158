package advisor

import (
	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

// UPIGuide answers step-by-step UPI guidance lookups.
type UPIGuide struct {
	store *content.Store
}

// NewUPIGuide returns a UPIGuide reading from store.
func NewUPIGuide(store *content.Store) *UPIGuide {
	return &UPIGuide{store: store}
}

// Entry returns the guide for a topic slug.
func (g *UPIGuide) Entry(topic string) (model.UPIGuideEntry, bool) {
	return g.store.UPIGuide(topic)
}

// Topics returns the available guide slugs in listing order.
func (g *UPIGuide) Topics() []string {
	return g.store.UPITopics()
}

// All returns the full slug-to-guide map.
func (g *UPIGuide) All() map[string]model.UPIGuideEntry {
	return g.store.Guides()
}
