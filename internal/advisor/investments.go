package advisor

import (
	"github.com/aumai/dhansetu/internal/content"
	"github.com/aumai/dhansetu/internal/model"
)

// Catalog answers investment comparison queries.
type Catalog struct {
	store *content.Store
}

// NewCatalog returns a Catalog reading from store.
func NewCatalog(store *content.Store) *Catalog {
	return &Catalog{store: store}
}

// CompareAll returns every investment option.
func (c *Catalog) CompareAll() []model.InvestmentOption {
	return c.store.Investments()
}

// ByRisk returns options with exactly the given risk level. An unknown
// level yields an empty list.
func (c *Catalog) ByRisk(level model.RiskLevel) []model.InvestmentOption {
	options := c.store.Investments()
	out := make([]model.InvestmentOption, 0, len(options))
	for _, opt := range options {
		if opt.RiskLevel == level {
			out = append(out, opt)
		}
	}
	return out
}

// TaxSaving returns options carrying a tax benefit.
func (c *Catalog) TaxSaving() []model.InvestmentOption {
	options := c.store.Investments()
	out := make([]model.InvestmentOption, 0, len(options))
	for _, opt := range options {
		if opt.TaxBenefit {
			out = append(out, opt)
		}
	}
	return out
}

// ForBeginner returns the low-risk options.
func (c *Catalog) ForBeginner() []model.InvestmentOption {
	return c.ByRisk(model.RiskLow)
}
