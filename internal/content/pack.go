package content

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/aumai/dhansetu/internal/model"
)

// packDoc mirrors the content pack file layout. All four arrays are
// optional; entries append to the built-in tables in file order.
type packDoc struct {
	Concepts    []packConcept    `toml:"concepts"`
	Schemes     []packScheme     `toml:"schemes"`
	Investments []packInvestment `toml:"investments"`
	UPIGuides   []packGuide      `toml:"upi_guides"`
}

type packConcept struct {
	Topic       string   `toml:"topic"`
	Title       string   `toml:"title"`
	Explanation string   `toml:"explanation"`
	Examples    []string `toml:"examples"`
	Level       string   `toml:"level"`
	KeyTerms    []string `toml:"key_terms"`
}

type packScheme struct {
	Name        string   `toml:"name"`
	Description string   `toml:"description"`
	Eligibility string   `toml:"eligibility"`
	Benefits    string   `toml:"benefits"`
	HowToApply  string   `toml:"how_to_apply"`
	Ministry    string   `toml:"ministry"`
	MinAge      *int     `toml:"min_age"`
	MaxAge      *int     `toml:"max_age"`
	IncomeLimit *float64 `toml:"income_limit"`
	TargetGroup string   `toml:"target_group"`
}

type packInvestment struct {
	Name              string  `toml:"name"`
	RiskLevel         string  `toml:"risk_level"`
	ExpectedReturnPct string  `toml:"expected_return_pct"`
	LockInYears       float64 `toml:"lock_in_years"`
	TaxBenefit        bool    `toml:"tax_benefit"`
	MinInvestment     float64 `toml:"min_investment"`
	Description       string  `toml:"description"`
}

type packGuide struct {
	Slug     string   `toml:"slug"`
	Topic    string   `toml:"topic"`
	Steps    []string `toml:"steps"`
	Tips     []string `toml:"tips"`
	Warnings []string `toml:"warnings"`
}

// Load returns the built-in tables extended with the entries from the TOML
// content pack at packPath. A pack that fails validation rejects the whole
// load; the caller keeps whatever store it already had.
func Load(packPath string) (*Store, error) {
	data, err := os.ReadFile(packPath)
	if err != nil {
		return nil, fmt.Errorf("reading content pack: %w", err)
	}

	var doc packDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing content pack %s: %w", packPath, err)
	}

	store := Default()
	if err := store.merge(doc); err != nil {
		return nil, fmt.Errorf("content pack %s: %w", packPath, err)
	}
	return store, nil
}

func (s *Store) merge(doc packDoc) error {
	for i, pc := range doc.Concepts {
		c, err := pc.toModel()
		if err != nil {
			return fmt.Errorf("concepts[%d]: %w", i, err)
		}
		s.concepts = append(s.concepts, c)
	}
	for i, ps := range doc.Schemes {
		sch, err := ps.toModel()
		if err != nil {
			return fmt.Errorf("schemes[%d]: %w", i, err)
		}
		s.schemes = append(s.schemes, sch)
	}
	for i, pi := range doc.Investments {
		opt, err := pi.toModel()
		if err != nil {
			return fmt.Errorf("investments[%d]: %w", i, err)
		}
		s.investments = append(s.investments, opt)
	}
	for i, pg := range doc.UPIGuides {
		slug, entry, err := pg.toModel()
		if err != nil {
			return fmt.Errorf("upi_guides[%d]: %w", i, err)
		}
		if _, exists := s.upiGuides[slug]; !exists {
			s.upiTopics = append(s.upiTopics, slug)
		}
		s.upiGuides[slug] = entry
	}
	return nil
}

func (pc packConcept) toModel() (model.Concept, error) {
	if pc.Title == "" {
		return model.Concept{}, fmt.Errorf("missing title")
	}
	if pc.Explanation == "" {
		return model.Concept{}, fmt.Errorf("concept %q: missing explanation", pc.Title)
	}
	topic, err := model.ParseTopic(pc.Topic)
	if err != nil {
		return model.Concept{}, fmt.Errorf("concept %q: %w", pc.Title, err)
	}
	level, err := model.ParseLevel(pc.Level)
	if err != nil {
		return model.Concept{}, fmt.Errorf("concept %q: %w", pc.Title, err)
	}
	return model.Concept{
		Topic:       topic,
		Title:       pc.Title,
		Explanation: pc.Explanation,
		Examples:    pc.Examples,
		Level:       level,
		KeyTerms:    pc.KeyTerms,
	}, nil
}

func (ps packScheme) toModel() (model.Scheme, error) {
	if ps.Name == "" {
		return model.Scheme{}, fmt.Errorf("missing name")
	}
	if ps.Description == "" {
		return model.Scheme{}, fmt.Errorf("scheme %q: missing description", ps.Name)
	}
	if ps.Eligibility == "" {
		return model.Scheme{}, fmt.Errorf("scheme %q: missing eligibility", ps.Name)
	}
	if ps.Benefits == "" {
		return model.Scheme{}, fmt.Errorf("scheme %q: missing benefits", ps.Name)
	}
	if ps.HowToApply == "" {
		return model.Scheme{}, fmt.Errorf("scheme %q: missing how_to_apply", ps.Name)
	}
	if ps.MinAge != nil && *ps.MinAge < 0 {
		return model.Scheme{}, fmt.Errorf("scheme %q: negative min_age", ps.Name)
	}
	if ps.MaxAge != nil && *ps.MaxAge < 0 {
		return model.Scheme{}, fmt.Errorf("scheme %q: negative max_age", ps.Name)
	}
	if ps.MinAge != nil && ps.MaxAge != nil && *ps.MinAge > *ps.MaxAge {
		return model.Scheme{}, fmt.Errorf("scheme %q: min_age %d exceeds max_age %d", ps.Name, *ps.MinAge, *ps.MaxAge)
	}
	if ps.IncomeLimit != nil && *ps.IncomeLimit <= 0 {
		return model.Scheme{}, fmt.Errorf("scheme %q: income_limit must be positive", ps.Name)
	}
	return model.Scheme{
		Name:        ps.Name,
		Description: ps.Description,
		Eligibility: ps.Eligibility,
		Benefits:    ps.Benefits,
		HowToApply:  ps.HowToApply,
		Ministry:    ps.Ministry,
		MinAge:      ps.MinAge,
		MaxAge:      ps.MaxAge,
		IncomeLimit: ps.IncomeLimit,
		TargetGroup: ps.TargetGroup,
	}, nil
}

func (pi packInvestment) toModel() (model.InvestmentOption, error) {
	if pi.Name == "" {
		return model.InvestmentOption{}, fmt.Errorf("missing name")
	}
	risk, err := model.ParseRisk(pi.RiskLevel)
	if err != nil {
		return model.InvestmentOption{}, fmt.Errorf("investment %q: %w", pi.Name, err)
	}
	if pi.ExpectedReturnPct == "" {
		return model.InvestmentOption{}, fmt.Errorf("investment %q: missing expected_return_pct", pi.Name)
	}
	if pi.LockInYears < 0 {
		return model.InvestmentOption{}, fmt.Errorf("investment %q: negative lock_in_years", pi.Name)
	}
	if pi.MinInvestment < 0 {
		return model.InvestmentOption{}, fmt.Errorf("investment %q: negative min_investment", pi.Name)
	}
	return model.InvestmentOption{
		Name:              pi.Name,
		RiskLevel:         risk,
		ExpectedReturnPct: pi.ExpectedReturnPct,
		LockInYears:       pi.LockInYears,
		TaxBenefit:        pi.TaxBenefit,
		MinInvestment:     pi.MinInvestment,
		Description:       pi.Description,
	}, nil
}

func (pg packGuide) toModel() (string, model.UPIGuideEntry, error) {
	slug := strings.ToLower(strings.TrimSpace(pg.Slug))
	if slug == "" {
		return "", model.UPIGuideEntry{}, fmt.Errorf("missing slug")
	}
	if pg.Topic == "" {
		return "", model.UPIGuideEntry{}, fmt.Errorf("guide %q: missing topic", slug)
	}
	if len(pg.Steps) == 0 {
		return "", model.UPIGuideEntry{}, fmt.Errorf("guide %q: no steps", slug)
	}
	return slug, model.UPIGuideEntry{
		Topic:    pg.Topic,
		Steps:    pg.Steps,
		Tips:     pg.Tips,
		Warnings: pg.Warnings,
	}, nil
}
