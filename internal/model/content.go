package model

// Concept is a single financial literacy concept entry.
type Concept struct {
	Topic       Topic    `json:"topic"`
	Title       string   `json:"title"`
	Explanation string   `json:"explanation"`
	Examples    []string `json:"examples"`
	Level       Level    `json:"level"`
	KeyTerms    []string `json:"key_terms"`
}

// Scheme is an Indian government financial scheme.
// MinAge, MaxAge, and IncomeLimit are nil when the scheme has no such bound;
// they serialize as null to keep the published JSON shape stable.
type Scheme struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Eligibility string   `json:"eligibility"`
	Benefits    string   `json:"benefits"`
	HowToApply  string   `json:"how_to_apply"`
	Ministry    string   `json:"ministry"`
	MinAge      *int     `json:"min_age"`
	MaxAge      *int     `json:"max_age"`
	IncomeLimit *float64 `json:"income_limit"`
	TargetGroup string   `json:"target_group"`
}

// InvestmentOption is one row of the investment comparison table.
// ExpectedReturnPct stays a display string ("6.5-7.5%") because several
// instruments quote a range rather than a single rate.
type InvestmentOption struct {
	Name              string    `json:"name"`
	RiskLevel         RiskLevel `json:"risk_level"`
	ExpectedReturnPct string    `json:"expected_return_pct"`
	LockInYears       float64   `json:"lock_in_years"`
	TaxBenefit        bool      `json:"tax_benefit"`
	MinInvestment     float64   `json:"min_investment"`
	Description       string    `json:"description"`
}

// UPIGuideEntry is a step-by-step UPI walkthrough for one topic.
type UPIGuideEntry struct {
	Topic    string   `json:"topic"`
	Steps    []string `json:"steps"`
	Tips     []string `json:"tips"`
	Warnings []string `json:"warnings"`
}
