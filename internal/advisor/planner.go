package advisor

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/aumai/dhansetu/internal/model"
)

// incomeBand fixes the needs/wants/savings split and the stock advice for
// one income range. Percentages are whole-number hundredths so the decimal
// arithmetic stays exact.
type incomeBand struct {
	// Ceiling is the exclusive upper bound in rupees; 0 means unbounded.
	Ceiling         float64
	NeedsPct        int64
	WantsPct        int64
	SavingsPct      int64
	Recommendations []string
}

// incomeBands is ordered low to high; the unbounded band must come last.
var incomeBands = []incomeBand{
	{
		Ceiling: 15000, NeedsPct: 65, WantsPct: 15, SavingsPct: 20,
		Recommendations: []string{
			"At this income, prioritize essential needs and build a small emergency buffer.",
			"Open a Jan Dhan account if you don't have a bank account.",
			"Enroll in PM Suraksha Bima (Rs 20/year) for accident cover.",
		},
	},
	{
		Ceiling: 25000, NeedsPct: 55, WantsPct: 20, SavingsPct: 25,
		Recommendations: []string{
			"Start a small RD of Rs 500-1000/month to build savings habit.",
			"Get health insurance (at least Rs 3L family floater).",
			"Consider Atal Pension Yojana for retirement security.",
		},
	},
	{
		Ceiling: 50000, NeedsPct: 50, WantsPct: 25, SavingsPct: 25,
		Recommendations: []string{
			"Start a SIP of Rs 2000-5000/month in an index fund.",
			"Build emergency fund of 3-6 months expenses in liquid fund or FD.",
			"Maximize Section 80C deduction with PPF + ELSS.",
		},
	},
	{
		Ceiling: 100000, NeedsPct: 45, WantsPct: 25, SavingsPct: 30,
		Recommendations: []string{
			"Increase SIP to 20-30% of income across equity and debt funds.",
			"Consider NPS for additional Rs 50K tax deduction under 80CCD(1B).",
			"Get term life insurance of Rs 1 Crore if you have dependents.",
		},
	},
	{
		Ceiling: 0, NeedsPct: 40, WantsPct: 25, SavingsPct: 35,
		Recommendations: []string{
			"Diversify investments: equity mutual funds, NPS, PPF, gold bonds.",
			"Consider hiring a SEBI-registered financial advisor.",
			"Review and optimize tax strategy between old and new regime.",
		},
	},
}

// emergencyFundCutoff is the income below which three months of expenses
// is the target instead of six.
const emergencyFundCutoff = 25000

// Plan builds a monthly budget for the given income. The split tightens
// toward needs at low incomes and toward savings at high ones. Allocations
// are rounded to paise, so the three amounts sum to the income within one
// paisa for any two-decimal input.
func Plan(monthlyIncome float64) (model.BudgetPlan, error) {
	if math.IsNaN(monthlyIncome) || math.IsInf(monthlyIncome, 0) {
		return model.BudgetPlan{}, fmt.Errorf("income must be a finite amount")
	}
	if monthlyIncome <= 0 {
		return model.BudgetPlan{}, fmt.Errorf("income must be positive, got %.2f", monthlyIncome)
	}

	band := incomeBands[len(incomeBands)-1]
	for _, b := range incomeBands {
		if b.Ceiling > 0 && monthlyIncome < b.Ceiling {
			band = b
			break
		}
	}

	income := decimal.NewFromFloat(monthlyIncome)
	needs := income.Mul(decimal.New(band.NeedsPct, -2)).Round(2)
	wants := income.Mul(decimal.New(band.WantsPct, -2)).Round(2)
	savings := income.Mul(decimal.New(band.SavingsPct, -2)).Round(2)

	months := 6
	if monthlyIncome < emergencyFundCutoff {
		months = 3
	}

	return model.BudgetPlan{
		Income: monthlyIncome,
		Allocations: map[string]float64{
			string(model.CategoryNeeds):   needs.InexactFloat64(),
			string(model.CategoryWants):   wants.InexactFloat64(),
			string(model.CategorySavings): savings.InexactFloat64(),
		},
		Recommendations:     append([]string(nil), band.Recommendations...),
		SavingsTarget:       savings.InexactFloat64(),
		EmergencyFundMonths: months,
	}, nil
}
