package advisor

import (
	"math"
	"testing"

	"github.com/aumai/dhansetu/internal/model"
)

func TestPlanBandSplits(t *testing.T) {
	tests := []struct {
		name       string
		income     float64
		needsPct   float64
		wantsPct   float64
		savingsPct float64
		months     int
	}{
		{"very low", 12000, 0.65, 0.15, 0.20, 3},
		{"just under first ceiling", 14999.99, 0.65, 0.15, 0.20, 3},
		{"first ceiling moves band", 15000, 0.55, 0.20, 0.25, 3},
		{"low", 24999, 0.55, 0.20, 0.25, 3},
		{"cutoff moves emergency months", 25000, 0.50, 0.25, 0.25, 6},
		{"middle", 35000, 0.50, 0.25, 0.25, 6},
		{"upper middle", 50000, 0.45, 0.25, 0.30, 6},
		{"just under top ceiling", 99999.99, 0.45, 0.25, 0.30, 6},
		{"top band", 100000, 0.40, 0.25, 0.35, 6},
		{"far above all ceilings", 1750000, 0.40, 0.25, 0.35, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := Plan(tt.income)
			if err != nil {
				t.Fatalf("Plan(%v) returned error: %v", tt.income, err)
			}

			checkShare(t, plan, model.CategoryNeeds, tt.needsPct)
			checkShare(t, plan, model.CategoryWants, tt.wantsPct)
			checkShare(t, plan, model.CategorySavings, tt.savingsPct)

			if plan.EmergencyFundMonths != tt.months {
				t.Errorf("EmergencyFundMonths = %d, want %d", plan.EmergencyFundMonths, tt.months)
			}
			if got := plan.Allocations[string(model.CategorySavings)]; plan.SavingsTarget != got {
				t.Errorf("SavingsTarget = %v, want the savings allocation %v", plan.SavingsTarget, got)
			}
			if len(plan.Recommendations) != 3 {
				t.Errorf("got %d recommendations, want 3", len(plan.Recommendations))
			}
		})
	}
}

func checkShare(t *testing.T, plan model.BudgetPlan, cat model.BudgetCategory, want float64) {
	t.Helper()
	got := plan.Allocations[string(cat)] / plan.Income
	if math.Abs(got-want) > 0.01 {
		t.Errorf("%s share = %.4f of income, want %.2f", cat, got, want)
	}
}

func TestPlanAllocationsSumToIncome(t *testing.T) {
	incomes := []float64{0.01, 1, 33.33, 777.77, 9999.99, 12000, 14999.99,
		15000, 24999.99, 25000, 49999.49, 50000, 99999.99, 100000, 123456.78, 98765432.10}

	for _, income := range incomes {
		plan, err := Plan(income)
		if err != nil {
			t.Fatalf("Plan(%v) returned error: %v", income, err)
		}
		var sum float64
		for _, amount := range plan.Allocations {
			if amount < 0 {
				t.Errorf("Plan(%v) produced negative allocation %v", income, amount)
			}
			sum += amount
		}
		if math.Abs(sum-income) > 0.01 {
			t.Errorf("Plan(%v) allocations sum to %v, off by more than 0.01", income, sum)
		}
		if len(plan.Allocations) != 3 {
			t.Errorf("Plan(%v) produced %d allocations, want needs/wants/savings", income, len(plan.Allocations))
		}
	}
}

func TestPlanEmergencyFundCutoff(t *testing.T) {
	below, err := Plan(24999.99)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if below.EmergencyFundMonths != 3 {
		t.Errorf("months below cutoff = %d, want 3", below.EmergencyFundMonths)
	}

	at, err := Plan(25000)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if at.EmergencyFundMonths != 6 {
		t.Errorf("months at cutoff = %d, want 6", at.EmergencyFundMonths)
	}
}

func TestPlanRejectsInvalidIncome(t *testing.T) {
	for _, income := range []float64{0, -1, -50000, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := Plan(income); err == nil {
			t.Errorf("Plan(%v) succeeded, want validation error", income)
		}
	}
}

func TestPlanBandAdvice(t *testing.T) {
	low, err := Plan(10000)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if low.Recommendations[1] != "Open a Jan Dhan account if you don't have a bank account." {
		t.Errorf("low-band advice[1] = %q", low.Recommendations[1])
	}

	top, err := Plan(200000)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if top.Recommendations[1] != "Consider hiring a SEBI-registered financial advisor." {
		t.Errorf("top-band advice[1] = %q", top.Recommendations[1])
	}
}
