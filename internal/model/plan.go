package model

// BudgetPlan is a monthly allocation produced by the planner.
// Allocations are keyed by BudgetCategory value and sum to Income
// (within a rounding paisa). SavingsTarget duplicates the savings
// allocation for direct access.
type BudgetPlan struct {
	Income              float64            `json:"income"`
	Allocations         map[string]float64 `json:"allocations"`
	Recommendations     []string           `json:"recommendations"`
	SavingsTarget       float64            `json:"savings_target"`
	EmergencyFundMonths int                `json:"emergency_fund_months"`
}
