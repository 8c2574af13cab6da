package domain

import "github.com/shopspring/decimal"

// Debt is one outstanding obligation. It is an immutable snapshot: the
// simulator works on its own copies and never rewrites a prior period.
type Debt struct {
	ID             string          `json:"id"`
	Balance        decimal.Decimal `json:"balance"`
	APR            decimal.Decimal `json:"apr"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}

// Strategy selects which active debt receives surplus payment first.
type Strategy string

const (
	Avalanche Strategy = "avalanche" // highest APR first
	Snowball  Strategy = "snowball"  // smallest balance first
	Custom    Strategy = "custom"    // caller-specified order
)

// SimulationConfig is a single plan request.
type SimulationConfig struct {
	MonthlyBudget decimal.Decimal `json:"monthly_budget"`
	Strategy      Strategy        `json:"strategy"`
	// CustomOrder is required when Strategy is Custom: a permutation of all
	// active debt ids, highest priority first.
	CustomOrder []string `json:"custom_order,omitempty"`
}

// CloneDebts returns an independent copy of the ledger so two simulation
// runs can share one input slice.
func CloneDebts(debts []Debt) []Debt {
	cp := make([]Debt, len(debts))
	copy(cp, debts)
	return cp
}
