package domain

import "github.com/shopspring/decimal"

// PeriodRecord is one simulated billing period's outcome for one debt.
// Paid-off debts drop out of later periods rather than reporting zero rows.
type PeriodRecord struct {
	DebtID           string          `json:"debt_id"`
	PeriodIndex      int             `json:"period_index"`
	OpeningBalance   decimal.Decimal `json:"opening_balance"`
	InterestAccrued  decimal.Decimal `json:"interest_accrued"`
	PaymentApplied   decimal.Decimal `json:"payment_applied"`
	PrincipalPortion decimal.Decimal `json:"principal_portion"`
	InterestPortion  decimal.Decimal `json:"interest_portion"`
	ClosingBalance   decimal.Decimal `json:"closing_balance"`
}

// SimulationResult aggregates a single run.
type SimulationResult struct {
	Records           []PeriodRecord  `json:"records"`
	PeriodsToPayoff   int             `json:"periods_to_payoff"`
	TotalInterestPaid decimal.Decimal `json:"total_interest_paid"`
	MonthlyPayment    decimal.Decimal `json:"monthly_payment"`
	// Converged is false when the safety bound was reached before every
	// balance hit zero; Records then hold the partial trace.
	Converged bool `json:"converged"`
}

// ComparisonResult reports a baseline (minimum-only) plan against an
// optimized plan over the same starting ledger.
type ComparisonResult struct {
	BaselinePlan          SimulationResult `json:"baseline_plan"`
	OptimizedPlan         SimulationResult `json:"optimized_plan"`
	TimePeriodsSaved      int              `json:"time_periods_saved"`
	InterestSaved         decimal.Decimal  `json:"interest_saved"`
	PercentageImprovement decimal.Decimal  `json:"percentage_improvement"`
	Explanation           string           `json:"explanation,omitempty"`
}

// SimulationRequest is the wire shape of a single-run request.
type SimulationRequest struct {
	Debts  []Debt           `json:"debts"`
	Config SimulationConfig `json:"config"`
}

// ComparisonRequest is the wire shape of a two-run comparison. Baseline is
// optional; when nil the service builds the conventional minimum-only plan
// (budget = sum of minimum payments, same strategy as the optimized plan).
type ComparisonRequest struct {
	Debts     []Debt            `json:"debts"`
	Optimized SimulationConfig  `json:"optimized"`
	Baseline  *SimulationConfig `json:"baseline,omitempty"`
}
