package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// Simulate advances the ledger one monthly period at a time until every
// balance reaches zero or MaxSimulationPeriods is hit, returning one
// PeriodRecord per active debt per period. The input slice is never mutated.
//
// Each period: interest accrues on the outstanding balance (simple monthly
// compounding, rounded to cents), minimum payments apply to every active
// debt, and the remaining budget cascades through the strategy order. A
// payment smaller than the accrued interest is legal: the balance grows and
// the whole payment reports as interest.
//
// On non-convergence the partial trace is returned together with
// ErrNonConvergence.
func Simulate(debts []domain.Debt, cfg domain.SimulationConfig) ([]domain.PeriodRecord, error) {
	if err := validateRequest(debts, cfg); err != nil {
		return nil, err
	}

	// Working copy: only debts that start with a positive balance take part.
	states := make([]domain.Debt, 0, len(debts))
	for _, d := range debts {
		if d.Balance.IsPositive() {
			states = append(states, d)
		}
	}
	if len(states) == 0 {
		// Degenerate input: nothing owed, zero-period result.
		return nil, nil
	}

	var records []domain.PeriodRecord

	for period := 1; period <= MaxSimulationPeriods; period++ {
		opening := make([]decimal.Decimal, len(states))
		interest := make([]decimal.Decimal, len(states))
		paid := make([]decimal.Decimal, len(states))
		index := make(map[string]int, len(states))

		// Accrue interest on every outstanding balance before payment.
		for i := range states {
			opening[i] = states[i].Balance
			if !states[i].Balance.IsPositive() {
				continue
			}
			index[states[i].ID] = i
			accrued := states[i].Balance.Mul(states[i].APR).Div(aprToMonthlyRateDivisor).Round(2)
			interest[i] = accrued
			states[i].Balance = states[i].Balance.Add(accrued)
		}

		// Minimum payments, capped so the final payment never overshoots.
		surplus := cfg.MonthlyBudget
		for i := range states {
			if !opening[i].IsPositive() {
				continue
			}
			due := states[i].MinimumPayment
			if due.GreaterThan(states[i].Balance) {
				due = states[i].Balance
			}
			states[i].Balance = states[i].Balance.Sub(due)
			paid[i] = due
			surplus = surplus.Sub(due)
		}

		// Cascade the surplus through the strategy order over the debts
		// still carrying a balance. Order is re-resolved each period.
		if surplus.IsPositive() {
			order, err := ResolveOrder(activeDebts(states), cfg.Strategy, cfg.CustomOrder)
			if err != nil {
				return nil, err
			}
			for _, id := range order {
				if !surplus.IsPositive() {
					break
				}
				i := index[id]
				extra := surplus
				if extra.GreaterThan(states[i].Balance) {
					extra = states[i].Balance
				}
				states[i].Balance = states[i].Balance.Sub(extra)
				paid[i] = paid[i].Add(extra)
				surplus = surplus.Sub(extra)
			}
		}

		// Snap rounding residue to zero and record the period.
		done := true
		for i := range states {
			if !opening[i].IsPositive() {
				continue
			}
			if states[i].Balance.LessThan(balanceTolerance) {
				states[i].Balance = decimal.Zero
			}
			if states[i].Balance.IsPositive() {
				done = false
			}

			interestPortion := interest[i]
			if paid[i].LessThan(interestPortion) {
				interestPortion = paid[i]
			}
			records = append(records, domain.PeriodRecord{
				DebtID:           states[i].ID,
				PeriodIndex:      period,
				OpeningBalance:   opening[i],
				InterestAccrued:  interest[i],
				PaymentApplied:   paid[i],
				PrincipalPortion: paid[i].Sub(interestPortion),
				InterestPortion:  interestPortion,
				ClosingBalance:   states[i].Balance,
			})
		}

		if done {
			return records, nil
		}
	}

	return records, ErrNonConvergence
}

func activeDebts(states []domain.Debt) []domain.Debt {
	active := make([]domain.Debt, 0, len(states))
	for _, d := range states {
		if d.Balance.IsPositive() {
			active = append(active, d)
		}
	}
	return active
}

// validateRequest fails fast before any period is simulated. Range checks
// are deliberately strict: the engine is purely numeric past this point and
// cannot fail at runtime on checked input.
func validateRequest(debts []domain.Debt, cfg domain.SimulationConfig) error {
	if len(debts) > MaxDebtsPerRequest {
		return fmt.Errorf("%w: %d debts exceeds the maximum of %d", ErrInvalidConfiguration, len(debts), MaxDebtsPerRequest)
	}

	seen := make(map[string]bool, len(debts))
	minimumTotal := decimal.Zero
	active := make([]domain.Debt, 0, len(debts))
	for _, d := range debts {
		if d.ID == "" {
			return fmt.Errorf("%w: debt id must not be empty", ErrInvalidConfiguration)
		}
		if seen[d.ID] {
			return fmt.Errorf("%w: duplicate debt id %q", ErrInvalidConfiguration, d.ID)
		}
		seen[d.ID] = true
		if d.Balance.IsNegative() {
			return fmt.Errorf("%w: debt %q has a negative balance", ErrInvalidConfiguration, d.ID)
		}
		if d.APR.IsNegative() || d.APR.GreaterThanOrEqual(maxAPR) {
			return fmt.Errorf("%w: debt %q APR must satisfy 0 <= apr < 100", ErrInvalidConfiguration, d.ID)
		}
		if d.Balance.IsPositive() {
			if !d.MinimumPayment.IsPositive() {
				return fmt.Errorf("%w: debt %q requires a positive minimum payment", ErrInvalidConfiguration, d.ID)
			}
			minimumTotal = minimumTotal.Add(d.MinimumPayment)
			active = append(active, d)
		}
	}

	if cfg.MonthlyBudget.LessThan(minimumTotal) {
		return fmt.Errorf("%w: monthly budget %s does not cover the %s of minimum payments",
			ErrInvalidConfiguration, cfg.MonthlyBudget, minimumTotal)
	}

	switch cfg.Strategy {
	case domain.Avalanche, domain.Snowball:
	case domain.Custom:
		if err := validateCustomOrder(active, cfg.CustomOrder); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, cfg.Strategy)
	}
	return nil
}

// validateCustomOrder requires a permutation of the active debt ids: no
// duplicates, no unknown ids, none missing.
func validateCustomOrder(active []domain.Debt, customOrder []string) error {
	activeIDs := make(map[string]bool, len(active))
	for _, d := range active {
		activeIDs[d.ID] = true
	}

	seen := make(map[string]bool, len(customOrder))
	for _, id := range customOrder {
		if seen[id] {
			return fmt.Errorf("%w: custom order repeats debt id %q", ErrInvalidConfiguration, id)
		}
		seen[id] = true
		if !activeIDs[id] {
			return fmt.Errorf("%w: custom order references unknown debt id %q", ErrInvalidConfiguration, id)
		}
	}
	for _, d := range active {
		if !seen[d.ID] {
			return fmt.Errorf("%w: custom order is missing active debt %q", ErrInvalidConfiguration, d.ID)
		}
	}
	return nil
}
