package service

import (
	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// Aggregate reduces a period trace to its summary figures. Pure reduction:
// TotalInterestPaid is exactly the sum of InterestPortion over all records,
// and PeriodsToPayoff is the highest period index present.
func Aggregate(records []domain.PeriodRecord, monthlyBudget decimal.Decimal) domain.SimulationResult {
	totalInterest := decimal.Zero
	periods := 0
	for _, r := range records {
		totalInterest = totalInterest.Add(r.InterestPortion)
		if r.PeriodIndex > periods {
			periods = r.PeriodIndex
		}
	}
	return domain.SimulationResult{
		Records:           records,
		PeriodsToPayoff:   periods,
		TotalInterestPaid: totalInterest,
		MonthlyPayment:    monthlyBudget,
	}
}
