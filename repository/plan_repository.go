package repository

import "debt-planner/domain"

// PlanRepository stores completed comparisons. Save returns the assigned
// plan id.
type PlanRepository interface {
	Save(debts []domain.Debt, result domain.ComparisonResult) (string, error)
	Get(id string) (domain.ComparisonResult, bool)
}
