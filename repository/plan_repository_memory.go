package repository

import (
	"sync"

	"github.com/google/uuid"

	"debt-planner/domain"
)

type storedPlan struct {
	debts  []domain.Debt
	result domain.ComparisonResult
}

// PlanRepositoryMemory is an in-memory implementation of PlanRepository.
type PlanRepositoryMemory struct {
	mu    sync.RWMutex
	plans map[string]storedPlan
}

// NewPlanRepositoryMemory creates a new in-memory plan repository.
func NewPlanRepositoryMemory() *PlanRepositoryMemory {
	return &PlanRepositoryMemory{
		plans: make(map[string]storedPlan),
	}
}

// Save stores the comparison under a fresh uuid and returns it.
func (r *PlanRepositoryMemory) Save(debts []domain.Debt, result domain.ComparisonResult) (string, error) {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.plans[id] = storedPlan{
		debts:  domain.CloneDebts(debts),
		result: result,
	}
	return id, nil
}

// Get returns a previously saved comparison.
func (r *PlanRepositoryMemory) Get(id string) (domain.ComparisonResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.plans[id]
	return stored.result, ok
}
