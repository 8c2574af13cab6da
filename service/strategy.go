package service

import (
	"fmt"
	"sort"

	"debt-planner/domain"
)

// ResolveOrder returns the ids of the active debts in surplus-priority
// order. It is re-invoked every period: a debt that reaches zero drops out,
// and the reordering of the remainder is what produces the rollover effect
// of the snowball and avalanche strategies.
func ResolveOrder(active []domain.Debt, strategy domain.Strategy, customOrder []string) ([]string, error) {
	switch strategy {
	case domain.Avalanche, domain.Snowball:
		return sortedOrder(active, strategy), nil
	case domain.Custom:
		return customOrderFor(active, customOrder)
	default:
		return nil, fmt.Errorf("%w: unknown strategy %q", ErrInvalidConfiguration, strategy)
	}
}

func sortedOrder(active []domain.Debt, strategy domain.Strategy) []string {
	cp := make([]domain.Debt, len(active))
	copy(cp, active)

	switch strategy {
	case domain.Snowball:
		// Smallest balance first; ties broken by APR descending, then id.
		sort.Slice(cp, func(i, j int) bool {
			if !cp[i].Balance.Equal(cp[j].Balance) {
				return cp[i].Balance.LessThan(cp[j].Balance)
			}
			if !cp[i].APR.Equal(cp[j].APR) {
				return cp[i].APR.GreaterThan(cp[j].APR)
			}
			return cp[i].ID < cp[j].ID
		})
	default: // Avalanche
		// Highest APR first; ties broken by balance descending, then id.
		sort.Slice(cp, func(i, j int) bool {
			if !cp[i].APR.Equal(cp[j].APR) {
				return cp[i].APR.GreaterThan(cp[j].APR)
			}
			if !cp[i].Balance.Equal(cp[j].Balance) {
				return cp[i].Balance.GreaterThan(cp[j].Balance)
			}
			return cp[i].ID < cp[j].ID
		})
	}

	ids := make([]string, len(cp))
	for i, d := range cp {
		ids[i] = d.ID
	}
	return ids
}

// customOrderFor filters the caller-specified order down to the debts still
// active, preserving relative order. Every active debt must appear.
func customOrderFor(active []domain.Debt, customOrder []string) ([]string, error) {
	activeIDs := make(map[string]bool, len(active))
	for _, d := range active {
		activeIDs[d.ID] = true
	}

	order := make([]string, 0, len(active))
	for _, id := range customOrder {
		if activeIDs[id] {
			order = append(order, id)
			delete(activeIDs, id)
		}
	}

	for id := range activeIDs {
		return nil, fmt.Errorf("%w: custom order is missing active debt %q", ErrInvalidConfiguration, id)
	}
	return order, nil
}
