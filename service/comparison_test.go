package service

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"debt-planner/domain"
)

func TestCompare_IdenticalConfigsYieldZeroDeltas(t *testing.T) {
	debts := twoDebtLedger()
	cfg := domain.SimulationConfig{MonthlyBudget: dec("150"), Strategy: domain.Avalanche}

	result, err := Compare(debts, cfg, cfg)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TimePeriodsSaved)
	assert.True(t, result.InterestSaved.IsZero(),
		"identical plans saved %s", result.InterestSaved)
	assert.True(t, result.PercentageImprovement.IsZero())
}

func TestCompare_BiggerBudgetNeverLoses(t *testing.T) {
	r := rand.New(rand.NewSource(99))

	for run := 0; run < 15; run++ {
		debts := randomLedger(r, 2+r.Intn(3))
		base := minimumTotal(debts)
		baseline := domain.SimulationConfig{MonthlyBudget: base, Strategy: domain.Avalanche}
		optimized := domain.SimulationConfig{
			MonthlyBudget: base.Add(dec("100")),
			Strategy:      domain.Avalanche,
		}

		result, err := Compare(debts, baseline, optimized)
		require.NoError(t, err)

		assert.False(t, result.InterestSaved.IsNegative(),
			"run %d: higher budget paid more interest (%s)", run, result.InterestSaved)
		assert.GreaterOrEqual(t, result.TimePeriodsSaved, 0)
	}
}

func TestCompare_AvalancheNeverBeatenBySnowball(t *testing.T) {
	r := rand.New(rand.NewSource(2024))

	for run := 0; run < 25; run++ {
		debts := randomLedger(r, 2+r.Intn(4))
		budget := minimumTotal(debts).Add(decimal.NewFromInt(int64(r.Intn(200) + 50)))

		avalanche, err := RunPlan(debts, domain.SimulationConfig{MonthlyBudget: budget, Strategy: domain.Avalanche})
		require.NoError(t, err)
		snowball, err := RunPlan(debts, domain.SimulationConfig{MonthlyBudget: budget, Strategy: domain.Snowball})
		require.NoError(t, err)

		assert.True(t, avalanche.TotalInterestPaid.LessThanOrEqual(snowball.TotalInterestPaid),
			"run %d: avalanche %s > snowball %s", run, avalanche.TotalInterestPaid, snowball.TotalInterestPaid)
	}
}

func TestCompare_ZeroBaselineInterest(t *testing.T) {
	debts := []domain.Debt{
		{ID: "free", Balance: dec("600"), APR: dec("0"), MinimumPayment: dec("50")},
	}
	baseline := domain.SimulationConfig{MonthlyBudget: dec("50"), Strategy: domain.Avalanche}
	optimized := domain.SimulationConfig{MonthlyBudget: dec("100"), Strategy: domain.Avalanche}

	result, err := Compare(debts, baseline, optimized)
	require.NoError(t, err)

	// Percentage improvement is defined as 0 when the baseline paid no
	// interest, not a division error.
	assert.True(t, result.PercentageImprovement.IsZero())
	assert.True(t, result.InterestSaved.IsZero())
	assert.Equal(t, 6, result.TimePeriodsSaved)
}

func TestCompare_InvalidOptimizedConfig(t *testing.T) {
	debts := twoDebtLedger()
	baseline := domain.SimulationConfig{MonthlyBudget: dec("75"), Strategy: domain.Avalanche}
	optimized := domain.SimulationConfig{MonthlyBudget: dec("10"), Strategy: domain.Avalanche}

	_, err := Compare(debts, baseline, optimized)
	assert.ErrorIs(t, err, ErrInvalidConfiguration)
}

func TestMinimumOnlyConfig(t *testing.T) {
	debts := []domain.Debt{
		{ID: "a", Balance: dec("1000"), APR: dec("20"), MinimumPayment: dec("40")},
		{ID: "paid", Balance: dec("0"), APR: dec("10"), MinimumPayment: dec("15")},
		{ID: "b", Balance: dec("500"), APR: dec("10"), MinimumPayment: dec("25")},
	}
	optimized := domain.SimulationConfig{MonthlyBudget: dec("200"), Strategy: domain.Snowball}

	cfg := MinimumOnlyConfig(debts, optimized)

	// Paid-off debts contribute nothing to the baseline budget.
	assert.True(t, cfg.MonthlyBudget.Equal(dec("65")))
	assert.Equal(t, domain.Snowball, cfg.Strategy)
}

type fakePlanRepo struct {
	saved      int
	forceError bool
}

func (r *fakePlanRepo) Save(debts []domain.Debt, result domain.ComparisonResult) (string, error) {
	r.saved++
	if r.forceError {
		return "", errors.New("save error")
	}
	return "plan-1", nil
}

func (r *fakePlanRepo) Get(id string) (domain.ComparisonResult, bool) {
	return domain.ComparisonResult{}, false
}

func TestComparisonService_DefaultBaselineAndSave(t *testing.T) {
	repo := &fakePlanRepo{}
	svc := NewComparisonService(repo, NewAdviceService(zap.NewNop(), false), zap.NewNop())

	result, err := svc.ComparePlans(domain.ComparisonRequest{
		Debts:     twoDebtLedger(),
		Optimized: domain.SimulationConfig{MonthlyBudget: dec("150"), Strategy: domain.Avalanche},
	})
	require.NoError(t, err)

	// Default baseline is the minimum-only plan, so the bigger budget must
	// save both time and interest.
	assert.Greater(t, result.TimePeriodsSaved, 0)
	assert.True(t, result.InterestSaved.IsPositive())
	assert.NotEmpty(t, result.Explanation)
	assert.Equal(t, 1, repo.saved)
}

func TestComparisonService_SaveFailureIsNotFatal(t *testing.T) {
	repo := &fakePlanRepo{forceError: true}
	svc := NewComparisonService(repo, NewAdviceService(zap.NewNop(), false), zap.NewNop())

	_, err := svc.ComparePlans(domain.ComparisonRequest{
		Debts:     twoDebtLedger(),
		Optimized: domain.SimulationConfig{MonthlyBudget: dec("150"), Strategy: domain.Snowball},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.saved)
}
