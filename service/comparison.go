package service

import (
	"errors"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"debt-planner/domain"
	"debt-planner/repository"
)

// RunPlan simulates one config and aggregates the trace. Non-convergence is
// not an error here: the result carries the partial trace with
// Converged=false so callers can report it.
func RunPlan(debts []domain.Debt, cfg domain.SimulationConfig) (domain.SimulationResult, error) {
	records, err := Simulate(debts, cfg)
	if err != nil && !errors.Is(err, ErrNonConvergence) {
		return domain.SimulationResult{}, err
	}
	result := Aggregate(records, cfg.MonthlyBudget)
	result.Converged = err == nil
	return result, nil
}

// Compare runs the baseline and optimized plans over the same starting
// ledger and reports the savings deltas. The two runs are independent, so
// they execute concurrently, each on its own copy of the ledger.
func Compare(debts []domain.Debt, baselineCfg, optimizedCfg domain.SimulationConfig) (domain.ComparisonResult, error) {
	configs := [2]domain.SimulationConfig{baselineCfg, optimizedCfg}

	var (
		wg    sync.WaitGroup
		plans [2]domain.SimulationResult
		errs  [2]error
	)
	for i := range configs {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			plans[i], errs[i] = RunPlan(domain.CloneDebts(debts), configs[i])
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return domain.ComparisonResult{}, err
		}
	}

	baseline, optimized := plans[0], plans[1]
	interestSaved := baseline.TotalInterestPaid.Sub(optimized.TotalInterestPaid)

	improvement := decimal.Zero
	if baseline.TotalInterestPaid.IsPositive() {
		improvement = interestSaved.Div(baseline.TotalInterestPaid).Mul(hundred).Round(2)
	}

	return domain.ComparisonResult{
		BaselinePlan:          baseline,
		OptimizedPlan:         optimized,
		TimePeriodsSaved:      baseline.PeriodsToPayoff - optimized.PeriodsToPayoff,
		InterestSaved:         interestSaved,
		PercentageImprovement: improvement,
	}, nil
}

// MinimumOnlyConfig builds the conventional baseline: the budget equal to
// the sum of the active minimum payments, keeping the requested ordering.
func MinimumOnlyConfig(debts []domain.Debt, optimized domain.SimulationConfig) domain.SimulationConfig {
	budget := decimal.Zero
	for _, d := range debts {
		if d.Balance.IsPositive() {
			budget = budget.Add(d.MinimumPayment)
		}
	}
	return domain.SimulationConfig{
		MonthlyBudget: budget,
		Strategy:      optimized.Strategy,
		CustomOrder:   optimized.CustomOrder,
	}
}

// ComparisonService wraps the pure comparison with the collaborators the
// API layer needs: plan persistence and the optional AI explanation.
type ComparisonService struct {
	repo   repository.PlanRepository
	advice *AdviceService
	logger *zap.Logger
}

func NewComparisonService(repo repository.PlanRepository, advice *AdviceService, logger *zap.Logger) *ComparisonService {
	return &ComparisonService{repo: repo, advice: advice, logger: logger}
}

// ComparePlans resolves the baseline (building the minimum-only default when
// the caller omits one), runs the comparison, attaches an explanation, and
// saves the outcome. A save failure is logged, never fatal.
func (s *ComparisonService) ComparePlans(req domain.ComparisonRequest) (domain.ComparisonResult, error) {
	baseline := req.Baseline
	if baseline == nil {
		cfg := MinimumOnlyConfig(req.Debts, req.Optimized)
		baseline = &cfg
	}

	result, err := Compare(req.Debts, *baseline, req.Optimized)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	if !result.BaselinePlan.Converged || !result.OptimizedPlan.Converged {
		s.logger.Warn("comparison includes a non-convergent plan",
			zap.Bool("baseline_converged", result.BaselinePlan.Converged),
			zap.Bool("optimized_converged", result.OptimizedPlan.Converged))
	}

	result.Explanation = s.advice.GenerateComparisonExplanation(req.Optimized.Strategy, result)

	if id, err := s.repo.Save(req.Debts, result); err != nil {
		s.logger.Warn("failed to save comparison", zap.Error(err))
	} else {
		s.logger.Debug("comparison saved", zap.String("plan_id", id))
	}

	return result, nil
}
