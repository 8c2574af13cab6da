package service

import (
	"go.uber.org/zap"

	"debt-planner/domain"
)

// PlannerService runs single simulations for the API layer.
type PlannerService struct {
	logger *zap.Logger
}

func NewPlannerService(logger *zap.Logger) *PlannerService {
	return &PlannerService{logger: logger}
}

// RunSimulation validates and runs one plan. Non-convergent runs come back
// as results, not errors: the partial trace plus Converged=false is what the
// caller reports as "effectively never pays off".
func (s *PlannerService) RunSimulation(req domain.SimulationRequest) (domain.SimulationResult, error) {
	result, err := RunPlan(req.Debts, req.Config)
	if err != nil {
		return domain.SimulationResult{}, err
	}
	if !result.Converged {
		s.logger.Warn("simulation reached the safety bound without payoff",
			zap.Int("periods", result.PeriodsToPayoff),
			zap.String("strategy", string(req.Config.Strategy)))
	}
	return result, nil
}
