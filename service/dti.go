package service

import (
	"github.com/shopspring/decimal"

	"debt-planner/domain"
)

// Fixed classification thresholds (percent, inclusive). Standard lending
// policy, not configurable.
var (
	frontendHealthyMax = decimal.NewFromInt(28)
	frontendCautionMax = decimal.NewFromInt(36)
	backendHealthyMax  = decimal.NewFromInt(36)
	backendCautionMax  = decimal.NewFromInt(44)
)

// ComputeDTI returns the front-end (housing) and back-end (total) debt-to-
// income ratios as percentages with their classifications. Both ratios are
// zero when income is zero or negative; there is no division to fail.
func ComputeDTI(req domain.DTIRequest) domain.DTIReport {
	frontend := decimal.Zero
	backend := decimal.Zero
	if req.MonthlyIncome.IsPositive() {
		frontend = req.HousingPayments.Div(req.MonthlyIncome).Mul(hundred).Round(2)
		backend = req.TotalMonthlyDebtPayments.Div(req.MonthlyIncome).Mul(hundred).Round(2)
	}

	return domain.DTIReport{
		FrontendRatio:  frontend,
		BackendRatio:   backend,
		FrontendStatus: classify(frontend, frontendHealthyMax, frontendCautionMax),
		BackendStatus:  classify(backend, backendHealthyMax, backendCautionMax),
	}
}

func classify(ratio, healthyMax, cautionMax decimal.Decimal) domain.DTIStatus {
	switch {
	case ratio.LessThanOrEqual(healthyMax):
		return domain.DTIHealthy
	case ratio.LessThanOrEqual(cautionMax):
		return domain.DTICaution
	default:
		return domain.DTIDanger
	}
}
