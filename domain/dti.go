package domain

import "github.com/shopspring/decimal"

// DTIStatus classifies a debt-to-income ratio against fixed lending
// thresholds.
type DTIStatus string

const (
	DTIHealthy DTIStatus = "healthy"
	DTICaution DTIStatus = "caution"
	DTIDanger  DTIStatus = "danger"
)

// DTIRequest carries the monthly totals used to compute both ratios.
type DTIRequest struct {
	MonthlyIncome            decimal.Decimal `json:"monthly_income"`
	TotalMonthlyDebtPayments decimal.Decimal `json:"total_monthly_debt_payments"`
	HousingPayments          decimal.Decimal `json:"housing_payments"`
}

// DTIReport holds the front-end (housing) and back-end (total) ratios as
// percentages, with their classifications.
type DTIReport struct {
	FrontendRatio  decimal.Decimal `json:"frontend_ratio"`
	BackendRatio   decimal.Decimal `json:"backend_ratio"`
	FrontendStatus DTIStatus       `json:"frontend_status"`
	BackendStatus  DTIStatus       `json:"backend_status"`
}
