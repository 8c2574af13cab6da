package service

import "github.com/shopspring/decimal"

const (
	// MaxSimulationPeriods bounds a run at 100 years of monthly periods.
	MaxSimulationPeriods = 1200

	MaxDebtsPerRequest = 50

	periodsPerYear = 12
)

var (
	// maxAPR is exclusive: a nominal annual rate must satisfy 0 <= apr < 100.
	maxAPR = decimal.NewFromInt(100)

	// balanceTolerance is one currency minor unit. Closing balances within
	// it are snapped to exactly zero so rounding residue cannot produce
	// infinite trailing periods.
	balanceTolerance = decimal.New(1, -2)

	// aprToMonthlyRateDivisor converts a percentage APR to a monthly rate:
	// apr / 100 / 12.
	aprToMonthlyRateDivisor = decimal.NewFromInt(100 * periodsPerYear)

	hundred = decimal.NewFromInt(100)
)
