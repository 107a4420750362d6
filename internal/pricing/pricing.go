// Package pricing derives the display amounts shown for a program.
package pricing

import (
	"math"

	"github.com/tecaikids/website/internal/models"
)

// Savings is what a family saves over a quarter by paying quarterly.
func Savings(p models.Program) int64 {
	return p.MonthlyPrice*3 - p.QuarterlyPrice
}

// SavingsPercent is Savings relative to three monthly payments, rounded
// half up. A zero monthly price yields 0.
func SavingsPercent(p models.Program) int {
	base := p.MonthlyPrice * 3
	if base == 0 {
		return 0
	}
	return int(math.Floor(float64(Savings(p))/float64(base)*100 + 0.5))
}

// Find returns the catalog entry for programType.
func Find(programs []models.Program, programType models.ProgramType) (models.Program, bool) {
	for _, p := range programs {
		if p.ProgramType == programType {
			return p, true
		}
	}
	return models.Program{}, false
}

// Amount is the charge for one billing period of the selected program
// under plan. It reports false when the program is not in the catalog.
func Amount(programs []models.Program, programType models.ProgramType, plan models.PaymentPlan) (int64, bool) {
	p, ok := Find(programs, programType)
	if !ok {
		return 0, false
	}
	return PlanPrice(p, plan), true
}

func PlanPrice(p models.Program, plan models.PaymentPlan) int64 {
	if plan == models.PlanQuarterly {
		return p.QuarterlyPrice
	}
	return p.MonthlyPrice
}
