package engine

import (
	"github.com/flipmetrics/flipcalc/pkg/constants"
	"github.com/flipmetrics/flipcalc/pkg/mathutil"
)

// rehabDrawRamp is the fraction of the rehab-financed amount drawn by a
// given holding month. Month 1 funds the purchase portion only; the rehab
// holdback releases in quarters and is fully drawn from month 5 on.
func rehabDrawRamp(month int) float64 {
	switch {
	case month <= 1:
		return 0
	case month == 2:
		return 0.25
	case month == 3:
		return 0.50
	case month == 4:
		return 0.75
	default:
		return 1.0
	}
}

// drawSchedule builds the progressive-draw interest schedule. Draws are
// always treated as interest-only regardless of loan type: the amortizing
// payment only applies once the loan is fully drawn, which never happens
// inside a typical holding period.
func (c *Calculator) drawSchedule(in DealInput, financingPercent float64, r *DealResults) {
	purchaseFinanced := mathutil.Min(
		mathutil.ApplyPercentage(in.PurchasePrice, financingPercent), r.QualifiedLoanAmount)
	rehabFinanced := mathutil.Max(0, r.QualifiedLoanAmount-purchaseFinanced)

	months := in.HoldingPeriodMonths
	if months <= 0 {
		return
	}

	schedule := make([]MonthlyInterest, 0, months)
	total := 0.0
	for month := 1; month <= months; month++ {
		drawn := mathutil.Min(purchaseFinanced+rehabFinanced*rehabDrawRamp(month), r.QualifiedLoanAmount)
		interest := mathutil.ApplyPercentage(drawn, in.InterestRate) / constants.MonthsPerYear
		schedule = append(schedule, MonthlyInterest{Month: month, DrawnAmount: drawn, Interest: interest})
		total += interest
	}

	r.InterestSchedule = schedule
	r.TotalInterestCost = total
	r.MonthlyInterestPayment = total / float64(months)
}
