package engine

import (
	"fmt"

	"github.com/flipmetrics/flipcalc/pkg/constants"
	"github.com/flipmetrics/flipcalc/pkg/mathutil"
)

// marginFloorPercent flags scenarios whose net margin dips below the
// conventional flip safety threshold.
const marginFloorPercent = 15.0

// purchaseSensitivitySteps and rehabSensitivitySteps are the documented
// perturbation ladders for the two percentage axes.
var (
	purchaseSensitivitySteps = []float64{-0.05, -0.02, 0, 0.05, 0.10, 0.15, 0.20}
	rehabSensitivitySteps    = []float64{-0.20, -0.10, -0.05, 0, 0.10, 0.20, 0.30}

	// arvDeltas is the fixed dollar ladder applied to the ARV axis.
	arvDeltas = []struct {
		label string
		value float64
	}{
		{"- $10k", -10000},
		{"Baseline", 0},
		{"+ $10k", 10000},
		{"+ $20k", 20000},
		{"+ $30k", 30000},
	}
)

// arvLadder re-runs the profit formula at fixed dollar ARV deltas. The
// loan stays at its baseline size; exit costs are re-derived because they
// scale with the sale value.
func (c *Calculator) arvLadder(in DealInput, base *DealResults) []ARVScenario {
	fixedCosts := base.QualifiedLoanAmount + base.TotalBuyingCosts + base.TotalHoldingCosts

	scenarios := make([]ARVScenario, 0, len(arvDeltas))
	for _, d := range arvDeltas {
		simARV := in.ARV + d.value
		simExit := c.exitCosts(in, simARV)
		// Summing the cost side first keeps the association identical to
		// the top-level profit calculation, so the baseline row matches it
		// bit for bit.
		simProfit := simARV - (fixedCosts + simExit.total)

		scenarios = append(scenarios, ARVScenario{
			Label:              d.label,
			ARV:                simARV,
			NetProfit:          simProfit,
			Difference:         simProfit - base.NetProfit,
			ClosingTableProfit: simProfit + base.TotalHoldingCosts,
		})
	}
	return scenarios
}

// purchaseSensitivity perturbs the purchase price by fixed percentage
// steps, re-deriving the loan size, gap and profit from the same formulas
// as the baseline so the zero step reproduces it exactly.
func (c *Calculator) purchaseSensitivity(in DealInput, maxLTV float64, base *DealResults) []SensitivityScenario {
	fin := in.EffectiveFinancingPercent()

	scenarios := make([]SensitivityScenario, 0, len(purchaseSensitivitySteps))
	for _, pct := range purchaseSensitivitySteps {
		price := in.PurchasePrice * (1 + pct)

		loan := mathutil.Min(mathutil.ApplyPercentage(price+in.RehabBudget, fin), in.ARV*maxLTV)
		gap := mathutil.Max(0,
			price-mathutil.ApplyPercentage(price, fin)-in.EarnestMoneyDeposit-in.SellerBuyBackAmount)
		buying := base.TotalClosingCosts + gap - base.SellerConcessionAmount
		basis := loan + buying + base.TotalHoldingCosts + base.TotalExitCosts
		profit := in.ARV - basis

		scenarios = append(scenarios, SensitivityScenario{
			Label:              stepLabel(pct, "At Price"),
			Value:              price,
			PercentChange:      pct * constants.PercentageMultiplier,
			NetProfit:          profit,
			Difference:         profit - base.NetProfit,
			ClosingTableProfit: profit + base.TotalHoldingCosts,
			Margin:             mathutil.SafeDivide(profit, in.ARV) * constants.PercentageMultiplier,
			BelowMarginFloor:   mathutil.SafeDivide(profit, in.ARV)*constants.PercentageMultiplier < marginFloorPercent,
		})
	}
	return scenarios
}

// rehabSensitivity perturbs the rehab budget by fixed percentage steps.
// The gap is independent of the rehab budget, so only the loan resizes.
func (c *Calculator) rehabSensitivity(in DealInput, maxLTV float64, base *DealResults) []SensitivityScenario {
	fin := in.EffectiveFinancingPercent()

	scenarios := make([]SensitivityScenario, 0, len(rehabSensitivitySteps))
	for _, pct := range rehabSensitivitySteps {
		rehab := in.RehabBudget * (1 + pct)

		loan := mathutil.Min(mathutil.ApplyPercentage(in.PurchasePrice+rehab, fin), in.ARV*maxLTV)
		basis := loan + base.TotalBuyingCosts + base.TotalHoldingCosts + base.TotalExitCosts
		profit := in.ARV - basis

		scenarios = append(scenarios, SensitivityScenario{
			Label:              stepLabel(pct, "At Budget"),
			Value:              rehab,
			PercentChange:      pct * constants.PercentageMultiplier,
			NetProfit:          profit,
			Difference:         profit - base.NetProfit,
			ClosingTableProfit: profit + base.TotalHoldingCosts,
			Margin:             mathutil.SafeDivide(profit, in.ARV) * constants.PercentageMultiplier,
			BelowMarginFloor:   mathutil.SafeDivide(profit, in.ARV)*constants.PercentageMultiplier < marginFloorPercent,
		})
	}
	return scenarios
}

func stepLabel(pct float64, atLabel string) string {
	switch {
	case pct > 0:
		return fmt.Sprintf("Over %.0f%%", pct*constants.PercentageMultiplier)
	case pct < 0:
		return fmt.Sprintf("Under %.0f%%", -pct*constants.PercentageMultiplier)
	default:
		return atLabel
	}
}
