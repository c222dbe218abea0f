package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/flipmetrics/flipcalc/pkg/constants"
	"github.com/flipmetrics/flipcalc/pkg/mathutil"
)

const (
	roiSolverIterations = 60
	roiSolverTolerance  = 0.01 // ROI percentage points
)

// solveTarget computes the purchase price that hits the requested target
// metric. A result of 0 means the target is unreachable; callers treat
// any value at or below 0 that way.
func (c *Calculator) solveTarget(in DealInput, profile FeeProfile, maxLTV float64) float64 {
	switch in.TargetType {
	case TargetLTC:
		return c.solveTargetLTC(in, maxLTV)
	case TargetROI:
		return c.solveTargetROI(in, profile, maxLTV)
	default:
		return 0
	}
}

// solveTargetLTC inverts the capped LTC formula in closed form. The ARV
// cap is assumed to bind (otherwise LTC is pinned at the financing
// percentage and no purchase price can move it).
func (c *Calculator) solveTargetLTC(in DealInput, maxLTV float64) float64 {
	if in.TargetValue <= 0 {
		return 0
	}
	price := in.ARV*maxLTV*constants.PercentageMultiplier/in.TargetValue - in.RehabBudget
	if price <= 0 {
		return 0
	}

	c.logger.Debug(fmt.Sprintf("solved purchase price %.2f for target LTC %.2f%%", price, in.TargetValue),
		zap.String("op", "engine.solveTargetLTC"),
	)
	return price
}

// solveTargetROI bisects the purchase price against the full profit
// formula until cash-on-cash ROI matches the target. ROI decreases
// monotonically as the price rises, so plain bisection converges.
func (c *Calculator) solveTargetROI(in DealInput, profile FeeProfile, maxLTV float64) float64 {
	roiAt := func(price float64) float64 {
		probe := in
		probe.PurchasePrice = price
		probe.WorkBackward = false
		return c.calculate(probe, profile, maxLTV, false).ROI
	}

	low, high := 0.0, in.ARV
	if high <= 0 {
		return 0
	}
	if roiAt(low) < in.TargetValue {
		// Even a free property cannot reach the target.
		return 0
	}

	for i := 0; i < roiSolverIterations; i++ {
		mid := (low + high) / 2
		roi := roiAt(mid)
		if mathutil.WithinTolerance(roi, in.TargetValue, roiSolverTolerance) {
			c.logger.Debug(fmt.Sprintf("solved purchase price %.2f for target ROI %.2f%% in %d iterations", mid, in.TargetValue, i+1),
				zap.String("op", "engine.solveTargetROI"),
			)
			return mid
		}
		if roi > in.TargetValue {
			low = mid
		} else {
			high = mid
		}
	}

	return (low + high) / 2
}
