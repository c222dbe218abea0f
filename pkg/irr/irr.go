// Package irr finds the internal rate of return of a monthly cash-flow
// schedule: the periodic discount rate at which net present value is zero.
package irr

import "math"

// CashFlow is one dated cash movement. Month 0 is the initial outlay;
// negative amounts are outflows.
type CashFlow struct {
	Month  int
	Amount float64
}

const (
	initialAnnualGuess = 0.20
	newtonIterations   = 100
	bisectIterations   = 50
	npvTolerance       = 0.001
	derivativeDelta    = 1e-5
	derivativeFloor    = 1e-10

	minMonthlyRate = -0.99
	maxMonthlyRate = 1.0

	bisectLowAnnual  = -0.99
	bisectHighAnnual = 5.0
)

// NPV computes net present value at the given monthly-compounded rate.
func NPV(monthlyRate float64, flows []CashFlow) float64 {
	npv := 0.0
	for _, cf := range flows {
		npv += cf.Amount / math.Pow(1+monthlyRate, float64(cf.Month))
	}
	return npv
}

// NeedsFallback is the explicit trigger for abandoning Newton-Raphson in
// favor of bisection: the iteration budget ran out without convergence, or
// the numerical derivative collapsed near zero.
func NeedsFallback(converged bool, derivative float64) bool {
	return !converged || math.Abs(derivative) < derivativeFloor
}

// Solve returns the annualized IRR for the given cash flows. The second
// return value is false when no rate can be determined: fewer than two
// flows, all flows of one sign, or no convergence. That is an expected
// outcome for degenerate schedules, not an error.
func Solve(flows []CashFlow) (float64, bool) {
	if len(flows) < 2 {
		return 0, false
	}
	hasInflow, hasOutflow := false, false
	for _, cf := range flows {
		if cf.Amount > 0 {
			hasInflow = true
		}
		if cf.Amount < 0 {
			hasOutflow = true
		}
	}
	if !hasInflow || !hasOutflow {
		return 0, false
	}

	annual, converged, lastDerivative := newton(flows)
	if NeedsFallback(converged, lastDerivative) {
		return bisect(flows)
	}
	return annual, true
}

func newton(flows []CashFlow) (annual float64, converged bool, lastDerivative float64) {
	monthlyRate := initialAnnualGuess / 12
	lastDerivative = 1.0

	for i := 0; i < newtonIterations; i++ {
		npv := NPV(monthlyRate, flows)
		if math.Abs(npv) < npvTolerance {
			return annualize(monthlyRate), true, lastDerivative
		}

		lastDerivative = (NPV(monthlyRate+derivativeDelta, flows) - npv) / derivativeDelta
		if math.Abs(lastDerivative) < derivativeFloor {
			return 0, false, lastDerivative
		}

		monthlyRate -= npv / lastDerivative

		// Keep the working rate in a sane band to avoid divergence.
		if monthlyRate < minMonthlyRate {
			monthlyRate = minMonthlyRate
		}
		if monthlyRate > maxMonthlyRate {
			monthlyRate = maxMonthlyRate
		}
	}

	return 0, false, lastDerivative
}

func bisect(flows []CashFlow) (float64, bool) {
	low, high := bisectLowAnnual, bisectHighAnnual

	for i := 0; i < bisectIterations; i++ {
		mid := (low + high) / 2
		monthlyRate := math.Pow(1+mid, 1.0/12) - 1
		npv := NPV(monthlyRate, flows)

		if math.Abs(npv) < npvTolerance {
			return mid, true
		}
		if npv < 0 {
			high = mid
		} else {
			low = mid
		}
	}

	return 0, false
}

// annualize converts a monthly rate to its compounded annual equivalent.
func annualize(monthlyRate float64) float64 {
	return math.Pow(1+monthlyRate, 12) - 1
}
