package engine

import (
	"math"
	"testing"

	"github.com/flipmetrics/flipcalc/pkg/mathutil"
)

func TestSolveTargetLTC(t *testing.T) {
	in := baselineDeal()
	in.WorkBackward = true
	in.TargetType = TargetLTC
	in.TargetValue = 80

	r := Calculate(in, StandardFeeProfile())

	// 200000 * 0.75 * 100 / 80 - 30000 = 157500.
	if !mathutil.WithinTolerance(r.SuggestedOffer, 157500, 0.01) {
		t.Errorf("SuggestedOffer = %v, expected 157500", r.SuggestedOffer)
	}
}

func TestSolveTargetLTCUnreachable(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*DealInput)
	}{
		{
			name: "Zero target",
			mutate: func(in *DealInput) {
				in.TargetValue = 0
			},
		},
		{
			name: "Rehab swallows the whole price",
			mutate: func(in *DealInput) {
				in.TargetValue = 80
				in.RehabBudget = 500000
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baselineDeal()
			in.WorkBackward = true
			in.TargetType = TargetLTC
			tt.mutate(&in)

			r := Calculate(in, StandardFeeProfile())
			if r.SuggestedOffer != 0 {
				t.Errorf("SuggestedOffer = %v, expected 0 for an unreachable target", r.SuggestedOffer)
			}
		})
	}
}

func TestSolveTargetROI(t *testing.T) {
	// With a 20% down payment the invested cash scales with price, so
	// cash-on-cash ROI falls through the target as the price rises.
	in := baselineDeal()
	in.FinancingPercent = 80
	in.WorkBackward = true
	in.TargetType = TargetROI
	in.TargetValue = 100

	r := Calculate(in, StandardFeeProfile())

	if r.SuggestedOffer <= 0 {
		t.Fatalf("SuggestedOffer = %v, expected a positive price", r.SuggestedOffer)
	}
	if r.SuggestedOffer >= in.ARV {
		t.Fatalf("SuggestedOffer = %v, expected a price below the %v ARV", r.SuggestedOffer, in.ARV)
	}

	// Recalculating at the suggested price must land on the target.
	check := in
	check.WorkBackward = false
	check.PurchasePrice = r.SuggestedOffer
	verified := Calculate(check, StandardFeeProfile())
	if math.Abs(verified.ROI-100) > 0.5 {
		t.Errorf("ROI at suggested offer = %v, expected about 100", verified.ROI)
	}
}

func TestSolveTargetROIUnreachable(t *testing.T) {
	in := baselineDeal()
	in.WorkBackward = true
	in.TargetType = TargetROI
	in.TargetValue = 1e9

	r := Calculate(in, StandardFeeProfile())

	if r.SuggestedOffer != 0 {
		t.Errorf("SuggestedOffer = %v, expected 0 for an impossible target", r.SuggestedOffer)
	}
}

func TestWorkBackwardDisabled(t *testing.T) {
	in := baselineDeal()
	in.TargetType = TargetROI
	in.TargetValue = 100

	r := Calculate(in, StandardFeeProfile())

	if r.SuggestedOffer != 0 {
		t.Errorf("SuggestedOffer = %v, expected 0 when work-backward mode is off", r.SuggestedOffer)
	}
}
