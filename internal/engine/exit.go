package engine

import "github.com/flipmetrics/flipcalc/pkg/mathutil"

// exitBreakdown carries the components of the exit-cost branch so the
// sensitivity generators can re-derive them at perturbed ARVs.
type exitBreakdown struct {
	commissionCost     float64 // commission actually paid out
	agentNetCommission float64 // seller-side commission the user keeps
	transferTax        float64
	refinanceLoan      float64
	refinanceCost      float64
	total              float64
}

// exitCosts evaluates the exit-strategy branch at the given sale value.
func (c *Calculator) exitCosts(in DealInput, saleValue float64) exitBreakdown {
	var ex exitBreakdown

	switch in.ExitStrategy {
	case ExitRefinance:
		ex.refinanceLoan = mathutil.ApplyPercentage(saleValue, in.RefinanceLTV)
		ex.refinanceCost = mathutil.ApplyPercentage(ex.refinanceLoan, in.RefinancePoints) + in.RefinanceFixedFees
		ex.total = ex.refinanceCost
	default: // SELL
		ex.transferTax = mathutil.ApplyPercentage(saleValue, in.ExitTransferTaxRate)

		var sellerSide, buyerSide float64
		if in.SellerCommissionRate > 0 || in.BuyerCommissionRate > 0 {
			sellerSide = mathutil.ApplyPercentage(saleValue, in.SellerCommissionRate)
			buyerSide = mathutil.ApplyPercentage(saleValue, in.BuyerCommissionRate)
		} else {
			// Legacy combined rate, split evenly between the two sides.
			half := in.CombinedCommissionRate / 2
			sellerSide = mathutil.ApplyPercentage(saleValue, half)
			buyerSide = mathutil.ApplyPercentage(saleValue, half)
		}

		if in.UserIsSellingAgent {
			// The user nets their seller-side commission minus the broker's
			// cut; only the broker's cut and the buyer-side commission are
			// costs of the deal.
			brokerCut := mathutil.ApplyPercentage(sellerSide, in.SellingBrokerSplitRate)
			ex.agentNetCommission = sellerSide - brokerCut
			ex.commissionCost = brokerCut + buyerSide
		} else {
			ex.commissionCost = sellerSide + buyerSide
		}

		ex.total = ex.commissionCost + ex.transferTax
	}

	// Paying off the acquisition loan at exit triggers the prepayment
	// penalty on either path.
	if in.PrepaymentPenalty {
		ex.total += in.PrepaymentPenaltyFee
	}

	return ex
}
