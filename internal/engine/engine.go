package engine

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/flipmetrics/flipcalc/pkg/constants"
	"github.com/flipmetrics/flipcalc/pkg/irr"
	"github.com/flipmetrics/flipcalc/pkg/mathutil"
	"github.com/flipmetrics/flipcalc/pkg/proration"
	"github.com/flipmetrics/flipcalc/pkg/ratetable"
)

// Calculator runs deal calculations against a jurisdiction rate table.
// The zero-cost construction makes it safe to share across goroutines;
// it holds no mutable state.
type Calculator struct {
	logger *zap.Logger
	rates  ratetable.Table
}

// NewCalculator creates a Calculator using the Pennsylvania rate table.
func NewCalculator(logger *zap.Logger) *Calculator {
	return NewCalculatorWithRates(logger, ratetable.Pennsylvania)
}

// NewCalculatorWithRates creates a Calculator with an explicit rate table.
func NewCalculatorWithRates(logger *zap.Logger, rates ratetable.Table) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Calculator{logger: logger, rates: rates}
}

// Calculate runs the full pipeline with the default maximum LTV.
func (c *Calculator) Calculate(in DealInput, profile FeeProfile) DealResults {
	return c.CalculateWithMaxLTV(in, profile, constants.DefaultMaxLTVPercent)
}

// CalculateWithMaxLTV runs the full pipeline with an explicit maximum
// loan-to-ARV ratio expressed as a fraction (0.75 means 75%).
func (c *Calculator) CalculateWithMaxLTV(in DealInput, profile FeeProfile, maxLTV float64) DealResults {
	return c.calculate(in, profile, maxLTV, true)
}

// Calculate is a convenience wrapper using a silent Calculator and the
// Pennsylvania rate table.
func Calculate(in DealInput, profile FeeProfile) DealResults {
	return NewCalculator(nil).Calculate(in, profile)
}

// calculate is the single-pass pipeline. withScenarios disables the
// sensitivity and work-backward stages for the solver's inner probes.
func (c *Calculator) calculate(in DealInput, profile FeeProfile, maxLTV float64, withScenarios bool) DealResults {
	var r DealResults

	fin := in.EffectiveFinancingPercent()

	// Loan sizing.
	r.MaxLTVPercent = maxLTV * constants.PercentageMultiplier
	r.TotalProjectCost = in.PurchasePrice + in.RehabBudget
	r.MaxLoanFromARV = in.ARV * maxLTV
	r.LoanByFinancingPercent = mathutil.ApplyPercentage(r.TotalProjectCost, fin)
	r.QualifiedLoanAmount = mathutil.Min(r.LoanByFinancingPercent, r.MaxLoanFromARV)
	r.HoldbackAmount = in.RehabBudget
	r.InitialFundedAmount = r.QualifiedLoanAmount - r.HoldbackAmount
	r.MaxAllowableOffer = r.MaxLoanFromARV - in.RehabBudget
	r.MaxPurchasePrice70Rule = in.ARV*constants.SeventyPercentRule - in.RehabBudget
	r.Passes70Rule = in.PurchasePrice <= r.MaxPurchasePrice70Rule

	c.logger.Debug(fmt.Sprintf("sized loan at %.2f against project cost %.2f", r.QualifiedLoanAmount, r.TotalProjectCost),
		zap.String("op", "engine.calculate"),
	)

	// Down-payment gap.
	r.GapAmount = mathutil.Max(0,
		in.PurchasePrice-mathutil.ApplyPercentage(in.PurchasePrice, fin)-in.EarnestMoneyDeposit-in.SellerBuyBackAmount)

	// Ratios. LTV divides by the appraised value when one was supplied.
	ltvDenominator := in.PurchasePrice
	if in.AppraisedValue > 0 {
		ltvDenominator = in.AppraisedValue
	}
	r.LTV = mathutil.SafeDivide(r.QualifiedLoanAmount, ltvDenominator) * constants.PercentageMultiplier
	r.LTC = mathutil.SafeDivide(r.LoanByFinancingPercent, r.TotalProjectCost) * constants.PercentageMultiplier
	r.LTCCapped = mathutil.SafeDivide(r.QualifiedLoanAmount, r.TotalProjectCost) * constants.PercentageMultiplier
	r.LTARV = mathutil.SafeDivide(r.LoanByFinancingPercent, in.ARV) * constants.PercentageMultiplier
	r.LTARVCapped = mathutil.SafeDivide(r.QualifiedLoanAmount, in.ARV) * constants.PercentageMultiplier

	r.PurchasePricePerSqFt = mathutil.SafeDivide(in.PurchasePrice, in.SquareFeet)
	r.ARVPerSqFt = mathutil.SafeDivide(in.ARV, in.SquareFeet)

	// Lender fees.
	r.PointsCost = mathutil.ApplyPercentage(r.QualifiedLoanAmount, in.OriginationPoints)
	r.UnderwritingFee = in.UnderwritingFee
	r.ProcessingFee = in.ProcessingFee
	r.DocPrepFee = in.DocPrepFee
	r.WireFee = in.WireFee
	r.OtherLenderFees = in.OtherLenderFees
	r.TotalLenderFees = r.PointsCost + in.UnderwritingFee + in.ProcessingFee + in.DocPrepFee + in.WireFee + in.OtherLenderFees

	// Proration of the period-anchored charges.
	if closing, ok := proration.ParseClosingDate(in.ClosingDate); ok {
		r.DaysRemainingInYear = proration.DaysRemainingInYear(closing)
		r.DaysRemainingInSchoolYear = proration.DaysRemainingInSchoolYear(closing)
		r.DaysRemainingInQuarter, r.DaysInQuarter = proration.QuarterDays(closing)
	}
	if profile.CommunityDues {
		r.CommunityDuesProrated = proration.ProrateAnnual(in.CommunityDuesAnnual, r.DaysRemainingInYear)
	}
	if profile.TownTax {
		r.TownTaxProrated = proration.ProrateAnnual(in.TownTaxAnnual, r.DaysRemainingInYear)
	}
	if profile.SchoolTax {
		r.SchoolTaxProrated = proration.ProrateAnnual(in.SchoolTaxAnnual, r.DaysRemainingInSchoolYear)
	}
	if profile.WaterSewer {
		r.WaterSewerProrated = proration.ProrateQuarterly(in.WaterSewerAnnual, r.DaysRemainingInQuarter, r.DaysInQuarter)
	}

	// Third-party fees.
	r.TransferTaxCost = mathutil.ApplyPercentage(in.PurchasePrice, in.TransferTaxRate)
	if in.TitleInsuranceRate > 0 {
		r.TitleInsuranceCost = mathutil.ApplyPercentage(r.TotalProjectCost, in.TitleInsuranceRate)
	} else {
		r.TitleInsuranceCost = c.rates.Lookup(r.TotalProjectCost)
	}
	if profile.CommunityTransferFee {
		r.CommunityTransferFee = c.rates.Lookup(in.PurchasePrice)
	}
	r.EndorsementFees = float64(in.EndorsementCount) * constants.EndorsementFee
	r.TotalSettlementAgentFees = in.SettlementDocPrepFee + in.SettlementOvernightFee + in.SettlementWireFee

	r.TotalThirdPartyFees = r.TransferTaxCost + r.TitleInsuranceCost + r.CommunityTransferFee +
		r.EndorsementFees + r.TotalSettlementAgentFees +
		in.CPLFee + in.LegalSettlementFee + in.RecordingFee +
		in.InspectionCost + in.AppraisalCost + in.InsuranceCost + in.SurveyCost +
		in.PestInspectionCost + in.CreditReportCost + in.FloodDeterminationCost +
		r.CommunityDuesProrated + r.TownTaxProrated + r.SchoolTaxProrated + r.WaterSewerProrated

	// Credits.
	r.SellerConcessionAmount = mathutil.ApplyPercentage(in.PurchasePrice, in.SellerConcessionRate)
	r.BuyerAgentCommissionCredit = mathutil.ApplyPercentage(in.PurchasePrice, in.BuyerAgentCommissionRate) *
		(1 - in.BuyerAgentBrokerSplitRate/constants.PercentageMultiplier)

	// Cash to close. Deliberately not clamped: negative means cash back.
	r.TotalClosingCosts = r.TotalLenderFees + r.TotalThirdPartyFees
	r.TotalCashToClose = r.TotalClosingCosts + r.GapAmount -
		r.SellerConcessionAmount - in.EarnestMoneyDeposit - r.BuyerAgentCommissionCredit

	// Monthly payment.
	c.monthlyPayment(in, &r)
	r.PerDiemInterest = mathutil.ApplyPercentage(r.QualifiedLoanAmount, in.InterestRate) / constants.DaysPerInterestYear

	// Progressive-draw interest schedule.
	c.drawSchedule(in, fin, &r)

	// Holding costs.
	r.MonthlyUtilities = in.MonthlyElectric + in.MonthlyInternet + in.MonthlyPropane
	if in.IncludeHoldingInsurance {
		r.MonthlyUtilities += in.HoldingInsuranceMonthly
	}
	if in.IncludeHoldingTaxes {
		r.MonthlyUtilities += in.HoldingTaxesMonthly
	}
	r.TotalHoldingCosts = r.MonthlyUtilities*float64(in.HoldingPeriodMonths) + r.TotalInterestCost
	if in.IncludeYearlyWater {
		r.TotalHoldingCosts += in.YearlyWaterAmount
	}
	if in.IncludeYearlyDues {
		r.TotalHoldingCosts += in.YearlyDuesAmount
	}

	// Exit strategy.
	exit := c.exitCosts(in, in.ARV)
	r.SellingCommissionCost = exit.commissionCost
	r.AgentNetCommission = exit.agentNetCommission
	r.SellingTransferTax = exit.transferTax
	r.RefinanceLoanAmount = exit.refinanceLoan
	r.RefinanceCost = exit.refinanceCost
	r.TotalExitCosts = exit.total

	// Profitability.
	r.TotalBuyingCosts = r.TotalClosingCosts + r.GapAmount - r.SellerConcessionAmount
	r.TotalProjectCostBasis = r.QualifiedLoanAmount + r.TotalBuyingCosts + r.TotalHoldingCosts + r.TotalExitCosts
	r.NetProfit = in.ARV - r.TotalProjectCostBasis
	r.CapitalGainsTax = mathutil.ApplyPercentage(mathutil.Max(0, r.NetProfit), in.CapitalGainsTaxRate)
	r.NetProfitAfterTax = r.NetProfit - r.CapitalGainsTax
	r.ClosingTableProfit = r.NetProfit + r.TotalHoldingCosts

	r.TotalCashInvested = r.TotalBuyingCosts + r.TotalHoldingCosts
	if r.TotalCashInvested > 0 {
		r.ROI = r.NetProfit / r.TotalCashInvested * constants.PercentageMultiplier
	}
	if r.TotalProjectCostBasis > 0 {
		r.ProjectROI = r.NetProfit / r.TotalProjectCostBasis * constants.PercentageMultiplier
	}
	if in.ARV > 0 {
		r.NetMargin = r.NetProfit / in.ARV * constants.PercentageMultiplier
	}

	// IRR over the deal's cash-flow schedule.
	avgMonthlyHolding := mathutil.SafeDivide(r.TotalHoldingCosts, float64(in.HoldingPeriodMonths))
	flows := irr.BuildFlipFlows(
		-(r.GapAmount + r.TotalClosingCosts + in.RehabBudget),
		-avgMonthlyHolding,
		in.ARV-r.TotalExitCosts-r.QualifiedLoanAmount,
		in.HoldingPeriodMonths,
	)
	if rate, ok := irr.Solve(flows); ok {
		r.IRR = &rate
	}

	// Required liquidity: fixed floor or rehab percentage, whichever is
	// greater.
	liquidityBase := r.TotalLenderFees + r.TotalThirdPartyFees + r.GapAmount +
		r.PerDiemInterest - r.BuyerAgentCommissionCredit
	r.RequiredLiquidity = mathutil.Max(
		liquidityBase+in.RehabBudget*constants.LiquidityRehabBufferRate,
		liquidityBase+constants.LiquidityFixedBuffer,
	)

	// Eligibility. Advisory flags, never errors.
	r.IsEligible = true
	if in.FICOScore < constants.MinimumFICOScore {
		r.IsEligible = false
		r.EligibilityReasons = append(r.EligibilityReasons,
			fmt.Sprintf("Credit score below %d minimum.", constants.MinimumFICOScore))
	}
	if r.LTV > constants.MaxProgramLTVPercent {
		r.IsEligible = false
		r.EligibilityReasons = append(r.EligibilityReasons,
			fmt.Sprintf("LTV exceeds %.0f%% program limit.", constants.MaxProgramLTVPercent))
	}
	if in.Liquidity < r.RequiredLiquidity {
		r.IsEligible = false
		r.EligibilityReasons = append(r.EligibilityReasons,
			fmt.Sprintf("Insufficient liquidity. Need $%.2f.", r.RequiredLiquidity))
	}
	if in.ExperienceLevel < 0 {
		r.IsEligible = false
		r.EligibilityReasons = append(r.EligibilityReasons, "Experience cannot be negative.")
	}

	if withScenarios {
		if in.WorkBackward {
			r.SuggestedOffer = c.solveTarget(in, profile, maxLTV)
		}
		r.ProfitScenarios = c.arvLadder(in, &r)
		r.PurchaseSensitivity = c.purchaseSensitivity(in, maxLTV, &r)
		r.RehabSensitivity = c.rehabSensitivity(in, maxLTV, &r)
	}

	return r
}

// monthlyPayment fills the payment fields, branching on loan type.
func (c *Calculator) monthlyPayment(in DealInput, r *DealResults) {
	interestOnly := mathutil.ApplyPercentage(r.QualifiedLoanAmount, in.InterestRate) / constants.MonthsPerYear

	switch {
	case in.LoanType == LoanHardMoney || in.InterestOnly:
		r.MonthlyPrincipalAndInterest = interestOnly
	case in.LoanType == LoanConventional:
		term := in.LoanTermMonths
		if term <= 0 {
			term = constants.DefaultConventionalTermMonths
		}
		r.MonthlyPrincipalAndInterest = c.amortizedPayment(r.QualifiedLoanAmount, in.InterestRate, term, interestOnly)
		if in.IncludePITI {
			r.MonthlyPITIComponent = in.MonthlyPropertyTax + in.MonthlyInsurance
		}
		if in.IncludePMI {
			r.MonthlyPMIComponent = in.MonthlyPMI
		}
	default: // PORTFOLIO, OTHER
		r.MonthlyPrincipalAndInterest = c.amortizedPayment(r.QualifiedLoanAmount, in.InterestRate, in.LoanTermMonths, interestOnly)
	}

	r.MonthlyPayment = r.MonthlyPrincipalAndInterest + r.MonthlyPITIComponent + r.MonthlyPMIComponent
}

// amortizedPayment computes the standard amortization formula, falling
// back to the supplied interest-only payment when the term or discount
// factor is degenerate.
func (c *Calculator) amortizedPayment(principal, annualRate float64, termMonths int, interestOnlyFallback float64) float64 {
	if termMonths <= 0 {
		c.logger.Debug("amortization term missing, falling back to interest-only",
			zap.String("op", "engine.amortizedPayment"),
		)
		return interestOnlyFallback
	}
	if annualRate == 0 {
		return principal / float64(termMonths)
	}

	periodicRate := annualRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
	power := math.Pow(1+periodicRate, float64(termMonths))
	discountFactor := (power - 1) / power
	if discountFactor == 0 || math.IsNaN(discountFactor) || math.IsInf(discountFactor, 0) {
		return interestOnlyFallback
	}
	return principal * periodicRate / discountFactor
}
