package engine

// MonthlyInterest is one row of the progressive-draw interest schedule.
type MonthlyInterest struct {
	Month       int
	DrawnAmount float64
	Interest    float64
}

// ARVScenario is one row of the fixed-delta ARV sensitivity ladder.
type ARVScenario struct {
	Label              string
	ARV                float64
	NetProfit          float64
	Difference         float64
	ClosingTableProfit float64
}

// SensitivityScenario is one row of a percentage-step sensitivity axis
// (purchase price or rehab budget).
type SensitivityScenario struct {
	Label              string
	Value              float64
	PercentChange      float64
	NetProfit          float64
	Difference         float64
	ClosingTableProfit float64
	Margin             float64
	BelowMarginFloor   bool
}

// DealResults is the complete derived output of one calculation. It is
// constructed fully by one Calculate call and never mutated afterwards.
type DealResults struct {
	// Loan sizing
	MaxLTVPercent          float64 // percent units
	TotalProjectCost       float64
	MaxLoanFromARV         float64
	LoanByFinancingPercent float64
	QualifiedLoanAmount    float64
	HoldbackAmount         float64
	InitialFundedAmount    float64
	MaxAllowableOffer      float64
	MaxPurchasePrice70Rule float64
	Passes70Rule           bool
	GapAmount              float64

	// Ratios
	LTV         float64 // against appraised value, else purchase price
	LTC         float64 // actual: financing-derived loan over project cost
	LTCCapped   float64 // ARV-capped qualified loan over project cost
	LTARV       float64 // actual loan over ARV
	LTARVCapped float64

	// Per-square-foot metrics
	PurchasePricePerSqFt float64
	ARVPerSqFt           float64

	// Lender fees
	PointsCost      float64
	UnderwritingFee float64
	ProcessingFee   float64
	DocPrepFee      float64
	WireFee         float64
	OtherLenderFees float64
	TotalLenderFees float64

	// Proration
	DaysRemainingInYear       int
	DaysRemainingInSchoolYear int
	DaysRemainingInQuarter    int
	DaysInQuarter             int
	CommunityDuesProrated     float64
	TownTaxProrated           float64
	SchoolTaxProrated         float64
	WaterSewerProrated        float64

	// Third-party fees
	TransferTaxCost          float64
	TitleInsuranceCost       float64
	CommunityTransferFee     float64
	EndorsementFees          float64
	TotalSettlementAgentFees float64
	TotalThirdPartyFees      float64

	// Credits
	SellerConcessionAmount     float64
	BuyerAgentCommissionCredit float64

	// Cash to close
	TotalClosingCosts float64
	TotalCashToClose  float64 // may be negative: cash back to borrower

	// Monthly payment
	MonthlyPrincipalAndInterest float64
	MonthlyPITIComponent        float64
	MonthlyPMIComponent         float64
	MonthlyPayment              float64
	PerDiemInterest             float64

	// Progressive-draw interest
	InterestSchedule       []MonthlyInterest
	TotalInterestCost      float64
	MonthlyInterestPayment float64 // average over the holding period

	// Holding costs
	MonthlyUtilities  float64
	TotalHoldingCosts float64

	// Exit costs
	SellingCommissionCost float64
	AgentNetCommission    float64 // informational; not subtracted from costs
	SellingTransferTax    float64
	RefinanceLoanAmount   float64
	RefinanceCost         float64
	TotalExitCosts        float64

	// Profitability
	TotalBuyingCosts      float64
	TotalProjectCostBasis float64
	NetProfit             float64
	CapitalGainsTax       float64
	NetProfitAfterTax     float64
	ClosingTableProfit    float64
	TotalCashInvested     float64
	ROI                   float64 // cash-on-cash, percent
	ProjectROI            float64
	NetMargin             float64
	IRR                   *float64 // nil when undetermined

	// Liquidity and eligibility
	RequiredLiquidity  float64
	IsEligible         bool
	EligibilityReasons []string

	// Work-backward solving
	SuggestedOffer float64 // 0 when disabled or unreachable

	// Sensitivity
	ProfitScenarios     []ARVScenario
	PurchaseSensitivity []SensitivityScenario
	RehabSensitivity    []SensitivityScenario
}
