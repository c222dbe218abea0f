// Package engine implements the deal underwriting calculator: a
// deterministic, side-effect-free transformation of a DealInput record
// into a DealResults record. It is safe to invoke concurrently; every
// call operates on its own copies of input and shares only read-only
// lookup tables.
package engine

// LoanType selects the monthly-payment branch.
type LoanType string

const (
	LoanHardMoney    LoanType = "HARD_MONEY"
	LoanConventional LoanType = "CONVENTIONAL"
	LoanPortfolio    LoanType = "PORTFOLIO"
	LoanOther        LoanType = "OTHER"
)

// ExitStrategy selects the exit-cost branch.
type ExitStrategy string

const (
	ExitSell      ExitStrategy = "SELL"
	ExitRefinance ExitStrategy = "REFINANCE"
)

// TargetType selects which metric the work-backward solver inverts.
type TargetType string

const (
	TargetROI TargetType = "ROI"
	TargetLTC TargetType = "LTC"
)

// FeeProfile names the jurisdiction-specific fee groups that apply to a
// deal. The Hideout profile charges the community's transfer fee, annual
// dues, town tax, school tax and quarterly water/sewer; the standard
// profile zeroes the community-specific ones.
type FeeProfile struct {
	CommunityTransferFee bool
	CommunityDues        bool
	TownTax              bool
	SchoolTax            bool
	WaterSewer           bool
}

// HideoutFeeProfile returns the profile with all community fee groups
// active.
func HideoutFeeProfile() FeeProfile {
	return FeeProfile{
		CommunityTransferFee: true,
		CommunityDues:        true,
		TownTax:              true,
		SchoolTax:            true,
		WaterSewer:           true,
	}
}

// StandardFeeProfile returns the profile for properties outside the
// community: no community transfer fee or dues, but town tax, school tax
// and water/sewer still bill and prorate.
func StandardFeeProfile() FeeProfile {
	return FeeProfile{
		TownTax:    true,
		SchoolTax:  true,
		WaterSewer: true,
	}
}

// DealInput is the caller-supplied deal record. It is treated as
// immutable for the duration of one calculation. Rates are expressed in
// percent units (1.0 means 1%) unless noted otherwise.
type DealInput struct {
	// Property facts
	Address        string
	State          string
	County         string
	ZipCode        string
	PropertyType   string
	PurchasePrice  float64
	AppraisedValue float64 // optional; 0 means not appraised
	RehabBudget    float64
	ARV            float64
	SquareFeet     float64
	Beds           int
	Baths          float64
	Units          int

	// Financing terms
	FinancingPercent       float64 // percent of total project cost financed
	UseCustomFinancing     bool
	CustomFinancingPercent float64
	LoanType               LoanType
	InterestRate           float64 // annual, percent
	LoanTermMonths         int
	InterestOnly           bool
	IncludePITI            bool
	MonthlyPropertyTax     float64 // PITI tax component
	MonthlyInsurance       float64 // PITI insurance component
	IncludePMI             bool
	MonthlyPMI             float64
	PrepaymentPenalty      bool
	PrepaymentPenaltyFee   float64
	OriginationPoints      float64 // percent of qualified loan
	UnderwritingFee        float64
	ProcessingFee          float64
	DocPrepFee             float64
	WireFee                float64
	OtherLenderFees        float64

	// Third-party / closing charges
	TransferTaxRate        float64
	TitleInsuranceRate     float64 // 0 means use the jurisdiction rate table
	CPLFee                 float64
	EndorsementCount       int
	LegalSettlementFee     float64
	RecordingFee           float64
	InspectionCost         float64
	AppraisalCost          float64
	InsuranceCost          float64
	SurveyCost             float64
	PestInspectionCost     float64
	CreditReportCost       float64
	FloodDeterminationCost float64
	SettlementDocPrepFee   float64
	SettlementOvernightFee float64
	SettlementWireFee      float64
	CommunityDuesAnnual    float64 // calendar-year cycle
	TownTaxAnnual          float64 // calendar-year cycle
	SchoolTaxAnnual        float64 // school-year cycle (Jul 1 - Jun 30)
	WaterSewerAnnual       float64 // quarterly cycle
	ClosingDate            string  // YYYY-MM-DD; empty disables proration

	// Holding-period assumptions
	HoldingPeriodMonths     int
	MonthlyElectric         float64
	MonthlyInternet         float64
	MonthlyPropane          float64
	IncludeHoldingInsurance bool
	HoldingInsuranceMonthly float64
	IncludeHoldingTaxes     bool
	HoldingTaxesMonthly     float64
	IncludeYearlyWater      bool
	YearlyWaterAmount       float64
	IncludeYearlyDues       bool
	YearlyDuesAmount        float64

	// Exit-strategy assumptions
	ExitStrategy           ExitStrategy
	SellerCommissionRate   float64 // seller-side agent, percent of ARV
	BuyerCommissionRate    float64 // buyer-side agent, percent of ARV
	CombinedCommissionRate float64 // legacy single rate, split 50/50
	UserIsSellingAgent     bool
	SellingBrokerSplitRate float64 // broker's cut of the seller-side commission
	ExitTransferTaxRate    float64
	RefinanceLTV           float64
	RefinancePoints        float64
	RefinanceFixedFees     float64
	CapitalGainsTaxRate    float64

	// Credits and concessions
	SellerConcessionRate      float64
	SellerBuyBackAmount       float64
	EarnestMoneyDeposit       float64
	BuyerAgentCommissionRate  float64
	BuyerAgentBrokerSplitRate float64

	// Underwriting thresholds
	Liquidity       float64
	FICOScore       int
	ExperienceLevel int // number of completed deals

	// Optional work-backward solver mode
	WorkBackward bool
	TargetType   TargetType
	TargetValue  float64
}

// EffectiveFinancingPercent resolves the custom-financing override.
func (in DealInput) EffectiveFinancingPercent() float64 {
	if in.UseCustomFinancing {
		return in.CustomFinancingPercent
	}
	return in.FinancingPercent
}
