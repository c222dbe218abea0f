// Package constants provides shared constants for the flipcalc engine.
package constants

// ClosingDateLayout is the format expected for closing dates in config
// files.
const ClosingDateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DaysPerYear is the fixed day-count convention for annual prorations;
	// leap years are not special-cased
	DaysPerYear = 365.0

	// DaysPerInterestYear is the banker's year used for per-diem interest
	DaysPerInterestYear = 360.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Underwriting program constants
const (
	// DefaultMaxLTVPercent is the maximum loan-to-ARV ratio as a fraction
	DefaultMaxLTVPercent = 0.75

	// SeventyPercentRule is the classic flip screening multiplier on ARV
	SeventyPercentRule = 0.70

	// MinimumFICOScore is the program's credit-score floor
	MinimumFICOScore = 650

	// MaxProgramLTVPercent is the LTV ceiling checked during eligibility
	MaxProgramLTVPercent = 75.0

	// LiquidityRehabBufferRate is the rehab-based liquidity buffer
	LiquidityRehabBufferRate = 0.15

	// LiquidityFixedBuffer is the fixed-floor liquidity buffer in dollars
	LiquidityFixedBuffer = 15000.0

	// DefaultConventionalTermMonths is the amortization term assumed when a
	// conventional loan carries no explicit term
	DefaultConventionalTermMonths = 360

	// EndorsementFee is the flat per-endorsement title charge
	EndorsementFee = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "deal.yaml"
)
