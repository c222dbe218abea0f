package engine

import "fmt"

// Severity classifies an advisory finding. Errors should block submission
// in a calling UI; warnings should not. Neither ever prevents the engine
// from calculating.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is one advisory validation result.
type Finding struct {
	Field    string
	Message  string
	Severity Severity
}

// ValidateInput checks a DealInput for nonsensical values that would
// produce meaningless results. It is a separate pass over the input; the
// engine itself accepts anything and guards its own arithmetic.
func ValidateInput(in DealInput) []Finding {
	var findings []Finding

	add := func(field, message string, severity Severity) {
		findings = append(findings, Finding{Field: field, Message: message, Severity: severity})
	}

	// Purchase price.
	switch {
	case in.PurchasePrice <= 0:
		add("purchasePrice", "Purchase price must be greater than $0", SeverityError)
	case in.PurchasePrice < 10000:
		add("purchasePrice", "Purchase price less than $10,000 seems unrealistic for most markets", SeverityWarning)
	case in.PurchasePrice > 10000000:
		add("purchasePrice", "Purchase price exceeds $10M - verify this is intentional", SeverityWarning)
	}

	// ARV.
	switch {
	case in.ARV <= 0:
		add("arv", "After Repair Value (ARV) must be greater than $0", SeverityError)
	case in.PurchasePrice > 0 && in.ARV < in.PurchasePrice:
		add("arv", "ARV cannot be less than purchase price", SeverityError)
	case in.PurchasePrice > 0:
		appreciation := (in.ARV - in.PurchasePrice) / in.PurchasePrice * 100
		if appreciation < 5 {
			add("arv", fmt.Sprintf("ARV appreciation is only %.1f%% - ensure your rehab is accounted for in ARV", appreciation), SeverityWarning)
		} else if appreciation > 100 {
			add("arv", fmt.Sprintf("ARV appreciation of %.1f%% is unusually high - double-check comparables", appreciation), SeverityWarning)
		}
	}

	// Rehab budget.
	switch {
	case in.RehabBudget < 0:
		add("rehabBudget", "Rehab budget cannot be negative", SeverityError)
	case in.PurchasePrice > 0 && in.RehabBudget > in.PurchasePrice*2:
		add("rehabBudget", "Rehab budget exceeds twice the purchase price - verify the scope", SeverityWarning)
	}

	// Credit score.
	if in.FICOScore < 300 || in.FICOScore > 850 {
		add("ficoScore", "FICO score must be between 300 and 850", SeverityError)
	}

	// Interest rate.
	switch {
	case in.InterestRate < 0:
		add("interestRate", "Interest rate cannot be negative", SeverityError)
	case in.InterestRate > 25:
		add("interestRate", "Interest rate above 25% is outside typical lending ranges", SeverityWarning)
	}

	// Holding period.
	switch {
	case in.HoldingPeriodMonths < 0:
		add("holdingPeriodMonths", "Holding period cannot be negative", SeverityError)
	case in.HoldingPeriodMonths > 24:
		add("holdingPeriodMonths", "Holding period beyond 24 months erodes flip economics - verify", SeverityWarning)
	}

	// Financing percentage.
	fin := in.EffectiveFinancingPercent()
	if fin < 0 || fin > 100 {
		add("financingPercent", "Financing percentage must be between 0 and 100", SeverityError)
	}

	// Experience.
	if in.ExperienceLevel < 0 {
		add("experienceLevel", "Experience level cannot be negative", SeverityError)
	}

	// Work-backward mode.
	if in.WorkBackward && in.TargetType != TargetROI && in.TargetType != TargetLTC {
		add("targetType", "Work-backward mode requires a target type of ROI or LTC", SeverityError)
	}

	return findings
}

// HasBlockingFindings reports whether any finding carries error severity.
func HasBlockingFindings(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
