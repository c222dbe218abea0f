// Package statedefaults provides state and county cost-default tables
// used to pre-populate deal inputs before calculation. The engine itself
// consumes only the resolved numeric fields.
package statedefaults

import "strings"

// StateDefaults holds the per-state closing-cost defaults. A zero
// TitleInsuranceRate means the jurisdiction prices title insurance from a
// rate table instead of a flat percentage.
type StateDefaults struct {
	Name                  string
	CPLFee                float64
	TitleInsuranceRate    float64 // percent; 0 means use the rate table
	TransferTaxRate       float64 // percent
	PropertyTaxRate       float64 // annual, percent
	InsurancePerMonth100k float64 // monthly insurance cost per $100k of value
}

// CountyCosts holds county-level third-party cost averages.
type CountyCosts struct {
	InspectionCost     float64
	AppraisalCost      float64
	TitleInsuranceRate float64 // fraction of property value
}

var states = map[string]StateDefaults{
	"PA": {Name: "Pennsylvania", CPLFee: 125, TitleInsuranceRate: 0, TransferTaxRate: 1.0, PropertyTaxRate: 1.58, InsurancePerMonth100k: 60},
	"OH": {Name: "Ohio", CPLFee: 100, TitleInsuranceRate: 0.55, TransferTaxRate: 0.4, PropertyTaxRate: 1.53, InsurancePerMonth100k: 55},
	"NY": {Name: "New York", CPLFee: 150, TitleInsuranceRate: 0.65, TransferTaxRate: 0.4, PropertyTaxRate: 1.73, InsurancePerMonth100k: 75},
	"NJ": {Name: "New Jersey", CPLFee: 140, TitleInsuranceRate: 0.55, TransferTaxRate: 1.0, PropertyTaxRate: 2.23, InsurancePerMonth100k: 70},
	"FL": {Name: "Florida", CPLFee: 100, TitleInsuranceRate: 0.55, TransferTaxRate: 0.7, PropertyTaxRate: 0.86, InsurancePerMonth100k: 110},
	"TX": {Name: "Texas", CPLFee: 100, TitleInsuranceRate: 0.55, TransferTaxRate: 0, PropertyTaxRate: 1.68, InsurancePerMonth100k: 90},
	"CA": {Name: "California", CPLFee: 125, TitleInsuranceRate: 0.5, TransferTaxRate: 0.11, PropertyTaxRate: 0.75, InsurancePerMonth100k: 65},
	"GA": {Name: "Georgia", CPLFee: 100, TitleInsuranceRate: 0.5, TransferTaxRate: 0.1, PropertyTaxRate: 0.9, InsurancePerMonth100k: 70},
	"NC": {Name: "North Carolina", CPLFee: 100, TitleInsuranceRate: 0.45, TransferTaxRate: 0.2, PropertyTaxRate: 0.8, InsurancePerMonth100k: 60},
	"AZ": {Name: "Arizona", CPLFee: 110, TitleInsuranceRate: 0.5, TransferTaxRate: 0, PropertyTaxRate: 0.62, InsurancePerMonth100k: 65},
	"TN": {Name: "Tennessee", CPLFee: 100, TitleInsuranceRate: 0.5, TransferTaxRate: 0.37, PropertyTaxRate: 0.66, InsurancePerMonth100k: 60},
	"CO": {Name: "Colorado", CPLFee: 110, TitleInsuranceRate: 0.5, TransferTaxRate: 0.01, PropertyTaxRate: 0.51, InsurancePerMonth100k: 70},
}

var counties = map[string]map[string]CountyCosts{
	"PA": {
		"Allegheny County":    {InspectionCost: 350, AppraisalCost: 450, TitleInsuranceRate: 0.006},
		"Philadelphia County": {InspectionCost: 375, AppraisalCost: 500, TitleInsuranceRate: 0.007},
		"Luzerne County":      {InspectionCost: 325, AppraisalCost: 400, TitleInsuranceRate: 0.005},
		"Wayne County":        {InspectionCost: 330, AppraisalCost: 410, TitleInsuranceRate: 0.005},
		"Default":             {InspectionCost: 350, AppraisalCost: 450, TitleInsuranceRate: 0.006},
	},
	"OH": {
		"Cuyahoga County": {InspectionCost: 320, AppraisalCost: 425, TitleInsuranceRate: 0.0055},
		"Franklin County": {InspectionCost: 330, AppraisalCost: 435, TitleInsuranceRate: 0.006},
		"Default":         {InspectionCost: 325, AppraisalCost: 430, TitleInsuranceRate: 0.0056},
	},
	"FL": {
		"Miami-Dade County":   {InspectionCost: 450, AppraisalCost: 550, TitleInsuranceRate: 0.006},
		"Hillsborough County": {InspectionCost: 380, AppraisalCost: 480, TitleInsuranceRate: 0.0055},
		"Default":             {InspectionCost: 400, AppraisalCost: 500, TitleInsuranceRate: 0.0056},
	},
	"TX": {
		"Harris County": {InspectionCost: 400, AppraisalCost: 500, TitleInsuranceRate: 0.005},
		"Dallas County": {InspectionCost: 380, AppraisalCost: 480, TitleInsuranceRate: 0.0048},
		"Default":       {InspectionCost: 380, AppraisalCost: 480, TitleInsuranceRate: 0.0048},
	},
}

// nationalAverage is the fallback when a state is not in the tables.
var nationalAverage = CountyCosts{InspectionCost: 380, AppraisalCost: 480, TitleInsuranceRate: 0.0055}

// Lookup returns the defaults for a state code, case-insensitively. The
// second return value reports whether the state is known.
func Lookup(stateCode string) (StateDefaults, bool) {
	d, ok := states[strings.ToUpper(strings.TrimSpace(stateCode))]
	return d, ok
}

// StateCodes returns the known state codes in no particular order.
func StateCodes() []string {
	codes := make([]string, 0, len(states))
	for code := range states {
		codes = append(codes, code)
	}
	return codes
}

// CountyLookup returns the third-party cost averages for a county,
// falling back to the state default and then the national average.
func CountyLookup(stateCode, county string) CountyCosts {
	stateCounties, ok := counties[strings.ToUpper(strings.TrimSpace(stateCode))]
	if !ok {
		return nationalAverage
	}
	if county != "" {
		if costs, ok := stateCounties[county]; ok {
			return costs
		}
	}
	if costs, ok := stateCounties["Default"]; ok {
		return costs
	}
	return nationalAverage
}
