// Package output provides utilities for formatting and displaying deal
// results.
package output

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/flipmetrics/flipcalc/internal/engine"
	"github.com/flipmetrics/flipcalc/pkg/format"
)

// PrettyFormat writes a human-readable summary of the results.
func PrettyFormat(w io.Writer, results engine.DealResults) {
	p := message.NewPrinter(language.English)

	section := func(name string) {
		fmt.Fprintf(w, "--- %s ---\n", name)
	}
	row := func(label string, value string) {
		fmt.Fprintf(w, "%-28s | %s\n", label, value)
	}

	section("Loan Sizing")
	row("Qualified loan", format.Currency(results.QualifiedLoanAmount))
	row("Max loan from ARV", format.Currency(results.MaxLoanFromARV))
	row("Initial funded", format.Currency(results.InitialFundedAmount))
	row("Rehab holdback", format.Currency(results.HoldbackAmount))
	row("Max allowable offer", format.Currency(results.MaxAllowableOffer))
	row("70% rule max price", format.Currency(results.MaxPurchasePrice70Rule))
	row("Passes 70% rule", fmt.Sprintf("%t", results.Passes70Rule))
	row("LTV", format.Percent(results.LTV))
	row("LTC", format.Percent(results.LTC))
	row("LTARV", format.Percent(results.LTARVCapped))

	section("Cash To Close")
	row("Lender fees", format.Currency(results.TotalLenderFees))
	row("Third-party fees", format.Currency(results.TotalThirdPartyFees))
	row("Gap / down payment", format.Currency(results.GapAmount))
	row("Seller concession", format.Currency(-results.SellerConcessionAmount))
	row("Agent commission credit", format.Currency(-results.BuyerAgentCommissionCredit))
	if results.TotalCashToClose < 0 {
		row("Cash back to borrower", format.Currency(-results.TotalCashToClose))
	} else {
		row("Total cash to close", format.Currency(results.TotalCashToClose))
	}

	section("Holding & Exit")
	row("Monthly payment", format.Currency(results.MonthlyPayment))
	row("Avg monthly interest", format.Currency(results.MonthlyInterestPayment))
	row("Total holding costs", format.Currency(results.TotalHoldingCosts))
	row("Total exit costs", format.Currency(results.TotalExitCosts))

	section("Profitability")
	row("Net profit", format.Currency(results.NetProfit))
	row("Net profit after tax", format.Currency(results.NetProfitAfterTax))
	row("Closing table profit", format.Currency(results.ClosingTableProfit))
	row("Cash-on-cash ROI", format.Percent(results.ROI))
	row("Project ROI", format.Percent(results.ProjectROI))
	row("Net margin", format.Percent(results.NetMargin))
	if results.IRR != nil {
		row("IRR (annualized)", format.Percent(*results.IRR*100))
	} else {
		row("IRR (annualized)", "N/A")
	}

	section("Eligibility")
	row("Required liquidity", format.Currency(results.RequiredLiquidity))
	row("Eligible", fmt.Sprintf("%t", results.IsEligible))
	for _, reason := range results.EligibilityReasons {
		row("", reason)
	}

	if results.SuggestedOffer > 0 {
		section("Work-Backward")
		row("Suggested offer", format.Currency(results.SuggestedOffer))
	}

	section("ARV Scenarios")
	fmt.Fprintf(w, "%-10s | %-14s | %-14s | %s\n", "Scenario", "ARV", "Net Profit", "Difference")
	for _, s := range results.ProfitScenarios {
		_, _ = p.Fprintf(w, "%-10s | %-14s | %-14s | %s\n",
			s.Label, format.Currency(s.ARV), format.Currency(s.NetProfit), format.Currency(s.Difference))
	}
}

// CsvFormat writes the sensitivity and scenario tables in
// comma-separated value format.
func CsvFormat(w io.Writer, results engine.DealResults) {
	fmt.Fprintln(w, `"axis","label","value","net profit","difference","closing table profit"`)

	writeRow := func(axis, label string, value, profit, difference, closingProfit float64) {
		fmt.Fprintf(w, `"%s","%s","%.2f","%.2f","%.2f","%.2f"`+"\n",
			axis, escapeCsv(label), value, profit, difference, closingProfit)
	}

	for _, s := range results.ProfitScenarios {
		writeRow("arv", s.Label, s.ARV, s.NetProfit, s.Difference, s.ClosingTableProfit)
	}
	for _, s := range results.PurchaseSensitivity {
		writeRow("purchase", s.Label, s.Value, s.NetProfit, s.Difference, s.ClosingTableProfit)
	}
	for _, s := range results.RehabSensitivity {
		writeRow("rehab", s.Label, s.Value, s.NetProfit, s.Difference, s.ClosingTableProfit)
	}
}

func escapeCsv(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}
