package output

import (
	"strings"
	"testing"

	"github.com/flipmetrics/flipcalc/internal/engine"
)

func sampleResults() engine.DealResults {
	return engine.Calculate(engine.DealInput{
		PurchasePrice:       100000,
		AppraisedValue:      200000,
		RehabBudget:         30000,
		ARV:                 200000,
		FinancingPercent:    100,
		LoanType:            engine.LoanHardMoney,
		InterestRate:        12,
		OriginationPoints:   1,
		TitleInsuranceRate:  1.0,
		HoldingPeriodMonths: 6,
		ExitStrategy:        engine.ExitSell,
		Liquidity:           20000,
		FICOScore:           700,
	}, engine.StandardFeeProfile())
}

func TestPrettyFormat(t *testing.T) {
	var buf strings.Builder
	PrettyFormat(&buf, sampleResults())
	out := buf.String()

	for _, expected := range []string{
		"--- Loan Sizing ---",
		"Qualified loan",
		"$130,000.00",
		"--- Profitability ---",
		"Net profit",
		"--- Eligibility ---",
		"--- ARV Scenarios ---",
		"Baseline",
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("PrettyFormat output missing %q", expected)
		}
	}
}

func TestCsvFormat(t *testing.T) {
	var buf strings.Builder
	CsvFormat(&buf, sampleResults())
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	// Header plus 5 ARV rows plus 7 purchase rows plus 7 rehab rows.
	if len(lines) != 20 {
		t.Fatalf("CsvFormat produced %d lines, expected 20", len(lines))
	}
	if !strings.HasPrefix(lines[0], `"axis","label"`) {
		t.Errorf("CsvFormat header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], `"arv",`) {
		t.Errorf("first data row = %q, expected an arv row", lines[1])
	}
	if !strings.HasPrefix(lines[6], `"purchase",`) {
		t.Errorf("row 6 = %q, expected a purchase row", lines[6])
	}
	if !strings.HasPrefix(lines[13], `"rehab",`) {
		t.Errorf("row 13 = %q, expected a rehab row", lines[13])
	}
}
