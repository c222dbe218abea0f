package irr

// BuildFlipFlows assembles the cash-flow schedule for a flip:
// the initial outlay at month 0, a constant carrying cost for each holding
// month, and the terminal sale proceeds at the final month. Zero amounts
// are omitted.
func BuildFlipFlows(initialOutlay, monthlyCost, terminalProceeds float64, holdingMonths int) []CashFlow {
	var flows []CashFlow

	if initialOutlay != 0 {
		flows = append(flows, CashFlow{Month: 0, Amount: initialOutlay})
	}
	for month := 1; month <= holdingMonths; month++ {
		if monthlyCost != 0 {
			flows = append(flows, CashFlow{Month: month, Amount: monthlyCost})
		}
	}
	if terminalProceeds != 0 {
		flows = append(flows, CashFlow{Month: holdingMonths, Amount: terminalProceeds})
	}

	return flows
}
