package ratetable

import "github.com/flipmetrics/flipcalc/pkg/mathutil"

// Pennsylvania sale-rate schedule for owner's title insurance, effective
// May 1, 2016. A single flat band covers everything through $30,000; the
// premium then climbs $7.41 per $1,000 through $45,000 and $6.27 per
// $1,000 through the $250,000 ceiling. Above the ceiling the same $6.27
// increment extrapolates per started $1,000.
const (
	paBaseRate         = 569.00
	paLowBandCeiling   = 30000.0
	paMidBandCeiling   = 45000.0
	paTableCeiling     = 250000.0
	paLowBandIncrement = 7.41
	paIncrementPer1000 = 6.27
)

// Pennsylvania is the statewide title-insurance rate table.
var Pennsylvania = New(pennsylvaniaRanges(), paIncrementPer1000)

func pennsylvaniaRanges() []Range {
	ranges := []Range{{Min: 0, Max: paLowBandCeiling, Rate: paBaseRate}}

	rate := paBaseRate
	for max := paLowBandCeiling + 1000; max <= paMidBandCeiling; max += 1000 {
		rate = mathutil.Round(rate + paLowBandIncrement)
		ranges = append(ranges, Range{Min: max - 1000 + 0.01, Max: max, Rate: rate})
	}
	for max := paMidBandCeiling + 1000; max <= paTableCeiling; max += 1000 {
		rate = mathutil.Round(rate + paIncrementPer1000)
		ranges = append(ranges, Range{Min: max - 1000 + 0.01, Max: max, Rate: rate})
	}
	return ranges
}
