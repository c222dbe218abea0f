// Package ratetable implements tiered premium lookup over sorted,
// non-overlapping monetary ranges, with linear extrapolation above the
// table ceiling.
package ratetable

import (
	"math"
	"sort"
)

// Range is one tier of a rate table. Bounds are inclusive.
type Range struct {
	Min  float64
	Max  float64
	Rate float64
}

// Table is an ordered set of non-overlapping ranges plus the per-$1,000
// increment applied to amounts above the top range.
type Table struct {
	ranges           []Range
	incrementPer1000 float64
}

// New constructs a Table. The ranges must already be sorted by Max and
// non-overlapping.
func New(ranges []Range, incrementPer1000 float64) Table {
	return Table{ranges: ranges, incrementPer1000: incrementPer1000}
}

// Ceiling returns the upper bound of the table's top range.
func (t Table) Ceiling() float64 {
	if len(t.ranges) == 0 {
		return 0
	}
	return t.ranges[len(t.ranges)-1].Max
}

// Lookup returns the premium for the given monetary amount. Amounts at or
// below zero return 0. Amounts above the table ceiling extrapolate by one
// increment per started $1,000 of excess.
func (t Table) Lookup(amount float64) float64 {
	if amount <= 0 || len(t.ranges) == 0 {
		return 0
	}

	top := t.ranges[len(t.ranges)-1]
	if amount > top.Max {
		excess := amount - top.Max
		return top.Rate + math.Ceil(excess/1000)*t.incrementPer1000
	}

	// Ranges are sorted by Max, so binary search for the first range that
	// can contain the amount.
	i := sort.Search(len(t.ranges), func(i int) bool {
		return amount <= t.ranges[i].Max
	})
	return t.ranges[i].Rate
}
