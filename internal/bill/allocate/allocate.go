// Package allocate computes each person's share of a bill.
//
// Items are split by portions: a person's fraction of an item's cost is
// their portions divided by the total portions everyone put on that item.
// Portions are weights, not percentages, so they need not sum to anything
// in particular. A flat service-charge percentage is applied on top, and
// rounding is reconciled so the per-person amounts sum to the rounded
// grand total exactly.
package allocate

import "math"

// Person is a snapshot of one bill participant.
type Person struct {
	ID         int64
	Name       string
	AmountPaid float64
}

// Item is a snapshot of one priced line on the bill.
type Item struct {
	ID        int64
	Name      string
	UnitPrice float64
	Quantity  int
}

// LineTotal returns the item's unit price times its quantity.
func (i Item) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Share assigns a portions weight of one item to one person.
// A zero weight is equivalent to no share at all.
type Share struct {
	PersonID int64
	ItemID   int64
	Portions float64
}

// GrandTotal returns the unrounded total of the bill: the sum of all line
// totals with the service charge applied. Unassigned items still count.
func GrandTotal(items []Item, serviceChargePercent float64) float64 {
	var subtotal float64
	for _, it := range items {
		subtotal += it.LineTotal()
	}
	return subtotal * (1 + serviceChargePercent/100)
}

// Allocate maps each person's ID to the amount they owe, rounded to two
// decimals. The amounts always sum to the rounded grand total: everyone but
// the final person in the slice is rounded independently, and the final
// person is assigned the exact remainder. Callers that need a stable
// remainder-absorber must pass people in a stable order.
//
// Items whose total portions are zero are allocated to nobody; their cost
// still sits in the grand total, so the reconciliation step pushes it onto
// the final person. Inputs are assumed non-negative and referentially
// consistent; the only guard here is against dividing by zero portions.
func Allocate(people []Person, items []Item, shares []Share, serviceChargePercent float64) map[int64]float64 {
	owed := make(map[int64]float64, len(people))
	if len(people) == 0 {
		return owed
	}

	totalPortions := make(map[int64]float64, len(items))
	for _, s := range shares {
		totalPortions[s.ItemID] += s.Portions
	}

	lineTotals := make(map[int64]float64, len(items))
	for _, it := range items {
		lineTotals[it.ID] = it.LineTotal()
	}

	raw := make(map[int64]float64, len(people))
	for _, s := range shares {
		if s.Portions <= 0 {
			continue
		}
		total := totalPortions[s.ItemID]
		if total <= 0 {
			continue
		}
		raw[s.PersonID] += lineTotals[s.ItemID] * s.Portions / total
	}

	multiplier := 1 + serviceChargePercent/100
	grandTotal := roundToTwoDecimals(GrandTotal(items, serviceChargePercent))

	var runningSum float64
	for idx, p := range people {
		if idx == len(people)-1 {
			owed[p.ID] = roundToTwoDecimals(grandTotal - runningSum)
			break
		}
		amount := roundToTwoDecimals(raw[p.ID] * multiplier)
		owed[p.ID] = amount
		runningSum += amount
	}

	return owed
}

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
