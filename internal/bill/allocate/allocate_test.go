package allocate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pennies(v float64) int64 {
	return int64(math.Round(v * 100))
}

func sumOwed(owed map[int64]float64) float64 {
	var sum float64
	for _, v := range owed {
		sum += v
	}
	return sum
}

func TestAllocate(t *testing.T) {
	tests := []struct {
		name                 string
		people               []Person
		items                []Item
		shares               []Share
		serviceChargePercent float64
		want                 map[int64]float64
	}{
		{
			name: "two people with service charge",
			people: []Person{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
			},
			items: []Item{
				{ID: 1, Name: "Item1", UnitPrice: 10.00, Quantity: 1},
				{ID: 2, Name: "Item2", UnitPrice: 7.00, Quantity: 1},
			},
			shares: []Share{
				{PersonID: 1, ItemID: 1, Portions: 1},
				{PersonID: 2, ItemID: 1, Portions: 1},
				{PersonID: 2, ItemID: 2, Portions: 1},
			},
			serviceChargePercent: 10,
			// Item1 split 1:1 -> 5.00 each; Item2 fully to B -> 7.00.
			// x1.10 -> A=5.50, B=13.20; grand total 18.70.
			want: map[int64]float64{1: 5.50, 2: 13.20},
		},
		{
			name:   "single person owes the full bill",
			people: []Person{{ID: 7, Name: "Solo"}},
			items: []Item{
				{ID: 1, UnitPrice: 12.30, Quantity: 2},
				{ID: 2, UnitPrice: 4.15, Quantity: 1},
			},
			shares:               []Share{{PersonID: 7, ItemID: 1, Portions: 3}},
			serviceChargePercent: 12.5,
			// (24.60 + 4.15) * 1.125 = 32.34375 -> 32.34
			want: map[int64]float64{7: 32.34},
		},
		{
			name:   "no people",
			people: nil,
			items:  []Item{{ID: 1, UnitPrice: 9.99, Quantity: 1}},
			want:   map[int64]float64{},
		},
		{
			name: "quantity multiplies the line total",
			people: []Person{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
			},
			items: []Item{{ID: 1, UnitPrice: 3.50, Quantity: 4}},
			shares: []Share{
				{PersonID: 1, ItemID: 1, Portions: 1},
				{PersonID: 2, ItemID: 1, Portions: 1},
			},
			want: map[int64]float64{1: 7.00, 2: 7.00},
		},
		{
			name: "weights need not sum to 100",
			people: []Person{
				{ID: 1, Name: "A"},
				{ID: 2, Name: "B"},
				{ID: 3, Name: "C"},
			},
			items: []Item{{ID: 1, UnitPrice: 30.00, Quantity: 1}},
			shares: []Share{
				{PersonID: 1, ItemID: 1, Portions: 0.5},
				{PersonID: 2, ItemID: 1, Portions: 1},
				{PersonID: 3, ItemID: 1, Portions: 1.5},
			},
			want: map[int64]float64{1: 5.00, 2: 10.00, 3: 15.00},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.people, tt.items, tt.shares, tt.serviceChargePercent)
			require.Len(t, got, len(tt.want))
			for id, amount := range tt.want {
				assert.InDelta(t, amount, got[id], 0.0001, "person %d", id)
			}
		})
	}
}

func TestAllocateSumsToGrandTotalExactly(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}
	// 10.00 / 3 does not round cleanly, so independent rounding would
	// drift a penny without reconciliation.
	items := []Item{{ID: 1, UnitPrice: 10.00, Quantity: 1}}
	shares := []Share{
		{PersonID: 1, ItemID: 1, Portions: 1},
		{PersonID: 2, ItemID: 1, Portions: 1},
		{PersonID: 3, ItemID: 1, Portions: 1},
	}

	owed := Allocate(people, items, shares, 0)

	assert.Equal(t, pennies(10.00), pennies(sumOwed(owed)))
	assert.InDelta(t, 3.33, owed[1], 0.0001)
	assert.InDelta(t, 3.33, owed[2], 0.0001)
	// Last person absorbs the rounding remainder.
	assert.InDelta(t, 3.34, owed[3], 0.0001)
}

func TestAllocateSumExactnessForAnyOrder(t *testing.T) {
	base := []Person{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
		{ID: 4, Name: "D"},
	}
	items := []Item{
		{ID: 1, UnitPrice: 13.37, Quantity: 3},
		{ID: 2, UnitPrice: 0.99, Quantity: 7},
		{ID: 3, UnitPrice: 21.05, Quantity: 1},
	}
	shares := []Share{
		{PersonID: 1, ItemID: 1, Portions: 2},
		{PersonID: 2, ItemID: 1, Portions: 1},
		{PersonID: 3, ItemID: 1, Portions: 0.5},
		{PersonID: 2, ItemID: 2, Portions: 1},
		{PersonID: 4, ItemID: 2, Portions: 3},
		{PersonID: 1, ItemID: 3, Portions: 1},
		{PersonID: 4, ItemID: 3, Portions: 1},
	}
	const serviceCharge = 12.5

	wantTotal := pennies(math.Round(GrandTotal(items, serviceCharge)*100) / 100)

	orders := [][]Person{
		base,
		{base[3], base[2], base[1], base[0]},
		{base[1], base[3], base[0], base[2]},
	}
	for _, people := range orders {
		owed := Allocate(people, items, shares, serviceCharge)
		assert.Equal(t, wantTotal, pennies(sumOwed(owed)))
	}
}

func TestAllocateUnassignedItemFallsOnLastPerson(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	items := []Item{
		{ID: 1, UnitPrice: 8.00, Quantity: 1},
		{ID: 2, UnitPrice: 5.00, Quantity: 1}, // nobody takes this one
	}
	shares := []Share{
		{PersonID: 1, ItemID: 1, Portions: 1},
		{PersonID: 2, ItemID: 1, Portions: 1},
	}

	owed := Allocate(people, items, shares, 0)

	// Grand total still includes the unassigned item, so reconciliation
	// pushes its full cost onto the last person.
	assert.InDelta(t, 4.00, owed[1], 0.0001)
	assert.InDelta(t, 9.00, owed[2], 0.0001)
	assert.Equal(t, pennies(13.00), pennies(sumOwed(owed)))
}

func TestAllocateZeroPortionShareIsIgnored(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
	}
	items := []Item{{ID: 1, UnitPrice: 6.00, Quantity: 1}}
	shares := []Share{
		{PersonID: 1, ItemID: 1, Portions: 0},
		{PersonID: 2, ItemID: 1, Portions: 2},
	}

	owed := Allocate(people, items, shares, 0)

	assert.InDelta(t, 0.00, owed[1], 0.0001)
	assert.InDelta(t, 6.00, owed[2], 0.0001)
}

func TestAllocateIsDeterministic(t *testing.T) {
	people := []Person{
		{ID: 1, Name: "A"},
		{ID: 2, Name: "B"},
		{ID: 3, Name: "C"},
	}
	items := []Item{{ID: 1, UnitPrice: 10.00, Quantity: 1}}
	shares := []Share{
		{PersonID: 1, ItemID: 1, Portions: 1},
		{PersonID: 2, ItemID: 1, Portions: 1},
		{PersonID: 3, ItemID: 1, Portions: 1},
	}

	first := Allocate(people, items, shares, 5)
	second := Allocate(people, items, shares, 5)

	assert.Equal(t, first, second)
}

func TestGrandTotal(t *testing.T) {
	items := []Item{
		{ID: 1, UnitPrice: 10.00, Quantity: 1},
		{ID: 2, UnitPrice: 7.00, Quantity: 1},
	}
	assert.InDelta(t, 18.70, GrandTotal(items, 10), 0.0001)
	assert.InDelta(t, 17.00, GrandTotal(items, 0), 0.0001)
	assert.InDelta(t, 0, GrandTotal(nil, 10), 0.0001)
}
