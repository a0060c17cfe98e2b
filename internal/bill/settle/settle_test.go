package settle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// apply replays a plan against the starting balances and returns what is
// left outstanding per person.
func apply(balances []Balance, transactions []Transaction) map[int64]float64 {
	remaining := make(map[int64]float64, len(balances))
	for _, b := range balances {
		remaining[b.PersonID] = b.Amount
	}
	for _, tx := range transactions {
		remaining[tx.FromID] -= tx.Amount
		remaining[tx.ToID] += tx.Amount
	}
	return remaining
}

func TestPlanMinimalTwoDebtorsOneCreditor(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 30},
		{PersonID: 2, Name: "B", Amount: 10},
		{PersonID: 3, Name: "C", Amount: -40},
	}

	transactions, unsettled := Plan(balances)

	require.Len(t, transactions, 2)
	assert.Empty(t, unsettled)

	// Largest debtor pairs first.
	assert.Equal(t, "A", transactions[0].From)
	assert.Equal(t, "C", transactions[0].To)
	assert.InDelta(t, 30, transactions[0].Amount, 0.0001)
	assert.Equal(t, "B", transactions[1].From)
	assert.Equal(t, "C", transactions[1].To)
	assert.InDelta(t, 10, transactions[1].Amount, 0.0001)
}

func TestPlanZeroesEveryBalance(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 12.55},
		{PersonID: 2, Name: "B", Amount: -3.20},
		{PersonID: 3, Name: "C", Amount: 7.10},
		{PersonID: 4, Name: "D", Amount: -16.45},
	}

	transactions, unsettled := Plan(balances)

	assert.Empty(t, unsettled)
	for id, left := range apply(balances, transactions) {
		assert.InDelta(t, 0, left, epsilon, "person %d", id)
	}
}

func TestPlanAllSettled(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 0},
		{PersonID: 2, Name: "B", Amount: 0.004},
		{PersonID: 3, Name: "C", Amount: -0.004},
	}

	transactions, unsettled := Plan(balances)

	assert.Empty(t, transactions)
	assert.Empty(t, unsettled)
}

func TestPlanEmptyInput(t *testing.T) {
	transactions, unsettled := Plan(nil)
	assert.Empty(t, transactions)
	assert.Empty(t, unsettled)
}

func TestPlanSurfacesUnderCollection(t *testing.T) {
	// Total owed exceeds total paid: one debtor is left unmatched once
	// the creditors run out.
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 25},
		{PersonID: 2, Name: "B", Amount: 5},
		{PersonID: 3, Name: "C", Amount: -20},
	}

	transactions, unsettled := Plan(balances)

	require.Len(t, transactions, 1)
	assert.Equal(t, "A", transactions[0].From)
	assert.InDelta(t, 20, transactions[0].Amount, 0.0001)

	require.Len(t, unsettled, 2)
	assert.Equal(t, "A", unsettled[0].Name)
	assert.InDelta(t, 5, unsettled[0].Amount, 0.0001)
	assert.Equal(t, "B", unsettled[1].Name)
	assert.InDelta(t, 5, unsettled[1].Amount, 0.0001)
}

func TestPlanSurfacesOverCollection(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 10},
		{PersonID: 2, Name: "B", Amount: -18},
	}

	transactions, unsettled := Plan(balances)

	require.Len(t, transactions, 1)
	assert.InDelta(t, 10, transactions[0].Amount, 0.0001)

	require.Len(t, unsettled, 1)
	assert.Equal(t, "B", unsettled[0].Name)
	assert.InDelta(t, -8, unsettled[0].Amount, 0.0001)
}

func TestPlanPicksLargestPairEachRound(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 5},
		{PersonID: 2, Name: "B", Amount: 50},
		{PersonID: 3, Name: "C", Amount: -30},
		{PersonID: 4, Name: "D", Amount: -25},
	}

	transactions, unsettled := Plan(balances)

	assert.Empty(t, unsettled)
	require.Len(t, transactions, 3)

	// B (50) pairs with C (30) first, then with D for the remaining 20,
	// leaving A's 5 for D.
	assert.Equal(t, "B", transactions[0].From)
	assert.Equal(t, "C", transactions[0].To)
	assert.InDelta(t, 30, transactions[0].Amount, 0.0001)

	assert.Equal(t, "B", transactions[1].From)
	assert.Equal(t, "D", transactions[1].To)
	assert.InDelta(t, 20, transactions[1].Amount, 0.0001)

	assert.Equal(t, "A", transactions[2].From)
	assert.Equal(t, "D", transactions[2].To)
	assert.InDelta(t, 5, transactions[2].Amount, 0.0001)
}

func TestPlanIsDeterministicOnTies(t *testing.T) {
	balances := []Balance{
		{PersonID: 1, Name: "A", Amount: 10},
		{PersonID: 2, Name: "B", Amount: 10},
		{PersonID: 3, Name: "C", Amount: -20},
	}

	first, _ := Plan(balances)
	second, _ := Plan(balances)

	require.Equal(t, first, second)
	// Earlier entry wins the tie.
	assert.Equal(t, "A", first[0].From)
}
