// Package settle turns signed balances into a short list of payments.
package settle

import "math"

// epsilon is the threshold below which a balance counts as zero, so
// floating-point noise never produces a sub-penny transaction.
const epsilon = 0.005

// Balance is one person's outstanding position: positive means they still
// owe money, negative means they overpaid and are owed money.
type Balance struct {
	PersonID int64
	Name     string
	Amount   float64
}

// Transaction is a single payment instruction between two people.
type Transaction struct {
	FromID int64
	From   string
	ToID   int64
	To     string
	Amount float64
}

// Plan produces the payments that settle the given balances, pairing the
// largest debtor with the largest creditor until one side runs out. The
// greedy largest-first pairing keeps the transaction count minimal for
// realistic balance sets.
//
// When the balances do not net to zero (amounts paid never had to match
// amounts owed), whichever side is left over cannot be matched; those
// leftover positions are returned as the second value so callers can
// surface the over- or under-collection instead of silently dropping it.
func Plan(balances []Balance) ([]Transaction, []Balance) {
	var debtors, creditors []Balance
	for _, b := range balances {
		switch {
		case b.Amount > epsilon:
			debtors = append(debtors, b)
		case b.Amount < -epsilon:
			creditors = append(creditors, b)
		}
	}

	var transactions []Transaction
	for len(debtors) > 0 && len(creditors) > 0 {
		di := largestDebtor(debtors)
		ci := largestCreditor(creditors)

		amount := roundToTwoDecimals(math.Min(debtors[di].Amount, -creditors[ci].Amount))
		transactions = append(transactions, Transaction{
			FromID: debtors[di].PersonID,
			From:   debtors[di].Name,
			ToID:   creditors[ci].PersonID,
			To:     creditors[ci].Name,
			Amount: amount,
		})

		debtors[di].Amount -= amount
		creditors[ci].Amount += amount

		if debtors[di].Amount <= epsilon {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}
		if creditors[ci].Amount >= -epsilon {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
	}

	var unsettled []Balance
	for _, b := range append(debtors, creditors...) {
		b.Amount = roundToTwoDecimals(b.Amount)
		unsettled = append(unsettled, b)
	}

	return transactions, unsettled
}

// largestDebtor returns the index of the debtor with the biggest
// outstanding amount. Ties go to the earlier entry, which keeps the plan
// deterministic for a given input order.
func largestDebtor(debtors []Balance) int {
	best := 0
	for i, d := range debtors {
		if d.Amount > debtors[best].Amount {
			best = i
		}
	}
	return best
}

// largestCreditor returns the index of the creditor owed the most.
func largestCreditor(creditors []Balance) int {
	best := 0
	for i, c := range creditors {
		if c.Amount < creditors[best].Amount {
			best = i
		}
	}
	return best
}

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
