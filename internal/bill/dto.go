package bill

// ServiceChargeRequest represents the request body for setting the service charge
type ServiceChargeRequest struct {
	Percent float64 `json:"percent" validate:"gte=0"`
}

// ServiceChargeResponse represents the current service-charge setting
type ServiceChargeResponse struct {
	Percent float64 `json:"percent"`
}

// PersonDue is one person's computed share of the bill
type PersonDue struct {
	PersonID   int64   `json:"person_id"`
	Name       string  `json:"name"`
	AmountOwed float64 `json:"amount_owed"`
}

// DuesResponse carries every person's share plus the bill-level totals
type DuesResponse struct {
	Dues                 []PersonDue `json:"dues"`
	Subtotal             float64     `json:"subtotal"`
	ServiceChargePercent float64     `json:"service_charge_percent"`
	GrandTotal           float64     `json:"grand_total"`
}

// TransactionResponse is a single payment instruction in a settlement plan
type TransactionResponse struct {
	FromID int64   `json:"from_id"`
	From   string  `json:"from"`
	ToID   int64   `json:"to_id"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// ResidualBalance is a balance the plan could not match because the other
// side ran out, which happens when paid totals differ from owed totals
type ResidualBalance struct {
	PersonID int64   `json:"person_id"`
	Name     string  `json:"name"`
	Balance  float64 `json:"balance"`
}

// SettlementsResponse carries the payment plan and any leftover balances
type SettlementsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Unsettled    []ResidualBalance     `json:"unsettled,omitempty"`
}
