package person

import "time"

// Person is one participant on the bill
type Person struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	AmountPaid float64   `json:"amount_paid"` // What they have already put in
	CreatedAt  time.Time `json:"created_at"`
}
