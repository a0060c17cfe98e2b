package item

import "time"

// Item is one priced line on the bill
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	UnitPrice float64   `json:"unit_price"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

// LineTotal returns unit price times quantity
func (i *Item) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
