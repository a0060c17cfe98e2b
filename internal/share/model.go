package share

// Share assigns a portions weight of one item to one person. There is at
// most one share per (person, item) pair; a weight of zero is the same as
// having no share at all, so zero-weight upserts delete the row.
type Share struct {
	PersonID int64   `json:"person_id"`
	ItemID   int64   `json:"item_id"`
	Portions float64 `json:"portions"`

	// Populated via JOIN
	PersonName string `json:"person_name,omitempty"`
	ItemName   string `json:"item_name,omitempty"`
}
