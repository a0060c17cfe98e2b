package share

// UpsertShareRequest represents the request body for setting a share
type UpsertShareRequest struct {
	PersonID int64   `json:"person_id" validate:"required,gt=0"`
	ItemID   int64   `json:"item_id" validate:"required,gt=0"`
	Portions float64 `json:"portions" validate:"gte=0"`
}

// ShareResponse represents the response for a single share
type ShareResponse struct {
	PersonID   int64   `json:"person_id"`
	PersonName string  `json:"person_name,omitempty"`
	ItemID     int64   `json:"item_id"`
	ItemName   string  `json:"item_name,omitempty"`
	Portions   float64 `json:"portions"`
}

// ToResponse converts a Share model to a ShareResponse DTO
func (s *Share) ToResponse() *ShareResponse {
	return &ShareResponse{
		PersonID:   s.PersonID,
		PersonName: s.PersonName,
		ItemID:     s.ItemID,
		ItemName:   s.ItemName,
		Portions:   s.Portions,
	}
}
