package person

// CreatePersonRequest represents the request body for adding a person
type CreatePersonRequest struct {
	Name       string  `json:"name" validate:"required,min=1,max=100"`
	AmountPaid float64 `json:"amount_paid" validate:"gte=0"`
}

// UpdatePersonRequest represents the request body for updating a person
type UpdatePersonRequest struct {
	Name       *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	AmountPaid *float64 `json:"amount_paid,omitempty" validate:"omitempty,gte=0"`
}

// PersonResponse represents the response for a single person
type PersonResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	AmountPaid float64 `json:"amount_paid"`
	CreatedAt  string  `json:"created_at"`
}

// ToResponse converts a Person model to a PersonResponse DTO
func (p *Person) ToResponse() *PersonResponse {
	return &PersonResponse{
		ID:         p.ID,
		Name:       p.Name,
		AmountPaid: p.AmountPaid,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
