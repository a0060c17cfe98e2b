package item

// CreateItemRequest represents the request body for adding an item
type CreateItemRequest struct {
	Name      string  `json:"name" validate:"required,min=1,max=200"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Quantity  int     `json:"quantity" validate:"required,gt=0"`
}

// UpdateItemRequest represents the request body for updating an item
type UpdateItemRequest struct {
	Name      *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	UnitPrice *float64 `json:"unit_price,omitempty" validate:"omitempty,gte=0"`
	Quantity  *int     `json:"quantity,omitempty" validate:"omitempty,gt=0"`
}

// ItemResponse represents the response for a single item
type ItemResponse struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts an Item model to an ItemResponse DTO
func (i *Item) ToResponse() *ItemResponse {
	return &ItemResponse{
		ID:        i.ID,
		Name:      i.Name,
		UnitPrice: i.UnitPrice,
		Quantity:  i.Quantity,
		LineTotal: i.LineTotal(),
		CreatedAt: i.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
