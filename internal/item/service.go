package item

import (
	"context"
	"errors"
)

// Common errors
var ErrItemNotFound = errors.New("item not found")

// Service handles item business logic
type Service struct {
	repo *Repository
}

// NewService creates a new item service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new item to the bill
func (s *Service) Create(ctx context.Context, req *CreateItemRequest) (*Item, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves an item by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// List retrieves every item on the bill
func (s *Service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing item
func (s *Service) Update(ctx context.Context, id int64, req *UpdateItemRequest) (*Item, error) {
	item, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}

// Delete removes an item and every share that references it
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
