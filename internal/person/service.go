package person

import (
	"context"
	"errors"
)

// Common errors
var ErrPersonNotFound = errors.New("person not found")

// Service handles person business logic
type Service struct {
	repo *Repository
}

// NewService creates a new person service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Create adds a new person to the bill
func (s *Service) Create(ctx context.Context, req *CreatePersonRequest) (*Person, error) {
	return s.repo.Create(ctx, req)
}

// GetByID retrieves a person by their ID
func (s *Service) GetByID(ctx context.Context, id int64) (*Person, error) {
	person, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// List retrieves everyone on the bill
func (s *Service) List(ctx context.Context) ([]*Person, error) {
	return s.repo.List(ctx)
}

// Update modifies an existing person
func (s *Service) Update(ctx context.Context, id int64, req *UpdatePersonRequest) (*Person, error) {
	person, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// Delete removes a person and all of their shares
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
