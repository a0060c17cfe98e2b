package share

import (
	"context"
	"errors"
)

// Common errors
var ErrUnknownReference = errors.New("share references an unknown person or item")

// Service handles share business logic
type Service struct {
	repo *Repository
}

// NewService creates a new share service with repository dependency injected
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// Upsert sets the portions a person takes of an item. Setting portions to
// zero removes the share, keeping "zero" and "absent" the same thing.
func (s *Service) Upsert(ctx context.Context, req *UpsertShareRequest) (*Share, error) {
	if req.Portions == 0 {
		if err := s.repo.Delete(ctx, req.PersonID, req.ItemID); err != nil {
			return nil, err
		}
		return &Share{PersonID: req.PersonID, ItemID: req.ItemID, Portions: 0}, nil
	}

	return s.repo.Upsert(ctx, req.PersonID, req.ItemID, req.Portions)
}

// Delete removes the share for a (person, item) pair
func (s *Service) Delete(ctx context.Context, personID, itemID int64) error {
	return s.repo.Delete(ctx, personID, itemID)
}

// List retrieves every share on the bill
func (s *Service) List(ctx context.Context) ([]*Share, error) {
	return s.repo.List(ctx)
}
