package bill

import (
	"context"
	"math"

	"github.com/hqasem/billsplit/internal/bill/allocate"
	"github.com/hqasem/billsplit/internal/bill/settle"
	"github.com/hqasem/billsplit/internal/item"
	"github.com/hqasem/billsplit/internal/person"
	"github.com/hqasem/billsplit/internal/share"
)

// Service computes the derived views of the bill. It never writes to the
// entity tables; it reads a snapshot and hands it to the pure allocate and
// settle packages, so recomputing after every edit is always safe.
type Service struct {
	repo       *Repository
	personRepo *person.Repository
	itemRepo   *item.Repository
	shareRepo  *share.Repository
}

// NewService creates a new bill service with the snapshot repositories injected
func NewService(repo *Repository, personRepo *person.Repository, itemRepo *item.Repository, shareRepo *share.Repository) *Service {
	return &Service{
		repo:       repo,
		personRepo: personRepo,
		itemRepo:   itemRepo,
		shareRepo:  shareRepo,
	}
}

// GetServiceCharge returns the current service-charge percentage
func (s *Service) GetServiceCharge(ctx context.Context) (float64, error) {
	return s.repo.GetServiceChargePercent(ctx)
}

// SetServiceCharge replaces the service-charge percentage
func (s *Service) SetServiceCharge(ctx context.Context, percent float64) error {
	return s.repo.SetServiceChargePercent(ctx, percent)
}

// snapshot is a consistent read of everything the allocator needs.
type snapshot struct {
	people               []*person.Person
	items                []allocate.Item
	shares               []allocate.Share
	serviceChargePercent float64
}

func (s *Service) loadSnapshot(ctx context.Context) (*snapshot, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	shares, err := s.shareRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	percent, err := s.repo.GetServiceChargePercent(ctx)
	if err != nil {
		return nil, err
	}

	snap := &snapshot{
		people:               people,
		items:                make([]allocate.Item, len(items)),
		shares:               make([]allocate.Share, len(shares)),
		serviceChargePercent: percent,
	}
	for i, it := range items {
		snap.items[i] = allocate.Item{ID: it.ID, Name: it.Name, UnitPrice: it.UnitPrice, Quantity: it.Quantity}
	}
	for i, sh := range shares {
		snap.shares[i] = allocate.Share{PersonID: sh.PersonID, ItemID: sh.ItemID, Portions: sh.Portions}
	}

	return snap, nil
}

// Dues computes each person's share of the bill. People are iterated in
// ascending id order, so the most recently added person absorbs the
// rounding remainder.
func (s *Service) Dues(ctx context.Context) (*DuesResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	people := make([]allocate.Person, len(snap.people))
	for i, p := range snap.people {
		people[i] = allocate.Person{ID: p.ID, Name: p.Name, AmountPaid: p.AmountPaid}
	}

	owed := allocate.Allocate(people, snap.items, snap.shares, snap.serviceChargePercent)

	dues := make([]PersonDue, len(snap.people))
	for i, p := range snap.people {
		dues[i] = PersonDue{
			PersonID:   p.ID,
			Name:       p.Name,
			AmountOwed: owed[p.ID],
		}
	}

	grandTotal := allocate.GrandTotal(snap.items, snap.serviceChargePercent)
	subtotal := allocate.GrandTotal(snap.items, 0)

	return &DuesResponse{
		Dues:                 dues,
		Subtotal:             roundToTwoDecimals(subtotal),
		ServiceChargePercent: snap.serviceChargePercent,
		GrandTotal:           roundToTwoDecimals(grandTotal),
	}, nil
}

// Settlements computes the payment plan that clears everyone's balance,
// where balance is amount owed minus amount already paid.
func (s *Service) Settlements(ctx context.Context) (*SettlementsResponse, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	people := make([]allocate.Person, len(snap.people))
	for i, p := range snap.people {
		people[i] = allocate.Person{ID: p.ID, Name: p.Name, AmountPaid: p.AmountPaid}
	}

	owed := allocate.Allocate(people, snap.items, snap.shares, snap.serviceChargePercent)

	balances := make([]settle.Balance, len(snap.people))
	for i, p := range snap.people {
		balances[i] = settle.Balance{
			PersonID: p.ID,
			Name:     p.Name,
			Amount:   owed[p.ID] - p.AmountPaid,
		}
	}

	transactions, unsettled := settle.Plan(balances)

	resp := &SettlementsResponse{
		Transactions: make([]TransactionResponse, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = TransactionResponse{
			FromID: tx.FromID,
			From:   tx.From,
			ToID:   tx.ToID,
			To:     tx.To,
			Amount: tx.Amount,
		}
	}
	for _, b := range unsettled {
		resp.Unsettled = append(resp.Unsettled, ResidualBalance{
			PersonID: b.PersonID,
			Name:     b.Name,
			Balance:  b.Amount,
		})
	}

	return resp, nil
}

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
