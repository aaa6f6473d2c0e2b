package stats

import (
	"context"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/samber/lo"
)

type StatsUseCase interface {
	OwnerStats(ctx context.Context, ownerID string) (*domain.OwnerStats, error)
	AdminStats(ctx context.Context) (*domain.AdminStats, error)
}

// StatsService recomputes dashboard aggregates from the catalog and the
// ledger on every call. Nothing is cached.
type StatsService struct {
	venues repository.CatalogRepository
	ledger repository.LedgerRepository
}

func NewStatsService(venues repository.CatalogRepository, ledger repository.LedgerRepository) *StatsService {
	return &StatsService{venues: venues, ledger: ledger}
}

func (s *StatsService) OwnerStats(ctx context.Context, ownerID string) (*domain.OwnerStats, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	owned := lo.Filter(venues, func(v domain.Venue, _ int) bool {
		return v.OwnerID == ownerID
	})
	ownedIDs := lo.Associate(owned, func(v domain.Venue) (string, struct{}) {
		return v.ID, struct{}{}
	})
	active := lo.Filter(bookings, func(b domain.Booking, _ int) bool {
		_, ok := ownedIDs[b.Venue.ID]
		return ok && b.Status != domain.BookingStatusCancelled
	})

	return &domain.OwnerStats{
		Revenue:   revenue(active),
		Bookings:  len(active),
		Rating:    meanRating(owned),
		Customers: len(customers(active)),
	}, nil
}

func (s *StatsService) AdminStats(ctx context.Context) (*domain.AdminStats, error) {
	venues, err := s.venues.List(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}

	active := lo.Filter(bookings, func(b domain.Booking, _ int) bool {
		return b.Status != domain.BookingStatusCancelled
	})
	owners := lo.Uniq(lo.FilterMap(venues, func(v domain.Venue, _ int) (string, bool) {
		return v.OwnerID, v.OwnerID != ""
	}))

	return &domain.AdminStats{
		Revenue:           revenue(active),
		Bookings:          len(bookings),
		CompletedBookings: countStatus(bookings, domain.BookingStatusCompleted),
		PendingApprovals:  countStatus(bookings, domain.BookingStatusPending),
		Stadiums:          len(venues),
		ActiveUsers:       len(customers(active)),
		ActiveOwners:      len(owners),
		AverageRating:     meanRating(venues),
	}, nil
}

func revenue(bookings []domain.Booking) float64 {
	return lo.SumBy(bookings, func(b domain.Booking) float64 {
		return b.TotalPrice
	})
}

func meanRating(venues []domain.Venue) float64 {
	if len(venues) == 0 {
		return 0
	}
	total := lo.SumBy(venues, func(v domain.Venue) float64 {
		return v.Rating
	})
	return total / float64(len(venues))
}

// customers returns the distinct non-empty user ids across bookings.
func customers(bookings []domain.Booking) []string {
	return lo.Uniq(lo.FilterMap(bookings, func(b domain.Booking, _ int) (string, bool) {
		return b.UserID, b.UserID != ""
	}))
}

func countStatus(bookings []domain.Booking, status domain.BookingStatus) int {
	return len(lo.Filter(bookings, func(b domain.Booking, _ int) bool {
		return b.Status == status
	}))
}

var _ StatsUseCase = (*StatsService)(nil)
