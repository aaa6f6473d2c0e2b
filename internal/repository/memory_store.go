package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
)

// MemoryStore keeps venues and bookings in process memory and delays every
// call by a fixed latency to behave like a remote backend.
type MemoryStore struct {
	mu       sync.RWMutex
	venues   []domain.Venue
	bookings []domain.Booking
	latency  time.Duration
	closed   bool
}

type MemoryOption func(*MemoryStore)

func WithLatency(d time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.latency = d
	}
}

func WithVenues(venues []domain.Venue) MemoryOption {
	return func(s *MemoryStore) {
		s.venues = cloneVenues(venues)
	}
}

func WithBookings(bookings []domain.Booking) MemoryOption {
	return func(s *MemoryStore) {
		s.bookings = append([]domain.Booking(nil), bookings...)
	}
}

// NewMemoryStore opens a store seeded with the demo catalog and bookings
// unless options replace them.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		venues:   SeedVenues(),
		bookings: SeedBookings(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStore) Catalog() CatalogRepository { return &memoryCatalog{store: s} }

func (s *MemoryStore) Ledger() LedgerRepository { return &memoryLedger{store: s} }

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// roundTrip waits out the simulated latency and checks the store is open.
func (s *MemoryStore) roundTrip(ctx context.Context) error {
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", domain.ErrTransient, ctx.Err())
		}
	}

	s.mu.RLock()
	closed := s.closed
	s.mu.RUnlock()
	if closed {
		return fmt.Errorf("%w: store is closed", domain.ErrTransient)
	}
	return nil
}

type memoryCatalog struct {
	store *MemoryStore
}

func (c *memoryCatalog) List(ctx context.Context) ([]domain.Venue, error) {
	if err := c.store.roundTrip(ctx); err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	return cloneVenues(c.store.venues), nil
}

func (c *memoryCatalog) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	if err := c.store.roundTrip(ctx); err != nil {
		return nil, err
	}
	c.store.mu.RLock()
	defer c.store.mu.RUnlock()
	for _, v := range c.store.venues {
		if v.ID == id {
			out := v.Clone()
			return &out, nil
		}
	}
	return nil, domain.ErrVenueNotFound
}

type memoryLedger struct {
	store *MemoryStore
}

func (l *memoryLedger) Append(ctx context.Context, booking *domain.Booking) error {
	if err := l.store.roundTrip(ctx); err != nil {
		return err
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	l.store.bookings = append(l.store.bookings, *booking)
	return nil
}

func (l *memoryLedger) List(ctx context.Context) ([]domain.Booking, error) {
	if err := l.store.roundTrip(ctx); err != nil {
		return nil, err
	}
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	return append([]domain.Booking{}, l.store.bookings...), nil
}

func (l *memoryLedger) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := l.store.roundTrip(ctx); err != nil {
		return nil, err
	}
	l.store.mu.RLock()
	defer l.store.mu.RUnlock()
	for _, b := range l.store.bookings {
		if b.ID == id {
			out := b
			return &out, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func (l *memoryLedger) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	if err := l.store.roundTrip(ctx); err != nil {
		return nil, err
	}
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	for i := range l.store.bookings {
		if l.store.bookings[i].ID == id {
			l.store.bookings[i].Status = status
			out := l.store.bookings[i]
			return &out, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

func cloneVenues(venues []domain.Venue) []domain.Venue {
	out := make([]domain.Venue, 0, len(venues))
	for _, v := range venues {
		out = append(out, v.Clone())
	}
	return out
}

var (
	_ Store             = (*MemoryStore)(nil)
	_ CatalogRepository = (*memoryCatalog)(nil)
	_ LedgerRepository  = (*memoryLedger)(nil)
)
