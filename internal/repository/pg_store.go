package repository

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/001_init.sql
var schema string

// PGStore serves the catalog and ledger from PostgreSQL.
type PGStore struct {
	pool   *pgxpool.Pool
	venues *PGVenueRepository
	ledger *PGBookingRepository
}

func NewPGStore(ctx context.Context, dsn string) (*PGStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return newPGStore(pool), nil
}

func newPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{
		pool:   pool,
		venues: &PGVenueRepository{db: pool},
		ledger: &PGBookingRepository{db: pool},
	}
}

func (s *PGStore) Catalog() CatalogRepository { return s.venues }

func (s *PGStore) Ledger() LedgerRepository { return s.ledger }

type venueSeeder interface {
	Upsert(ctx context.Context, v domain.Venue) error
}

type bookingSeeder interface {
	InsertIfAbsent(ctx context.Context, b domain.Booking) error
}

// Migrate creates the schema and loads the same demo catalog and ledger the
// memory store starts with.
func (s *PGStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return seed(ctx, s.venues, s.ledger)
}

// seed upserts the demo venues and inserts demo bookings that are missing.
// Bookings already present keep their current status.
func seed(ctx context.Context, venues venueSeeder, ledger bookingSeeder) error {
	for _, v := range SeedVenues() {
		if err := venues.Upsert(ctx, v); err != nil {
			return fmt.Errorf("seed venue %s: %w", v.ID, err)
		}
	}
	for _, b := range SeedBookings() {
		if err := ledger.InsertIfAbsent(ctx, b); err != nil {
			return fmt.Errorf("seed booking %s: %w", b.ID, err)
		}
	}
	return nil
}

func (s *PGStore) Close() error {
	s.pool.Close()
	return nil
}

var _ Store = (*PGStore)(nil)
