package repository

import (
	"context"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
)

type CatalogRepository interface {
	List(ctx context.Context) ([]domain.Venue, error)
	GetByID(ctx context.Context, id string) (*domain.Venue, error)
}

type LedgerRepository interface {
	Append(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error)
}

// Store owns the lifetime of a catalog and a ledger over the same backend.
type Store interface {
	Catalog() CatalogRepository
	Ledger() LedgerRepository
	Close() error
}
