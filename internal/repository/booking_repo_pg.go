package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, venue_id, venue_name, venue_location, venue_image_url, user_id, date,
	time_slot, status, total_price, payment_method, created_at`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) LedgerRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Append(ctx context.Context, b *domain.Booking) error {
	date, err := b.Date.Time()
	if err != nil {
		return err
	}
	return r.db.QueryRow(ctx, `INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now())
		RETURNING created_at`,
		b.ID, b.Venue.ID, b.Venue.Name, b.Venue.Location, b.Venue.ImageURL, b.UserID, date,
		b.Time, b.Status, b.TotalPrice, b.PaymentMethod).Scan(&b.CreatedAt)
}

const insertSeedBookingSQL = `INSERT INTO bookings (` + bookingColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (id) DO NOTHING`

// InsertIfAbsent writes b with its own created_at and leaves an existing row
// with the same id untouched.
func (r *PGBookingRepository) InsertIfAbsent(ctx context.Context, b domain.Booking) error {
	date, err := b.Date.Time()
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, insertSeedBookingSQL,
		b.ID, b.Venue.ID, b.Venue.Name, b.Venue.Location, b.Venue.ImageURL, b.UserID, date,
		b.Time, b.Status, b.TotalPrice, b.PaymentMethod, b.CreatedAt)
	return err
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	return b, err
}

func (r *PGBookingRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	b, err := scanBooking(r.db.QueryRow(ctx, `UPDATE bookings SET status=$1 WHERE id=$2 RETURNING `+bookingColumns, status, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrBookingNotFound
	}
	return b, err
}

func scanBooking(row pgx.Row) (*domain.Booking, error) {
	var (
		b    domain.Booking
		date time.Time
	)
	if err := row.Scan(&b.ID, &b.Venue.ID, &b.Venue.Name, &b.Venue.Location, &b.Venue.ImageURL, &b.UserID,
		&date, &b.Time, &b.Status, &b.TotalPrice, &b.PaymentMethod, &b.CreatedAt); err != nil {
		return nil, err
	}
	b.Date = domain.DateOf(date)
	return &b, nil
}

var _ LedgerRepository = (*PGBookingRepository)(nil)
