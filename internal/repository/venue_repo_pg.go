package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const venueColumns = `id, name, description, location, type, price, rating, review_count, image_url,
	images, amenities, opening_hours, available_dates, time_slots, reviews, bookings, owner_id`

type PGVenueRepository struct {
	db *pgxpool.Pool
}

func NewVenueRepository(db *pgxpool.Pool) CatalogRepository {
	return &PGVenueRepository{db: db}
}

func (r *PGVenueRepository) List(ctx context.Context) ([]domain.Venue, error) {
	rows, err := r.db.Query(ctx, `SELECT `+venueColumns+` FROM venues ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := make([]domain.Venue, 0)
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, *v)
	}
	return venues, rows.Err()
}

func (r *PGVenueRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	v, err := scanVenue(r.db.QueryRow(ctx, `SELECT `+venueColumns+` FROM venues WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrVenueNotFound
	}
	return v, err
}

// Upsert writes v, keeping the original position of an existing row.
func (r *PGVenueRepository) Upsert(ctx context.Context, v domain.Venue) error {
	_, err := r.db.Exec(ctx, `INSERT INTO venues (`+venueColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name, description = EXCLUDED.description, location = EXCLUDED.location,
			type = EXCLUDED.type, price = EXCLUDED.price, rating = EXCLUDED.rating,
			review_count = EXCLUDED.review_count, image_url = EXCLUDED.image_url, images = EXCLUDED.images,
			amenities = EXCLUDED.amenities, opening_hours = EXCLUDED.opening_hours,
			available_dates = EXCLUDED.available_dates, time_slots = EXCLUDED.time_slots,
			reviews = EXCLUDED.reviews, bookings = EXCLUDED.bookings, owner_id = EXCLUDED.owner_id`,
		v.ID, v.Name, v.Description, v.Location, v.Type, v.Price, v.Rating, v.ReviewCount, v.ImageURL,
		nonNil(v.Images), nonNil(v.Amenities), nonNil(v.OpeningHours), nonNil(v.AvailableDates),
		nonNil(v.TimeSlots), nonNil(v.Reviews), v.Bookings, v.OwnerID)
	return err
}

func scanVenue(row pgx.Row) (*domain.Venue, error) {
	var v domain.Venue
	if err := row.Scan(&v.ID, &v.Name, &v.Description, &v.Location, &v.Type, &v.Price, &v.Rating,
		&v.ReviewCount, &v.ImageURL, &v.Images, &v.Amenities, &v.OpeningHours, &v.AvailableDates,
		&v.TimeSlots, &v.Reviews, &v.Bookings, &v.OwnerID); err != nil {
		return nil, err
	}
	return &v, nil
}

// nonNil keeps JSONB columns as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

var _ CatalogRepository = (*PGVenueRepository)(nil)
