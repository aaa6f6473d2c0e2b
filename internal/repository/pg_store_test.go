package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVenueRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewVenueRepository(pool)
	assert.NotNil(t, repo)
}

func TestNewBookingRepository(t *testing.T) {
	pool := &pgxpool.Pool{}
	repo := NewBookingRepository(pool)
	assert.NotNil(t, repo)
}

func TestPGStore_Repositories(t *testing.T) {
	store := newPGStore(&pgxpool.Pool{})
	assert.NotNil(t, store.Catalog())
	assert.NotNil(t, store.Ledger())
	assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS bookings")
}

func TestNonNil(t *testing.T) {
	var s []string
	assert.Equal(t, []string{}, nonNil(s))
	assert.Equal(t, []string{"a"}, nonNil([]string{"a"}))
}

type recordingSeeder struct {
	venues   []string
	bookings []string
	failOn   string
}

func (r *recordingSeeder) Upsert(_ context.Context, v domain.Venue) error {
	r.venues = append(r.venues, v.ID)
	return nil
}

func (r *recordingSeeder) InsertIfAbsent(_ context.Context, b domain.Booking) error {
	if b.ID == r.failOn {
		return errors.New("insert failed")
	}
	r.bookings = append(r.bookings, b.ID)
	return nil
}

func TestSeed_LoadsMemoryStoreFixtures(t *testing.T) {
	rec := &recordingSeeder{}
	require.NoError(t, seed(context.Background(), rec, rec))

	memory := NewMemoryStore()
	venues, err := memory.Catalog().List(context.Background())
	require.NoError(t, err)
	bookings, err := memory.Ledger().List(context.Background())
	require.NoError(t, err)

	assert.Len(t, rec.venues, len(venues))
	wantBookings := make([]string, 0, len(bookings))
	for _, b := range bookings {
		wantBookings = append(wantBookings, b.ID)
	}
	assert.Equal(t, wantBookings, rec.bookings)
}

func TestSeed_BookingError(t *testing.T) {
	rec := &recordingSeeder{failOn: "1003"}
	err := seed(context.Background(), rec, rec)
	assert.ErrorContains(t, err, "seed booking 1003")
	assert.Equal(t, []string{"1001", "1002"}, rec.bookings)
}

func TestInsertSeedBookingSQL(t *testing.T) {
	assert.Contains(t, insertSeedBookingSQL, "ON CONFLICT (id) DO NOTHING")
	assert.Contains(t, insertSeedBookingSQL, "$12")
}
