package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/kafka"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) Append(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockLedgerRepository) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockLedgerRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockLedgerRepository) UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) List(ctx context.Context) ([]domain.Venue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Venue), args.Error(1)
}

func (m *MockCatalogRepository) GetByID(ctx context.Context, id string) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

// 2025-01-16, mid-morning
func fixedClock() time.Time {
	return time.Date(2025, time.January, 16, 10, 0, 0, 0, time.UTC)
}

func seededVenue(t *testing.T, id string) *domain.Venue {
	t.Helper()
	for _, v := range repository.SeedVenues() {
		if v.ID == id {
			return &v
		}
	}
	t.Fatalf("no seeded venue %q", id)
	return nil
}

func newMemoryService(opts ...BookingServiceOption) (*BookingService, *repository.MemoryStore) {
	store := repository.NewMemoryStore()
	opts = append([]BookingServiceOption{WithClock(fixedClock)}, opts...)
	return NewBookingService(store.Ledger(), store.Catalog(), opts...), store
}

func TestBookingService_CreateBooking_Success(t *testing.T) {
	mockLedger := &MockLedgerRepository{}
	mockCatalog := &MockCatalogRepository{}
	mockProducer := &MockProducer{}

	service := NewBookingService(mockLedger, mockCatalog,
		WithProducer(mockProducer, "bookings"),
		WithNotificationsTopic("notifications"),
		WithClock(fixedClock),
		WithIDGenerator(func() string { return "booking-test" }),
	)

	ctx := context.Background()
	input := CreateBookingInput{
		VenueID:       "1",
		Date:          "2025-01-22",
		TimeSlot:      "10:00 AM - 11:00 AM",
		PaymentMethod: "card",
		UserID:        "user-7",
	}

	mockCatalog.On("GetByID", ctx, "1").Return(seededVenue(t, "1"), nil).Once()
	mockLedger.On("Append", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "bookings", "booking-test", mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", "booking-test", mock.AnythingOfType("kafka.BookingEvent")).Return(nil).Once()

	booking, err := service.CreateBooking(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "booking-test", booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "Olympic Stadium", booking.Venue.Name)
	assert.Equal(t, domain.Date("2025-01-22"), booking.Date)
	assert.Equal(t, "10:00 AM - 11:00 AM", booking.Time)
	assert.Equal(t, "user-7", booking.UserID)
	// 1200/h over the 2h ledger duration, no service fee
	assert.InDelta(t, 2400.0, booking.TotalPrice, 1e-9)
	assert.Equal(t, fixedClock(), booking.CreatedAt)

	mockCatalog.AssertExpectations(t)
	mockLedger.AssertExpectations(t)
	mockProducer.AssertExpectations(t)

	event := mockProducer.Calls[0].Arguments.Get(3).(kafka.BookingEvent)
	assert.Equal(t, kafka.EventBookingCreated, event.Type)
	assert.Equal(t, "1", event.VenueID)
}

func TestBookingService_CreateBooking_UnknownVenue(t *testing.T) {
	service, store := newMemoryService()
	ctx := context.Background()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{
		VenueID:  "404",
		Date:     "2025-01-22",
		TimeSlot: "10:00 AM - 11:00 AM",
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)

	all, err := store.Ledger().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBookingService_CreateBooking_ValidationErrors(t *testing.T) {
	service, store := newMemoryService()
	ctx := context.Background()

	testCases := []struct {
		name  string
		input CreateBookingInput
		field string
	}{
		{
			name:  "Empty date",
			input: CreateBookingInput{VenueID: "1", TimeSlot: "10:00 AM - 11:00 AM"},
			field: "date",
		},
		{
			name:  "Garbage date",
			input: CreateBookingInput{VenueID: "1", Date: "someday", TimeSlot: "10:00 AM - 11:00 AM"},
			field: "date",
		},
		{
			name:  "Empty slot",
			input: CreateBookingInput{VenueID: "1", Date: "2025-01-22", TimeSlot: "  "},
			field: "timeSlot",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking, err := service.CreateBooking(ctx, tc.input)
			assert.Nil(t, booking)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)
		})
	}

	all, err := store.Ledger().List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestBookingService_CreateBooking_PublishFailureIsNotFatal(t *testing.T) {
	mockProducer := &MockProducer{}
	service, store := newMemoryService(WithProducer(mockProducer, "bookings"))
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "bookings", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{
		VenueID:  "2",
		Date:     "January 20, 2025",
		TimeSlot: "08:00 AM - 09:00 AM",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.Date("2025-01-20"), booking.Date)

	stored, err := store.Ledger().GetByID(ctx, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, *booking, *stored)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_LedgerError(t *testing.T) {
	mockLedger := &MockLedgerRepository{}
	mockCatalog := &MockCatalogRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockLedger, mockCatalog, WithProducer(mockProducer, "bookings"))
	ctx := context.Background()

	mockCatalog.On("GetByID", ctx, "3").Return(seededVenue(t, "3"), nil).Once()
	mockLedger.On("Append", ctx, mock.Anything).Return(domain.ErrTransient).Once()

	booking, err := service.CreateBooking(ctx, CreateBookingInput{
		VenueID:  "3",
		Date:     "2025-01-18",
		TimeSlot: "06:00 AM - 07:00 AM",
	})

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrTransient)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_CreateBooking_PricedLikeSeedLedger(t *testing.T) {
	service, store := newMemoryService()
	ctx := context.Background()

	for _, v := range repository.SeedVenues() {
		t.Run(v.Name, func(t *testing.T) {
			booking, err := service.CreateBooking(ctx, CreateBookingInput{
				VenueID:  v.ID,
				Date:     "2025-01-23",
				TimeSlot: v.TimeSlots[0],
			})
			require.NoError(t, err)
			assert.InDelta(t, v.Price*2, booking.TotalPrice, 1e-9)
		})
	}

	// a new Olympic Stadium booking costs what historic booking 1001 does
	historic, err := store.Ledger().GetByID(ctx, "1001")
	require.NoError(t, err)
	fresh, err := service.CreateBooking(ctx, CreateBookingInput{VenueID: "1", Date: "2025-01-22", TimeSlot: "09:00 AM - 10:00 AM"})
	require.NoError(t, err)
	assert.Equal(t, historic.TotalPrice, fresh.TotalPrice)
}

func TestBookingService_CompletePastBookings_PublishFailureIsLogged(t *testing.T) {
	mockProducer := &MockProducer{}
	service, store := newMemoryService(WithProducer(mockProducer, "bookings"))
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "bookings", "1001", mock.AnythingOfType("kafka.BookingEvent")).
		Return(errors.New("broker down")).Once()

	completed, err := service.CompletePastBookings(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)

	stored, err := store.Ledger().GetByID(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, stored.Status)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_CreateBooking_UniqueIDs(t *testing.T) {
	service, _ := newMemoryService()
	ctx := context.Background()
	input := CreateBookingInput{VenueID: "3", Date: "2025-01-18", TimeSlot: "06:00 AM - 07:00 AM"}

	first, err := service.CreateBooking(ctx, input)
	require.NoError(t, err)
	second, err := service.CreateBooking(ctx, input)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Regexp(t, `^booking-`, first.ID)
}

func TestBookingService_ConfirmBooking(t *testing.T) {
	valid := CreateBookingInput{
		VenueID:       "3",
		Date:          "2025-01-18",
		TimeSlot:      "09:00 AM - 10:00 AM",
		PaymentMethod: "card",
	}

	testCases := []struct {
		name  string
		input ConfirmBookingInput
		field string
	}{
		{
			name:  "Terms not accepted",
			input: ConfirmBookingInput{CreateBookingInput: valid},
			field: "acceptTerms",
		},
		{
			name: "Missing date",
			input: ConfirmBookingInput{
				CreateBookingInput: CreateBookingInput{VenueID: "3", TimeSlot: valid.TimeSlot},
				AcceptTerms:        true,
			},
			field: "date",
		},
		{
			name: "Missing slot",
			input: ConfirmBookingInput{
				CreateBookingInput: CreateBookingInput{VenueID: "3", Date: valid.Date},
				AcceptTerms:        true,
			},
			field: "timeSlot",
		},
		{
			name: "Past date",
			input: ConfirmBookingInput{
				CreateBookingInput: CreateBookingInput{VenueID: "3", Date: "2025-01-15", TimeSlot: valid.TimeSlot},
				AcceptTerms:        true,
			},
			field: "date",
		},
		{
			name: "Unlisted date",
			input: ConfirmBookingInput{
				CreateBookingInput: CreateBookingInput{VenueID: "3", Date: "2025-02-01", TimeSlot: valid.TimeSlot},
				AcceptTerms:        true,
			},
			field: "date",
		},
		{
			name: "Slot not offered",
			input: ConfirmBookingInput{
				CreateBookingInput: CreateBookingInput{VenueID: "3", Date: valid.Date, TimeSlot: "11:00 PM - 12:00 AM"},
				AcceptTerms:        true,
			},
			field: "timeSlot",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, store := newMemoryService()
			ctx := context.Background()

			booking, err := service.ConfirmBooking(ctx, tc.input)
			assert.Nil(t, booking)

			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tc.field, ve.Field)

			all, err := store.Ledger().List(ctx)
			require.NoError(t, err)
			assert.Len(t, all, 5)
		})
	}

	t.Run("Accepted", func(t *testing.T) {
		service, store := newMemoryService()
		ctx := context.Background()

		booking, err := service.ConfirmBooking(ctx, ConfirmBookingInput{CreateBookingInput: valid, AcceptTerms: true})
		require.NoError(t, err)
		assert.Equal(t, "Riverside Tennis Club", booking.Venue.Name)
		assert.InDelta(t, 1200.0, booking.TotalPrice, 1e-9)

		all, err := store.Ledger().List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 6)
	})

	t.Run("Unknown venue", func(t *testing.T) {
		service, _ := newMemoryService()
		input := ConfirmBookingInput{CreateBookingInput: valid, AcceptTerms: true}
		input.VenueID = "77"

		_, err := service.ConfirmBooking(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestBookingService_ListBookings(t *testing.T) {
	service, _ := newMemoryService()
	ctx := context.Background()

	testCases := []struct {
		filter domain.BookingFilter
		want   []string
	}{
		{filter: domain.BookingFilterUpcoming, want: []string{"1002", "1005"}},
		{filter: domain.BookingFilterPast, want: []string{"1001", "1003"}},
		{filter: domain.BookingFilterCancelled, want: []string{"1004"}},
		{filter: "bogus", want: []string{"1001", "1002", "1003", "1004", "1005"}},
		{filter: "", want: []string{"1001", "1002", "1003", "1004", "1005"}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.filter), func(t *testing.T) {
			bookings, err := service.ListBookings(ctx, tc.filter)
			require.NoError(t, err)

			ids := make([]string, 0, len(bookings))
			for _, b := range bookings {
				ids = append(ids, b.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestBookingService_ListBookings_NewBookingIsUpcoming(t *testing.T) {
	service, _ := newMemoryService()
	ctx := context.Background()

	created, err := service.CreateBooking(ctx, CreateBookingInput{VenueID: "5", Date: "2025-01-23", TimeSlot: "09:00 AM - 12:00 PM"})
	require.NoError(t, err)

	upcoming, err := service.ListBookings(ctx, domain.BookingFilterUpcoming)
	require.NoError(t, err)
	assert.Contains(t, upcoming, *created)
}

func TestBookingService_ListBookings_Error(t *testing.T) {
	mockLedger := &MockLedgerRepository{}
	service := NewBookingService(mockLedger, &MockCatalogRepository{})
	ctx := context.Background()

	mockLedger.On("List", ctx).Return(nil, domain.ErrTransient).Once()

	bookings, err := service.ListBookings(ctx, domain.BookingFilterUpcoming)
	assert.Nil(t, bookings)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestBookingService_CancelBooking_Success(t *testing.T) {
	mockLedger := &MockLedgerRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockLedger, &MockCatalogRepository{}, WithProducer(mockProducer, "bookings"))
	ctx := context.Background()

	current := &domain.Booking{ID: "1002", Status: domain.BookingStatusPending}
	cancelled := &domain.Booking{ID: "1002", Status: domain.BookingStatusCancelled}

	mockLedger.On("GetByID", ctx, "1002").Return(current, nil).Once()
	mockLedger.On("UpdateStatus", ctx, "1002", domain.BookingStatusCancelled).Return(cancelled, nil).Once()
	mockProducer.On("Publish", ctx, "bookings", "1002", mock.Anything).Return(nil).Once()

	booking, err := service.CancelBooking(ctx, "1002")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	mockLedger.AssertExpectations(t)
	mockProducer.AssertExpectations(t)

	event := mockProducer.Calls[0].Arguments.Get(3).(kafka.BookingEvent)
	assert.Equal(t, kafka.EventBookingCancelled, event.Type)
}

func TestBookingService_CancelBooking_FinalStatesUnchanged(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.BookingStatusCancelled, domain.BookingStatusCompleted} {
		t.Run(string(status), func(t *testing.T) {
			mockLedger := &MockLedgerRepository{}
			service := NewBookingService(mockLedger, &MockCatalogRepository{})
			ctx := context.Background()

			current := &domain.Booking{ID: "1003", Status: status}
			mockLedger.On("GetByID", ctx, "1003").Return(current, nil).Once()

			booking, err := service.CancelBooking(ctx, "1003")

			require.NoError(t, err)
			assert.Equal(t, status, booking.Status)
			mockLedger.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestBookingService_CancelBooking_NotFound(t *testing.T) {
	service, _ := newMemoryService()

	booking, err := service.CancelBooking(context.Background(), "nope")

	assert.Nil(t, booking)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingService_QuoteBooking(t *testing.T) {
	service, _ := newMemoryService()
	ctx := context.Background()

	quote, err := service.QuoteBooking(ctx, "3")
	require.NoError(t, err)
	assert.Equal(t, 1.0, quote.Hours)
	assert.InDelta(t, 600.0, quote.Subtotal, 1e-9)
	assert.InDelta(t, 60.0, quote.ServiceFee, 1e-9)
	assert.InDelta(t, 660.0, quote.Total, 1e-9)

	_, err = service.QuoteBooking(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrVenueNotFound)
}

func TestBookingService_QuoteBooking_EveryVenue(t *testing.T) {
	service, _ := newMemoryService(WithDurations(0, 1))
	ctx := context.Background()

	for _, v := range repository.SeedVenues() {
		quote, err := service.QuoteBooking(ctx, v.ID)
		require.NoError(t, err)
		assert.InDelta(t, v.Price*1.1, quote.Total, 1e-6, v.Name)
	}
}

func TestBookingService_ClosedStore(t *testing.T) {
	service, store := newMemoryService()
	require.NoError(t, store.Close())
	ctx := context.Background()

	_, err := service.CreateBooking(ctx, CreateBookingInput{VenueID: "1", Date: "2025-01-22", TimeSlot: "10:00 AM - 11:00 AM"})
	assert.ErrorIs(t, err, domain.ErrTransient)

	_, err = service.ListBookings(ctx, domain.BookingFilterUpcoming)
	assert.ErrorIs(t, err, domain.ErrTransient)
}

func TestBookingService_CancelledContext(t *testing.T) {
	store := repository.NewMemoryStore(repository.WithLatency(time.Second))
	service := NewBookingService(store.Ledger(), store.Catalog(), WithClock(fixedClock))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.ListBookings(ctx, "")
	assert.ErrorIs(t, err, domain.ErrTransient)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBookingService_CompletePastBookings(t *testing.T) {
	service, store := newMemoryService()
	ctx := context.Background()

	completed, err := service.CompletePastBookings(ctx)
	require.NoError(t, err)
	require.Len(t, completed, 1)
	assert.Equal(t, "1001", completed[0].ID)
	assert.Equal(t, domain.BookingStatusCompleted, completed[0].Status)

	stored, err := store.Ledger().GetByID(ctx, "1001")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCompleted, stored.Status)

	// pending and future bookings are left alone
	pending, err := store.Ledger().GetByID(ctx, "1002")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, pending.Status)

	again, err := service.CompletePastBookings(ctx)
	require.NoError(t, err)
	assert.Empty(t, again)
}

func TestBookingService_CompletePastBookings_UpdateError(t *testing.T) {
	mockLedger := &MockLedgerRepository{}
	service := NewBookingService(mockLedger, &MockCatalogRepository{}, WithClock(fixedClock))
	ctx := context.Background()

	mockLedger.On("List", ctx).Return(repository.SeedBookings(), nil).Once()
	mockLedger.On("UpdateStatus", ctx, "1001", domain.BookingStatusCompleted).Return(nil, domain.ErrTransient).Once()

	completed, err := service.CompletePastBookings(ctx)
	assert.Empty(t, completed)
	assert.ErrorIs(t, err, domain.ErrTransient)
}
