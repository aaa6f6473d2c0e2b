package booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/availability"
	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/kafka"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/Domenick1991/stadiumbooking/internal/metrics"
	"github.com/Domenick1991/stadiumbooking/internal/pricing"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	DefaultLedgerHours = 2
	DefaultQuoteHours  = 1
)

type BookingUseCase interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	ConfirmBooking(ctx context.Context, input ConfirmBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error)
	CancelBooking(ctx context.Context, id string) (*domain.Booking, error)
	QuoteBooking(ctx context.Context, venueID string) (pricing.Quote, error)
	CompletePastBookings(ctx context.Context) ([]domain.Booking, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type CreateBookingInput struct {
	VenueID       string `json:"stadiumId"`
	Date          string `json:"date"`
	TimeSlot      string `json:"timeSlot"`
	PaymentMethod string `json:"paymentMethod"`
	UserID        string `json:"-"`
}

type ConfirmBookingInput struct {
	CreateBookingInput
	AcceptTerms bool `json:"acceptTerms"`
}

type BookingService struct {
	ledger             repository.LedgerRepository
	venues             repository.CatalogRepository
	producer           Producer
	calculator         *pricing.Calculator
	engine             *availability.Engine
	bookingTopic       string
	notificationsTopic string
	ledgerHours        float64
	quoteHours         float64
	now                func() time.Time
	newID              func() string
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, bookingTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = bookingTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithDurations sets the hours billed on a ledger entry and on a quote.
// Non-positive values keep the defaults.
func WithDurations(ledgerHours, quoteHours float64) BookingServiceOption {
	return func(s *BookingService) {
		if ledgerHours > 0 {
			s.ledgerHours = ledgerHours
		}
		if quoteHours > 0 {
			s.quoteHours = quoteHours
		}
	}
}

func WithCalculator(calculator *pricing.Calculator) BookingServiceOption {
	return func(s *BookingService) {
		s.calculator = calculator
	}
}

func WithEngine(engine *availability.Engine) BookingServiceOption {
	return func(s *BookingService) {
		s.engine = engine
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func NewBookingService(
	ledger repository.LedgerRepository,
	venues repository.CatalogRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		ledger:      ledger,
		venues:      venues,
		calculator:  pricing.NewCalculator(pricing.DefaultServiceFeeRate),
		ledgerHours: DefaultLedgerHours,
		quoteHours:  DefaultQuoteHours,
		now:         time.Now,
		newID:       func() string { return "booking-" + uuid.NewString() },
	}
	for _, opt := range opts {
		opt(service)
	}
	if service.engine == nil {
		service.engine = availability.NewEngine(availability.WithClock(service.now))
	}
	return service
}

// CreateBooking records a confirmed booking billed at the hourly rate over
// the ledger duration. The service fee only appears on quotes.
func (s *BookingService) CreateBooking(ctx context.Context, input CreateBookingInput) (*domain.Booking, error) {
	venue, err := s.venues.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}

	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}
	slot := strings.TrimSpace(input.TimeSlot)
	if slot == "" {
		return nil, &domain.ValidationError{Field: "timeSlot", Reason: "is required"}
	}

	booking := &domain.Booking{
		ID:            s.newID(),
		Venue:         venue.Snapshot(),
		UserID:        input.UserID,
		Date:          date,
		Time:          slot,
		Status:        domain.BookingStatusConfirmed,
		TotalPrice:    s.calculator.ComputeTotal(venue.Price, s.ledgerHours).Subtotal,
		PaymentMethod: input.PaymentMethod,
		CreatedAt:     s.now().UTC(),
	}

	if err := s.ledger.Append(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}
	metrics.BookingsCreated.WithLabelValues(strings.ToLower(venue.Type)).Inc()

	if err := s.publish(ctx, kafka.EventBookingCreated, booking); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("booking_id", booking.ID).
			Warn("failed to publish booking_created event")
	}
	return booking, nil
}

// ConfirmBooking is the checkout path: the caller must accept the terms and
// pick a date and slot the venue actually offers.
func (s *BookingService) ConfirmBooking(ctx context.Context, input ConfirmBookingInput) (*domain.Booking, error) {
	if !input.AcceptTerms {
		return nil, &domain.ValidationError{Field: "acceptTerms", Reason: "must be accepted"}
	}
	if strings.TrimSpace(input.Date) == "" {
		return nil, &domain.ValidationError{Field: "date", Reason: "is required"}
	}
	if strings.TrimSpace(input.TimeSlot) == "" {
		return nil, &domain.ValidationError{Field: "timeSlot", Reason: "is required"}
	}

	venue, err := s.venues.GetByID(ctx, input.VenueID)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(input.Date)
	if err != nil {
		return nil, err
	}

	var sel availability.Selection
	if !s.engine.SelectDate(venue, &sel, date) {
		return nil, &domain.ValidationError{Field: "date", Reason: "is not available"}
	}
	if err := s.engine.SelectTimeSlot(venue, &sel, strings.TrimSpace(input.TimeSlot)); err != nil {
		return nil, err
	}

	input.CreateBookingInput.Date = sel.Date.String()
	input.CreateBookingInput.TimeSlot = sel.TimeSlot
	return s.CreateBooking(ctx, input.CreateBookingInput)
}

func (s *BookingService) ListBookings(ctx context.Context, filter domain.BookingFilter) ([]domain.Booking, error) {
	bookings, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	today := domain.DateOf(s.now())
	return lo.Filter(bookings, func(b domain.Booking, _ int) bool {
		return b.Matches(filter, today)
	}), nil
}

// CancelBooking is idempotent for bookings that are already final.
func (s *BookingService) CancelBooking(ctx context.Context, id string) (*domain.Booking, error) {
	current, err := s.ledger.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == domain.BookingStatusCancelled || current.Status == domain.BookingStatusCompleted {
		return current, nil
	}

	updated, err := s.ledger.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	metrics.BookingsCancelled.Inc()

	if err := s.publish(ctx, kafka.EventBookingCancelled, updated); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("booking_id", updated.ID).
			Warn("failed to publish booking_cancelled event")
	}
	return updated, nil
}

// QuoteBooking prices the confirmation screen, which bills a shorter
// duration than the ledger entry.
func (s *BookingService) QuoteBooking(ctx context.Context, venueID string) (pricing.Quote, error) {
	venue, err := s.venues.GetByID(ctx, venueID)
	if err != nil {
		return pricing.Quote{}, err
	}
	return s.calculator.ComputeTotal(venue.Price, s.quoteHours), nil
}

// CompletePastBookings moves confirmed bookings dated before today to
// Completed. The worker runs it on a ticker.
func (s *BookingService) CompletePastBookings(ctx context.Context) ([]domain.Booking, error) {
	bookings, err := s.ledger.List(ctx)
	if err != nil {
		return nil, err
	}
	today := domain.DateOf(s.now())
	due := lo.Filter(bookings, func(b domain.Booking, _ int) bool {
		return b.Status == domain.BookingStatusConfirmed && b.Date.Before(today)
	})

	completed := make([]domain.Booking, 0, len(due))
	for _, b := range due {
		updated, err := s.ledger.UpdateStatus(ctx, b.ID, domain.BookingStatusCompleted)
		if err != nil {
			return completed, fmt.Errorf("complete booking %s: %w", b.ID, err)
		}
		completed = append(completed, *updated)
		if err := s.publish(ctx, kafka.EventBookingCompleted, updated); err != nil {
			logger.FromContext(ctx).WithError(err).WithField("booking_id", updated.ID).
				Warn("failed to publish booking_completed event")
		}
	}
	return completed, nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	event := kafka.NewBookingEvent(eventType, booking)
	if err := s.producer.Publish(ctx, s.bookingTopic, booking.ID, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, booking.ID, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
