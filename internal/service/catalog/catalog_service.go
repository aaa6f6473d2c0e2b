package catalog

import (
	"context"

	"github.com/Domenick1991/stadiumbooking/internal/availability"
	"github.com/Domenick1991/stadiumbooking/internal/domain"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/Domenick1991/stadiumbooking/internal/metrics"
	"github.com/Domenick1991/stadiumbooking/internal/repository"
	"github.com/samber/lo"
)

type CatalogUseCase interface {
	ListVenues(ctx context.Context, query, category string) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	OwnerVenues(ctx context.Context, ownerID string) ([]domain.Venue, error)
	Availability(ctx context.Context, venueID, date string) (*Availability, error)
}

type VenueCache interface {
	GetVenues(ctx context.Context, query, category string) ([]domain.Venue, error)
	SetVenues(ctx context.Context, query, category string, venues []domain.Venue) error
}

type Availability struct {
	VenueID   string      `json:"venueId"`
	Date      domain.Date `json:"date"`
	Available bool        `json:"available"`
	TimeSlots []string    `json:"timeSlots"`
}

type CatalogService struct {
	repo   repository.CatalogRepository
	cache  VenueCache
	engine *availability.Engine
}

type CatalogServiceOption func(*CatalogService)

func WithCache(cache VenueCache) CatalogServiceOption {
	return func(s *CatalogService) {
		s.cache = cache
	}
}

func WithEngine(engine *availability.Engine) CatalogServiceOption {
	return func(s *CatalogService) {
		s.engine = engine
	}
}

func NewCatalogService(repo repository.CatalogRepository, opts ...CatalogServiceOption) *CatalogService {
	s := &CatalogService{repo: repo, engine: availability.NewEngine()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CatalogService) ListVenues(ctx context.Context, query, category string) ([]domain.Venue, error) {
	if category == "" {
		category = CategoryAll
	}

	if s.cache != nil {
		cached, err := s.cache.GetVenues(ctx, query, category)
		if err != nil {
			logger.FromContext(ctx).WithError(err).Warn("venue cache read failed")
		} else if cached != nil {
			metrics.VenueQueries.WithLabelValues(metricCategory(category), "hit").Inc()
			return cached, nil
		}
	}

	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterVenues(venues, query, category)
	metrics.VenueQueries.WithLabelValues(metricCategory(category), "miss").Inc()

	if s.cache != nil {
		if err := s.cache.SetVenues(ctx, query, category, filtered); err != nil {
			logger.FromContext(ctx).WithError(err).Warn("venue cache write failed")
		}
	}
	return filtered, nil
}

func (s *CatalogService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *CatalogService) OwnerVenues(ctx context.Context, ownerID string) ([]domain.Venue, error) {
	venues, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return lo.Filter(venues, func(v domain.Venue, _ int) bool {
		return v.OwnerID == ownerID
	}), nil
}

func (s *CatalogService) Availability(ctx context.Context, venueID, date string) (*Availability, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return nil, err
	}
	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	return &Availability{
		VenueID:   venue.ID,
		Date:      d,
		Available: s.engine.IsDateAvailable(venue, d),
		TimeSlots: s.engine.TimeSlotsFor(venue, d),
	}, nil
}

var _ CatalogUseCase = (*CatalogService)(nil)
