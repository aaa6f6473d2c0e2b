package availability

import (
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
)

type Engine struct {
	now func() time.Time
}

type Option func(*Engine)

// WithClock replaces the wall clock used to decide what "today" is.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Today() domain.Date {
	return domain.DateOf(e.now())
}

// IsDateAvailable never accepts a past date. An empty AvailableDates list
// means the venue has no date restriction.
func (e *Engine) IsDateAvailable(v *domain.Venue, date domain.Date) bool {
	if v == nil || date.Before(e.Today()) {
		return false
	}
	if len(v.AvailableDates) == 0 {
		return true
	}
	for _, d := range v.AvailableDates {
		if d == date {
			return true
		}
	}
	return false
}

// TimeSlotsFor returns the venue's fixed slot list for any available date.
// Slots do not vary per date.
func (e *Engine) TimeSlotsFor(v *domain.Venue, date domain.Date) []string {
	if !e.IsDateAvailable(v, date) {
		return []string{}
	}
	return append([]string{}, v.TimeSlots...)
}

func (e *Engine) IsSlotBookable(v *domain.Venue, date domain.Date, slot string) bool {
	return e.IsDateAvailable(v, date) && v.OffersSlot(slot)
}
