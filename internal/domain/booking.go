package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// BookingFilter selects a listing view. Unknown values list everything.
type BookingFilter string

const (
	BookingFilterUpcoming  BookingFilter = "upcoming"
	BookingFilterPast      BookingFilter = "past"
	BookingFilterCancelled BookingFilter = "cancelled"
)

type VenueSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	ImageURL string `json:"imageUrl"`
}

type Booking struct {
	ID            string        `json:"id"`
	Venue         VenueSnapshot `json:"stadium"`
	UserID        string        `json:"userId,omitempty"`
	Date          Date          `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
	TotalPrice    float64       `json:"totalPrice"`
	PaymentMethod string        `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// Matches reports whether b belongs to the listing view f relative to today.
func (b Booking) Matches(f BookingFilter, today Date) bool {
	switch f {
	case BookingFilterUpcoming:
		return b.Date.After(today) && b.Status != BookingStatusCancelled
	case BookingFilterPast:
		return b.Date.Before(today) && b.Status != BookingStatusCancelled
	case BookingFilterCancelled:
		return b.Status == BookingStatusCancelled
	default:
		return true
	}
}
