package notify

import (
	"context"

	"github.com/Domenick1991/stadiumbooking/internal/kafka"
	"github.com/Domenick1991/stadiumbooking/internal/logger"
	"github.com/sirupsen/logrus"
)

// Sender delivers booking notifications. It only logs; a mail or push
// gateway would plug in here.
type Sender struct {
	sent int
}

func NewSender() *Sender {
	return &Sender{}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	logger.FromContext(ctx).WithFields(logrus.Fields{
		"type":       event.Type,
		"booking_id": event.BookingID,
		"venue":      event.VenueName,
		"date":       event.Date,
		"time_slot":  event.TimeSlot,
		"user_id":    event.UserID,
	}).Info(message(event))
	s.sent++
	return nil
}

func (s *Sender) Sent() int { return s.sent }

func message(event kafka.BookingEvent) string {
	switch event.Type {
	case kafka.EventBookingCreated:
		return "booking confirmed for " + event.VenueName + " on " + event.Date
	case kafka.EventBookingCancelled:
		return "booking cancelled for " + event.VenueName + " on " + event.Date
	case kafka.EventBookingCompleted:
		return "thanks for playing at " + event.VenueName
	default:
		return "booking update for " + event.VenueName
	}
}
