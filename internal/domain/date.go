package domain

import (
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	LongDateLayout = "January 2, 2006"
)

// Date is a calendar date in YYYY-MM-DD form. Because the layout is fixed
// width, lexical order matches chronological order.
type Date string

// ParseDate accepts the canonical ISO form and the long form used by
// historic booking records.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: "date", Reason: "is required"}
	}
	for _, layout := range []string{DateLayout, LongDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t.Format(DateLayout)), nil
		}
	}
	return "", &ValidationError{Field: "date", Reason: fmt.Sprintf("invalid date %q", s)}
}

// MustParseDate is for fixtures and seed data.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return Date(t.Format(DateLayout))
}

func (d Date) Before(other Date) bool { return d < other }

func (d Date) After(other Date) bool { return d > other }

func (d Date) Time() (time.Time, error) {
	return time.Parse(DateLayout, string(d))
}

func (d Date) String() string { return string(d) }
