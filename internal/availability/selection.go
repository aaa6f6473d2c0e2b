package availability

import (
	"github.com/Domenick1991/stadiumbooking/internal/domain"
)

// Selection is the date and slot a caller is about to book. A slot only
// ever belongs to the currently selected date.
type Selection struct {
	Date     domain.Date
	TimeSlot string
}

func (s Selection) Complete() bool {
	return s.Date != "" && s.TimeSlot != ""
}

// SelectDate toggles date on sel. Picking the selected date again clears
// it; any change of date clears the slot. Unavailable dates are ignored
// and reported with false.
func (e *Engine) SelectDate(v *domain.Venue, sel *Selection, date domain.Date) bool {
	if sel.Date == date {
		sel.Date = ""
		sel.TimeSlot = ""
		return true
	}
	if !e.IsDateAvailable(v, date) {
		return false
	}
	sel.Date = date
	sel.TimeSlot = ""
	return true
}

func (e *Engine) SelectTimeSlot(v *domain.Venue, sel *Selection, slot string) error {
	if sel.Date == "" {
		return &domain.ValidationError{Field: "date", Reason: "must be selected before a time slot"}
	}
	if !e.IsSlotBookable(v, sel.Date, slot) {
		return &domain.ValidationError{Field: "timeSlot", Reason: "is not offered on " + sel.Date.String()}
	}
	sel.TimeSlot = slot
	return nil
}
