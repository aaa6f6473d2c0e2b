package domain

type Venue struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Location       string         `json:"location"`
	Type           string         `json:"type"`
	Price          float64        `json:"price"`
	Rating         float64        `json:"rating"`
	ReviewCount    int            `json:"reviewCount,omitempty"`
	ImageURL       string         `json:"imageUrl"`
	Images         []string       `json:"images,omitempty"`
	Amenities      []string       `json:"amenities,omitempty"`
	OpeningHours   []OpeningHours `json:"openingHours,omitempty"`
	AvailableDates []Date         `json:"availableDates,omitempty"`
	TimeSlots      []string       `json:"timeSlots,omitempty"`
	Reviews        []Review       `json:"reviews,omitempty"`
	Bookings       int            `json:"bookings,omitempty"`
	OwnerID        string         `json:"ownerId,omitempty"`
}

type OpeningHours struct {
	Day   string `json:"day"`
	Hours string `json:"hours"`
}

type Review struct {
	ID         string  `json:"id"`
	UserName   string  `json:"userName"`
	UserAvatar string  `json:"userAvatar,omitempty"`
	Rating     float64 `json:"rating"`
	Date       string  `json:"date"`
	Text       string  `json:"text"`
}

// Clone returns a copy that shares no slices with v.
func (v Venue) Clone() Venue {
	out := v
	out.Images = append([]string(nil), v.Images...)
	out.Amenities = append([]string(nil), v.Amenities...)
	out.OpeningHours = append([]OpeningHours(nil), v.OpeningHours...)
	out.AvailableDates = append([]Date(nil), v.AvailableDates...)
	out.TimeSlots = append([]string(nil), v.TimeSlots...)
	out.Reviews = append([]Review(nil), v.Reviews...)
	return out
}

// Snapshot is the denormalized copy stored on a booking.
func (v Venue) Snapshot() VenueSnapshot {
	return VenueSnapshot{
		ID:       v.ID,
		Name:     v.Name,
		Location: v.Location,
		ImageURL: v.ImageURL,
	}
}

func (v Venue) OffersSlot(slot string) bool {
	for _, s := range v.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
