package repository

import (
	"time"

	"github.com/Domenick1991/stadiumbooking/internal/domain"
)

const (
	DemoOwnerID      = "owner-1"
	secondaryOwnerID = "owner-2"
	imageBase        = "https://images.pexels.com/photos/"
)

func weekSchedule(weekdays, saturday, sunday string) []domain.OpeningHours {
	return []domain.OpeningHours{
		{Day: "Monday - Friday", Hours: weekdays},
		{Day: "Saturday", Hours: saturday},
		{Day: "Sunday", Hours: sunday},
	}
}

func galleryImages(paths ...string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, imageBase+p+"?auto=compress&cs=tinysrgb&h=650&w=940")
	}
	return out
}

func avatar(photoID string) string {
	return imageBase + photoID + "/pexels-photo-" + photoID + ".jpeg?auto=compress&cs=tinysrgb&h=100"
}

func dates(values ...string) []domain.Date {
	out := make([]domain.Date, 0, len(values))
	for _, v := range values {
		out = append(out, domain.MustParseDate(v))
	}
	return out
}

// SeedVenues returns the demo catalog. Every call builds fresh slices.
func SeedVenues() []domain.Venue {
	return []domain.Venue{
		{
			ID:          "1",
			Name:        "Olympic Stadium",
			Description: "A state-of-the-art multi-purpose stadium with a seating capacity of 60,000. Features include a retractable roof, modern locker rooms, and premium hospitality areas.",
			Location:    "Olympic Park, New York",
			Type:        "Football",
			Price:       1200,
			Rating:      4.8,
			ReviewCount: 243,
			ImageURL:    imageBase + "46798/the-ball-stadion-football-the-pitch-46798.jpeg?auto=compress&cs=tinysrgb&h=350",
			Images: galleryImages(
				"46798/the-ball-stadion-football-the-pitch-46798.jpeg",
				"270085/pexels-photo-270085.jpeg",
				"2648977/pexels-photo-2648977.jpeg",
			),
			Amenities: []string{"Locker Rooms", "Showers", "Restrooms", "Parking", "Floodlights", "Scoreboard"},
			OpeningHours: weekSchedule(
				"08:00 AM - 10:00 PM", "09:00 AM - 11:00 PM", "10:00 AM - 08:00 PM"),
			AvailableDates: dates("2025-01-15", "2025-01-16", "2025-01-17", "2025-01-18", "2025-01-22", "2025-01-23"),
			TimeSlots: []string{
				"09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM",
				"01:00 PM - 02:00 PM", "02:00 PM - 03:00 PM", "03:00 PM - 04:00 PM",
				"04:00 PM - 05:00 PM", "06:00 PM - 07:00 PM", "07:00 PM - 08:00 PM",
			},
			Reviews: []domain.Review{
				{ID: "101", UserName: "James Wilson", UserAvatar: avatar("220453"), Rating: 5.0, Date: "December 10, 2024", Text: "Amazing stadium! The facilities were top-notch and the staff was very helpful. Would definitely book again."},
				{ID: "102", UserName: "Sarah Johnson", UserAvatar: avatar("415829"), Rating: 4.5, Date: "November 28, 2024", Text: "Great experience overall. The stadium was clean and well-maintained. The only issue was limited parking space."},
			},
			Bookings: 56,
			OwnerID:  DemoOwnerID,
		},
		{
			ID:          "2",
			Name:        "Central Arena",
			Description: "A versatile indoor arena perfect for basketball and volleyball tournaments. Features include professional-grade courts, digital scoreboards, and excellent acoustics.",
			Location:    "Downtown, Los Angeles",
			Type:        "Basketball",
			Price:       800,
			Rating:      4.6,
			ReviewCount: 182,
			ImageURL:    imageBase + "358042/pexels-photo-358042.jpeg?auto=compress&cs=tinysrgb&h=350",
			Images: galleryImages(
				"358042/pexels-photo-358042.jpeg",
				"1752757/pexels-photo-1752757.jpeg",
				"2277981/pexels-photo-2277981.jpeg",
			),
			Amenities: []string{"Locker Rooms", "Showers", "Restrooms", "Concession Stand", "Equipment Rental", "First Aid Station"},
			OpeningHours: weekSchedule(
				"07:00 AM - 11:00 PM", "08:00 AM - 10:00 PM", "09:00 AM - 09:00 PM"),
			AvailableDates: dates("2025-01-15", "2025-01-16", "2025-01-20", "2025-01-21", "2025-01-22", "2025-01-23"),
			TimeSlots: []string{
				"08:00 AM - 09:00 AM", "09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM",
				"11:00 AM - 12:00 PM", "01:00 PM - 02:00 PM", "02:00 PM - 03:00 PM",
				"03:00 PM - 04:00 PM", "06:00 PM - 07:00 PM", "07:00 PM - 08:00 PM",
			},
			Reviews: []domain.Review{
				{ID: "201", UserName: "Michael Brown", UserAvatar: avatar("1222271"), Rating: 4.8, Date: "December 5, 2024", Text: "Perfect venue for our basketball tournament. The courts were in excellent condition and the staff was very accommodating."},
				{ID: "202", UserName: "Emily Davis", UserAvatar: avatar("1239291"), Rating: 4.2, Date: "November 22, 2024", Text: "Good facilities but the air conditioning could be improved. It got quite warm during our intensive training session."},
			},
			Bookings: 42,
			OwnerID:  DemoOwnerID,
		},
		{
			ID:          "3",
			Name:        "Riverside Tennis Club",
			Description: "Premium tennis facility featuring 8 clay courts and 4 hard courts. Includes a clubhouse with changing rooms, a pro shop, and a viewing area for spectators.",
			Location:    "Riverside, Chicago",
			Type:        "Tennis",
			Price:       600,
			Rating:      4.9,
			ReviewCount: 156,
			ImageURL:    imageBase + "209977/pexels-photo-209977.jpeg?auto=compress&cs=tinysrgb&h=350",
			Images: galleryImages(
				"209977/pexels-photo-209977.jpeg",
				"2403408/pexels-photo-2403408.jpeg",
				"2519217/pexels-photo-2519217.jpeg",
			),
			Amenities: []string{"Clubhouse", "Pro Shop", "Changing Rooms", "Showers", "Ball Machines", "Coaching Services"},
			OpeningHours: weekSchedule(
				"06:00 AM - 09:00 PM", "07:00 AM - 08:00 PM", "08:00 AM - 07:00 PM"),
			AvailableDates: dates("2025-01-15", "2025-01-16", "2025-01-17", "2025-01-18", "2025-01-19", "2025-01-20"),
			TimeSlots: []string{
				"06:00 AM - 07:00 AM", "07:00 AM - 08:00 AM", "08:00 AM - 09:00 AM",
				"09:00 AM - 10:00 AM", "10:00 AM - 11:00 AM", "11:00 AM - 12:00 PM",
				"01:00 PM - 02:00 PM", "02:00 PM - 03:00 PM", "03:00 PM - 04:00 PM",
			},
			Reviews: []domain.Review{
				{ID: "301", UserName: "Robert Taylor", UserAvatar: avatar("614810"), Rating: 5.0, Date: "December 8, 2024", Text: "The best tennis facility in the city! The clay courts are maintained impeccably and the staff is very professional."},
				{ID: "302", UserName: "Jennifer Clark", UserAvatar: avatar("774909"), Rating: 4.7, Date: "November 30, 2024", Text: "Excellent courts and amenities. The coaching services are top-notch. Highly recommend for both beginners and advanced players."},
			},
			Bookings: 38,
			OwnerID:  DemoOwnerID,
		},
		{
			ID:          "4",
			Name:        "Greenfield Cricket Stadium",
			Description: "Dedicated cricket facility with international standard pitch and outfield. Features include practice nets, electronic scoreboard, and spectator seating for up to 15,000 people.",
			Location:    "Greenfield, Houston",
			Type:        "Cricket",
			Price:       900,
			Rating:      4.5,
			ReviewCount: 120,
			ImageURL:    imageBase + "3628912/pexels-photo-3628912.jpeg?auto=compress&cs=tinysrgb&h=350",
			Images: galleryImages(
				"3628912/pexels-photo-3628912.jpeg",
				"163398/cricket-ball-wicket-stumps-163398.jpeg",
				"3532158/pexels-photo-3532158.jpeg",
			),
			Amenities: []string{"Practice Nets", "Changing Rooms", "Electronic Scoreboard", "Floodlights", "Spectator Seating", "Media Facilities"},
			OpeningHours: weekSchedule(
				"09:00 AM - 08:00 PM", "08:00 AM - 09:00 PM", "10:00 AM - 07:00 PM"),
			AvailableDates: dates("2025-01-17", "2025-01-18", "2025-01-19", "2025-01-23", "2025-01-24", "2025-01-25"),
			TimeSlots: []string{
				"09:00 AM - 11:00 AM", "11:00 AM - 01:00 PM", "01:00 PM - 03:00 PM",
				"03:00 PM - 05:00 PM", "05:00 PM - 07:00 PM",
			},
			Reviews: []domain.Review{
				{ID: "401", UserName: "David Lee", UserAvatar: avatar("220453"), Rating: 4.6, Date: "December 2, 2024", Text: "Excellent cricket facility with great pitch conditions. The practice nets are particularly well-maintained."},
				{ID: "402", UserName: "Priya Sharma", UserAvatar: avatar("415829"), Rating: 4.3, Date: "November 18, 2024", Text: "Good stadium for local tournaments. The floodlights work well for evening matches, but the canteen options could be improved."},
			},
			Bookings: 30,
			OwnerID:  secondaryOwnerID,
		},
		{
			ID:          "5",
			Name:        "Diamond Baseball Park",
			Description: "Professional baseball stadium with seating for 25,000 spectators. Features include premium dugouts, bullpens, batting cages, and a state-of-the-art scoreboard.",
			Location:    "Southside, Philadelphia",
			Type:        "Baseball",
			Price:       1500,
			Rating:      4.7,
			ReviewCount: 208,
			ImageURL:    imageBase + "209841/pexels-photo-209841.jpeg?auto=compress&cs=tinysrgb&h=350",
			Images: galleryImages(
				"209841/pexels-photo-209841.jpeg",
				"2570139/pexels-photo-2570139.jpeg",
				"2362868/pexels-photo-2362868.jpeg",
			),
			Amenities: []string{"Dugouts", "Bullpens", "Batting Cages", "Locker Rooms", "Concession Stands", "VIP Suites"},
			OpeningHours: weekSchedule(
				"08:00 AM - 10:00 PM", "09:00 AM - 11:00 PM", "10:00 AM - 09:00 PM"),
			AvailableDates: dates("2025-01-16", "2025-01-17", "2025-01-18", "2025-01-21", "2025-01-22", "2025-01-23"),
			TimeSlots:      []string{"09:00 AM - 12:00 PM", "01:00 PM - 04:00 PM", "05:00 PM - 08:00 PM"},
			Reviews: []domain.Review{
				{ID: "501", UserName: "Thomas Garcia", UserAvatar: avatar("1222271"), Rating: 4.9, Date: "December 12, 2024", Text: "Incredible baseball stadium with excellent facilities. The field was in perfect condition and the staff was extremely helpful."},
				{ID: "502", UserName: "Amanda Wilson", UserAvatar: avatar("1239291"), Rating: 4.5, Date: "November 25, 2024", Text: "Great venue for our college tournament. The batting cages and bullpens are well-designed and maintained. Would book again!"},
			},
			Bookings: 45,
			OwnerID:  secondaryOwnerID,
		},
	}
}

// SeedBookings returns the historic demo bookings.
func SeedBookings() []domain.Booking {
	venues := SeedVenues()
	created := time.Date(2024, 11, 1, 12, 0, 0, 0, time.UTC)
	return []domain.Booking{
		{ID: "1001", Venue: venues[0].Snapshot(), Date: domain.MustParseDate("January 15, 2025"), Time: "09:00 AM - 11:00 AM", Status: domain.BookingStatusConfirmed, TotalPrice: 2400, CreatedAt: created},
		{ID: "1002", Venue: venues[1].Snapshot(), Date: domain.MustParseDate("January 18, 2025"), Time: "02:00 PM - 04:00 PM", Status: domain.BookingStatusPending, TotalPrice: 1600, CreatedAt: created},
		{ID: "1003", Venue: venues[2].Snapshot(), Date: domain.MustParseDate("December 10, 2024"), Time: "10:00 AM - 12:00 PM", Status: domain.BookingStatusCompleted, TotalPrice: 1200, CreatedAt: created},
		{ID: "1004", Venue: venues[3].Snapshot(), Date: domain.MustParseDate("December 5, 2024"), Time: "01:00 PM - 03:00 PM", Status: domain.BookingStatusCancelled, TotalPrice: 1800, CreatedAt: created},
		{ID: "1005", Venue: venues[4].Snapshot(), Date: domain.MustParseDate("January 21, 2025"), Time: "05:00 PM - 08:00 PM", Status: domain.BookingStatusConfirmed, TotalPrice: 4500, CreatedAt: created},
	}
}
