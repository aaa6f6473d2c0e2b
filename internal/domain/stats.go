package domain

type OwnerStats struct {
	Revenue   float64 `json:"revenue"`
	Bookings  int     `json:"bookings"`
	Rating    float64 `json:"rating"`
	Customers int     `json:"customers"`
}

type AdminStats struct {
	Revenue           float64 `json:"revenue"`
	Bookings          int     `json:"bookings"`
	CompletedBookings int     `json:"completedBookings"`
	PendingApprovals  int     `json:"pendingApprovals"`
	Stadiums          int     `json:"stadiums"`
	ActiveUsers       int     `json:"activeUsers"`
	ActiveOwners      int     `json:"activeOwners"`
	AverageRating     float64 `json:"averageRating"`
}
