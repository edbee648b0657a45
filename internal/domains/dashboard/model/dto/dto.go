package dto

// SummaryResponse aggregates the point-in-time figures shown on the
// admin landing page. Every value is derived from the current snapshot.
type SummaryResponse struct {
	TotalRooms      int     `json:"totalRooms"`
	AvailableRooms  int     `json:"availableRooms"`
	OccupancyRate   float64 `json:"occupancyRate"`
	TotalGuests     int     `json:"totalGuests"`
	ActiveBookings  int     `json:"activeBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	PendingPayments float64 `json:"pendingPayments"`
	TotalStaff      int     `json:"totalStaff"`
}
