package domain

// AvailabilitySlot is a single bookable unit of capacity. Dates and times
// are kept as plain strings (YYYY-MM-DD, HH:MM) and compared lexically,
// which matches calendar order for these formats.
type AvailabilitySlot struct {
	ID        string `json:"id"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	IsBooked  bool   `json:"is_booked"`
	BookingID string `json:"booking_id,omitempty"`
}
