package notifications

import "time"

// NotificationType distinguishes the messages on the booking topic.
type NotificationType string

const (
	TypeBookingConfirmed NotificationType = "booking.confirmed"
	TypeBookingCancelled NotificationType = "booking.cancelled"
)

// BookingNotification is the message published for every booking
// state change. Consumers render confirmation emails from it.
type BookingNotification struct {
	Type       NotificationType `json:"type"`
	BookingID  string           `json:"booking_id"`
	EventID    string           `json:"event_id"`
	EventTitle string           `json:"event_title"`
	EventDate  string           `json:"event_date"`
	EventTime  string           `json:"event_time"`
	UserEmail  string           `json:"user_email"`
	UserName   string           `json:"user_name"`
	SeatLabels []string         `json:"seat_labels"`
	NumTickets int              `json:"num_tickets"`
	TotalPrice float64          `json:"total_price"`
	OccurredAt time.Time        `json:"occurred_at"`
}
