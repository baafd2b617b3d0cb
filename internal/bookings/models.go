package bookings

import (
	"time"

	"github.com/google/uuid"

	"gatherly/internal/seats"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

func IsValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking denormalizes event and user display fields so booking history
// survives later edits to the event record.
type Booking struct {
	ID      uuid.UUID `json:"id" gorm:"primaryKey;type:uuid;default:uuid_generate_v4()"`
	EventID uuid.UUID `json:"event_id" gorm:"type:uuid;not null;index:idx_bookings_event_status"`
	UserID  uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`

	EventTitle    string `json:"event_title" gorm:"size:255"`
	EventDate     string `json:"event_date" gorm:"size:10"`
	EventTime     string `json:"event_time" gorm:"size:20"`
	EventCity     string `json:"event_city" gorm:"size:120"`
	EventLocation string `json:"event_location" gorm:"size:255"`
	EventImage    string `json:"event_image" gorm:"size:500"`

	UserEmail string `json:"user_email" gorm:"size:255"`
	UserName  string `json:"user_name" gorm:"size:255"`

	Seats      []seats.Seat `json:"seats" gorm:"serializer:json;type:jsonb;not null"`
	NumTickets int          `json:"num_tickets" gorm:"not null"`
	TotalPrice float64      `json:"total_price" gorm:"not null"`

	Status BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'CONFIRMED';index:idx_bookings_event_status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

type CreateBookingRequest struct {
	EventID string       `json:"event_id" binding:"required,uuid"`
	Seats   []seats.Seat `json:"seats" binding:"required,min=1,dive"`
}

// ListFilters narrows admin booking listings.
type ListFilters struct {
	EventID uuid.UUID
	UserID  uuid.UUID
	Status  BookingStatus
	Limit   int
}
