package events

// EventStatus is the lifecycle state of an event listing.
type EventStatus string

const (
	StatusDraft     EventStatus = "Draft"
	StatusPublished EventStatus = "Published"
	StatusCancelled EventStatus = "Cancelled"
	StatusCompleted EventStatus = "Completed"
)

func IsValidStatus(s string) bool {
	switch EventStatus(s) {
	case StatusDraft, StatusPublished, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// IsBookable reports whether bookings may be created against the event.
func (s EventStatus) IsBookable() bool {
	return s == StatusPublished
}
