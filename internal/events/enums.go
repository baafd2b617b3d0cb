package events

// TicketType tells whether an event charges for entry.
type TicketType string

const (
	TicketFree     TicketType = "Free"
	TicketPaid     TicketType = "Paid"
	TicketDonation TicketType = "Donation"
)

func IsValidTicketType(t string) bool {
	switch TicketType(t) {
	case TicketFree, TicketPaid, TicketDonation:
		return true
	default:
		return false
	}
}

// TotalPrice derives the charge for a number of seats. Free events
// always cost zero regardless of the per-seat price on the record;
// donation events charge the suggested per-seat amount like paid ones.
func (t TicketType) TotalPrice(unitPrice float64, numSeats int) float64 {
	if t == TicketFree {
		return 0
	}
	return unitPrice * float64(numSeats)
}

// Categories the product ships with. "All" is a query-side pseudo
// category and never stored on an event.
var Categories = []string{
	"Music",
	"Tech",
	"Sports",
	"Art",
	"Food",
	"Business",
	"Education",
	"Health",
}

func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}
