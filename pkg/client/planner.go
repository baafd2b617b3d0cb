package client

import (
	"context"
	"errors"
	"sort"
)

var ErrSeatOutsideGrid = errors.New("seat outside hall layout")

// SeatPlanner drives an interactive seat-picking flow against one
// event: it mirrors the reserved read model and tracks local picks.
// Reserved seats never toggle; free seats toggle on and off, so two
// toggles of the same seat always cancel out.
type SeatPlanner struct {
	client  *Client
	eventID string

	grid     Grid
	reserved map[Seat]struct{}
	picked   map[Seat]struct{}
}

// NewSeatPlanner fetches the current reserved seats and returns a
// planner ready for picking.
func (c *Client) NewSeatPlanner(ctx context.Context, eventID string) (*SeatPlanner, error) {
	state, err := c.ReservedSeats(ctx, eventID)
	if err != nil {
		return nil, err
	}

	p := &SeatPlanner{
		client:  c,
		eventID: eventID,
		grid:    state.Grid,
		picked:  make(map[Seat]struct{}),
	}
	p.setReserved(state.Reserved)
	return p, nil
}

func (p *SeatPlanner) setReserved(reserved []Seat) {
	p.reserved = make(map[Seat]struct{}, len(reserved))
	for _, s := range reserved {
		p.reserved[s] = struct{}{}
	}
}

// Toggle flips a seat's picked state. Reserved seats are a silent
// no-op, mirroring a disabled seat button.
func (p *SeatPlanner) Toggle(s Seat) (picked bool, err error) {
	if s.Row < 1 || s.Row > p.grid.Rows || s.Column < 1 || s.Column > p.grid.Columns {
		return false, ErrSeatOutsideGrid
	}
	if _, taken := p.reserved[s]; taken {
		return false, nil
	}
	if _, ok := p.picked[s]; ok {
		delete(p.picked, s)
		return false, nil
	}
	p.picked[s] = struct{}{}
	return true, nil
}

func (p *SeatPlanner) IsReserved(s Seat) bool {
	_, ok := p.reserved[s]
	return ok
}

func (p *SeatPlanner) IsPicked(s Seat) bool {
	_, ok := p.picked[s]
	return ok
}

// Picked returns the current picks in row-major order.
func (p *SeatPlanner) Picked() []Seat {
	out := make([]Seat, 0, len(p.picked))
	for s := range p.picked {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

// TotalPrice prices the current picks against the event's ticket type.
func (p *SeatPlanner) TotalPrice(event *Event) float64 {
	if event.TicketType == "Free" {
		return 0
	}
	return event.Price * float64(len(p.picked))
}

// Refresh re-fetches reserved seats and drops picks that were taken in
// the meantime, returning the lost seats.
func (p *SeatPlanner) Refresh(ctx context.Context) ([]Seat, error) {
	state, err := p.client.ReservedSeats(ctx, p.eventID)
	if err != nil {
		return nil, err
	}
	p.setReserved(state.Reserved)

	var lost []Seat
	for s := range p.picked {
		if _, taken := p.reserved[s]; taken {
			delete(p.picked, s)
			lost = append(lost, s)
		}
	}
	sort.Slice(lost, func(i, j int) bool {
		if lost[i].Row != lost[j].Row {
			return lost[i].Row < lost[j].Row
		}
		return lost[i].Column < lost[j].Column
	})
	return lost, nil
}

// Book submits the current picks as a booking and clears them on success.
func (p *SeatPlanner) Book(ctx context.Context) (*Booking, error) {
	booking, err := p.client.CreateBooking(ctx, p.eventID, p.Picked())
	if err != nil {
		return nil, err
	}
	p.picked = make(map[Seat]struct{})
	return booking, nil
}
