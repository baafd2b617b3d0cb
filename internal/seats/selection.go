package seats

import (
	"errors"
	"sort"
)

var ErrSeatOutOfBounds = errors.New("seat outside hall layout")

// Selection tracks a user's in-progress seat picks against the current
// reserved read model. Reserved seats never toggle; free seats toggle
// in and out, so toggling twice always restores the prior state.
type Selection struct {
	grid     Grid
	reserved map[Seat]struct{}
	selected map[Seat]struct{}
}

func NewSelection(grid Grid, reserved []Seat) *Selection {
	res := make(map[Seat]struct{}, len(reserved))
	for _, s := range reserved {
		res[s] = struct{}{}
	}
	return &Selection{
		grid:     grid,
		reserved: res,
		selected: make(map[Seat]struct{}),
	}
}

// Toggle flips the seat's selected state. Returns whether the seat is
// selected after the call and whether the call changed anything;
// toggling a reserved seat is a no-op.
func (sel *Selection) Toggle(s Seat) (selected bool, changed bool, err error) {
	if !sel.grid.Contains(s) {
		return false, false, ErrSeatOutOfBounds
	}
	if _, taken := sel.reserved[s]; taken {
		return false, false, nil
	}
	if _, ok := sel.selected[s]; ok {
		delete(sel.selected, s)
		return false, true, nil
	}
	sel.selected[s] = struct{}{}
	return true, true, nil
}

func (sel *Selection) IsSelected(s Seat) bool {
	_, ok := sel.selected[s]
	return ok
}

func (sel *Selection) IsReserved(s Seat) bool {
	_, ok := sel.reserved[s]
	return ok
}

func (sel *Selection) Count() int {
	return len(sel.selected)
}

// Selected returns the picked seats in row-major order.
func (sel *Selection) Selected() []Seat {
	out := make([]Seat, 0, len(sel.selected))
	for s := range sel.selected {
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

// Clear drops every picked seat.
func (sel *Selection) Clear() {
	sel.selected = make(map[Seat]struct{})
}

// Refresh swaps in a newer reserved read model. Picks that became
// reserved in the meantime are dropped and returned.
func (sel *Selection) Refresh(reserved []Seat) []Seat {
	res := make(map[Seat]struct{}, len(reserved))
	for _, s := range reserved {
		res[s] = struct{}{}
	}
	sel.reserved = res

	var dropped []Seat
	for s := range sel.selected {
		if _, taken := res[s]; taken {
			delete(sel.selected, s)
			dropped = append(dropped, s)
		}
	}
	sort.Slice(dropped, func(i, j int) bool {
		if dropped[i].Row != dropped[j].Row {
			return dropped[i].Row < dropped[j].Row
		}
		return dropped[i].Column < dropped[j].Column
	})
	return dropped
}
