package seats

import "fmt"

// Seat addresses one position in the hall grid. Rows and columns are
// one-based: row 1 renders as "A", column 1 as "1".
type Seat struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// Label renders the human seat name, e.g. {1,1} -> "A1".
func (s Seat) Label() string {
	return fmt.Sprintf("%c%d", 'A'+rune(s.Row-1), s.Column)
}

// Grid describes the hall layout. Every event currently shares one
// fixed layout taken from configuration.
type Grid struct {
	Rows    int `json:"rows"`
	Columns int `json:"columns"`
}

// Contains reports whether the seat lies inside the grid.
func (g Grid) Contains(s Seat) bool {
	return s.Row >= 1 && s.Row <= g.Rows && s.Column >= 1 && s.Column <= g.Columns
}

// Capacity is the total number of seats in the hall.
func (g Grid) Capacity() int {
	return g.Rows * g.Columns
}

// ReservedSeatsResponse is the wire shape of the reserved-seat read model.
type ReservedSeatsResponse struct {
	EventID  string `json:"event_id"`
	Grid     Grid   `json:"grid"`
	Reserved []Seat `json:"reserved"`
}
