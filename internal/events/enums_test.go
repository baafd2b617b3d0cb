package events

import (
	"math"
	"testing"
)

func TestTotalPriceFreeIsAlwaysZero(t *testing.T) {
	// a stale price on a free event must not leak into the total
	if got := TicketFree.TotalPrice(49.99, 3); got != 0 {
		t.Fatalf("free event total = %v, want 0", got)
	}
	if got := TicketFree.TotalPrice(0, 0); got != 0 {
		t.Fatalf("free event total = %v, want 0", got)
	}
}

func TestTotalPricePaidScalesWithSeats(t *testing.T) {
	tests := []struct {
		unit  float64
		seats int
		want  float64
	}{
		{49.99, 1, 49.99},
		{19.99, 3, 59.97},
		{100, 0, 0},
		{15, 4, 60},
	}
	for _, tt := range tests {
		got := TicketPaid.TotalPrice(tt.unit, tt.seats)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("TotalPrice(%v, %d) = %v, want %v", tt.unit, tt.seats, got, tt.want)
		}
		// donation events charge the suggested amount the same way
		if got := TicketDonation.TotalPrice(tt.unit, tt.seats); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("donation TotalPrice(%v, %d) = %v, want %v", tt.unit, tt.seats, got, tt.want)
		}
	}
}

func TestIsValidTicketType(t *testing.T) {
	for _, valid := range []string{"Free", "Paid", "Donation"} {
		if !IsValidTicketType(valid) {
			t.Errorf("%q should be valid", valid)
		}
	}
	for _, invalid := range []string{"free", "PAID", "", "donation"} {
		if IsValidTicketType(invalid) {
			t.Errorf("%q should be invalid", invalid)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	// the list endpoint filters by the capitalized form clients send
	for _, valid := range []string{"Draft", "Published", "Cancelled", "Completed"} {
		if !IsValidStatus(valid) {
			t.Errorf("%q should be valid", valid)
		}
	}
	for _, invalid := range []string{"published", "PUBLISHED", "", "Archived"} {
		if IsValidStatus(invalid) {
			t.Errorf("%q should be invalid", invalid)
		}
	}
}

func TestStatusBookable(t *testing.T) {
	if !StatusPublished.IsBookable() {
		t.Fatalf("published events must be bookable")
	}
	for _, s := range []EventStatus{StatusDraft, StatusCancelled, StatusCompleted} {
		if s.IsBookable() {
			t.Errorf("%s should not be bookable", s)
		}
	}
}
