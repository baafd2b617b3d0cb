package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatherly/internal/events"
	"gatherly/internal/notifications"
	"gatherly/internal/seats"
	"gatherly/internal/users"
	"gatherly/pkg/logger"
)

// ---- fakes ----

type fakeRepo struct {
	bookings map[uuid.UUID]*Booking
	failWith error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[uuid.UUID]*Booking)}
}

func (f *fakeRepo) CreateWithSeatCheck(ctx context.Context, booking *Booking) error {
	if f.failWith != nil {
		return f.failWith
	}
	taken := make(map[seats.Seat]struct{})
	for _, existing := range f.bookings {
		if existing.EventID != booking.EventID || existing.Status != StatusConfirmed {
			continue
		}
		for _, s := range existing.Seats {
			taken[s] = struct{}{}
		}
	}
	for _, s := range booking.Seats {
		if _, exists := taken[s]; exists {
			return &SeatTakenError{Seat: s}
		}
	}
	f.bookings[booking.ID] = booking
	return nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeRepo) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeRepo) List(ctx context.Context, filters ListFilters) ([]Booking, error) {
	var out []Booking
	for _, b := range f.bookings {
		if filters.EventID != uuid.Nil && b.EventID != filters.EventID {
			continue
		}
		if filters.Status != "" && b.Status != filters.Status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error {
	booking, ok := f.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}
	booking.Status = status
	return nil
}

type fakeEventService struct {
	event          *events.Event
	attendeeDeltas []int
}

func (f *fakeEventService) Create(ctx context.Context, organizer *users.UserResponse, req *events.CreateEventRequest) (*events.Event, error) {
	panic("not used")
}
func (f *fakeEventService) GetByID(ctx context.Context, id uuid.UUID) (*events.Event, error) {
	if f.event == nil || f.event.ID != id {
		return nil, events.ErrEventNotFound
	}
	copied := *f.event
	return &copied, nil
}
func (f *fakeEventService) List(ctx context.Context, filters events.ListFilters) ([]events.Event, error) {
	panic("not used")
}
func (f *fakeEventService) Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *events.UpdateEventRequest) (*events.Event, error) {
	panic("not used")
}
func (f *fakeEventService) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	panic("not used")
}
func (f *fakeEventService) IncrementAttendees(ctx context.Context, id uuid.UUID, delta int) error {
	f.attendeeDeltas = append(f.attendeeDeltas, delta)
	return nil
}

type fakeUserService struct {
	profile *users.UserResponse
}

func (f *fakeUserService) GetProfile(ctx context.Context, userID uuid.UUID) (*users.UserResponse, error) {
	return f.profile, nil
}
func (f *fakeUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req users.UpdateProfileRequest) (*users.UserResponse, error) {
	panic("not used")
}
func (f *fakeUserService) ToggleFavorite(ctx context.Context, userID uuid.UUID, eventID string) (*users.UserResponse, bool, error) {
	panic("not used")
}

type fakeSeatService struct {
	grid          seats.Grid
	invalidations int
}

func (f *fakeSeatService) GetReservedSeats(ctx context.Context, eventID uuid.UUID) (*seats.ReservedSeatsResponse, error) {
	panic("not used")
}
func (f *fakeSeatService) InvalidateReservedSeats(ctx context.Context, eventID uuid.UUID) {
	f.invalidations++
}
func (f *fakeSeatService) Grid() seats.Grid { return f.grid }

type fakeClaimer struct {
	claimed    map[seats.Seat]string
	conflictAt *seats.Seat
	released   int
}

func newFakeClaimer() *fakeClaimer {
	return &fakeClaimer{claimed: make(map[seats.Seat]string)}
}

func (f *fakeClaimer) ClaimSeats(ctx context.Context, eventID string, seatList []seats.Seat, owner string, ttl time.Duration) error {
	if f.conflictAt != nil {
		return &seats.ErrSeatConflict{Seat: *f.conflictAt}
	}
	for _, s := range seatList {
		f.claimed[s] = owner
	}
	return nil
}

func (f *fakeClaimer) ReleaseSeats(ctx context.Context, eventID string, seatList []seats.Seat, owner string) (int, error) {
	count := 0
	for _, s := range seatList {
		if f.claimed[s] == owner {
			delete(f.claimed, s)
			count++
		}
	}
	f.released += count
	return count, nil
}

type fakePublisher struct {
	published []*notifications.BookingNotification
}

func (f *fakePublisher) Publish(ctx context.Context, n *notifications.BookingNotification) error {
	f.published = append(f.published, n)
	return nil
}
func (f *fakePublisher) Close() error { return nil }

// ---- fixtures ----

type fixture struct {
	service   Service
	repo      *fakeRepo
	events    *fakeEventService
	seats     *fakeSeatService
	claimer   *fakeClaimer
	publisher *fakePublisher

	organizerID uuid.UUID
	bookerID    uuid.UUID
	event       *events.Event
}

func newFixture(t *testing.T, ticketType events.TicketType, price float64) *fixture {
	t.Helper()

	organizerID := uuid.New()
	bookerID := uuid.New()
	event := &events.Event{
		ID:         uuid.New(),
		Title:      "Indie Nights Live",
		Date:       "2026-10-14",
		Time:       "19:30",
		Price:      price,
		TicketType: ticketType,
		CreatedBy:  organizerID,
		Status:     events.StatusPublished,
	}

	repo := newFakeRepo()
	eventService := &fakeEventService{event: event}
	seatService := &fakeSeatService{grid: seats.Grid{Rows: 8, Columns: 10}}
	claimer := newFakeClaimer()
	publisher := &fakePublisher{}

	service := NewService(
		repo,
		eventService,
		&fakeUserService{profile: &users.UserResponse{
			ID: bookerID.String(), Email: "asha@example.com", FullName: "Asha Verma",
		}},
		seatService,
		claimer,
		publisher,
		10*time.Minute,
		logger.GetDefault(),
	)

	return &fixture{
		service:     service,
		repo:        repo,
		events:      eventService,
		seats:       seatService,
		claimer:     claimer,
		publisher:   publisher,
		organizerID: organizerID,
		bookerID:    bookerID,
		event:       event,
	}
}

// ---- tests ----

func TestCreateBookingComputesPriceServerSide(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 19.99)

	booking, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}, {Row: 1, Column: 3}},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, booking.NumTickets)
	assert.InDelta(t, 59.97, booking.TotalPrice, 1e-9)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Equal(t, "Indie Nights Live", booking.EventTitle)
	assert.Equal(t, "asha@example.com", booking.UserEmail)
}

func TestCreateBookingFreeEventCostsNothing(t *testing.T) {
	fx := newFixture(t, events.TicketFree, 49.99)

	booking, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}},
	})
	require.NoError(t, err)

	assert.Zero(t, booking.TotalPrice)
	assert.Equal(t, 2, booking.NumTickets)
}

func TestCreateBookingRejectsOrganizer(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)

	_, err := fx.service.Create(context.Background(), fx.organizerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}},
	})
	assert.ErrorIs(t, err, ErrOwnEvent)
	assert.Empty(t, fx.repo.bookings)
}

func TestCreateBookingRejectsUnbookableEvent(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)
	fx.event.Status = events.StatusCancelled

	_, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}},
	})
	assert.ErrorIs(t, err, ErrEventNotBookable)
}

func TestCreateBookingRejectsDuplicateAndOutOfBoundsSeats(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)

	_, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 1}},
	})
	assert.ErrorIs(t, err, ErrDuplicateSeat)

	_, err = fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 99, Column: 1}},
	})
	assert.ErrorIs(t, err, seats.ErrSeatOutOfBounds)
}

func TestCreateBookingSeatConflictFromClaim(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)
	conflict := seats.Seat{Row: 2, Column: 3}
	fx.claimer.conflictAt = &conflict

	_, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{conflict},
	})

	var taken *SeatTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, conflict, taken.Seat)
	assert.Empty(t, fx.repo.bookings)
}

func TestCreateBookingReleasesClaimsWhenInsertFails(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)
	seat := seats.Seat{Row: 4, Column: 4}
	fx.repo.failWith = &SeatTakenError{Seat: seat}

	_, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{seat},
	})

	var taken *SeatTakenError
	require.ErrorAs(t, err, &taken)
	assert.Empty(t, fx.claimer.claimed, "claims must be released after a failed insert")
}

func TestCreateBookingSideEffects(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)

	booking, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}},
	})
	require.NoError(t, err)

	assert.Equal(t, []int{2}, fx.events.attendeeDeltas)
	assert.Equal(t, 1, fx.seats.invalidations)

	require.Len(t, fx.publisher.published, 1)
	notification := fx.publisher.published[0]
	assert.Equal(t, notifications.TypeBookingConfirmed, notification.Type)
	assert.Equal(t, booking.ID.String(), notification.BookingID)
	assert.Equal(t, []string{"A1", "A2"}, notification.SeatLabels)
}

func TestCancelBooking(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)

	booking, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}, {Row: 1, Column: 2}},
	})
	require.NoError(t, err)

	cancelled, err := fx.service.Cancel(context.Background(), fx.bookerID, "user", booking.ID)
	require.NoError(t, err)

	assert.Equal(t, StatusCancelled, cancelled.Status)
	assert.Equal(t, []int{2, -2}, fx.events.attendeeDeltas)
	assert.Equal(t, 2, fx.claimer.released)
	require.Len(t, fx.publisher.published, 2)
	assert.Equal(t, notifications.TypeBookingCancelled, fx.publisher.published[1].Type)

	// cancelling again conflicts
	_, err = fx.service.Cancel(context.Background(), fx.bookerID, "user", booking.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestCancelRequiresOwnerOrAdmin(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)

	booking, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{{Row: 1, Column: 1}},
	})
	require.NoError(t, err)

	_, err = fx.service.Cancel(context.Background(), uuid.New(), "user", booking.ID)
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	_, err = fx.service.Cancel(context.Background(), uuid.New(), "admin", booking.ID)
	assert.NoError(t, err)
}

func TestSeatTakenOnSecondBookingOfSameSeat(t *testing.T) {
	fx := newFixture(t, events.TicketPaid, 20)
	seat := seats.Seat{Row: 3, Column: 3}

	_, err := fx.service.Create(context.Background(), fx.bookerID, &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{seat},
	})
	require.NoError(t, err)

	// second booker reaches the repository because the fake claimer
	// does not conflict; the row-locked check must still reject
	fx.claimer.claimed = map[seats.Seat]string{}
	_, err = fx.service.Create(context.Background(), uuid.New(), &CreateBookingRequest{
		EventID: fx.event.ID.String(),
		Seats:   []seats.Seat{seat},
	})

	var taken *SeatTakenError
	require.ErrorAs(t, err, &taken)
	assert.Equal(t, seat, taken.Seat)
}
