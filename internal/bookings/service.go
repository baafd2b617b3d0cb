package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"gatherly/internal/events"
	"gatherly/internal/notifications"
	"gatherly/internal/seats"
	"gatherly/internal/users"
	"gatherly/pkg/logger"
)

var (
	ErrOwnEvent         = errors.New("organizers cannot book their own event")
	ErrEventNotBookable = errors.New("event is not open for booking")
	ErrDuplicateSeat    = errors.New("duplicate seat in request")
	ErrNotBookingOwner  = errors.New("booking belongs to another user")
	ErrAlreadyCancelled = errors.New("booking is already cancelled")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error)
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*Booking, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	List(ctx context.Context, filters ListFilters) ([]Booking, error)
	Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*Booking, error)
}

// SeatClaimer is the Redis claim layer, satisfied by
// seats.AtomicRedisOperations.
type SeatClaimer interface {
	ClaimSeats(ctx context.Context, eventID string, seatList []seats.Seat, owner string, ttl time.Duration) error
	ReleaseSeats(ctx context.Context, eventID string, seatList []seats.Seat, owner string) (int, error)
}

type service struct {
	repo         Repository
	eventService events.Service
	userService  users.Service
	seatService  seats.Service
	seatClaims   SeatClaimer
	publisher    notifications.Publisher
	claimTTL     time.Duration
	log          *logger.Logger
}

func NewService(
	repo Repository,
	eventService events.Service,
	userService users.Service,
	seatService seats.Service,
	seatClaims SeatClaimer,
	publisher notifications.Publisher,
	claimTTL time.Duration,
	log *logger.Logger,
) Service {
	return &service{
		repo:         repo,
		eventService: eventService,
		userService:  userService,
		seatService:  seatService,
		seatClaims:   seatClaims,
		publisher:    publisher,
		claimTTL:     claimTTL,
		log:          log,
	}
}

// Create books the requested seats. The price is always recomputed from
// the event record on the server; nothing client-sent is trusted beyond
// the seat positions themselves.
func (s *service) Create(ctx context.Context, userID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return nil, fmt.Errorf("invalid event id: %w", err)
	}

	event, err := s.eventService.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !event.Status.IsBookable() {
		return nil, ErrEventNotBookable
	}
	if event.CreatedBy == userID {
		return nil, ErrOwnEvent
	}

	grid := s.seatService.Grid()
	seen := make(map[seats.Seat]struct{}, len(req.Seats))
	for _, seat := range req.Seats {
		if !grid.Contains(seat) {
			return nil, seats.ErrSeatOutOfBounds
		}
		if _, dup := seen[seat]; dup {
			return nil, ErrDuplicateSeat
		}
		seen[seat] = struct{}{}
	}

	user, err := s.userService.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookingID := uuid.New()
	numTickets := len(req.Seats)
	totalPrice := event.TicketType.TotalPrice(event.Price, numTickets)

	// Fast path: claim the seats in Redis first. Losing here avoids the
	// transaction entirely for most concurrent conflicts.
	if err := s.seatClaims.ClaimSeats(ctx, eventID.String(), req.Seats, bookingID.String(), s.claimTTL); err != nil {
		var conflict *seats.ErrSeatConflict
		if errors.As(err, &conflict) {
			s.log.LogSeatConflict(ctx, eventID.String(), conflict.Seat.Row, conflict.Seat.Column)
			return nil, &SeatTakenError{Seat: conflict.Seat}
		}
		return nil, err
	}

	booking := &Booking{
		ID:      bookingID,
		EventID: eventID,
		UserID:  userID,

		EventTitle:    event.Title,
		EventDate:     event.Date,
		EventTime:     event.Time,
		EventCity:     event.City,
		EventLocation: event.Location,
		EventImage:    event.ImageURL,

		UserEmail: user.Email,
		UserName:  user.FullName,

		Seats:      req.Seats,
		NumTickets: numTickets,
		TotalPrice: totalPrice,
		Status:     StatusConfirmed,
	}

	if err := s.repo.CreateWithSeatCheck(ctx, booking); err != nil {
		// give the claims back so the seats free up before the TTL
		if _, releaseErr := s.seatClaims.ReleaseSeats(ctx, eventID.String(), req.Seats, bookingID.String()); releaseErr != nil {
			s.log.Warn("failed to release seat claims after booking failure",
				"booking_id", bookingID.String(), "error", releaseErr)
		}
		var taken *SeatTakenError
		if errors.As(err, &taken) {
			s.log.LogSeatConflict(ctx, eventID.String(), taken.Seat.Row, taken.Seat.Column)
		}
		return nil, err
	}

	if err := s.eventService.IncrementAttendees(ctx, eventID, numTickets); err != nil {
		s.log.Warn("failed to bump attendees count",
			"event_id", eventID.String(), "error", err)
	}
	s.seatService.InvalidateReservedSeats(ctx, eventID)

	s.publish(ctx, notifications.TypeBookingConfirmed, booking)
	s.log.LogBookingCreated(ctx, bookingID.String(), eventID.String(), user.Email, numTickets)

	return booking, nil
}

func (s *service) GetByID(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actorID && actorRole != string(users.RoleAdmin) {
		return nil, ErrNotBookingOwner
	}
	return booking, nil
}

func (s *service) GetUserBookings(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	return s.repo.GetByUser(ctx, userID)
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]Booking, error) {
	return s.repo.List(ctx, filters)
}

// Cancel flips a booking to CANCELLED, frees its seats and walks the
// attendee count back.
func (s *service) Cancel(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) (*Booking, error) {
	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actorID && actorRole != string(users.RoleAdmin) {
		return nil, ErrNotBookingOwner
	}
	if booking.Status == StatusCancelled {
		return nil, ErrAlreadyCancelled
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	booking.Status = StatusCancelled

	if _, err := s.seatClaims.ReleaseSeats(ctx, booking.EventID.String(), booking.Seats, booking.ID.String()); err != nil {
		s.log.Warn("failed to release seat claims on cancel",
			"booking_id", booking.ID.String(), "error", err)
	}
	if err := s.eventService.IncrementAttendees(ctx, booking.EventID, -booking.NumTickets); err != nil {
		s.log.Warn("failed to decrement attendees count",
			"event_id", booking.EventID.String(), "error", err)
	}
	s.seatService.InvalidateReservedSeats(ctx, booking.EventID)

	s.publish(ctx, notifications.TypeBookingCancelled, booking)
	s.log.LogBookingCancelled(ctx, booking.ID.String(), booking.EventID.String())

	return booking, nil
}

func (s *service) publish(ctx context.Context, kind notifications.NotificationType, booking *Booking) {
	labels := make([]string, len(booking.Seats))
	for i, seat := range booking.Seats {
		labels[i] = seat.Label()
	}

	notification := &notifications.BookingNotification{
		Type:       kind,
		BookingID:  booking.ID.String(),
		EventID:    booking.EventID.String(),
		EventTitle: booking.EventTitle,
		EventDate:  booking.EventDate,
		EventTime:  booking.EventTime,
		UserEmail:  booking.UserEmail,
		UserName:   booking.UserName,
		SeatLabels: labels,
		NumTickets: booking.NumTickets,
		TotalPrice: booking.TotalPrice,
		OccurredAt: time.Now().UTC(),
	}

	if err := s.publisher.Publish(ctx, notification); err != nil {
		// the booking stands; delivery is at-least-once via consumer retries elsewhere
		s.log.Warn("failed to publish booking notification",
			"booking_id", booking.ID.String(), "error", err)
	}
}
