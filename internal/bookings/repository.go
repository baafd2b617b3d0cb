package bookings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gatherly/internal/seats"
)

var ErrBookingNotFound = errors.New("booking not found")

// SeatTakenError reports the first requested seat already held by a
// confirmed booking.
type SeatTakenError struct {
	Seat seats.Seat
}

func (e *SeatTakenError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.Seat.Label())
}

type Repository interface {
	CreateWithSeatCheck(ctx context.Context, booking *Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	List(ctx context.Context, filters ListFilters) ([]Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// CreateWithSeatCheck inserts the booking inside a transaction that
// row-locks the event's confirmed bookings and rejects any seat overlap.
// This is the database-side guarantee behind the faster Redis claim.
func (r *repository) CreateWithSeatCheck(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var rows []struct {
			Seats []byte `gorm:"column:seats"`
		}
		err := tx.Table("bookings").
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("seats").
			Where("event_id = ? AND status = ?", booking.EventID, StatusConfirmed).
			Find(&rows).Error
		if err != nil {
			return fmt.Errorf("failed to lock existing bookings: %w", err)
		}

		taken := make(map[seats.Seat]struct{})
		for _, row := range rows {
			if len(row.Seats) == 0 {
				continue
			}
			var seatList []seats.Seat
			if err := json.Unmarshal(row.Seats, &seatList); err != nil {
				return fmt.Errorf("corrupt seat data in booking: %w", err)
			}
			for _, s := range seatList {
				taken[s] = struct{}{}
			}
		}

		for _, s := range booking.Seats {
			if _, exists := taken[s]; exists {
				return &SeatTakenError{Seat: s}
			}
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func (r *repository) GetByUser(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var bookings []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list user bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) List(ctx context.Context, filters ListFilters) ([]Booking, error) {
	query := r.db.WithContext(ctx).Model(&Booking{})

	if filters.EventID != uuid.Nil {
		query = query.Where("event_id = ?", filters.EventID)
	}
	if filters.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit)
	}

	var bookings []Booking
	if err := query.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status BookingStatus) error {
	result := r.db.WithContext(ctx).Model(&Booking{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update booking status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}
