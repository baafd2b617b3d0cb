package seats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetReservedSeats(ctx context.Context, eventID uuid.UUID) ([]Seat, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetReservedSeats flattens the seat arrays of every confirmed booking
// for the event into a single ordered list.
func (r *repository) GetReservedSeats(ctx context.Context, eventID uuid.UUID) ([]Seat, error) {
	var rows []struct {
		Seats []byte `gorm:"column:seats"`
	}

	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("seats").
		Where("event_id = ? AND status = ?", eventID, "CONFIRMED").
		Order("created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load reserved seats: %w", err)
	}

	reserved := make([]Seat, 0, len(rows)*2)
	for _, row := range rows {
		if len(row.Seats) == 0 {
			continue
		}
		var seatList []Seat
		if err := json.Unmarshal(row.Seats, &seatList); err != nil {
			return nil, fmt.Errorf("corrupt seat data in booking: %w", err)
		}
		reserved = append(reserved, seatList...)
	}
	return reserved, nil
}
