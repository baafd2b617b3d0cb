package seats

import (
	"context"

	"github.com/google/uuid"

	"gatherly/internal/shared/config"
	"gatherly/internal/shared/constants"
	"gatherly/pkg/cache"
	"gatherly/pkg/logger"
)

type Service interface {
	GetReservedSeats(ctx context.Context, eventID uuid.UUID) (*ReservedSeatsResponse, error)
	InvalidateReservedSeats(ctx context.Context, eventID uuid.UUID)
	Grid() Grid
}

type service struct {
	repo  Repository
	cache cache.Service
	grid  Grid
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, hall config.HallConfig, log *logger.Logger) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		grid:  Grid{Rows: hall.Rows, Columns: hall.Columns},
		log:   log,
	}
}

// GetReservedSeats returns the reserved read model. The result is
// cached briefly; clients poll this while the seat picker is open, so
// staleness is bounded by the cache TTL.
func (s *service) GetReservedSeats(ctx context.Context, eventID uuid.UUID) (*ReservedSeatsResponse, error) {
	key := constants.BuildReservedSeatsKey(eventID.String())

	var reserved []Seat
	err := s.cache.GetOrSet(ctx, key, constants.TTL_RESERVED_SEATS, func() (interface{}, error) {
		return s.repo.GetReservedSeats(ctx, eventID)
	}, &reserved)
	if err != nil {
		return nil, err
	}
	if reserved == nil {
		reserved = []Seat{}
	}

	return &ReservedSeatsResponse{
		EventID:  eventID.String(),
		Grid:     s.grid,
		Reserved: reserved,
	}, nil
}

// InvalidateReservedSeats drops the cached read model after a booking
// confirms or cancels, so the next poll sees the change immediately.
func (s *service) InvalidateReservedSeats(ctx context.Context, eventID uuid.UUID) {
	key := constants.BuildReservedSeatsKey(eventID.String())
	if err := s.cache.Delete(ctx, key); err != nil {
		s.log.Warn("failed to invalidate reserved seats cache",
			"event_id", eventID.String(), "error", err)
	}
}

func (s *service) Grid() Grid {
	return s.grid
}
