package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"gatherly/internal/shared/constants"
	"gatherly/internal/users"
	"gatherly/pkg/cache"
	"gatherly/pkg/logger"
)

var (
	ErrNotOwner         = errors.New("only the organizer can modify this event")
	ErrEventHasBookings = errors.New("event has confirmed bookings")
	ErrInvalidStatus    = errors.New("invalid event status")
)

type Service interface {
	Create(ctx context.Context, organizer *users.UserResponse, req *CreateEventRequest) (*Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Event, error)
	List(ctx context.Context, filters ListFilters) ([]Event, error)
	Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *UpdateEventRequest) (*Event, error)
	Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error
	IncrementAttendees(ctx context.Context, id uuid.UUID, delta int) error
}

type service struct {
	repo  Repository
	cache cache.Service
	log   *logger.Logger
}

func NewService(repo Repository, cacheService cache.Service, log *logger.Logger) Service {
	return &service{repo: repo, cache: cacheService, log: log}
}

func (s *service) Create(ctx context.Context, organizer *users.UserResponse, req *CreateEventRequest) (*Event, error) {
	if !IsValidCategory(req.Category) {
		return nil, fmt.Errorf("unknown category %q", req.Category)
	}

	ticketType := TicketType(req.TicketType)
	price := req.Price
	if ticketType == TicketFree {
		// free events never carry a price
		price = 0
	}

	organizerID, err := uuid.Parse(organizer.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid organizer id: %w", err)
	}

	event := &Event{
		ID:             uuid.New(),
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		Subcategory:    req.Subcategory,
		Tags:           req.Tags,
		Date:           req.Date,
		Time:           req.Time,
		EndDate:        req.EndDate,
		City:           req.City,
		Location:       req.Location,
		Address:        req.Address,
		Price:          price,
		TicketType:     ticketType,
		Capacity:       req.Capacity,
		ImageURL:       req.ImageURL,
		BannerURL:      req.BannerURL,
		Featured:       req.Featured,
		CreatedBy:      organizerID,
		OrganizerName:  organizer.FullName,
		OrganizerEmail: organizer.Email,
		Status:         StatusPublished,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateListings(ctx)
	s.log.Info("event created", "event_id", event.ID.String(), "title", event.Title)

	return event, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Event, error) {
	key := constants.BuildEventDetailKey(id.String())

	var event Event
	err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_DETAIL, func() (interface{}, error) {
		return s.repo.GetByID(ctx, id)
	}, &event)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (s *service) List(ctx context.Context, filters ListFilters) ([]Event, error) {
	key := constants.BuildEventListKey(
		string(filters.Status), filters.Category, filters.CreatedBy.String(), filters.Limit)

	var events []Event
	err := s.cache.GetOrSet(ctx, key, constants.TTL_EVENT_LIST, func() (interface{}, error) {
		return s.repo.List(ctx, filters)
	}, &events)
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (s *service) Update(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID, req *UpdateEventRequest) (*Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.CreatedBy != actorID && actorRole != string(users.RoleAdmin) {
		return nil, ErrNotOwner
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		if !IsValidCategory(*req.Category) {
			return nil, fmt.Errorf("unknown category %q", *req.Category)
		}
		event.Category = *req.Category
	}
	if req.Subcategory != nil {
		event.Subcategory = *req.Subcategory
	}
	if req.Tags != nil {
		event.Tags = req.Tags
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.EndDate != nil {
		event.EndDate = *req.EndDate
	}
	if req.City != nil {
		event.City = *req.City
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.TicketType != nil {
		event.TicketType = TicketType(*req.TicketType)
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.ImageURL != nil {
		event.ImageURL = *req.ImageURL
	}
	if req.BannerURL != nil {
		event.BannerURL = *req.BannerURL
	}
	if req.Featured != nil {
		event.Featured = *req.Featured
	}
	if event.TicketType == TicketFree {
		event.Price = 0
	}
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		event.Status = EventStatus(*req.Status)
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.invalidateEvent(ctx, id)
	return event, nil
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, actorRole string, id uuid.UUID) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.CreatedBy != actorID && actorRole != string(users.RoleAdmin) {
		return ErrNotOwner
	}

	count, err := s.repo.ConfirmedBookingCount(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEventHasBookings
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateEvent(ctx, id)
	s.log.Info("event deleted", "event_id", id.String())
	return nil
}

func (s *service) IncrementAttendees(ctx context.Context, id uuid.UUID, delta int) error {
	if err := s.repo.IncrementAttendees(ctx, id, delta); err != nil {
		return err
	}
	s.invalidateEvent(ctx, id)
	return nil
}

func (s *service) invalidateEvent(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, constants.BuildEventDetailKey(id.String())); err != nil {
		s.log.Warn("failed to invalidate event detail cache", "event_id", id.String(), "error", err)
	}
	s.invalidateListings(ctx)
}

func (s *service) invalidateListings(ctx context.Context) {
	if err := s.cache.DeletePattern(ctx, constants.CACHE_KEY_EVENT_LIST+"*"); err != nil {
		s.log.Warn("failed to invalidate event list cache", "error", err)
	}
	if err := s.cache.DeletePattern(ctx, constants.CACHE_KEY_EVENT_SEARCH+"*"); err != nil {
		s.log.Warn("failed to invalidate search cache", "error", err)
	}
}
