package users

import (
	"context"

	"github.com/google/uuid"

	"gatherly/pkg/logger"
)

type Service interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error)
	ToggleFavorite(ctx context.Context, userID uuid.UUID, eventID string) (*UserResponse, bool, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) GetProfile(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.ToResponse()
	return &resp, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.FavoriteCategories != nil {
		user.FavoriteCategories = req.FavoriteCategories
	}
	if req.FavoriteEvents != nil {
		// full replace, the caller sends the complete list
		user.FavoriteEvents = *req.FavoriteEvents
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info("profile updated", "user_id", userID.String())

	resp := user.ToResponse()
	return &resp, nil
}

// ToggleFavorite flips membership of eventID in the user's favorites.
// Returns the updated profile and whether the event is now a favorite.
// The repository serializes the flip against the user row.
func (s *service) ToggleFavorite(ctx context.Context, userID uuid.UUID, eventID string) (*UserResponse, bool, error) {
	user, added, err := s.repo.ToggleFavorite(ctx, userID, eventID)
	if err != nil {
		return nil, false, err
	}

	resp := user.ToResponse()
	return &resp, added, nil
}
