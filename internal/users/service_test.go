package users

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"

	"gatherly/pkg/logger"
)

type memoryRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*User
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{users: make(map[uuid.UUID]*User)}
}

func (m *memoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*User, error) {
	user, ok := m.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *memoryRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (m *memoryRepo) Create(ctx context.Context, user *User) error {
	m.users[user.ID] = user
	return nil
}

func (m *memoryRepo) Update(ctx context.Context, user *User) error {
	if _, ok := m.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	m.users[user.ID] = user
	return nil
}

// ToggleFavorite serializes flips the way the real repository's row
// lock does.
func (m *memoryRepo) ToggleFavorite(ctx context.Context, id uuid.UUID, eventID string) (*User, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, false, ErrUserNotFound
	}

	added := true
	next := make([]string, 0, len(user.FavoriteEvents)+1)
	for _, fav := range user.FavoriteEvents {
		if fav == eventID {
			added = false
			continue
		}
		next = append(next, fav)
	}
	if added {
		next = append(next, eventID)
	}
	user.FavoriteEvents = next

	copied := *user
	return &copied, added, nil
}

func (m *memoryRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func seedUser(repo *memoryRepo, favorites ...string) *User {
	user := &User{
		ID:             uuid.New(),
		Email:          "asha@example.com",
		FullName:       "Asha Verma",
		Role:           RoleUser,
		FavoriteEvents: favorites,
	}
	repo.users[user.ID] = user
	return user
}

func TestToggleFavoriteAddsAndRemoves(t *testing.T) {
	repo := newMemoryRepo()
	user := seedUser(repo)
	svc := NewService(repo, logger.GetDefault())

	profile, added, err := svc.ToggleFavorite(context.Background(), user.ID, "event-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatalf("first toggle should add")
	}
	if len(profile.FavoriteEvents) != 1 || profile.FavoriteEvents[0] != "event-1" {
		t.Fatalf("favorites = %v, want [event-1]", profile.FavoriteEvents)
	}

	profile, added, err = svc.ToggleFavorite(context.Background(), user.ID, "event-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatalf("second toggle should remove")
	}
	if len(profile.FavoriteEvents) != 0 {
		t.Fatalf("favorites = %v, want empty", profile.FavoriteEvents)
	}
}

func TestToggleFavoritePreservesOthers(t *testing.T) {
	repo := newMemoryRepo()
	user := seedUser(repo, "event-1", "event-2", "event-3")
	svc := NewService(repo, logger.GetDefault())

	profile, added, err := svc.ToggleFavorite(context.Background(), user.ID, "event-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Fatalf("toggle of existing favorite should remove")
	}
	want := []string{"event-1", "event-3"}
	if len(profile.FavoriteEvents) != len(want) {
		t.Fatalf("favorites = %v, want %v", profile.FavoriteEvents, want)
	}
	for i := range want {
		if profile.FavoriteEvents[i] != want[i] {
			t.Fatalf("favorites = %v, want %v", profile.FavoriteEvents, want)
		}
	}
}

func TestToggleFavoriteConcurrentDistinctEvents(t *testing.T) {
	repo := newMemoryRepo()
	user := seedUser(repo)
	svc := NewService(repo, logger.GetDefault())

	events := []string{"event-1", "event-2", "event-3", "event-4", "event-5"}
	var wg sync.WaitGroup
	for _, id := range events {
		wg.Add(1)
		go func(eventID string) {
			defer wg.Done()
			if _, _, err := svc.ToggleFavorite(context.Background(), user.ID, eventID); err != nil {
				t.Errorf("toggle %s: %v", eventID, err)
			}
		}(id)
	}
	wg.Wait()

	// no toggle may be lost to a concurrent one
	profile, err := svc.GetProfile(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.FavoriteEvents) != len(events) {
		t.Fatalf("favorites = %v, want all of %v", profile.FavoriteEvents, events)
	}
}

func TestUpdateProfileReplacesFavoritesWholesale(t *testing.T) {
	repo := newMemoryRepo()
	user := seedUser(repo, "event-1", "event-2")
	svc := NewService(repo, logger.GetDefault())

	next := []string{"event-9"}
	profile, err := svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		FavoriteEvents: &next,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.FavoriteEvents) != 1 || profile.FavoriteEvents[0] != "event-9" {
		t.Fatalf("favorites = %v, want [event-9]", profile.FavoriteEvents)
	}

	// nil pointer leaves the list untouched
	name := "Asha V"
	profile, err = svc.UpdateProfile(context.Background(), user.ID, UpdateProfileRequest{
		FullName: &name,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profile.FavoriteEvents) != 1 || profile.FavoriteEvents[0] != "event-9" {
		t.Fatalf("favorites changed by unrelated update: %v", profile.FavoriteEvents)
	}
	if profile.FullName != "Asha V" {
		t.Fatalf("full name = %q, want Asha V", profile.FullName)
	}
}

func TestToggleFavoriteUnknownUser(t *testing.T) {
	repo := newMemoryRepo()
	svc := NewService(repo, logger.GetDefault())

	_, _, err := svc.ToggleFavorite(context.Background(), uuid.New(), "event-1")
	if err != ErrUserNotFound {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
