package client

import (
	"sync"
)

// Session holds the authenticated state of one client: the token pair
// and the profile snapshot returned by login. Safe for concurrent use.
type Session struct {
	mu sync.RWMutex

	access  string
	refresh string
	user    UserProfile
}

func NewSession(access, refresh string, user UserProfile) *Session {
	return &Session{access: access, refresh: refresh, user: user}
}

func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *Session) User() UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

func (s *Session) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = access
	s.refresh = refresh
}

func (s *Session) SetUser(user UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = user
}

// FavoriteEvents returns a copy of the cached favorites list.
func (s *Session) FavoriteEvents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.user.FavoriteEvents))
	copy(out, s.user.FavoriteEvents)
	return out
}

// IsFavorite reports whether the event is in the cached favorites.
func (s *Session) IsFavorite(eventID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, id := range s.user.FavoriteEvents {
		if id == eventID {
			return true
		}
	}
	return false
}

func (s *Session) setFavorites(favorites []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user.FavoriteEvents = favorites
}
