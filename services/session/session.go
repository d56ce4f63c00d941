package session

import (
	"context"
	"regexp"
	"time"

	"rinseo/models"
	"rinseo/store"
	"rinseo/utils"

	"go.uber.org/zap"
)

const sessionKey = "session"

var _ SessionService = (*DefaultSessionService)(nil)

// HomePath is the safe page unauthenticated clients are sent to.
const HomePath = "/"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// DefaultSessionService is the production implementation. It holds the
// current session in memory, persists every mutation through the store
// and rehydrates from it at construction.
type DefaultSessionService struct {
	Store store.Store
	// Latency is the artificial round-trip delay applied to Login and
	// Register. Zero disables it.
	Latency time.Duration

	Observers  []Observer
	Redirector Redirector
	Notifier   Notifier

	current models.Session
}

// New rehydrates the session from the store. A record that cannot be
// decoded, or that claims authentication without a user, loads as
// logged out.
func New(st store.Store) *DefaultSessionService {
	s := &DefaultSessionService{Store: st}
	found, err := st.Get(context.Background(), sessionKey, &s.current)
	if err != nil {
		utils.GetLogger().Warn("Failed to load session, starting empty", zap.Error(err))
	}
	if !found || s.current.User == nil {
		s.current = models.Session{}
	}
	return s
}

func (s *DefaultSessionService) IsAuthenticated() bool {
	return s.current.IsAuthenticated && s.current.User != nil
}

func (s *DefaultSessionService) CurrentUser() *models.User {
	if !s.IsAuthenticated() {
		return nil
	}
	return s.current.User
}

func (s *DefaultSessionService) Guard(path string) (string, bool) {
	if s.IsAuthenticated() {
		return path, true
	}
	return HomePath, false
}

func (s *DefaultSessionService) persist(ctx context.Context) error {
	return s.Store.Set(ctx, sessionKey, s.current)
}

func (s *DefaultSessionService) notifyObservers() {
	for _, o := range s.Observers {
		o.AuthChanged(s.current)
	}
}

// simulateLatency blocks for the configured delay, or until ctx is
// cancelled. The delayed resolution itself always completes; callers
// must tolerate results arriving after the triggering UI is gone.
func simulateLatency(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
