package session

import (
	"context"
	"strings"

	"rinseo/models"
	"rinseo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

// Login validates the credentials and authenticates the session. This
// is demo-grade authentication: any well-formed credential pair is
// accepted and a fresh opaque user identity is synthesized.
func (s *DefaultSessionService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	simulateLatency(ctx, s.Latency)

	if email == "" || len(password) < minPasswordLen {
		return nil, utils.ValidationError{Field: "password", Message: "Invalid email or password"}
	}

	name := email
	if at := strings.Index(email, "@"); at > 0 {
		name = email[:at]
	}
	user, err := newUser(name, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, user)
}

// Register validates the registration details, creates a user record
// and authenticates the session.
func (s *DefaultSessionService) Register(ctx context.Context, name, email, password string) (*models.Session, error) {
	simulateLatency(ctx, s.Latency)

	if name == "" || !emailPattern.MatchString(email) || len(password) < minPasswordLen {
		return nil, utils.ValidationError{Field: "email", Message: "Please check your information and try again"}
	}

	user, err := newUser(name, email, password)
	if err != nil {
		return nil, err
	}
	return s.establish(ctx, user)
}

// Logout clears the user and flag, deletes the persisted session and
// sends the client back to the safe page.
func (s *DefaultSessionService) Logout(ctx context.Context) error {
	s.current = models.Session{}
	if err := s.Store.Remove(ctx, sessionKey); err != nil {
		utils.GetLogger().Error("Failed to delete persisted session", zap.Error(err))
	}
	s.notifyObservers()
	if s.Notifier != nil {
		s.Notifier.Notify("Logged out successfully", "info")
	}
	if s.Redirector != nil {
		s.Redirector.Redirect(HomePath)
	}
	return nil
}

func newUser(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:           "user_" + uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}, nil
}

func (s *DefaultSessionService) establish(ctx context.Context, user *models.User) (*models.Session, error) {
	s.current = models.Session{User: user, IsAuthenticated: true}
	if err := s.persist(ctx); err != nil {
		return nil, err
	}
	s.notifyObservers()
	snapshot := s.current
	return &snapshot, nil
}
