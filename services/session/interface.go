package session

import (
	"context"

	"rinseo/models"
)

// SessionService defines business logic for authentication state.
type SessionService interface {
	// Login validates credentials and authenticates the session.
	Login(ctx context.Context, email, password string) (*models.Session, error)
	// Register validates the registration details and authenticates.
	Register(ctx context.Context, name, email, password string) (*models.Session, error)
	// Logout clears the session, deletes the persisted record and fires
	// the return-to-safe-page policy.
	Logout(ctx context.Context) error
	// IsAuthenticated reports whether a user is signed in.
	IsAuthenticated() bool
	// CurrentUser returns the signed-in user, or nil.
	CurrentUser() *models.User
	// Guard is the protected-page check: it returns path when the
	// session is authenticated, otherwise the safe home path and false.
	Guard(path string) (string, bool)
}

// Observer is notified on every authentication change so visible auth
// affordances (login/signup controls vs a user indicator) can refresh.
type Observer interface {
	AuthChanged(s models.Session)
}

// Redirector is the navigation primitive invoked when a protected page
// must return to a safe one.
type Redirector interface {
	Redirect(path string)
}

// Notifier is the UI notification sink.
type Notifier interface {
	Notify(message, severity string)
}
