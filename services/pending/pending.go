// Package pending holds at most one deferred add-to-cart request across
// a login redirect. The record is short-lived and read-once: it is
// consumed exactly one time, and only once the session is authenticated.
package pending

import (
	"context"
	"time"

	"rinseo/models"
	"rinseo/store"
	"rinseo/utils"

	"go.uber.org/zap"
)

const pendingKey = "pendingCartItem"

// Authenticator is the slice of the session service the relay needs.
type Authenticator interface {
	IsAuthenticated() bool
}

// Relay stores and replays the deferred intent.
type Relay struct {
	Store store.Store
	// TTL bounds how long a deferred intent survives; it stands in for
	// the tab-scoped storage of a browser client.
	TTL time.Duration
}

// Defer records the intent, overwriting any existing one. The last
// writer wins.
func (r *Relay) Defer(ctx context.Context, item models.CartItemDraft) error {
	return r.Store.SetWithTTL(ctx, pendingKey, item, r.TTL)
}

// ConsumeIfAuthenticated removes and returns the deferred intent when
// one exists and the session is authenticated. When the session is not
// authenticated the intent is left untouched so a later check can still
// replay it.
func (r *Relay) ConsumeIfAuthenticated(ctx context.Context, auth Authenticator) (*models.CartItemDraft, bool) {
	if !auth.IsAuthenticated() {
		return nil, false
	}
	var item models.CartItemDraft
	found, err := r.Store.Get(ctx, pendingKey, &item)
	if err != nil {
		utils.GetLogger().Error("Failed to read pending cart intent", zap.Error(err))
		return nil, false
	}
	if !found {
		return nil, false
	}
	if err := r.Store.Remove(ctx, pendingKey); err != nil {
		utils.GetLogger().Error("Failed to clear pending cart intent", zap.Error(err))
	}
	return &item, true
}
