// Package promo tracks the once-per-day promotional banner marker: a
// presence flag keyed by calendar date.
package promo

import (
	"context"
	"time"

	"rinseo/store"
	"rinseo/utils"

	"go.uber.org/zap"
)

const keyPrefix = "promo_shown_"

// Tracker records which calendar dates the promo was shown on.
type Tracker struct {
	Store store.Store
	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

// ShownToday reports whether the promo was already shown on the
// current calendar date.
func (t *Tracker) ShownToday(ctx context.Context) bool {
	var shown bool
	found, err := t.Store.Get(ctx, t.todayKey(), &shown)
	if err != nil {
		utils.GetLogger().Error("Failed to read promo marker", zap.Error(err))
		return false
	}
	return found && shown
}

// MarkShown records the promo as shown for the current calendar date.
// The marker expires after a day so stale dates do not accumulate.
func (t *Tracker) MarkShown(ctx context.Context) error {
	return t.Store.SetWithTTL(ctx, t.todayKey(), true, 24*time.Hour)
}

func (t *Tracker) todayKey() string {
	now := time.Now
	if t.Now != nil {
		now = t.Now
	}
	return keyPrefix + now().Format("2006-01-02")
}
