package handlers

import (
	"rinseo/config"
	"rinseo/middleware"
	"rinseo/services/booking"
	"rinseo/services/cart"
	"rinseo/services/catalog"
	"rinseo/services/pending"
	"rinseo/services/promo"
	"rinseo/services/session"

	"github.com/gin-gonic/gin"
)

// Storefront builds the per-request service stack. Every request gets
// managers bound to its client's store namespace, so a later request
// from the same client rehydrates the exact state the previous one
// persisted.
type Storefront struct {
	Catalog *catalog.Catalog
}

func NewStorefront(cat *catalog.Catalog) *Storefront {
	return &Storefront{Catalog: cat}
}

func (h *Storefront) sessionService(c *gin.Context, n *responseNotifier) *session.DefaultSessionService {
	svc := session.New(middleware.ClientStore(c))
	svc.Latency = config.SimulatedLatency()
	svc.Notifier = n
	return svc
}

func (h *Storefront) cartService(c *gin.Context, n *responseNotifier) *cart.DefaultCartService {
	cfg := cart.Config{
		DeliveryFee:           config.AppConfig.DeliveryFee,
		FreeDeliveryThreshold: config.AppConfig.FreeDeliveryThreshold,
		MaxLineQuantity:       config.AppConfig.MaxLineQuantity,
		Latency:               config.SimulatedLatency(),
	}
	svc := cart.New(middleware.ClientStore(c), cfg)
	svc.Notifier = n
	return svc
}

func (h *Storefront) bookingService(c *gin.Context, n *responseNotifier) *booking.DefaultBookingService {
	return &booking.DefaultBookingService{
		Store:    middleware.ClientStore(c),
		Plans:    h.Catalog,
		Notifier: n,
		Latency:  config.SimulatedLatency(),
	}
}

func (h *Storefront) pendingRelay(c *gin.Context) *pending.Relay {
	return &pending.Relay{
		Store: middleware.ClientStore(c),
		TTL:   config.PendingItemTTL(),
	}
}

func (h *Storefront) promoTracker(c *gin.Context) *promo.Tracker {
	return &promo.Tracker{Store: middleware.ClientStore(c)}
}
