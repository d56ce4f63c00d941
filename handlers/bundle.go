package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Auth endpoints
	LoginHandler    gin.HandlerFunc
	RegisterHandler gin.HandlerFunc
	LogoutHandler   gin.HandlerFunc
	ProfileHandler  gin.HandlerFunc

	// Cart endpoints
	GetCartHandler        gin.HandlerFunc
	AddItemHandler        gin.HandlerFunc
	UpdateQuantityHandler gin.HandlerFunc
	RemoveItemHandler     gin.HandlerFunc
	ClearCartHandler      gin.HandlerFunc
	CheckoutHandler       gin.HandlerFunc

	// Booking endpoints
	SubmitBookingHandler gin.HandlerFunc
	ListBookingsHandler  gin.HandlerFunc
	BookingToCartHandler gin.HandlerFunc

	// Catalog and promo endpoints
	ListProductsHandler     gin.HandlerFunc
	GetProductHandler       gin.HandlerFunc
	ListServicePlansHandler gin.HandlerFunc
	DailyPromoHandler       gin.HandlerFunc
	MarkPromoSeenHandler    gin.HandlerFunc
}

// NewBundle assembles the bundle from a Storefront.
func NewBundle(h *Storefront) *HandlerBundle {
	return &HandlerBundle{
		LoginHandler:    h.LoginHandler,
		RegisterHandler: h.RegisterHandler,
		LogoutHandler:   h.LogoutHandler,
		ProfileHandler:  h.ProfileHandler,

		GetCartHandler:        h.GetCartHandler,
		AddItemHandler:        h.AddItemHandler,
		UpdateQuantityHandler: h.UpdateQuantityHandler,
		RemoveItemHandler:     h.RemoveItemHandler,
		ClearCartHandler:      h.ClearCartHandler,
		CheckoutHandler:       h.CheckoutHandler,

		SubmitBookingHandler: h.SubmitBookingHandler,
		ListBookingsHandler:  h.ListBookingsHandler,
		BookingToCartHandler: h.BookingToCartHandler,

		ListProductsHandler:     h.ListProductsHandler,
		GetProductHandler:       h.GetProductHandler,
		ListServicePlansHandler: h.ListServicePlansHandler,
		DailyPromoHandler:       h.DailyPromoHandler,
		MarkPromoSeenHandler:    h.MarkPromoSeenHandler,
	}
}
