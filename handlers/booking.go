package handlers

import (
	"net/http"

	"rinseo/models"
	"rinseo/utils"

	"github.com/gin-gonic/gin"
)

// SubmitBookingHandler validates and stores a pickup booking.
func (h *Storefront) SubmitBookingHandler(c *gin.Context) {
	var draft models.BookingDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	notifier := &responseNotifier{}
	svc := h.bookingService(c, notifier)

	booked, err := svc.Submit(c.Request.Context(), draft)
	if err != nil {
		if utils.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Booking failed, please try again", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking":       booked,
		"notifications": notifier.notifications,
	})
}

// ListBookingsHandler returns the client's booking log.
func (h *Storefront) ListBookingsHandler(c *gin.Context) {
	svc := h.bookingService(c, &responseNotifier{})
	c.JSON(http.StatusOK, gin.H{"bookings": svc.Bookings(c.Request.Context())})
}

// BookingToCartHandler converts a stored booking into a service cart
// line and adds it.
func (h *Storefront) BookingToCartHandler(c *gin.Context) {
	bookingID := c.Param("id")

	notifier := &responseNotifier{}
	svc := h.bookingService(c, notifier)

	var target *models.Booking
	for _, b := range svc.Bookings(c.Request.Context()) {
		if b.ID == bookingID {
			target = &b
			break
		}
	}
	if target == nil {
		utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
		return
	}

	draft := svc.ToCartItem(*target)
	cartSvc := h.cartService(c, notifier)
	cartSvc.AddItem(c.Request.Context(), draft.ProductID, draft.Kind, draft.UnitPrice, draft.DisplayName, draft.ImageRef, draft.SelectedSize)

	c.JSON(http.StatusOK, gin.H{
		"items":         cartSvc.Items(),
		"itemCount":     cartSvc.GetItemCount(),
		"notifications": notifier.notifications,
	})
}
