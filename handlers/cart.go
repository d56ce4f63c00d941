package handlers

import (
	"net/http"

	"rinseo/models"
	"rinseo/utils"

	"github.com/gin-gonic/gin"
)

type addItemRequest struct {
	ProductID    string `json:"productId"`
	Kind         string `json:"type"`
	UnitPrice    int    `json:"price"`
	DisplayName  string `json:"name"`
	ImageRef     string `json:"image"`
	SelectedSize string `json:"selectedSize"`
}

type updateQuantityRequest struct {
	ProductID    string `json:"productId"`
	Kind         string `json:"type"`
	Quantity     int    `json:"quantity"`
	SelectedSize string `json:"selectedSize"`
}

// GetCartHandler returns the cart lines and pricing aggregates.
func (h *Storefront) GetCartHandler(c *gin.Context) {
	cartSvc := h.cartService(c, &responseNotifier{})
	c.JSON(http.StatusOK, gin.H{
		"items":       cartSvc.Items(),
		"itemCount":   cartSvc.GetItemCount(),
		"subtotal":    cartSvc.GetTotal(),
		"deliveryFee": cartSvc.GetDeliveryFee(),
		"total":       cartSvc.GetFinalTotal(),
	})
}

// AddItemHandler adds a line to the cart. Unauthenticated requests do
// not touch the cart: the intent is deferred and replayed automatically
// after the next successful login.
func (h *Storefront) AddItemHandler(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	kind := models.Kind(req.Kind)
	if !kind.Valid() {
		utils.JSONError(c, http.StatusBadRequest, "Unknown item type", req.Kind)
		return
	}

	draft, ok := h.resolveDraft(c, req, kind)
	if !ok {
		return
	}

	notifier := &responseNotifier{}
	sess := h.sessionService(c, notifier)
	if !sess.IsAuthenticated() {
		relay := h.pendingRelay(c)
		if err := relay.Defer(c.Request.Context(), draft); err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "Could not save your item", "")
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":    "Login required to add items to cart",
			"pending":  true,
			"redirect": "/auth",
		})
		return
	}

	cartSvc := h.cartService(c, notifier)
	if !cartSvc.AddItem(c.Request.Context(), draft.ProductID, draft.Kind, draft.UnitPrice, draft.DisplayName, draft.ImageRef, draft.SelectedSize) {
		utils.JSONError(c, http.StatusConflict, "Quantity limit reached for this item", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         cartSvc.Items(),
		"itemCount":     cartSvc.GetItemCount(),
		"notifications": notifier.notifications,
	})
}

// UpdateQuantityHandler overwrites a line's quantity; zero or less
// removes the line.
func (h *Storefront) UpdateQuantityHandler(c *gin.Context) {
	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	notifier := &responseNotifier{}
	cartSvc := h.cartService(c, notifier)
	if !cartSvc.UpdateQuantity(c.Request.Context(), req.ProductID, models.Kind(req.Kind), req.Quantity, req.SelectedSize) {
		utils.JSONError(c, http.StatusNotFound, "Item not in cart", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         cartSvc.Items(),
		"itemCount":     cartSvc.GetItemCount(),
		"subtotal":      cartSvc.GetTotal(),
		"deliveryFee":   cartSvc.GetDeliveryFee(),
		"total":         cartSvc.GetFinalTotal(),
		"notifications": notifier.notifications,
	})
}

// RemoveItemHandler deletes a line identified by query parameters.
func (h *Storefront) RemoveItemHandler(c *gin.Context) {
	productID := c.Query("productId")
	kind := models.Kind(c.Query("type"))
	size := c.Query("selectedSize")

	notifier := &responseNotifier{}
	cartSvc := h.cartService(c, notifier)
	if !cartSvc.RemoveItem(c.Request.Context(), productID, kind, size) {
		utils.JSONError(c, http.StatusNotFound, "Item not in cart", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items":         cartSvc.Items(),
		"itemCount":     cartSvc.GetItemCount(),
		"notifications": notifier.notifications,
	})
}

// ClearCartHandler empties the cart.
func (h *Storefront) ClearCartHandler(c *gin.Context) {
	notifier := &responseNotifier{}
	cartSvc := h.cartService(c, notifier)
	if err := cartSvc.ClearCart(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not clear cart", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifier.notifications})
}

// CheckoutHandler settles the order and clears the cart.
func (h *Storefront) CheckoutHandler(c *gin.Context) {
	notifier := &responseNotifier{}
	cartSvc := h.cartService(c, notifier)

	summary, err := cartSvc.Checkout(c.Request.Context())
	if err != nil {
		if utils.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Checkout failed, please try again", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":         summary,
		"notifications": notifier.notifications,
	})
}

// resolveDraft fills the add request from the catalog when the product
// is known: catalog price and name win over client-supplied values, a
// sized product demands a size, and unavailable products are refused.
// Unknown IDs (service lines from bookings) pass through as sent.
func (h *Storefront) resolveDraft(c *gin.Context, req addItemRequest, kind models.Kind) (models.CartItemDraft, bool) {
	draft := models.CartItemDraft{
		ProductID:    req.ProductID,
		Kind:         kind,
		UnitPrice:    req.UnitPrice,
		DisplayName:  req.DisplayName,
		ImageRef:     req.ImageRef,
		SelectedSize: req.SelectedSize,
	}

	product, known := h.Catalog.ProductByID(req.ProductID)
	if !known || kind == models.KindService {
		return draft, true
	}

	if !product.Available {
		utils.JSONError(c, http.StatusConflict, "This item is currently unavailable", "")
		return draft, false
	}
	if len(product.Sizes) > 0 && req.SelectedSize == "" {
		utils.JSONError(c, http.StatusBadRequest, "Please select a size", "")
		return draft, false
	}

	draft.DisplayName = product.Name
	if len(product.Images) > 0 {
		draft.ImageRef = product.Images[0]
	}
	if kind == models.KindBuy {
		draft.UnitPrice = product.BuyPrice
	} else {
		draft.UnitPrice = product.RentPrice
	}
	return draft, true
}
