package handlers

import (
	"net/http"

	"rinseo/utils"

	"github.com/gin-gonic/gin"
)

// ListProductsHandler returns the product catalog, optionally filtered
// by category.
func (h *Storefront) ListProductsHandler(c *gin.Context) {
	products := h.Catalog.Products()
	if category := c.Query("category"); category != "" {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProductHandler returns one catalog entry.
func (h *Storefront) GetProductHandler(c *gin.Context) {
	product, ok := h.Catalog.ProductByID(c.Param("id"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "Product not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// ListServicePlansHandler returns the priced laundry service tiers.
func (h *Storefront) ListServicePlansHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"servicePlans": h.Catalog.Plans()})
}

// DailyPromoHandler reports whether the daily promo should be shown to
// this client.
func (h *Storefront) DailyPromoHandler(c *gin.Context) {
	tracker := h.promoTracker(c)
	c.JSON(http.StatusOK, gin.H{"show": !tracker.ShownToday(c.Request.Context())})
}

// MarkPromoSeenHandler records that the client saw today's promo.
func (h *Storefront) MarkPromoSeenHandler(c *gin.Context) {
	tracker := h.promoTracker(c)
	if err := tracker.MarkShown(c.Request.Context()); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Could not save promo state", "")
		return
	}
	c.Status(http.StatusNoContent)
}
