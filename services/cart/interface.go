package cart

import (
	"context"

	"rinseo/models"
)

// CartService defines the cart operations. All operations are
// synchronous over an in-memory line list backed by the store; every
// mutation persists before returning.
type CartService interface {
	// AddItem appends a new line with quantity 1, or increments the
	// quantity of the line with the same (productID, kind, size)
	// identity. It returns false only when a configured per-line
	// quantity cap refuses the increment.
	AddItem(ctx context.Context, productID string, kind models.Kind, unitPrice int, displayName, imageRef, selectedSize string) bool
	// RemoveItem deletes the identified line; false when absent.
	RemoveItem(ctx context.Context, productID string, kind models.Kind, selectedSize string) bool
	// UpdateQuantity overwrites the line's quantity, delegating to
	// RemoveItem when newQuantity <= 0; false when the line is absent.
	UpdateQuantity(ctx context.Context, productID string, kind models.Kind, newQuantity int, selectedSize string) bool
	// Items returns a copy of the current lines in order.
	Items() []models.CartItem
	// GetTotal is the sum of unit price times quantity over all lines.
	GetTotal() int
	// GetItemCount is the sum of quantities over all lines.
	GetItemCount() int
	// GetDeliveryFee is zero at or above the free-delivery threshold,
	// otherwise the flat fee.
	GetDeliveryFee() int
	// GetFinalTotal is GetTotal plus GetDeliveryFee.
	GetFinalTotal() int
	// ClearCart empties the list and persists.
	ClearCart(ctx context.Context) error
	// Checkout settles the order: it returns the receipt and clears
	// the cart.
	Checkout(ctx context.Context) (*models.OrderSummary, error)
}

// Notifier is the UI notification sink.
type Notifier interface {
	Notify(message, severity string)
}
