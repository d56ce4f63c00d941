package cart

import (
	"context"
	"fmt"
	"time"

	"rinseo/models"
	"rinseo/store"
	"rinseo/utils"

	"go.uber.org/zap"
)

const cartKey = "cart"

var _ CartService = (*DefaultCartService)(nil)

// Config carries the storefront pricing policy.
type Config struct {
	// DeliveryFee is the flat fee charged below the free threshold.
	DeliveryFee int
	// FreeDeliveryThreshold is the subtotal at which delivery is free.
	FreeDeliveryThreshold int
	// MaxLineQuantity caps a single line's quantity when positive.
	// Zero leaves the cap to the caller, matching the storefront's
	// original behavior of enforcing the limit in the UI only.
	MaxLineQuantity int
	// Latency is the artificial settlement delay applied to Checkout.
	Latency time.Duration
}

// DefaultConfig is the observed storefront policy: free delivery at
// 500, flat fee 50, no manager-level quantity cap.
func DefaultConfig() Config {
	return Config{DeliveryFee: 50, FreeDeliveryThreshold: 500}
}

// DefaultCartService is the production implementation. The invariant
// held after every operation: no two lines share the same
// (productID, kind, selectedSize) identity.
type DefaultCartService struct {
	Store    store.Store
	Cfg      Config
	Notifier Notifier
	// OnChange, when set, receives the new item count after every
	// mutation (the badge refresh hook).
	OnChange func(itemCount int)

	items []models.CartItem
}

// New rehydrates the cart from the store; an undecodable record loads
// as an empty cart.
func New(st store.Store, cfg Config) *DefaultCartService {
	s := &DefaultCartService{Store: st, Cfg: cfg}
	found, err := st.Get(context.Background(), cartKey, &s.items)
	if err != nil {
		utils.GetLogger().Warn("Failed to load cart, starting empty", zap.Error(err))
	}
	if !found {
		s.items = nil
	}
	return s
}

func (s *DefaultCartService) AddItem(ctx context.Context, productID string, kind models.Kind, unitPrice int, displayName, imageRef, selectedSize string) bool {
	if idx := s.find(productID, kind, selectedSize); idx >= 0 {
		if s.Cfg.MaxLineQuantity > 0 && s.items[idx].Quantity >= s.Cfg.MaxLineQuantity {
			return false
		}
		s.items[idx].Quantity++
	} else {
		s.items = append(s.items, models.CartItem{
			ProductID:    productID,
			Kind:         kind,
			Quantity:     1,
			UnitPrice:    unitPrice,
			DisplayName:  displayName,
			ImageRef:     imageRef,
			SelectedSize: selectedSize,
		})
	}

	s.persist(ctx)
	s.notify(fmt.Sprintf("%s added to cart", displayName), "success")
	return true
}

func (s *DefaultCartService) RemoveItem(ctx context.Context, productID string, kind models.Kind, selectedSize string) bool {
	idx := s.find(productID, kind, selectedSize)
	if idx < 0 {
		return false
	}
	removed := s.items[idx]
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persist(ctx)
	s.notify(fmt.Sprintf("%s removed from cart", removed.DisplayName), "info")
	return true
}

func (s *DefaultCartService) UpdateQuantity(ctx context.Context, productID string, kind models.Kind, newQuantity int, selectedSize string) bool {
	idx := s.find(productID, kind, selectedSize)
	if idx < 0 {
		return false
	}
	if newQuantity <= 0 {
		return s.RemoveItem(ctx, productID, kind, selectedSize)
	}
	if s.Cfg.MaxLineQuantity > 0 && newQuantity > s.Cfg.MaxLineQuantity {
		newQuantity = s.Cfg.MaxLineQuantity
	}
	s.items[idx].Quantity = newQuantity
	s.persist(ctx)
	s.notify(fmt.Sprintf("Quantity updated to %d", newQuantity), "success")
	return true
}

func (s *DefaultCartService) Items() []models.CartItem {
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *DefaultCartService) GetTotal() int {
	total := 0
	for _, item := range s.items {
		total += item.LineTotal()
	}
	return total
}

func (s *DefaultCartService) GetItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *DefaultCartService) GetDeliveryFee() int {
	if s.GetTotal() >= s.Cfg.FreeDeliveryThreshold {
		return 0
	}
	return s.Cfg.DeliveryFee
}

func (s *DefaultCartService) GetFinalTotal() int {
	return s.GetTotal() + s.GetDeliveryFee()
}

func (s *DefaultCartService) ClearCart(ctx context.Context) error {
	s.items = nil
	s.persist(ctx)
	s.notify("Cart cleared", "info")
	return nil
}

// Checkout settles the order after the simulated round-trip and clears
// the cart. There is no payment integration behind it.
func (s *DefaultCartService) Checkout(ctx context.Context) (*models.OrderSummary, error) {
	if len(s.items) == 0 {
		return nil, utils.ValidationError{Field: "cart", Message: "Your cart is empty"}
	}
	if s.Cfg.Latency > 0 {
		t := time.NewTimer(s.Cfg.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}

	summary := &models.OrderSummary{
		Items:       s.Items(),
		Subtotal:    s.GetTotal(),
		DeliveryFee: s.GetDeliveryFee(),
		Total:       s.GetFinalTotal(),
	}
	s.items = nil
	s.persist(ctx)
	s.notify("Order placed successfully", "success")
	return summary, nil
}

func (s *DefaultCartService) find(productID string, kind models.Kind, selectedSize string) int {
	for i, item := range s.items {
		if item.SameLine(productID, kind, selectedSize) {
			return i
		}
	}
	return -1
}

// persist writes the full line list synchronously so that a later
// rehydration observes a consistent snapshot.
func (s *DefaultCartService) persist(ctx context.Context) {
	if err := s.Store.Set(ctx, cartKey, s.items); err != nil {
		utils.GetLogger().Error("Failed to persist cart", zap.Error(err))
	}
	if s.OnChange != nil {
		s.OnChange(s.GetItemCount())
	}
}

func (s *DefaultCartService) notify(message, severity string) {
	if s.Notifier != nil {
		s.Notifier.Notify(message, severity)
	}
}
