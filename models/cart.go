package models

// Kind is the acquisition mode of a cart line.
type Kind string

const (
	KindBuy     Kind = "buy"
	KindRent    Kind = "rent"
	KindService Kind = "service"
)

// Valid reports whether k is one of the known acquisition modes.
func (k Kind) Valid() bool {
	switch k {
	case KindBuy, KindRent, KindService:
		return true
	}
	return false
}

// CartItem is one line of the cart. Two lines are the same iff
// (ProductID, Kind, SelectedSize) all match.
type CartItem struct {
	ProductID    string `json:"productId"`
	Kind         Kind   `json:"type"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int    `json:"price"`
	DisplayName  string `json:"name"`
	ImageRef     string `json:"image,omitempty"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// SameLine reports whether the item occupies the line identified by the
// given identity key.
func (i CartItem) SameLine(productID string, kind Kind, selectedSize string) bool {
	return i.ProductID == productID && i.Kind == kind && i.SelectedSize == selectedSize
}

// LineTotal is the price contribution of this line.
func (i CartItem) LineTotal() int {
	return i.UnitPrice * i.Quantity
}

// CartItemDraft is an add-to-cart request that has not reached the
// cart yet: the payload of a deferred (pending) add captured before
// login, and the shape a booking converts itself into.
type CartItemDraft struct {
	ProductID    string `json:"productId"`
	Kind         Kind   `json:"type"`
	UnitPrice    int    `json:"price"`
	DisplayName  string `json:"name"`
	ImageRef     string `json:"image,omitempty"`
	SelectedSize string `json:"selectedSize,omitempty"`
}

// OrderSummary is the receipt returned by checkout.
type OrderSummary struct {
	Items       []CartItem `json:"items"`
	Subtotal    int        `json:"subtotal"`
	DeliveryFee int        `json:"deliveryFee"`
	Total       int        `json:"total"`
}
