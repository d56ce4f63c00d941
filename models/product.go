package models

// Product is a catalog entry. The core treats catalog data as
// read-only input.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	BuyPrice    int      `json:"buyPrice"`
	RentPrice   int      `json:"rentPrice"`
	Condition   string   `json:"condition,omitempty"`
	Description string   `json:"description,omitempty"`
	Sizes       []string `json:"sizes"`
	Available   bool     `json:"available"`
}

// ServicePlan prices one laundry service tier for booking-to-cart
// conversion.
type ServicePlan struct {
	Type        string `json:"type"`
	DisplayName string `json:"displayName"`
	BasePrice   int    `json:"basePrice"`
}
