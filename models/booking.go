package models

import "time"

// BookingDraft is the client-supplied half of a booking, validated
// before it becomes a Booking.
type BookingDraft struct {
	ServiceType         string `json:"serviceType"`
	PickupDate          string `json:"pickupDate"` // "2006-01-02"
	PickupTime          string `json:"pickupTime"`
	PickupAddress       string `json:"pickupAddress"`
	PhoneNumber         string `json:"phoneNumber"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Booking is a stored pickup booking. The booking log is append-only;
// repeated submissions create repeated records.
type Booking struct {
	ID                  string    `json:"id"`
	ServiceType         string    `json:"serviceType"`
	PickupDate          string    `json:"pickupDate"`
	PickupTime          string    `json:"pickupTime"`
	PickupAddress       string    `json:"pickupAddress"`
	PhoneNumber         string    `json:"phoneNumber"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}
