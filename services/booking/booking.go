// Package booking validates and stores laundry pickup bookings. The
// booking log is append-only and a booking can convert itself into a
// service-kind cart draft priced through the catalog's service plans.
package booking

import (
	"context"
	"strings"
	"time"

	"rinseo/models"
	"rinseo/store"
	"rinseo/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const bookingsKey = "bookings"

var _ BookingService = (*DefaultBookingService)(nil)

// FieldError is one violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PlanResolver maps a service type to its priced plan.
type PlanResolver interface {
	PlanFor(serviceType string) (models.ServicePlan, bool)
}

// Notifier is the UI notification sink.
type Notifier interface {
	Notify(message, severity string)
}

// BookingService defines the booking builder operations.
type BookingService interface {
	Validate(draft models.BookingDraft) []FieldError
	Submit(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	ToCartItem(b models.Booking) models.CartItemDraft
	Bookings(ctx context.Context) []models.Booking
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Store    store.Store
	Plans    PlanResolver
	Notifier Notifier
	// Latency is the artificial submission delay. Zero disables it.
	Latency time.Duration

	// Now is swappable for date-boundary tests; nil means time.Now.
	Now func() time.Time
}

// Validate returns every violated rule in field order. Callers surface
// only the first one.
func (s *DefaultBookingService) Validate(draft models.BookingDraft) []FieldError {
	var errs []FieldError

	if draft.ServiceType == "" {
		errs = append(errs, FieldError{Field: "serviceType", Message: "Please select a service type"})
	}
	if draft.PickupDate == "" {
		errs = append(errs, FieldError{Field: "pickupDate", Message: "Please select a pickup date"})
	} else if date, err := time.Parse("2006-01-02", draft.PickupDate); err != nil {
		errs = append(errs, FieldError{Field: "pickupDate", Message: "Please select a pickup date"})
	} else if date.Before(s.today()) {
		errs = append(errs, FieldError{Field: "pickupDate", Message: "Pickup date cannot be in the past"})
	}
	if draft.PickupTime == "" {
		errs = append(errs, FieldError{Field: "pickupTime", Message: "Please select a pickup time"})
	}
	if len(strings.TrimSpace(draft.PickupAddress)) < 10 {
		errs = append(errs, FieldError{Field: "pickupAddress", Message: "Please enter a complete pickup address"})
	}
	if digitCount(draft.PhoneNumber) < 10 {
		errs = append(errs, FieldError{Field: "phoneNumber", Message: "Please enter a valid phone number"})
	}

	return errs
}

// Submit validates the draft and appends it to the persisted booking
// log. Repeated submissions create repeated records.
func (s *DefaultBookingService) Submit(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
	if s.Latency > 0 {
		t := time.NewTimer(s.Latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
		case <-t.C:
		}
	}

	if errs := s.Validate(draft); len(errs) > 0 {
		first := errs[0]
		return nil, utils.ValidationError{Field: first.Field, Message: first.Message}
	}

	booking := models.Booking{
		ID:                  uuid.NewString(),
		ServiceType:         draft.ServiceType,
		PickupDate:          draft.PickupDate,
		PickupTime:          draft.PickupTime,
		PickupAddress:       strings.TrimSpace(draft.PickupAddress),
		PhoneNumber:         draft.PhoneNumber,
		SpecialInstructions: strings.TrimSpace(draft.SpecialInstructions),
		CreatedAt:           s.now(),
	}

	log := s.Bookings(ctx)
	log = append(log, booking)
	if err := s.Store.Set(ctx, bookingsKey, log); err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Notify("Booking confirmed! We will contact you shortly.", "success")
	}
	return &booking, nil
}

// ToCartItem converts a stored booking into a service-kind cart draft
// priced by the catalog's plan for its service type.
func (s *DefaultBookingService) ToCartItem(b models.Booking) models.CartItemDraft {
	plan, ok := s.Plans.PlanFor(b.ServiceType)
	if !ok {
		utils.GetLogger().Warn("No service plan for booking, using zero price",
			zap.String("serviceType", b.ServiceType))
		plan = models.ServicePlan{Type: b.ServiceType, DisplayName: b.ServiceType}
	}
	return models.CartItemDraft{
		ProductID:   "laundry-" + b.ID,
		Kind:        models.KindService,
		UnitPrice:   plan.BasePrice,
		DisplayName: "Laundry Service - " + plan.DisplayName,
	}
}

// Bookings returns the persisted booking log; a missing or undecodable
// log reads as empty.
func (s *DefaultBookingService) Bookings(ctx context.Context) []models.Booking {
	var log []models.Booking
	found, err := s.Store.Get(ctx, bookingsKey, &log)
	if err != nil {
		utils.GetLogger().Error("Failed to read booking log", zap.Error(err))
	}
	if !found {
		return nil
	}
	return log
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// today is the current calendar date at UTC midnight, matching the
// zone time.Parse assigns, so the comparison is date-only.
func (s *DefaultBookingService) today() time.Time {
	n := s.now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

func digitCount(phone string) int {
	count := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
