package booking

import (
	"context"
	"testing"
	"time"

	"rinseo/models"
	"rinseo/store"
	"rinseo/utils"

	"github.com/stretchr/testify/require"
)

type stubPlans map[string]models.ServicePlan

func (p stubPlans) PlanFor(serviceType string) (models.ServicePlan, bool) {
	plan, ok := p[serviceType]
	return plan, ok
}

var testPlans = stubPlans{
	"wash":      {Type: "wash", DisplayName: "Wash Only", BasePrice: 150},
	"wash-iron": {Type: "wash-iron", DisplayName: "Wash + Iron", BasePrice: 250},
}

func fixedNow() time.Time {
	return time.Date(2026, time.August, 31, 15, 4, 5, 0, time.UTC)
}

func newTestService(t *testing.T) (*DefaultBookingService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return &DefaultBookingService{Store: st, Plans: testPlans, Now: fixedNow}, st
}

func validDraft() models.BookingDraft {
	return models.BookingDraft{
		ServiceType:   "wash",
		PickupDate:    "2026-09-02",
		PickupTime:    "10:00",
		PickupAddress: "12 Green Park Road, Delhi",
		PhoneNumber:   "(987) 654-3210",
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	svc, _ := newTestService(t)
	require.Empty(t, svc.Validate(validDraft()))
}

func TestValidateFieldRules(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name   string
		mutate func(*models.BookingDraft)
		field  string
	}{
		{"missing service type", func(d *models.BookingDraft) { d.ServiceType = "" }, "serviceType"},
		{"missing date", func(d *models.BookingDraft) { d.PickupDate = "" }, "pickupDate"},
		{"unparseable date", func(d *models.BookingDraft) { d.PickupDate = "tomorrow" }, "pickupDate"},
		{"past date", func(d *models.BookingDraft) { d.PickupDate = "2026-08-30" }, "pickupDate"},
		{"missing time", func(d *models.BookingDraft) { d.PickupTime = "" }, "pickupTime"},
		{"short address", func(d *models.BookingDraft) { d.PickupAddress = "  12 Rd  " }, "pickupAddress"},
		{"few phone digits", func(d *models.BookingDraft) { d.PhoneNumber = "(98) 76-54" }, "phoneNumber"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)
			errs := svc.Validate(draft)
			require.NotEmpty(t, errs)
			require.Equal(t, tc.field, errs[0].Field)
		})
	}
}

func TestValidateAcceptsToday(t *testing.T) {
	svc, _ := newTestService(t)
	draft := validDraft()
	draft.PickupDate = "2026-08-31"
	require.Empty(t, svc.Validate(draft))
}

func TestSubmitReportsFirstViolatedRule(t *testing.T) {
	svc, _ := newTestService(t)

	draft := validDraft()
	draft.ServiceType = ""
	draft.PhoneNumber = "12"

	_, err := svc.Submit(context.Background(), draft)
	require.Error(t, err)
	require.True(t, utils.IsValidationError(err))
	require.Equal(t, "Please select a service type", err.Error())
}

func TestSubmitAppendsToLog(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestService(t)

	first, err := svc.Submit(ctx, validDraft())
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	require.Equal(t, fixedNow(), first.CreatedAt)
	require.Equal(t, "12 Green Park Road, Delhi", first.PickupAddress)

	// No deduplication: a repeated submission appends a new record.
	second, err := svc.Submit(ctx, validDraft())
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	log := svc.Bookings(ctx)
	require.Len(t, log, 2)

	// The log is persisted, not held in memory.
	reloaded := &DefaultBookingService{Store: st, Plans: testPlans, Now: fixedNow}
	require.Len(t, reloaded.Bookings(ctx), 2)
}

func TestToCartItemPricesByPlan(t *testing.T) {
	svc, _ := newTestService(t)

	wash := svc.ToCartItem(models.Booking{ID: "b1", ServiceType: "wash"})
	require.Equal(t, models.KindService, wash.Kind)
	require.Equal(t, 150, wash.UnitPrice)
	require.Equal(t, "Laundry Service - Wash Only", wash.DisplayName)
	require.Equal(t, "laundry-b1", wash.ProductID)
	require.Empty(t, wash.SelectedSize)

	iron := svc.ToCartItem(models.Booking{ID: "b2", ServiceType: "wash-iron"})
	require.Equal(t, 250, iron.UnitPrice)
	require.Equal(t, "Laundry Service - Wash + Iron", iron.DisplayName)
}

func TestToCartItemUnknownPlan(t *testing.T) {
	svc, _ := newTestService(t)

	item := svc.ToCartItem(models.Booking{ID: "b3", ServiceType: "dry-clean"})
	require.Equal(t, models.KindService, item.Kind)
	require.Equal(t, 0, item.UnitPrice)
}

func TestBookingsEmptyLog(t *testing.T) {
	svc, _ := newTestService(t)
	require.Empty(t, svc.Bookings(context.Background()))
}
