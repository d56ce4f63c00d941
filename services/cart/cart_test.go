package cart

import (
	"context"
	"testing"

	"rinseo/models"
	"rinseo/store"

	"github.com/stretchr/testify/require"
)

func newTestCart(t *testing.T) (*DefaultCartService, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	return New(st, DefaultConfig()), st
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	require.True(t, svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", ""))
	require.True(t, svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", ""))

	items := svc.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, 2998, svc.GetTotal())
}

func TestAddItemIdentityIncludesKindAndSize(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "M")
	svc.AddItem(ctx, "shirt", models.KindRent, 499, "Shirt", "", "M")
	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "L")

	require.Len(t, svc.Items(), 3)
	require.Equal(t, 3, svc.GetItemCount())
}

func TestAddItemIdempotentIdentity(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	for i := 0; i < 7; i++ {
		require.True(t, svc.AddItem(ctx, "tshirt", models.KindRent, 299, "T-Shirt", "", "S"))
	}

	items := svc.Items()
	require.Len(t, items, 1)
	require.Equal(t, 7, items[0].Quantity)
}

func TestTotalGrowsWithEveryAdd(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	before := svc.GetTotal()
	for i := 0; i < 5; i++ {
		svc.AddItem(ctx, "blazer", models.KindBuy, 4999, "Blazer", "", "L")
		require.Greater(t, svc.GetTotal(), before)
		before = svc.GetTotal()
	}
}

func TestDeliveryFeeBoundary(t *testing.T) {
	ctx := context.Background()

	svc, _ := newTestCart(t)
	svc.AddItem(ctx, "a", models.KindBuy, 499, "A", "", "")
	require.Equal(t, 50, svc.GetDeliveryFee())
	require.Equal(t, 549, svc.GetFinalTotal())

	svc, _ = newTestCart(t)
	svc.AddItem(ctx, "b", models.KindBuy, 500, "B", "", "")
	require.Equal(t, 0, svc.GetDeliveryFee())
	require.Equal(t, 500, svc.GetFinalTotal())
}

func TestDeliveryFeeDropsWhenThresholdCrossed(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	svc.AddItem(ctx, "a", models.KindRent, 450, "A", "", "")
	require.Equal(t, 450, svc.GetTotal())
	require.Equal(t, 50, svc.GetDeliveryFee())

	svc.AddItem(ctx, "b", models.KindRent, 70, "B", "", "")
	require.Equal(t, 520, svc.GetTotal())
	require.Equal(t, 0, svc.GetDeliveryFee())
	require.Equal(t, 520, svc.GetFinalTotal())
}

func TestUpdateQuantityZeroBehavesLikeRemove(t *testing.T) {
	ctx := context.Background()

	byUpdate, _ := newTestCart(t)
	byUpdate.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "M")
	require.True(t, byUpdate.UpdateQuantity(ctx, "shirt", models.KindBuy, 0, "M"))

	byRemove, _ := newTestCart(t)
	byRemove.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "M")
	require.True(t, byRemove.RemoveItem(ctx, "shirt", models.KindBuy, "M"))

	require.Equal(t, byRemove.Items(), byUpdate.Items())
	require.Equal(t, 0, byUpdate.GetItemCount())
	require.Equal(t, 0, byUpdate.GetTotal())
}

func TestUpdateQuantityOverwrites(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "")
	require.True(t, svc.UpdateQuantity(ctx, "shirt", models.KindBuy, 4, ""))
	require.Equal(t, 4, svc.GetItemCount())
	require.Equal(t, 5996, svc.GetTotal())
}

func TestOperationsOnAbsentLineReturnFalse(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	require.False(t, svc.RemoveItem(ctx, "ghost", models.KindBuy, ""))
	require.False(t, svc.UpdateQuantity(ctx, "ghost", models.KindBuy, 3, ""))
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestCart(t)

	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "")
	require.NoError(t, svc.ClearCart(ctx))
	require.Empty(t, svc.Items())

	// The store observes the cleared state too.
	require.Empty(t, New(st, DefaultConfig()).Items())
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestCart(t)

	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "img.jpg", "M")
	svc.AddItem(ctx, "dress", models.KindRent, 1299, "Dress", "", "S")
	svc.UpdateQuantity(ctx, "shirt", models.KindBuy, 3, "M")

	reloaded := New(st, DefaultConfig())
	require.Equal(t, svc.Items(), reloaded.Items())
	require.Equal(t, svc.GetTotal(), reloaded.GetTotal())
	require.Equal(t, svc.GetItemCount(), reloaded.GetItemCount())
}

func TestCorruptStoredCartLoadsEmpty(t *testing.T) {
	st := store.NewMemoryStore()
	st.SeedRaw("cart", `[{"productId": truncated`)

	svc := New(st, DefaultConfig())
	require.Empty(t, svc.Items())
	require.Equal(t, 0, svc.GetTotal())
}

func TestMaxLineQuantityCap(t *testing.T) {
	ctx := context.Background()
	cfg := DefaultConfig()
	cfg.MaxLineQuantity = 2
	svc := New(store.NewMemoryStore(), cfg)

	require.True(t, svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", ""))
	require.True(t, svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", ""))
	require.False(t, svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", ""))
	require.Equal(t, 2, svc.GetItemCount())

	// UpdateQuantity clamps rather than refuses.
	require.True(t, svc.UpdateQuantity(ctx, "shirt", models.KindBuy, 9, ""))
	require.Equal(t, 2, svc.GetItemCount())
}

func TestOnChangeReportsItemCount(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestCart(t)

	var counts []int
	svc.OnChange = func(n int) { counts = append(counts, n) }

	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "")
	svc.AddItem(ctx, "shirt", models.KindBuy, 1499, "Shirt", "", "")
	svc.RemoveItem(ctx, "shirt", models.KindBuy, "")

	require.Equal(t, []int{1, 2, 0}, counts)
}

func TestCheckoutClearsCartAndReportsTotals(t *testing.T) {
	ctx := context.Background()
	svc, st := newTestCart(t)

	svc.AddItem(ctx, "shirt", models.KindBuy, 300, "Shirt", "", "")
	svc.AddItem(ctx, "tshirt", models.KindBuy, 100, "T-Shirt", "", "")

	summary, err := svc.Checkout(ctx)
	require.NoError(t, err)
	require.Equal(t, 400, summary.Subtotal)
	require.Equal(t, 50, summary.DeliveryFee)
	require.Equal(t, 450, summary.Total)
	require.Len(t, summary.Items, 2)

	require.Empty(t, svc.Items())
	require.Empty(t, New(st, DefaultConfig()).Items())
}

func TestCheckoutEmptyCartFails(t *testing.T) {
	svc, _ := newTestCart(t)
	_, err := svc.Checkout(context.Background())
	require.Error(t, err)
}
