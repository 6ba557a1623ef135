package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCartMergesLines(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	st.AddToCart("prod-2", 2, "")
	st.AddToCart("prod-2", 3, "")

	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 5, cart[0].Quantity)
}

func TestAddToCartVariantIsSeparateLine(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	st.AddToCart("prod-1", 1, "var-1a")
	st.AddToCart("prod-1", 1, "var-1b")
	st.AddToCart("prod-1", 1, "var-1a")

	cart := st.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 2, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestAddToCartQuantityFloor(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	st.AddToCart("prod-2", 0, "")
	st.AddToCart("prod-3", -5, "")

	cart := st.Cart()
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestUpdateCartQtyZeroRemovesLine(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	st.AddToCart("prod-2", 2, "")
	st.AddToCart("prod-3", 1, "")

	st.UpdateCartQty("prod-2", 0, "")
	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, "prod-3", cart[0].ProductID)

	st.UpdateCartQty("prod-3", 4, "")
	cart = st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 4, cart[0].Quantity)
}

func TestRemoveFromCartMissingLineIsNoop(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	st.AddToCart("prod-2", 1, "")
	st.RemoveFromCart("prod-9", "")
	require.Len(t, st.Cart(), 1)
}

func TestCartSubtotalUsesVariantPrice(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "var-1b") // 5490
	st.AddToCart("prod-2", 2, "")       // 2 x 2990

	subtotal, err := st.CartSubtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5490+2*2990), subtotal)
}

func TestCartSubtotalDeletedProductContributesNothing(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	st.AddToCart("prod-3", 1, "")
	require.NoError(t, st.DeleteProduct(ctx, "prod-3"))

	subtotal, err := st.CartSubtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2990), subtotal)
}

func TestCartSubtotalMissingVariantFallsBackToBasePrice(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "var-gone")

	subtotal, err := st.CartSubtotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2990), subtotal)
}

func TestApplyCouponCaseInsensitive(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	res, err := st.ApplyCoupon(ctx, "fivem10")
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, 10, res.Discount)
	assert.Equal(t, 10, st.CartDiscount())
	assert.Equal(t, "FIVEM10", st.CartCouponCode())
}

func TestApplyCouponUnknownCodeLeavesCartUntouched(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.ApplyCoupon(ctx, "BLACKFRIDAY")
	require.NoError(t, err)

	res, err := st.ApplyCoupon(ctx, "NOPE")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid coupon.", res.Message)
	assert.Equal(t, 25, st.CartDiscount())
	assert.Equal(t, "BLACKFRIDAY", st.CartCouponCode())
}

func TestApplyCouponLastAppliedWins(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	_, err := st.ApplyCoupon(ctx, "BLACKFRIDAY")
	require.NoError(t, err)
	_, err = st.ApplyCoupon(ctx, "BEMVINDO")
	require.NoError(t, err)

	assert.Equal(t, 15, st.CartDiscount())
	assert.Equal(t, "BEMVINDO", st.CartCouponCode())
}

func TestApplyCouponIsIdempotent(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "") // 4990
	st.AddToCart("prod-2", 2, "") // 2 x 2990

	for i := 0; i < 3; i++ {
		res, err := st.ApplyCoupon(ctx, "FIVEM10")
		require.NoError(t, err)
		require.True(t, res.Success)
	}

	total, err := st.CartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9873), total) // 10970 minus 10%
}

func TestCartTotalWithoutCoupon(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "")
	st.AddToCart("prod-2", 2, "")

	subtotal, err := st.CartSubtotal(ctx)
	require.NoError(t, err)
	total, err := st.CartTotal(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10970), subtotal)
	assert.Equal(t, subtotal, total)
}

func TestClearCartResetsCoupon(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "")
	_, err := st.ApplyCoupon(ctx, "FIVEM10")
	require.NoError(t, err)

	st.ClearCart()
	assert.Empty(t, st.Cart())
	assert.Zero(t, st.CartDiscount())
	assert.Empty(t, st.CartCouponCode())
}
