package store_test

import (
	"context"
	"testing"

	"nexshop/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testBuyer = model.BuyerInfo{
	Name:  "Lucas Silva",
	Email: "lucas@email.com",
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "var-1b")
	st.AddToCart("prod-2", 2, "")

	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)
	assert.Equal(t, "ORD-101", id)

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)

	assert.Equal(t, "Sistema de Empregos v3", order.Items[0].ProductName)
	assert.Equal(t, "QBCore", order.Items[0].VariantName)
	assert.Equal(t, int64(5490), order.Items[0].UnitPrice)
	assert.Equal(t, 2, order.Items[1].Quantity)
	assert.Equal(t, int64(5490+2*2990), order.Total)
	assert.Zero(t, order.Discount)

	// CreateOrder leaves the cart alone.
	assert.Len(t, st.Cart(), 2)
}

func TestCreateOrderAppliesCouponDiscount(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "") // 4990
	st.AddToCart("prod-2", 2, "") // 5980
	_, err := st.ApplyCoupon(ctx, "FIVEM10")
	require.NoError(t, err)

	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1097), order.Discount)
	assert.Equal(t, int64(9873), order.Total)
}

func TestCreateOrderPixStaysPending(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentPix})
	require.NoError(t, err)

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, order.Status)
	assert.Nil(t, order.PaidAt)
}

func TestCreateOrderCardSettlesImmediately(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, order.Status)
	require.NotNil(t, order.PaidAt)
}

func TestCreateOrderSkipsDeletedProducts(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	st.AddToCart("prod-3", 1, "")
	require.NoError(t, st.DeleteProduct(ctx, "prod-3"))

	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "prod-2", order.Items[0].ProductID)
	assert.Equal(t, int64(2990), order.Total)
}

func TestCreateOrderTagsLoggedInCustomer(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	session, err := st.LoginWithGoogle(ctx, "carla@email.com", "Carla Mendes")
	require.NoError(t, err)
	assert.Equal(t, "cust-6", session.UserID)

	st.AddToCart("prod-2", 1, "")
	id, err := st.CreateOrder(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	orders, err := st.OrdersByUser(ctx, "cust-6")
	require.NoError(t, err)
	require.Len(t, orders, 2) // ORD-006 from the seed plus the new one
	assert.Equal(t, id, orders[0].ID)
}

func TestFinalizeCheckoutClearsCart(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "")
	_, err := st.ApplyCoupon(ctx, "FIVEM10")
	require.NoError(t, err)

	id, err := st.FinalizeCheckout(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Empty(t, st.Cart())
	assert.Zero(t, st.CartDiscount())
	assert.Empty(t, st.CartCouponCode())
}

func TestOrderSnapshotSurvivesCatalogEdits(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	id, err := st.FinalizeCheckout(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentCard})
	require.NoError(t, err)

	require.NoError(t, st.DeleteProduct(ctx, "prod-2"))

	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "HUD Personalizada Pro", order.Items[0].ProductName)
	assert.Equal(t, int64(2990), order.Items[0].UnitPrice)
}

func TestUpdateOrderStatusStampsPaidAtOnce(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")
	id, err := st.FinalizeCheckout(ctx, model.CheckoutData{Buyer: testBuyer, PaymentMethod: model.PaymentPix})
	require.NoError(t, err)

	require.NoError(t, st.UpdateOrderStatus(ctx, id, model.OrderPaid))
	order, err := st.OrderByID(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, order.PaidAt)
	firstPaidAt := *order.PaidAt

	require.NoError(t, st.UpdateOrderStatus(ctx, id, model.OrderShipped))
	require.NoError(t, st.UpdateOrderStatus(ctx, id, model.OrderPaid))
	order, err = st.OrderByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, order.Status)
	require.NotNil(t, order.PaidAt)
	assert.True(t, order.PaidAt.Equal(firstPaidAt))
}

func TestUpdateOrderStatusStampsDeliveredAt(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.UpdateOrderStatus(ctx, "ORD-002", model.OrderDelivered))
	order, err := st.OrderByID(ctx, "ORD-002")
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, order.Status)
	assert.NotNil(t, order.DeliveredAt)
}

func TestBulkUpdateOrderStatus(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.BulkUpdateOrderStatus(ctx, []string{"ORD-002", "ORD-003"}, model.OrderShipped))

	for _, id := range []string{"ORD-002", "ORD-003"} {
		order, err := st.OrderByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, model.OrderShipped, order.Status)
	}

	// Untouched orders keep their status.
	order, err := st.OrderByID(ctx, "ORD-001")
	require.NoError(t, err)
	assert.Equal(t, model.OrderDelivered, order.Status)
}

func TestOrdersByEmail(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	orders, err := st.OrdersByEmail(ctx, "lucas@email.com")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "ORD-001", orders[0].ID)

	orders, err = st.OrdersByEmail(ctx, "nobody@email.com")
	require.NoError(t, err)
	assert.Empty(t, orders)
}
