package store_test

import (
	"context"
	"testing"

	"nexshop/internal/store"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.New("demo")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestNewStoreSeedsData(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)
	ctx := context.Background()

	cats, err := st.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 5)

	products, err := st.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 8)

	orders, err := st.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 8)

	coupons, err := st.ListCoupons(ctx)
	require.NoError(t, err)
	require.Len(t, coupons, 3)

	customers, err := st.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 8)
}

func TestStoresAreIsolated(t *testing.T) {
	t.Parallel()
	a := newTestStore(t)
	b := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, a.DeleteProduct(ctx, "prod-1"))
	a.AddToCart("prod-2", 3, "")

	products, err := b.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 8)
	require.Empty(t, b.Cart())
}

func TestSeededProductVariants(t *testing.T) {
	t.Parallel()
	st := newTestStore(t)

	p, err := st.ProductByID(context.Background(), "prod-1")
	require.NoError(t, err)
	require.Len(t, p.Variants, 2)

	v := p.Variant("var-1b")
	require.NotNil(t, v)
	require.Equal(t, "QBCore", v.Name)
	require.Equal(t, int64(5490), v.Price)

	require.Nil(t, p.Variant("var-nope"))
}
