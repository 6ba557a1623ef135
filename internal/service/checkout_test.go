package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nexshop/internal/dto"
	"nexshop/internal/model"
	"nexshop/internal/service"
	"nexshop/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCheckoutFixture(t *testing.T) (service.CheckoutService, *store.Store) {
	t.Helper()
	st, err := store.New("demo")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	payments := service.NewPaymentService("NexShop", 0)
	return service.NewCheckoutService(payments), st
}

func checkoutReq(method model.PaymentMethod) *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		Buyer: model.BuyerInfo{
			Name:  "Lucas Silva",
			Email: "lucas@email.com",
		},
		PaymentMethod: method,
	}
}

func requireValidationError(t *testing.T, err error) {
	t.Helper()
	var vErr *service.ValidationError
	require.ErrorAs(t, err, &vErr)
}

func TestCheckoutCardHappyPath(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "") // 2990

	req := checkoutReq(model.PaymentCard)
	req.Card = &dto.CardDetails{Number: "4111111111111111", Holder: "LUCAS SILVA", Expiry: "12/39", CVV: "123"}

	resp, err := svc.Checkout(ctx, st, req)
	require.NoError(t, err)
	assert.Equal(t, model.OrderPaid, resp.Status)
	assert.Equal(t, int64(2990), resp.Total)
	assert.Contains(t, resp.TotalText, "29,90")
	assert.Empty(t, resp.PixPayload)

	assert.Empty(t, st.Cart())
}

func TestCheckoutPixReturnsPayload(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")

	resp, err := svc.Checkout(ctx, st, checkoutReq(model.PaymentPix))
	require.NoError(t, err)
	assert.Equal(t, model.OrderPending, resp.Status)
	assert.True(t, strings.HasPrefix(resp.PixPayload, "00020126"))
	assert.Contains(t, resp.PixPayload, resp.OrderID)
	assert.Contains(t, resp.PixPayload, "29.90")
}

func TestCheckoutAppliesCouponFromPayload(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	ctx := context.Background()

	st.AddToCart("prod-1", 1, "") // 4990, needs a city id at checkout
	st.AddToCart("prod-2", 2, "") // 5980

	req := checkoutReq(model.PaymentPix)
	req.CouponCode = "FIVEM10"
	req.Buyer.CityID = "4821"

	resp, err := svc.Checkout(ctx, st, req)
	require.NoError(t, err)
	assert.Equal(t, int64(9873), resp.Total)
}

func TestCheckoutUnknownCouponDoesNotFail(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	ctx := context.Background()

	st.AddToCart("prod-2", 1, "")

	req := checkoutReq(model.PaymentPix)
	req.CouponCode = "DOESNOTEXIST"

	resp, err := svc.Checkout(ctx, st, req)
	require.NoError(t, err)
	assert.Equal(t, int64(2990), resp.Total)
}

func TestCheckoutEmptyCart(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)

	_, err := svc.Checkout(context.Background(), st, checkoutReq(model.PaymentPix))
	requireValidationError(t, err)
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	st.AddToCart("prod-2", 1, "")

	_, err := svc.Checkout(context.Background(), st, checkoutReq("boleto"))
	requireValidationError(t, err)
}

func TestCheckoutBuyerValidation(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	st.AddToCart("prod-2", 1, "")

	t.Run("short name", func(t *testing.T) {
		req := checkoutReq(model.PaymentPix)
		req.Buyer.Name = " L "
		_, err := svc.Checkout(context.Background(), st, req)
		requireValidationError(t, err)
	})

	t.Run("bad email", func(t *testing.T) {
		req := checkoutReq(model.PaymentPix)
		req.Buyer.Email = "not-an-email"
		_, err := svc.Checkout(context.Background(), st, req)
		requireValidationError(t, err)
	})

	t.Run("bad cpf", func(t *testing.T) {
		req := checkoutReq(model.PaymentPix)
		req.Buyer.CPF = "111.111.111-11"
		_, err := svc.Checkout(context.Background(), st, req)
		requireValidationError(t, err)
	})

	t.Run("valid cpf passes", func(t *testing.T) {
		req := checkoutReq(model.PaymentPix)
		req.Buyer.CPF = "529.982.247-25"
		_, err := svc.Checkout(context.Background(), st, req)
		assert.NoError(t, err)
	})
}

func TestCheckoutCardRequiresCardDetails(t *testing.T) {
	t.Parallel()
	svc, st := newCheckoutFixture(t)
	st.AddToCart("prod-2", 1, "")

	_, err := svc.Checkout(context.Background(), st, checkoutReq(model.PaymentCard))
	requireValidationError(t, err)
}

func TestCheckoutDeliveryRequirements(t *testing.T) {
	t.Parallel()

	t.Run("discord product needs handle", func(t *testing.T) {
		t.Parallel()
		svc, st := newCheckoutFixture(t)
		st.AddToCart("prod-6", 1, "")

		_, err := svc.Checkout(context.Background(), st, checkoutReq(model.PaymentPix))
		requireValidationError(t, err)

		req := checkoutReq(model.PaymentPix)
		req.Buyer.Discord = "lucas#0001"
		_, err = svc.Checkout(context.Background(), st, req)
		assert.NoError(t, err)
	})

	t.Run("city id product needs city id", func(t *testing.T) {
		t.Parallel()
		svc, st := newCheckoutFixture(t)
		st.AddToCart("prod-1", 1, "")

		_, err := svc.Checkout(context.Background(), st, checkoutReq(model.PaymentPix))
		requireValidationError(t, err)

		req := checkoutReq(model.PaymentPix)
		req.Buyer.CityID = "4821"
		_, err = svc.Checkout(context.Background(), st, req)
		assert.NoError(t, err)
	})
}

func TestCheckoutCanceledContext(t *testing.T) {
	t.Parallel()
	st, err := store.New("demo")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	// A long pacing delay plus a canceled context aborts before any order
	// is written.
	svc := service.NewCheckoutService(service.NewPaymentService("NexShop", time.Hour))
	st.AddToCart("prod-2", 1, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.Checkout(ctx, st, checkoutReq(model.PaymentPix))
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Len(t, st.Cart(), 1)
}
