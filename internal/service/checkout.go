package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"nexshop/internal/cpf"
	"nexshop/internal/dto"
	"nexshop/internal/model"
	"nexshop/internal/money"
	"nexshop/internal/store"
)

// ValidationError marks buyer-input failures so the HTTP layer can answer
// 400 instead of 500.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func invalid(format string, args ...interface{}) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// CheckoutService turns a validated checkout request into an order. Order
// creation and cart clearing happen as one step inside the session store, so
// callers never sequence the two calls themselves.
type CheckoutService interface {
	Checkout(ctx context.Context, st *store.Store, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type checkoutServiceImpl struct {
	payments PaymentService
}

func NewCheckoutService(payments PaymentService) CheckoutService {
	return &checkoutServiceImpl{
		payments: payments,
	}
}

func (s *checkoutServiceImpl) Checkout(ctx context.Context, st *store.Store, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !model.ValidPaymentMethod(req.PaymentMethod) {
		return nil, invalid("unsupported payment method %q", req.PaymentMethod)
	}
	if err := s.validateBuyer(req.Buyer); err != nil {
		return nil, err
	}
	if req.PaymentMethod == model.PaymentCard {
		if err := ValidateCard(req.Card, time.Now().UTC()); err != nil {
			return nil, invalid("%s", err.Error())
		}
	}

	cart := st.Cart()
	if len(cart) == 0 {
		return nil, invalid("cart is empty")
	}
	if err := s.checkDeliveryRequirements(ctx, st, cart, req.Buyer); err != nil {
		return nil, err
	}

	// A coupon arriving with the checkout payload is applied best-effort;
	// an unknown code falls through to a zero discount instead of failing
	// the purchase.
	if req.CouponCode != "" {
		if _, err := st.ApplyCoupon(ctx, req.CouponCode); err != nil {
			return nil, err
		}
	}

	if err := s.payments.AwaitConfirmation(ctx); err != nil {
		return nil, err
	}

	orderID, err := st.FinalizeCheckout(ctx, model.CheckoutData{
		Buyer:         req.Buyer,
		PaymentMethod: req.PaymentMethod,
		CouponCode:    req.CouponCode,
	})
	if err != nil {
		return nil, err
	}

	order, err := st.OrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("load created order: %w", err)
	}

	resp := &dto.CheckoutResponse{
		OrderID:   order.ID,
		Status:    order.Status,
		Total:     order.Total,
		TotalText: money.FormatBRL(order.Total),
	}
	if order.PaymentMethod == model.PaymentPix {
		resp.PixPayload = s.payments.BuildPixPayload(order.ID, order.Total)
	}
	return resp, nil
}

func (s *checkoutServiceImpl) validateBuyer(buyer model.BuyerInfo) error {
	if len(strings.TrimSpace(buyer.Name)) < 2 {
		return invalid("buyer name required")
	}
	if !emailPattern.MatchString(buyer.Email) {
		return invalid("invalid email address")
	}
	if buyer.CPF != "" && !cpf.IsValid(buyer.CPF) {
		return invalid("invalid CPF")
	}
	return nil
}

// checkDeliveryRequirements enforces the per-product delivery flags: a cart
// holding a discord-delivered product needs a Discord handle, and a product
// flagged requiresCityId needs the buyer's city id.
func (s *checkoutServiceImpl) checkDeliveryRequirements(ctx context.Context, st *store.Store, cart []model.CartItem, buyer model.BuyerInfo) error {
	for _, item := range cart {
		product, err := st.ProductByID(ctx, item.ProductID)
		if err != nil {
			continue // deleted products price out at zero and need nothing
		}
		if product.Delivery == nil {
			continue
		}
		if product.Delivery.RequiresDiscord && strings.TrimSpace(buyer.Discord) == "" {
			return invalid("product %s requires a Discord handle", product.Name)
		}
		if product.Delivery.RequiresCityID && strings.TrimSpace(buyer.CityID) == "" {
			return invalid("product %s requires a city id", product.Name)
		}
	}
	return nil
}
