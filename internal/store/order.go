package store

import (
	"context"
	"fmt"
	"time"

	"nexshop/internal/model"
	"nexshop/internal/money"

	"gorm.io/gorm"
)

// CreateOrder snapshots the current cart into a new order. Product names and
// unit prices are captured now; later catalog edits never alter the order.
// The cart is NOT cleared here; FinalizeCheckout is the combined step.
func (s *Store) CreateOrder(ctx context.Context, data model.CheckoutData) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createOrderLocked(ctx, data)
}

// FinalizeCheckout creates the order and clears the cart under one lock, so
// callers cannot forget the second step of the checkout sequence.
func (s *Store) FinalizeCheckout(ctx context.Context, data model.CheckoutData) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.createOrderLocked(ctx, data)
	if err != nil {
		return "", err
	}
	s.resetCartLocked()
	return id, nil
}

func (s *Store) createOrderLocked(ctx context.Context, data model.CheckoutData) (string, error) {
	lines, err := s.cartLinesLocked(ctx)
	if err != nil {
		return "", err
	}

	var subtotal int64
	for _, line := range lines {
		subtotal += line.unitPrice() * int64(line.item.Quantity)
	}
	discountAmount := money.DiscountAmount(subtotal, s.cartDiscount)
	total := subtotal - discountAmount

	now := time.Now().UTC()
	id := s.nextOrderIDLocked()

	// PIX waits for a manual confirmation; every other method simulates
	// instant settlement.
	status := model.OrderPaid
	var paidAt *time.Time
	if data.PaymentMethod == model.PaymentPix {
		status = model.OrderPending
	} else {
		t := now
		paidAt = &t
	}

	var userID string
	if s.customerSession.IsLoggedIn {
		userID = s.customerSession.UserID
	}

	items := make([]model.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.product == nil {
			continue
		}
		item := model.OrderItem{
			OrderID:     id,
			ProductID:   line.item.ProductID,
			ProductName: line.product.Name,
			Quantity:    line.item.Quantity,
			UnitPrice:   line.unitPrice(),
		}
		if line.variant != nil {
			item.VariantName = line.variant.Name
		}
		items = append(items, item)
	}

	order := &model.Order{
		ID:              id,
		CustomerName:    data.Buyer.Name,
		CustomerEmail:   data.Buyer.Email,
		CustomerPhone:   data.Buyer.Phone,
		CustomerCPF:     data.Buyer.CPF,
		CustomerDiscord: data.Buyer.Discord,
		CustomerCityID:  data.Buyer.CityID,
		UserID:          userID,
		Items:           items,
		Total:           total,
		Discount:        discountAmount,
		PaymentMethod:   data.PaymentMethod,
		Status:          status,
		CreatedAt:       now,
		PaidAt:          paidAt,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.orders.Create(ctx, tx, order)
	})
	if err != nil {
		return "", fmt.Errorf("store order: %w", err)
	}

	return id, nil
}

func (s *Store) OrderByID(ctx context.Context, id string) (*model.Order, error) {
	return s.orders.FindByID(ctx, id)
}

func (s *Store) ListOrders(ctx context.Context) ([]*model.Order, error) {
	return s.orders.List(ctx)
}

func (s *Store) OrdersByUser(ctx context.Context, userID string) ([]*model.Order, error) {
	return s.orders.FindByUserID(ctx, userID)
}

func (s *Store) OrdersByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	return s.orders.FindByEmail(ctx, email)
}

// UpdateOrderStatus overwrites the status without validating the prior state.
// Moving to paid stamps paidAt once; moving to delivered stamps deliveredAt
// once; no transition ever rolls a stamp back.
func (s *Store) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return s.orders.SetStatus(ctx, id, status, time.Now().UTC())
}

// BulkUpdateOrderStatus applies the single-order transition rule to every id.
func (s *Store) BulkUpdateOrderStatus(ctx context.Context, ids []string, status model.OrderStatus) error {
	return s.orders.SetStatusMany(ctx, ids, status, time.Now().UTC())
}
