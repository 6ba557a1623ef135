package repository

import (
	"context"
	"time"

	"nexshop/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, tx *gorm.DB, order *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context) ([]*model.Order, error)
	FindByUserID(ctx context.Context, userID string) ([]*model.Order, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Order, error)
	SetStatus(ctx context.Context, id string, status model.OrderStatus, now time.Time) error
	SetStatusMany(ctx context.Context, ids []string, status model.OrderStatus, now time.Time) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, tx *gorm.DB, order *model.Order) error {
	return tx.WithContext(ctx).Create(order).Error
}

func (r *orderRepoImpl) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error

	if err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepoImpl) List(ctx context.Context) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).
		Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByUserID(ctx context.Context, userID string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders).
		Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepoImpl) FindByEmail(ctx context.Context, email string) ([]*model.Order, error) {
	var orders []*model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("customer_email = ?", email).
		Order("created_at DESC").
		Find(&orders).
		Error

	if err != nil {
		return nil, err
	}

	return orders, nil
}

// SetStatus overwrites the order status. Paid/delivered timestamps are
// stamped at most once: a later transition never rewrites an existing stamp.
func (r *orderRepoImpl) SetStatus(ctx context.Context, id string, status model.OrderStatus, now time.Time) error {
	return r.setStatusWhere(ctx, r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id), status, now)
}

func (r *orderRepoImpl) SetStatusMany(ctx context.Context, ids []string, status model.OrderStatus, now time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.setStatusWhere(ctx, r.db.WithContext(ctx).Model(&model.Order{}).Where("id IN ?", ids), status, now)
}

func (r *orderRepoImpl) setStatusWhere(ctx context.Context, q *gorm.DB, status model.OrderStatus, now time.Time) error {
	updates := map[string]interface{}{
		"status": status,
	}

	switch status {
	case model.OrderPaid:
		updates["paid_at"] = gorm.Expr("COALESCE(paid_at, ?)", now)
	case model.OrderDelivered:
		updates["delivered_at"] = gorm.Expr("COALESCE(delivered_at, ?)", now)
	}

	return q.Updates(updates).Error
}
