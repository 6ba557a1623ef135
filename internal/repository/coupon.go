package repository

import (
	"context"
	"nexshop/internal/model"

	"gorm.io/gorm"
)

type CouponRepository interface {
	List(ctx context.Context) ([]*model.Coupon, error)
	// FindByCode matches case-insensitively.
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
}

type couponRepoImpl struct {
	db *gorm.DB
}

func NewCouponRepository(db *gorm.DB) CouponRepository {
	return &couponRepoImpl{
		db: db,
	}
}

func (r *couponRepoImpl) List(ctx context.Context) ([]*model.Coupon, error) {
	var coupons []*model.Coupon
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&coupons).
		Error

	if err != nil {
		return nil, err
	}

	return coupons, nil
}

func (r *couponRepoImpl) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.db.WithContext(ctx).
		Where("code = ? COLLATE NOCASE", code).
		First(&coupon).Error

	if err != nil {
		return nil, err
	}

	return &coupon, nil
}
