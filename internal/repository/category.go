package repository

import (
	"context"
	"nexshop/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]*model.Category, error)
	FindByID(ctx context.Context, id string) (*model.Category, error)
	Create(ctx context.Context, cat *model.Category) error
	Save(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepoImpl{
		db: db,
	}
}

func (r *categoryRepoImpl) List(ctx context.Context) ([]*model.Category, error) {
	var cats []*model.Category
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&cats).
		Error

	if err != nil {
		return nil, err
	}

	return cats, nil
}

func (r *categoryRepoImpl) FindByID(ctx context.Context, id string) (*model.Category, error) {
	var cat model.Category
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&cat).Error

	if err != nil {
		return nil, err
	}

	return &cat, nil
}

func (r *categoryRepoImpl) Create(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Create(cat).Error
}

func (r *categoryRepoImpl) Save(ctx context.Context, cat *model.Category) error {
	return r.db.WithContext(ctx).Save(cat).Error
}

func (r *categoryRepoImpl) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.Category{}).Error
}
