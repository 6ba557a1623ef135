package store

import (
	"context"
	"time"

	"nexshop/internal/dto"
	"nexshop/internal/model"
)

// ── Categories ──

func (s *Store) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categories.List(ctx)
}

// AddCategory creates a category with a zero product count. Counts stay
// whatever the seed or caller set them to; CRUD never recomputes them.
func (s *Store) AddCategory(ctx context.Context, name, slug string) (*model.Category, error) {
	s.mu.Lock()
	id := s.nextIDLocked("cat")
	s.mu.Unlock()

	cat := &model.Category{ID: id, Name: name, Slug: slug}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id string, patch dto.UpdateCategoryRequest) (*model.Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		cat.Name = *patch.Name
	}
	if patch.Slug != nil {
		cat.Slug = *patch.Slug
	}
	if err := s.categories.Save(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return s.categories.Delete(ctx, id)
}

// ── Products ──

// ListProducts returns the whole catalog; storefront callers use
// ListActiveProducts instead.
func (s *Store) ListProducts(ctx context.Context) ([]*model.Product, error) {
	return s.products.List(ctx)
}

func (s *Store) ListActiveProducts(ctx context.Context) ([]*model.Product, error) {
	return s.products.ListByStatus(ctx, model.ProductActive)
}

func (s *Store) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	return s.products.FindByID(ctx, id)
}

func (s *Store) ProductBySlug(ctx context.Context, slug string) (*model.Product, error) {
	return s.products.FindBySlug(ctx, slug)
}

func (s *Store) AddProduct(ctx context.Context, req dto.CreateProductRequest) (*model.Product, error) {
	s.mu.Lock()
	id := s.nextIDLocked("prod")
	variants := make([]model.ProductVariant, 0, len(req.Variants))
	for _, v := range req.Variants {
		variants = append(variants, model.ProductVariant{
			ID:        s.nextIDLocked("var"),
			ProductID: id,
			Name:      v.Name,
			Price:     v.Price,
			Stock:     v.Stock,
		})
	}
	s.mu.Unlock()

	status := req.Status
	if status == "" {
		status = model.ProductActive
	}

	product := &model.Product{
		ID:                id,
		Name:              req.Name,
		Slug:              req.Slug,
		CategoryID:        req.CategoryID,
		Description:       req.Description,
		Price:             req.Price,
		Images:            req.Images,
		Badges:            req.Badges,
		Benefits:          req.Benefits,
		Variants:          variants,
		Status:            status,
		CreatedAt:         time.Now().UTC(),
		Delivery:          req.Delivery,
		CardStyleOverride: req.CardStyleOverride,
	}
	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) UpdateProduct(ctx context.Context, id string, patch dto.UpdateProductRequest) (*model.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Slug != nil {
		product.Slug = *patch.Slug
	}
	if patch.CategoryID != nil {
		product.CategoryID = *patch.CategoryID
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Images != nil {
		product.Images = patch.Images
	}
	if patch.Badges != nil {
		product.Badges = patch.Badges
	}
	if patch.Benefits != nil {
		product.Benefits = patch.Benefits
	}
	if patch.Status != nil {
		product.Status = *patch.Status
	}
	if patch.Delivery != nil {
		product.Delivery = patch.Delivery
	}
	if patch.CardStyleOverride != nil {
		product.CardStyleOverride = patch.CardStyleOverride
	}

	if patch.Variants != nil {
		s.mu.Lock()
		variants := make([]model.ProductVariant, 0, len(patch.Variants))
		for _, v := range patch.Variants {
			variants = append(variants, model.ProductVariant{
				ID:        s.nextIDLocked("var"),
				ProductID: id,
				Name:      v.Name,
				Price:     v.Price,
				Stock:     v.Stock,
			})
		}
		s.mu.Unlock()

		if err := s.products.ReplaceVariants(ctx, id, variants); err != nil {
			return nil, err
		}
		product.Variants = variants
	}

	if err := s.products.Save(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return s.products.Delete(ctx, id)
}

// DuplicateProduct copies every field of the source, assigns fresh ids,
// suffixes name and slug, forces draft status, and resets createdAt.
func (s *Store) DuplicateProduct(ctx context.Context, id string) (*model.Product, error) {
	src, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	copyID := s.nextIDLocked("prod")
	variants := make([]model.ProductVariant, 0, len(src.Variants))
	for _, v := range src.Variants {
		variants = append(variants, model.ProductVariant{
			ID:        s.nextIDLocked("var"),
			ProductID: copyID,
			Name:      v.Name,
			Price:     v.Price,
			Stock:     v.Stock,
		})
	}
	s.mu.Unlock()

	dup := &model.Product{
		ID:                copyID,
		Name:              src.Name + " (copy)",
		Slug:              src.Slug + "-copy",
		CategoryID:        src.CategoryID,
		Description:       src.Description,
		Price:             src.Price,
		Images:            append([]string(nil), src.Images...),
		Badges:            append([]string(nil), src.Badges...),
		Benefits:          append([]string(nil), src.Benefits...),
		Variants:          variants,
		Status:            model.ProductDraft,
		CreatedAt:         time.Now().UTC(),
		Delivery:          src.Delivery,
		CardStyleOverride: src.CardStyleOverride,
	}
	if err := s.products.Create(ctx, dup); err != nil {
		return nil, err
	}
	return dup, nil
}

// ── Coupons & customers (admin lists) ──

func (s *Store) ListCoupons(ctx context.Context) ([]*model.Coupon, error) {
	return s.coupons.List(ctx)
}

func (s *Store) ListCustomers(ctx context.Context) ([]*model.Customer, error) {
	return s.customers.List(ctx)
}
