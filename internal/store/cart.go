package store

import (
	"context"
	"errors"
	"fmt"

	"nexshop/internal/model"
	"nexshop/internal/money"

	"gorm.io/gorm"
)

// CouponResult is what ApplyCoupon hands back to the UI. A failed apply
// leaves the cart state untouched.
type CouponResult struct {
	Success  bool
	Message  string
	Discount int
}

// AddToCart merges into an existing line with the same (productID, variantID)
// key, otherwise appends a new line. Quantities below 1 default to 1. Variant
// stock is decorative and never validated.
func (s *Store) AddToCart(productID string, qty int, variantID string) {
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].VariantID == variantID {
			s.cart[i].Quantity += qty
			return
		}
	}
	s.cart = append(s.cart, model.CartItem{ProductID: productID, VariantID: variantID, Quantity: qty})
}

// RemoveFromCart drops the matching line entirely; no-op if absent.
func (s *Store) RemoveFromCart(productID, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLineLocked(productID, variantID)
}

func (s *Store) removeLineLocked(productID, variantID string) {
	kept := s.cart[:0]
	for _, item := range s.cart {
		if item.ProductID == productID && item.VariantID == variantID {
			continue
		}
		kept = append(kept, item)
	}
	s.cart = kept
}

// UpdateCartQty sets the quantity of the matching line; qty <= 0 removes it.
func (s *Store) UpdateCartQty(productID string, qty int, variantID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if qty <= 0 {
		s.removeLineLocked(productID, variantID)
		return
	}
	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].VariantID == variantID {
			s.cart[i].Quantity = qty
			return
		}
	}
}

// ClearCart empties the cart and resets coupon state in one step.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetCartLocked()
}

func (s *Store) resetCartLocked() {
	s.cart = nil
	s.cartDiscount = 0
	s.cartCouponCode = ""
}

// Cart returns a copy of the current cart lines.
func (s *Store) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Store) CartDiscount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartDiscount
}

func (s *Store) CartCouponCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartCouponCode
}

// ApplyCoupon looks the code up case-insensitively. On a match the cart-level
// discount and remembered code are replaced (last applied wins); on a miss
// nothing changes. Applying a coupon does not touch its usage count.
func (s *Store) ApplyCoupon(ctx context.Context, code string) (CouponResult, error) {
	coupon, err := s.coupons.FindByCode(ctx, code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return CouponResult{Success: false, Message: "Invalid coupon."}, nil
	}
	if err != nil {
		return CouponResult{}, fmt.Errorf("find coupon: %w", err)
	}

	s.mu.Lock()
	s.cartDiscount = coupon.Discount
	s.cartCouponCode = coupon.Code
	s.mu.Unlock()

	return CouponResult{
		Success:  true,
		Message:  fmt.Sprintf("Coupon %s applied! %d%% off.", coupon.Code, coupon.Discount),
		Discount: coupon.Discount,
	}, nil
}

// cartLine pairs a cart item with its resolved product and variant. Lines
// whose product no longer exists resolve with a nil product and price out
// at zero.
type cartLine struct {
	item    model.CartItem
	product *model.Product
	variant *model.ProductVariant
}

func (l cartLine) unitPrice() int64 {
	if l.product == nil {
		return 0
	}
	if l.item.VariantID != "" && l.variant != nil {
		return l.variant.Price
	}
	return l.product.Price
}

func (s *Store) cartLinesLocked(ctx context.Context) ([]cartLine, error) {
	if len(s.cart) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(s.cart))
	for _, item := range s.cart {
		ids = append(ids, item.ProductID)
	}
	products, err := s.products.FindMany(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve cart products: %w", err)
	}
	byID := make(map[string]*model.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	lines := make([]cartLine, 0, len(s.cart))
	for _, item := range s.cart {
		line := cartLine{item: item, product: byID[item.ProductID]}
		if line.product != nil && item.VariantID != "" {
			line.variant = line.product.Variant(item.VariantID)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *Store) cartSubtotalLocked(ctx context.Context) (int64, error) {
	lines, err := s.cartLinesLocked(ctx)
	if err != nil {
		return 0, err
	}
	var subtotal int64
	for _, line := range lines {
		subtotal += line.unitPrice() * int64(line.item.Quantity)
	}
	return subtotal, nil
}

// CartSubtotal sums unit price × quantity over all lines. A line whose
// variant is gone falls back to the base product price; a line whose product
// is gone contributes nothing.
func (s *Store) CartSubtotal(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartSubtotalLocked(ctx)
}

// CartTotal is round(subtotal × (1 − discount/100)), half-up on the final
// cents value.
func (s *Store) CartTotal(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	subtotal, err := s.cartSubtotalLocked(ctx)
	if err != nil {
		return 0, err
	}
	return money.ApplyDiscountPercent(subtotal, s.cartDiscount), nil
}
