package handler

import (
	"net/http"

	"nexshop/internal/dto"
	"nexshop/internal/middleware"
	"nexshop/internal/store"

	"github.com/labstack/echo/v4"
)

type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

func cartResponse(c echo.Context, st *store.Store) (*dto.CartResponse, error) {
	ctx := c.Request().Context()

	subtotal, err := st.CartSubtotal(ctx)
	if err != nil {
		return nil, err
	}
	total, err := st.CartTotal(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.CartResponse{
		Items:      st.Cart(),
		Discount:   st.CartDiscount(),
		CouponCode: st.CartCouponCode(),
		Subtotal:   subtotal,
		Total:      total,
	}, nil
}

func (h *CartHandler) GetCart(c echo.Context) error {
	resp, err := cartResponse(c, middleware.StoreFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	st.AddToCart(req.ProductID, req.Quantity, req.VariantID)

	resp, err := cartResponse(c, st)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.UpdateCartQtyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.ProductID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_id required")
	}

	st.UpdateCartQty(req.ProductID, req.Quantity, req.VariantID)

	resp, err := cartResponse(c, st)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.RemoveFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	st.RemoveFromCart(req.ProductID, req.VariantID)

	resp, err := cartResponse(c, st)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// ApplyCoupon answers 200 with a success/failure result either way; an
// unknown code is not an HTTP error.
func (h *CartHandler) ApplyCoupon(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.ApplyCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	result, err := st.ApplyCoupon(c.Request().Context(), req.Code)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &dto.CouponResult{
		Success: result.Success,
		Message: result.Message,
	})
}

func (h *CartHandler) Clear(c echo.Context) error {
	st := middleware.StoreFrom(c)
	st.ClearCart()

	resp, err := cartResponse(c, st)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}
