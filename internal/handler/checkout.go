package handler

import (
	"errors"
	"net/http"

	"nexshop/internal/dto"
	"nexshop/internal/middleware"
	"nexshop/internal/service"

	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

func (h *CheckoutHandler) Checkout(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	resp, err := h.checkoutService.Checkout(c.Request().Context(), st, &req)
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return echo.NewHTTPError(http.StatusBadRequest, verr.Msg)
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *CheckoutHandler) GetOrder(c echo.Context) error {
	st := middleware.StoreFrom(c)

	order, err := st.OrderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, order)
}

// ListOrdersByEmail is the guest order-lookup page: match by the email
// snapshotted on the order.
func (h *CheckoutHandler) ListOrdersByEmail(c echo.Context) error {
	st := middleware.StoreFrom(c)

	email := c.QueryParam("email")
	if email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email query param required")
	}

	orders, err := st.OrdersByEmail(c.Request().Context(), email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// MyOrders lists orders linked to the logged-in customer's user id.
func (h *CheckoutHandler) MyOrders(c echo.Context) error {
	st := middleware.StoreFrom(c)

	claims := middleware.CustomerFrom(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized)
	}

	orders, err := st.OrdersByUser(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}
