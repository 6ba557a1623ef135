package handler

import (
	"net/http"
	"time"

	"nexshop/internal/dto"
	"nexshop/internal/middleware"
	"nexshop/internal/model"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the per-tenant back office: catalog CRUD, order
// management, white-label settings and the dashboard.
type AdminHandler struct{}

func NewAdminHandler() *AdminHandler {
	return &AdminHandler{}
}

// ── Categories ──

func (h *AdminHandler) ListCategories(c echo.Context) error {
	st := middleware.StoreFrom(c)
	categories, err := st.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Name == "" || req.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and slug required")
	}

	cat, err := st.AddCategory(c.Request().Context(), req.Name, req.Slug)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, cat)
}

func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	cat, err := st.UpdateCategory(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, cat)
}

func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	st := middleware.StoreFrom(c)
	if err := st.DeleteCategory(c.Request().Context(), c.Param("id")); err != nil {
		return orNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Products ──

func (h *AdminHandler) ListProducts(c echo.Context) error {
	st := middleware.StoreFrom(c)
	products, err := st.ListProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

func (h *AdminHandler) GetProduct(c echo.Context) error {
	st := middleware.StoreFrom(c)
	product, err := st.ProductByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Name == "" || req.Slug == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name and slug required")
	}

	product, err := st.AddProduct(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}

	product, err := st.UpdateProduct(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	st := middleware.StoreFrom(c)
	if err := st.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return orNotFound(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) DuplicateProduct(c echo.Context) error {
	st := middleware.StoreFrom(c)
	dup, err := st.DuplicateProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusCreated, dup)
}

// ── Orders ──

func (h *AdminHandler) ListOrders(c echo.Context) error {
	st := middleware.StoreFrom(c)
	orders, err := st.ListOrders(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHandler) GetOrder(c echo.Context) error {
	st := middleware.StoreFrom(c)
	order, err := st.OrderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if !model.ValidOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	if err := st.UpdateOrderStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return orNotFound(err)
	}
	order, err := st.OrderByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHandler) BulkUpdateOrderStatus(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.BulkUpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if len(req.IDs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "ids required")
	}
	if !model.ValidOrderStatus(req.Status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown order status")
	}

	if err := st.BulkUpdateOrderStatus(c.Request().Context(), req.IDs, req.Status); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ── Coupons & customers ──

func (h *AdminHandler) ListCoupons(c echo.Context) error {
	st := middleware.StoreFrom(c)
	coupons, err := st.ListCoupons(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *AdminHandler) ListCustomers(c echo.Context) error {
	st := middleware.StoreFrom(c)
	customers, err := st.ListCustomers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, customers)
}

// ── Dashboard ──

func (h *AdminHandler) Dashboard(c echo.Context) error {
	st := middleware.StoreFrom(c)
	kpi, revenue, err := st.Dashboard(c.Request().Context(), time.Now().UTC())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, &dto.DashboardResponse{KPI: kpi, Revenue: revenue})
}

// ── White-label settings ──

func (h *AdminHandler) GetBranding(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).Branding())
}

func (h *AdminHandler) UpdateBranding(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.BrandingPatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateBranding(req))
}

func (h *AdminHandler) GetThemeTokens(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).ThemeTokens())
}

func (h *AdminHandler) UpdateThemeTokens(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.ThemePatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateThemeTokens(req))
}

func (h *AdminHandler) GetProductCard(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).ProductCard())
}

func (h *AdminHandler) UpdateProductCard(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.ProductCardPatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateProductCard(req))
}

func (h *AdminHandler) GetCopy(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).Copy())
}

func (h *AdminHandler) UpdateCopy(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.CopyPatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateCopy(req))
}

func (h *AdminHandler) GetDomains(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).Domains())
}

func (h *AdminHandler) UpdateDomains(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.DomainsPatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateDomains(req))
}

func (h *AdminHandler) GetSettings(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).Settings())
}

func (h *AdminHandler) UpdateSettings(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.SettingsPatch
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	return c.JSON(http.StatusOK, st.UpdateSettings(req))
}

// ── Subscription ──

func (h *AdminHandler) GetSubscription(c echo.Context) error {
	return c.JSON(http.StatusOK, middleware.StoreFrom(c).Subscription())
}

func (h *AdminHandler) ChangePlan(c echo.Context) error {
	st := middleware.StoreFrom(c)
	var req dto.ChangePlanRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if !model.ValidSubscriptionPlan(req.Plan) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown plan")
	}
	return c.JSON(http.StatusOK, st.ChangePlan(req.Plan))
}
