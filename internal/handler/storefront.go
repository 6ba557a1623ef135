package handler

import (
	"errors"
	"net/http"

	"nexshop/internal/dto"
	"nexshop/internal/middleware"
	"nexshop/internal/store"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// orNotFound maps a missing row to 404 and passes everything else through.
func orNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	return err
}

type StorefrontHandler struct{}

func NewStorefrontHandler() *StorefrontHandler {
	return &StorefrontHandler{}
}

// GetConfig returns everything the storefront shell needs to render:
// branding, theme tokens, card style, copy and domains.
func (h *StorefrontHandler) GetConfig(c echo.Context) error {
	st := middleware.StoreFrom(c)

	return c.JSON(http.StatusOK, &dto.StorefrontConfigResponse{
		Tenant:      st.Tenant(),
		Branding:    st.Branding(),
		ThemeTokens: st.ThemeTokens(),
		ProductCard: st.ProductCard(),
		Copy:        st.Copy(),
		Domains:     st.Domains(),
		Legal:       store.Legal,
	})
}

func (h *StorefrontHandler) ListCategories(c echo.Context) error {
	st := middleware.StoreFrom(c)

	cats, err := st.ListCategories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, cats)
}

// ListProducts shows only active products; drafts and archived products are
// admin-side concerns.
func (h *StorefrontHandler) ListProducts(c echo.Context) error {
	st := middleware.StoreFrom(c)

	products, err := st.ListActiveProducts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// GetProduct resolves by slug first, then by id, so both URL shapes work.
func (h *StorefrontHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	st := middleware.StoreFrom(c)
	key := c.Param("slug")

	product, err := st.ProductBySlug(ctx, key)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		product, err = st.ProductByID(ctx, key)
	}
	if err != nil {
		return orNotFound(err)
	}
	return c.JSON(http.StatusOK, product)
}

// GetPlans lists the platform subscription lineup.
func (h *StorefrontHandler) GetPlans(c echo.Context) error {
	return c.JSON(http.StatusOK, store.PlanCatalog)
}
