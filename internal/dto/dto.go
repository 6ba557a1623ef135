package dto

import "nexshop/internal/model"

// ── Cart ──

type AddToCartRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"` // defaults to 1
}

type UpdateCartQtyRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	Quantity  int    `json:"quantity"`
}

type RemoveFromCartRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
}

type ApplyCouponRequest struct {
	Code string `json:"code"`
}

type CouponResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CartResponse struct {
	Items      []model.CartItem `json:"items"`
	Discount   int              `json:"discount"` // percentage
	CouponCode string           `json:"coupon_code,omitempty"`
	Subtotal   int64            `json:"subtotal"`
	Total      int64            `json:"total"`
}

// ── Checkout ──

type CardDetails struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"` // MM/YY
	CVV    string `json:"cvv"`
}

type CheckoutRequest struct {
	Buyer         model.BuyerInfo     `json:"buyer"`
	PaymentMethod model.PaymentMethod `json:"payment_method"`
	CouponCode    string              `json:"coupon_code,omitempty"`
	Card          *CardDetails        `json:"card,omitempty"`
}

type CheckoutResponse struct {
	OrderID    string            `json:"order_id"`
	Status     model.OrderStatus `json:"status"`
	Total      int64             `json:"total"`
	TotalText  string            `json:"total_text"`
	PixPayload string            `json:"pix_payload,omitempty"`
}

// ── Auth ──

type GoogleLoginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type DiscordAuthorizeResponse struct {
	AuthorizeURL string `json:"authorize_url"`
	State        string `json:"state"`
}

type LoginResponse struct {
	Token   string                `json:"token"`
	Session model.CustomerSession `json:"session"`
}

// ── Admin catalog ──

type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type UpdateCategoryRequest struct {
	Name *string `json:"name,omitempty"`
	Slug *string `json:"slug,omitempty"`
}

type CreateProductRequest struct {
	Name              string                  `json:"name"`
	Slug              string                  `json:"slug"`
	CategoryID        string                  `json:"category_id"`
	Description       string                  `json:"description"`
	Price             int64                   `json:"price"`
	Images            []string                `json:"images"`
	Badges            []string                `json:"badges"`
	Benefits          []string                `json:"benefits"`
	Variants          []VariantPayload        `json:"variants"`
	Status            model.ProductStatus     `json:"status"`
	Delivery          *model.ProductDelivery  `json:"delivery,omitempty"`
	CardStyleOverride *model.ProductCardStyle `json:"card_style_override,omitempty"`
}

type VariantPayload struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

// UpdateProductRequest is a partial patch; nil fields are left untouched.
type UpdateProductRequest struct {
	Name              *string                 `json:"name,omitempty"`
	Slug              *string                 `json:"slug,omitempty"`
	CategoryID        *string                 `json:"category_id,omitempty"`
	Description       *string                 `json:"description,omitempty"`
	Price             *int64                  `json:"price,omitempty"`
	Images            []string                `json:"images,omitempty"`
	Badges            []string                `json:"badges,omitempty"`
	Benefits          []string                `json:"benefits,omitempty"`
	Variants          []VariantPayload        `json:"variants,omitempty"`
	Status            *model.ProductStatus    `json:"status,omitempty"`
	Delivery          *model.ProductDelivery  `json:"delivery,omitempty"`
	CardStyleOverride *model.ProductCardStyle `json:"card_style_override,omitempty"`
}

// ── Admin orders ──

type UpdateOrderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

type BulkUpdateOrderStatusRequest struct {
	IDs    []string          `json:"ids"`
	Status model.OrderStatus `json:"status"`
}

// ── Admin settings ──
// Patch payloads shallow-merge into the corresponding whole record; nil
// fields are left untouched.

type BrandingPatch struct {
	StoreDisplayName *string `json:"storeDisplayName,omitempty"`
	LogoURL          *string `json:"logoUrl,omitempty"`
	FaviconURL       *string `json:"faviconUrl,omitempty"`
}

type ThemePatch struct {
	Primary           *string `json:"primary,omitempty"`
	PrimaryForeground *string `json:"primaryForeground,omitempty"`
	Background        *string `json:"background,omitempty"`
	Foreground        *string `json:"foreground,omitempty"`
	Card              *string `json:"card,omitempty"`
	CardForeground    *string `json:"cardForeground,omitempty"`
	Muted             *string `json:"muted,omitempty"`
	MutedForeground   *string `json:"mutedForeground,omitempty"`
	Border            *string `json:"border,omitempty"`
	Ring              *string `json:"ring,omitempty"`
}

type ProductCardPatch struct {
	BgColor     *string           `json:"bgColor,omitempty"`
	TextColor   *string           `json:"textColor,omitempty"`
	TitleColor  *string           `json:"titleColor,omitempty"`
	PriceColor  *string           `json:"priceColor,omitempty"`
	BorderColor *string           `json:"borderColor,omitempty"`
	Shadow      *model.CardShadow `json:"shadow,omitempty"`
	Radius      *int              `json:"radius,omitempty"`
	ButtonBg    *string           `json:"buttonBg,omitempty"`
	ButtonText  *string           `json:"buttonText,omitempty"`
	BadgeBg     *string           `json:"badgeBg,omitempty"`
	BadgeText   *string           `json:"badgeText,omitempty"`
}

type CopyPatch struct {
	Headline         *string `json:"headline,omitempty"`
	Subheadline      *string `json:"subheadline,omitempty"`
	CTAPrimaryText   *string `json:"ctaPrimaryText,omitempty"`
	CTASecondaryText *string `json:"ctaSecondaryText,omitempty"`
	FooterText       *string `json:"footerText,omitempty"`
	SupportEmail     *string `json:"supportEmail,omitempty"`
}

type DomainsPatch struct {
	Subdomain    *string `json:"subdomain,omitempty"`
	CustomDomain *string `json:"customDomain,omitempty"`
}

type SettingsPatch struct {
	Name      *string `json:"name,omitempty"`
	LogoURL   *string `json:"logoUrl,omitempty"`
	Subdomain *string `json:"subdomain,omitempty"`
	Theme     *string `json:"theme,omitempty"`
	StoreType *string `json:"storeType,omitempty"`
}

type ChangePlanRequest struct {
	Plan model.SubscriptionPlan `json:"plan"`
}

// ── Storefront config ──

type StorefrontConfigResponse struct {
	Tenant      string                 `json:"tenant"`
	Branding    model.TenantBranding   `json:"branding"`
	ThemeTokens model.TenantTheme      `json:"themeTokens"`
	ProductCard model.ProductCardStyle `json:"productCard"`
	Copy        model.TenantCopy       `json:"copy"`
	Domains     model.TenantDomains    `json:"domains"`
	Legal       model.LegalInfo        `json:"legal"`
}

type DashboardResponse struct {
	KPI     model.KpiData            `json:"kpi"`
	Revenue []model.RevenueDataPoint `json:"revenue"`
}
