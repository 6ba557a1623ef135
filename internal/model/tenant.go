package model

import "time"

// Session-memory records: cart, customer identity and white-label settings.
// These never touch the database and die with the session.

// CartItem is one cart line. Uniqueness key is (ProductID, VariantID);
// adding the same pair again increments Quantity.
type CartItem struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Quantity  int    `json:"quantity"`
}

type BuyerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	CPF     string `json:"cpf,omitempty"`
	Discord string `json:"discord,omitempty"`
	CityID  string `json:"cityId,omitempty"`
}

type CheckoutData struct {
	Buyer         BuyerInfo     `json:"buyer"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	CouponCode    string        `json:"couponCode,omitempty"`
}

type CustomerSession struct {
	IsLoggedIn      bool         `json:"isLoggedIn"`
	UserID          string       `json:"userId,omitempty"`
	Name            string       `json:"name,omitempty"`
	Email           string       `json:"email,omitempty"`
	Provider        AuthProvider `json:"provider,omitempty"`
	DiscordID       string       `json:"discordId,omitempty"`
	DiscordUsername string       `json:"discordUsername,omitempty"`
	AvatarURL       string       `json:"avatarUrl,omitempty"`
}

type TenantBranding struct {
	StoreDisplayName string `json:"storeDisplayName"`
	LogoURL          string `json:"logoUrl"`
	FaviconURL       string `json:"faviconUrl"`
}

// TenantTheme holds the storefront color tokens. Each field maps 1:1 to a
// CSS variable on the storefront shell.
type TenantTheme struct {
	Primary           string `json:"primary"`
	PrimaryForeground string `json:"primaryForeground"`
	Background        string `json:"background"`
	Foreground        string `json:"foreground"`
	Card              string `json:"card"`
	CardForeground    string `json:"cardForeground"`
	Muted             string `json:"muted"`
	MutedForeground   string `json:"mutedForeground"`
	Border            string `json:"border"`
	Ring              string `json:"ring"`
}

type CardShadow string

const (
	ShadowNone   CardShadow = "none"
	ShadowSmall  CardShadow = "sm"
	ShadowMedium CardShadow = "md"
	ShadowLarge  CardShadow = "lg"
)

type ProductCardStyle struct {
	BgColor     string     `json:"bgColor"`
	TextColor   string     `json:"textColor"`
	TitleColor  string     `json:"titleColor"`
	PriceColor  string     `json:"priceColor"`
	BorderColor string     `json:"borderColor"`
	Shadow      CardShadow `json:"shadow"`
	Radius      int        `json:"radius"`
	ButtonBg    string     `json:"buttonBg"`
	ButtonText  string     `json:"buttonText"`
	BadgeBg     string     `json:"badgeBg"`
	BadgeText   string     `json:"badgeText"`
}

type TenantCopy struct {
	Headline         string `json:"headline"`
	Subheadline      string `json:"subheadline"`
	CTAPrimaryText   string `json:"ctaPrimaryText"`
	CTASecondaryText string `json:"ctaSecondaryText"`
	FooterText       string `json:"footerText"`
	SupportEmail     string `json:"supportEmail"`
}

type TenantDomains struct {
	Subdomain    string `json:"subdomain"`
	CustomDomain string `json:"customDomain,omitempty"`
}

type StoreSettings struct {
	Name      string `json:"name"`
	LogoURL   string `json:"logoUrl"`
	Subdomain string `json:"subdomain"`
	Theme     string `json:"theme"`
	StoreType string `json:"storeType"`
}

type SubscriptionHistoryEntry struct {
	Date   time.Time        `json:"date"`
	Action string           `json:"action"`
	Plan   SubscriptionPlan `json:"plan"`
}

// Subscription is the tenant's platform plan. History is append-only.
type Subscription struct {
	Plan      SubscriptionPlan           `json:"plan"`
	Status    SubscriptionStatus         `json:"status"`
	StartedAt time.Time                  `json:"startedAt"`
	ExpiresAt time.Time                  `json:"expiresAt"`
	History   []SubscriptionHistoryEntry `json:"history"`
}

// LegalInfo is the platform-level legal footer shown on every storefront.
type LegalInfo struct {
	CompanyName         string `json:"companyName"`
	CNPJ                string `json:"cnpj"`
	Address             string `json:"address"`
	PlatformDescription string `json:"platformDescription"`
}

type KpiData struct {
	SalesToday   int64 `json:"salesToday"`
	TotalSales   int64 `json:"totalSales"`
	MonthlySales int64 `json:"monthlySales"`
	WeeklyVisits int   `json:"weeklyVisits"`
}

type RevenueDataPoint struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
	Orders  int    `json:"orders"`
}

type PlanDetails struct {
	Name     string   `json:"name"`
	Price    int64    `json:"price"`
	Features []string `json:"features"`
}
