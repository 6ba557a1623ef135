package model

import "time"

// Entities below live in the session's in-memory database. All monetary
// amounts are integer centavos.

type Category struct {
	ID   string `gorm:"primaryKey;size:32" json:"id"`
	Name string `gorm:"not null" json:"name"`
	Slug string `gorm:"uniqueIndex;not null" json:"slug"`
	// ProductCount is denormalized display data carried over from the seed;
	// CRUD never recomputes it from actual product membership.
	ProductCount int `json:"productCount"`
}

type ProductDelivery struct {
	Type            DeliveryType `json:"type"`
	RequiresDiscord bool         `json:"requiresDiscord,omitempty"`
	RequiresCityID  bool         `json:"requiresCityId,omitempty"`
}

type ProductVariant struct {
	ID        string `gorm:"primaryKey;size:32" json:"id"`
	ProductID string `gorm:"index;not null" json:"-"`
	Name      string `gorm:"not null" json:"name"`
	Price     int64  `gorm:"not null" json:"price"`
	Stock     int    `json:"stock"`
}

type Product struct {
	ID          string           `gorm:"primaryKey;size:32" json:"id"`
	Name        string           `gorm:"not null" json:"name"`
	Slug        string           `gorm:"index;not null" json:"slug"`
	CategoryID  string           `gorm:"index" json:"categoryId"`
	Description string           `json:"description"`
	Price       int64            `gorm:"not null" json:"price"`
	Images      []string         `gorm:"serializer:json" json:"images"`
	Badges      []string         `gorm:"serializer:json" json:"badges"`
	Benefits    []string         `gorm:"serializer:json" json:"benefits"`
	Variants    []ProductVariant `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants"`
	Status      ProductStatus    `gorm:"size:16;index;not null" json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	Delivery    *ProductDelivery `gorm:"serializer:json" json:"delivery,omitempty"`
	// CardStyleOverride patches the tenant-wide product card style for this
	// product only.
	CardStyleOverride *ProductCardStyle `gorm:"serializer:json" json:"cardStyleOverride,omitempty"`
}

// Variant returns the variant with the given id, or nil.
func (p *Product) Variant(variantID string) *ProductVariant {
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}

type Order struct {
	ID              string        `gorm:"primaryKey;size:32" json:"id"`
	CustomerName    string        `gorm:"not null" json:"customerName"`
	CustomerEmail   string        `gorm:"index;not null" json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone,omitempty"`
	CustomerCPF     string        `json:"customerCpf,omitempty"`
	CustomerDiscord string        `json:"customerDiscord,omitempty"`
	CustomerCityID  string        `json:"customerCityId,omitempty"`
	UserID          string        `gorm:"index" json:"userId,omitempty"` // linked if logged in
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           int64         `gorm:"not null" json:"total"`
	Discount        int64         `gorm:"not null" json:"discount"`
	PaymentMethod   PaymentMethod `gorm:"size:16;not null" json:"paymentMethod"`
	Status          OrderStatus   `gorm:"size:16;index;not null" json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
	PaidAt          *time.Time    `json:"paidAt"`
	DeliveredAt     *time.Time    `json:"deliveredAt"`
}

// OrderItem is a snapshot taken at checkout. ProductName and UnitPrice are
// captured at creation time so later product edits never alter history.
type OrderItem struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	OrderID     string `gorm:"index;not null" json:"-"`
	ProductID   string `gorm:"index;not null" json:"productId"`
	ProductName string `gorm:"not null" json:"productName"`
	VariantName string `json:"variantName,omitempty"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	UnitPrice   int64  `gorm:"not null" json:"unitPrice"`
}

type Coupon struct {
	ID   string `gorm:"primaryKey;size:32" json:"id"`
	Code string `gorm:"uniqueIndex;not null" json:"code"`
	// Discount is a percentage, 0-100.
	Discount int `gorm:"not null" json:"discount"`
	// UsageCount is display-only; applying a coupon does not increment it.
	UsageCount int `json:"usageCount"`
}

type Customer struct {
	ID             string     `gorm:"primaryKey;size:32" json:"id"`
	Name           string     `gorm:"not null" json:"name"`
	Email          string     `gorm:"uniqueIndex;not null" json:"email"`
	TotalPurchases int        `json:"totalPurchases"`
	LastPurchaseAt *time.Time `json:"lastPurchaseAt"`
}
