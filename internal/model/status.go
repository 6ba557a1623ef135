package model

// OrderStatus is the lifecycle state of an order. Forward transitions are
// pending -> paid -> shipped -> delivered; canceled and refunded are admin
// side-exits from any non-terminal state.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCanceled  OrderStatus = "canceled"
	OrderRefunded  OrderStatus = "refunded"
)

// ValidOrderStatus reports whether s is a known lifecycle state.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPaid, OrderShipped, OrderDelivered, OrderCanceled, OrderRefunded:
		return true
	}
	return false
}

type ProductStatus string

const (
	ProductActive   ProductStatus = "active"
	ProductDraft    ProductStatus = "draft"
	ProductArchived ProductStatus = "archived"
)

type PaymentMethod string

const (
	PaymentPix    PaymentMethod = "pix"
	PaymentCard   PaymentMethod = "card"
	PaymentStripe PaymentMethod = "stripe"
)

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentPix, PaymentCard, PaymentStripe:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryDownload DeliveryType = "download"
	DeliveryManual   DeliveryType = "manual"
	DeliveryDiscord  DeliveryType = "discord"
	DeliveryGame     DeliveryType = "game"
)

type SubscriptionPlan string

const (
	PlanStarter  SubscriptionPlan = "starter"
	PlanPro      SubscriptionPlan = "pro"
	PlanBusiness SubscriptionPlan = "business"
)

// ValidSubscriptionPlan reports whether p is a sellable plan.
func ValidSubscriptionPlan(p SubscriptionPlan) bool {
	switch p {
	case PlanStarter, PlanPro, PlanBusiness:
		return true
	}
	return false
}

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionExpired  SubscriptionStatus = "expired"
)

type AuthProvider string

const (
	ProviderGoogle  AuthProvider = "google"
	ProviderDiscord AuthProvider = "discord"
)
