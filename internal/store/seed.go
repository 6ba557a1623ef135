package store

import (
	"context"
	"time"

	"nexshop/internal/model"
)

// seedIDCounter is where the session id counter starts; seed records sit
// below it so generated ids never collide within a session.
const seedIDCounter = 100

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic("store: bad seed timestamp: " + value)
	}
	return t
}

func tsp(value string) *time.Time {
	t := ts(value)
	return &t
}

var defaultBranding = model.TenantBranding{
	StoreDisplayName: "Minha Loja",
	LogoURL:          "",
	FaviconURL:       "",
}

var defaultTheme = model.TenantTheme{
	Primary:           "#22c55e",
	PrimaryForeground: "#ffffff",
	Background:        "#0f1218",
	Foreground:        "#f2f2f2",
	Card:              "#171c26",
	CardForeground:    "#f2f2f2",
	Muted:             "#1e2433",
	MutedForeground:   "#8b8fa3",
	Border:            "#262d3d",
	Ring:              "#22c55e",
}

var defaultProductCard = model.ProductCardStyle{
	BgColor:     "#171c26",
	TextColor:   "#8b8fa3",
	TitleColor:  "#f2f2f2",
	PriceColor:  "#22c55e",
	BorderColor: "#262d3d",
	Shadow:      model.ShadowMedium,
	Radius:      12,
	ButtonBg:    "#22c55e",
	ButtonText:  "#ffffff",
	BadgeBg:     "#22c55e",
	BadgeText:   "#ffffff",
}

var defaultCopy = model.TenantCopy{
	Headline:         "Os melhores produtos digitais para seu servidor",
	Subheadline:      "Scripts, veiculos, mapas e muito mais para FiveM e GTA RP.",
	CTAPrimaryText:   "Explorar produtos",
	CTASecondaryText: "Saiba mais",
	FooterText:       "Todos os direitos reservados.",
	SupportEmail:     "suporte@nexshop.com.br",
}

var defaultSettings = model.StoreSettings{
	Name:      "Minha Loja",
	LogoURL:   "",
	Subdomain: "minha-loja",
	Theme:     "dark",
	StoreType: "fivem",
}

func seedSubscription() model.Subscription {
	return model.Subscription{
		Plan:      model.PlanPro,
		Status:    model.SubscriptionActive,
		StartedAt: ts("2025-09-01T00:00:00Z"),
		ExpiresAt: ts("2026-09-01T00:00:00Z"),
		History: []model.SubscriptionHistoryEntry{
			{Date: ts("2025-06-01T00:00:00Z"), Action: "Subscribed", Plan: model.PlanStarter},
			{Date: ts("2025-09-01T00:00:00Z"), Action: "Upgrade", Plan: model.PlanPro},
		},
	}
}

// Legal is the platform legal footer, identical for every tenant.
var Legal = model.LegalInfo{
	CompanyName:         "NexShop Tecnologia Ltda",
	CNPJ:                "00.000.000/0001-00",
	Address:             "Sao Paulo, SP - Brasil",
	PlatformDescription: "NexShop e uma plataforma de e-commerce para produtos digitais. Todos os produtos sao de responsabilidade de seus respectivos vendedores.",
}

// PlanCatalog is the platform plan lineup shown on the subscription page.
var PlanCatalog = map[model.SubscriptionPlan]model.PlanDetails{
	model.PlanStarter: {
		Name:  "Starter",
		Price: 0,
		Features: []string{
			"Ate 10 produtos",
			"1 loja",
			"Checkout basico",
			"Suporte por email",
		},
	},
	model.PlanPro: {
		Name:  "Pro",
		Price: 9900,
		Features: []string{
			"Ate 100 produtos",
			"3 lojas",
			"Checkout customizado",
			"Dominio personalizado",
			"Cupons e descontos",
			"Suporte prioritario",
		},
	},
	model.PlanBusiness: {
		Name:  "Business",
		Price: 24900,
		Features: []string{
			"Produtos ilimitados",
			"Lojas ilimitadas",
			"API completa",
			"White label",
			"Suporte dedicado",
			"Webhooks e integracoes",
		},
	},
}

// seedWeeklyVisits is display-only dashboard data with no order source to
// derive it from.
const seedWeeklyVisits = 2847

func seedCategories() []model.Category {
	return []model.Category{
		{ID: "cat-1", Name: "Scripts FiveM", Slug: "scripts-fivem", ProductCount: 4},
		{ID: "cat-2", Name: "Veiculos", Slug: "veiculos", ProductCount: 2},
		{ID: "cat-3", Name: "Mapas", Slug: "mapas", ProductCount: 1},
		{ID: "cat-4", Name: "Servicos", Slug: "servicos", ProductCount: 1},
		{ID: "cat-5", Name: "Templates", Slug: "templates", ProductCount: 0},
	}
}

func seedProducts() []model.Product {
	return []model.Product{
		{
			ID: "prod-1", Name: "Sistema de Empregos v3", Slug: "sistema-empregos-v3",
			CategoryID:  "cat-1",
			Description: "Sistema completo de empregos para FiveM com 15+ profissoes, UI customizavel e integracao com economia.",
			Price:       4990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Empregos+v3"},
			Badges:      []string{"Mais vendido", "Atualizado"},
			Benefits:    []string{"15+ profissoes", "UI customizavel", "Integracao ESX/QBCore", "Suporte 30 dias"},
			Variants: []model.ProductVariant{
				{ID: "var-1a", ProductID: "prod-1", Name: "ESX", Price: 4990, Stock: 999},
				{ID: "var-1b", ProductID: "prod-1", Name: "QBCore", Price: 5490, Stock: 999},
			},
			Status:    model.ProductActive,
			CreatedAt: ts("2025-08-15T10:00:00Z"),
			Delivery:  &model.ProductDelivery{Type: model.DeliveryDownload, RequiresCityID: true},
		},
		{
			ID: "prod-2", Name: "HUD Personalizada Pro", Slug: "hud-personalizada-pro",
			CategoryID:  "cat-1",
			Description: "HUD moderna e responsiva com minimapa, status de vida, fome, sede e armadura.",
			Price:       2990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=HUD+Pro"},
			Badges:      []string{"Novo"},
			Benefits:    []string{"Design moderno", "Customizavel via config", "Leve e otimizada"},
			Status:      model.ProductActive,
			CreatedAt:   ts("2025-09-20T14:30:00Z"),
			Delivery:    &model.ProductDelivery{Type: model.DeliveryDownload},
		},
		{
			ID: "prod-3", Name: "Pack de Veiculos Brasileiros", Slug: "pack-veiculos-br",
			CategoryID:  "cat-2",
			Description: "Pack com 20 veiculos brasileiros modelados em alta qualidade para FiveM.",
			Price:       7990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Veiculos+BR"},
			Benefits:    []string{"20 veiculos", "Alta qualidade", "Handling realista"},
			Status:      model.ProductActive,
			CreatedAt:   ts("2025-07-10T09:00:00Z"),
		},
		{
			ID: "prod-4", Name: "Mapa Favela Completa", Slug: "mapa-favela-completa",
			CategoryID:  "cat-3",
			Description: "Mapa detalhado de favela com interiores, iluminacao e otimizacao de performance.",
			Price:       14990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Favela+Map"},
			Badges:      []string{"Premium"},
			Benefits:    []string{"Interiores acessiveis", "Iluminacao noturna", "LOD otimizado"},
			Status:      model.ProductDraft,
			CreatedAt:   ts("2025-10-01T16:00:00Z"),
		},
		{
			ID: "prod-5", Name: "Sistema de Garagem Avancado", Slug: "sistema-garagem-avancado",
			CategoryID:  "cat-1",
			Description: "Garagem com multiplos slots, preview 3D dos veiculos e integracao com mecanica.",
			Price:       3990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Garagem"},
			Benefits:    []string{"Preview 3D", "Multiplos slots", "Sistema de mecanica"},
			Status:      model.ProductActive,
			CreatedAt:   ts("2025-06-22T11:00:00Z"),
		},
		{
			ID: "prod-6", Name: "Configuracao de Servidor", Slug: "configuracao-servidor",
			CategoryID:  "cat-4",
			Description: "Servico de instalacao e configuracao completa do seu servidor FiveM.",
			Price:       19990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Config+Server"},
			Badges:      []string{"Servico"},
			Benefits:    []string{"Instalacao completa", "Otimizacao", "Suporte 7 dias"},
			Status:      model.ProductActive,
			CreatedAt:   ts("2025-05-18T08:00:00Z"),
			Delivery:    &model.ProductDelivery{Type: model.DeliveryDiscord, RequiresDiscord: true},
		},
		{
			ID: "prod-7", Name: "Pack de Armas Customizadas", Slug: "pack-armas-customizadas",
			CategoryID:  "cat-2",
			Description: "10 armas customizadas com texturas HD e animacoes exclusivas.",
			Price:       5990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Armas+Pack"},
			Benefits:    []string{"10 armas", "Texturas HD", "Animacoes custom"},
			Status:      model.ProductArchived,
			CreatedAt:   ts("2025-03-05T13:00:00Z"),
		},
		{
			ID: "prod-8", Name: "Sistema de Faccoes", Slug: "sistema-faccoes",
			CategoryID:  "cat-1",
			Description: "Sistema completo de faccoes com hierarquia, territorios e guerras.",
			Price:       8990,
			Images:      []string{"https://placehold.co/600x400/1a1a2e/22c55e?text=Faccoes"},
			Badges:      []string{"Novo"},
			Benefits:    []string{"Hierarquia dinamica", "Territorios", "Sistema de guerras", "Painel web"},
			Status:      model.ProductActive,
			CreatedAt:   ts("2025-11-01T10:00:00Z"),
		},
	}
}

func seedOrders() []model.Order {
	return []model.Order{
		{
			ID: "ORD-001", CustomerName: "Lucas Silva", CustomerEmail: "lucas@email.com",
			Items:         []model.OrderItem{{OrderID: "ORD-001", ProductID: "prod-1", ProductName: "Sistema de Empregos v3", Quantity: 1, UnitPrice: 4990}},
			Total:         4990,
			PaymentMethod: model.PaymentPix, Status: model.OrderDelivered,
			CreatedAt: ts("2025-11-20T14:30:00Z"), PaidAt: tsp("2025-11-20T14:31:00Z"), DeliveredAt: tsp("2025-11-20T14:32:00Z"),
		},
		{
			ID: "ORD-002", CustomerName: "Ana Oliveira", CustomerEmail: "ana@email.com",
			Items:         []model.OrderItem{{OrderID: "ORD-002", ProductID: "prod-2", ProductName: "HUD Personalizada Pro", Quantity: 1, UnitPrice: 2990}},
			Total:         2990,
			PaymentMethod: model.PaymentCard, Status: model.OrderPaid,
			CreatedAt: ts("2025-11-21T09:15:00Z"), PaidAt: tsp("2025-11-21T09:16:00Z"),
		},
		{
			ID: "ORD-003", CustomerName: "Pedro Santos", CustomerEmail: "pedro@email.com",
			Items: []model.OrderItem{
				{OrderID: "ORD-003", ProductID: "prod-3", ProductName: "Pack de Veiculos Brasileiros", Quantity: 1, UnitPrice: 7990},
				{OrderID: "ORD-003", ProductID: "prod-5", ProductName: "Sistema de Garagem Avancado", Quantity: 1, UnitPrice: 3990},
			},
			Total:         11980,
			PaymentMethod: model.PaymentStripe, Status: model.OrderPending,
			CreatedAt: ts("2025-11-22T16:45:00Z"),
		},
		{
			ID: "ORD-004", CustomerName: "Maria Costa", CustomerEmail: "maria@email.com",
			Items:         []model.OrderItem{{OrderID: "ORD-004", ProductID: "prod-6", ProductName: "Configuracao de Servidor", Quantity: 1, UnitPrice: 19990}},
			Total:         19990,
			PaymentMethod: model.PaymentPix, Status: model.OrderShipped,
			CreatedAt: ts("2025-11-19T11:00:00Z"), PaidAt: tsp("2025-11-19T11:01:00Z"),
		},
		{
			ID: "ORD-005", CustomerName: "Joao Ferreira", CustomerEmail: "joao@email.com",
			Items:         []model.OrderItem{{OrderID: "ORD-005", ProductID: "prod-8", ProductName: "Sistema de Faccoes", Quantity: 1, UnitPrice: 8990}},
			Total:         8990,
			PaymentMethod: model.PaymentCard, Status: model.OrderCanceled,
			CreatedAt: ts("2025-11-18T08:20:00Z"),
		},
		{
			ID: "ORD-006", CustomerName: "Carla Mendes", CustomerEmail: "carla@email.com", UserID: "cust-6",
			Items:         []model.OrderItem{{OrderID: "ORD-006", ProductID: "prod-1", ProductName: "Sistema de Empregos v3", Quantity: 1, UnitPrice: 5490}},
			Total:         5490,
			PaymentMethod: model.PaymentCard, Status: model.OrderDelivered,
			CreatedAt: ts("2025-11-17T13:10:00Z"), PaidAt: tsp("2025-11-17T13:11:00Z"), DeliveredAt: tsp("2025-11-17T13:12:00Z"),
		},
		{
			ID: "ORD-007", CustomerName: "Rafael Lima", CustomerEmail: "rafael@email.com",
			Items:         []model.OrderItem{{OrderID: "ORD-007", ProductID: "prod-4", ProductName: "Mapa Favela Completa", Quantity: 1, UnitPrice: 14990}},
			Total:         14990,
			PaymentMethod: model.PaymentPix, Status: model.OrderPaid,
			CreatedAt: ts("2025-11-23T10:00:00Z"), PaidAt: tsp("2025-11-23T10:01:00Z"),
		},
		{
			ID: "ORD-008", CustomerName: "Fernanda Alves", CustomerEmail: "fernanda@email.com",
			Items: []model.OrderItem{
				{OrderID: "ORD-008", ProductID: "prod-2", ProductName: "HUD Personalizada Pro", Quantity: 1, UnitPrice: 2990},
				{OrderID: "ORD-008", ProductID: "prod-8", ProductName: "Sistema de Faccoes", Quantity: 1, UnitPrice: 8990},
			},
			Total:         11980,
			PaymentMethod: model.PaymentStripe, Status: model.OrderDelivered,
			CreatedAt: ts("2025-11-15T17:30:00Z"), PaidAt: tsp("2025-11-15T17:31:00Z"), DeliveredAt: tsp("2025-11-15T17:35:00Z"),
		},
	}
}

func seedCustomers() []model.Customer {
	return []model.Customer{
		{ID: "cust-1", Name: "Lucas Silva", Email: "lucas@email.com", TotalPurchases: 3, LastPurchaseAt: tsp("2025-11-20T14:30:00Z")},
		{ID: "cust-2", Name: "Ana Oliveira", Email: "ana@email.com", TotalPurchases: 1, LastPurchaseAt: tsp("2025-11-21T09:15:00Z")},
		{ID: "cust-3", Name: "Pedro Santos", Email: "pedro@email.com", TotalPurchases: 5, LastPurchaseAt: tsp("2025-11-22T16:45:00Z")},
		{ID: "cust-4", Name: "Maria Costa", Email: "maria@email.com", TotalPurchases: 2, LastPurchaseAt: tsp("2025-11-19T11:00:00Z")},
		{ID: "cust-5", Name: "Joao Ferreira", Email: "joao@email.com", TotalPurchases: 1, LastPurchaseAt: tsp("2025-11-18T08:20:00Z")},
		{ID: "cust-6", Name: "Carla Mendes", Email: "carla@email.com", TotalPurchases: 7, LastPurchaseAt: tsp("2025-11-17T13:10:00Z")},
		{ID: "cust-7", Name: "Rafael Lima", Email: "rafael@email.com", TotalPurchases: 2, LastPurchaseAt: tsp("2025-11-23T10:00:00Z")},
		{ID: "cust-8", Name: "Fernanda Alves", Email: "fernanda@email.com", TotalPurchases: 4, LastPurchaseAt: tsp("2025-11-15T17:30:00Z")},
	}
}

func seedCoupons() []model.Coupon {
	return []model.Coupon{
		{ID: "cup-1", Code: "FIVEM10", Discount: 10, UsageCount: 23},
		{ID: "cup-2", Code: "BLACKFRIDAY", Discount: 25, UsageCount: 47},
		{ID: "cup-3", Code: "BEMVINDO", Discount: 15, UsageCount: 12},
	}
}

func (s *Store) seed(ctx context.Context) error {
	cats := seedCategories()
	if err := s.db.WithContext(ctx).Create(&cats).Error; err != nil {
		return err
	}

	products := seedProducts()
	if err := s.db.WithContext(ctx).Create(&products).Error; err != nil {
		return err
	}

	orders := seedOrders()
	if err := s.db.WithContext(ctx).Create(&orders).Error; err != nil {
		return err
	}

	customers := seedCustomers()
	if err := s.db.WithContext(ctx).Create(&customers).Error; err != nil {
		return err
	}

	coupons := seedCoupons()
	return s.db.WithContext(ctx).Create(&coupons).Error
}
