package store

import (
	"time"

	"nexshop/internal/dto"
	"nexshop/internal/model"
)

// White-label settings are plain session-memory records. Updates are shallow
// merges: only non-nil patch fields replace the current value.

func (s *Store) Branding() model.TenantBranding {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.branding
}

func (s *Store) ThemeTokens() model.TenantTheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.themeTokens
}

func (s *Store) ProductCard() model.ProductCardStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.productCard
}

func (s *Store) Copy() model.TenantCopy {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyText
}

func (s *Store) Domains() model.TenantDomains {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.domains
}

func (s *Store) Settings() model.StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

func (s *Store) Subscription() model.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub := s.subscription
	sub.History = append([]model.SubscriptionHistoryEntry(nil), s.subscription.History...)
	return sub
}

func setStr(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func (s *Store) UpdateBranding(patch dto.BrandingPatch) model.TenantBranding {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.branding.StoreDisplayName, patch.StoreDisplayName)
	setStr(&s.branding.LogoURL, patch.LogoURL)
	setStr(&s.branding.FaviconURL, patch.FaviconURL)
	return s.branding
}

func (s *Store) UpdateThemeTokens(patch dto.ThemePatch) model.TenantTheme {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.themeTokens.Primary, patch.Primary)
	setStr(&s.themeTokens.PrimaryForeground, patch.PrimaryForeground)
	setStr(&s.themeTokens.Background, patch.Background)
	setStr(&s.themeTokens.Foreground, patch.Foreground)
	setStr(&s.themeTokens.Card, patch.Card)
	setStr(&s.themeTokens.CardForeground, patch.CardForeground)
	setStr(&s.themeTokens.Muted, patch.Muted)
	setStr(&s.themeTokens.MutedForeground, patch.MutedForeground)
	setStr(&s.themeTokens.Border, patch.Border)
	setStr(&s.themeTokens.Ring, patch.Ring)
	return s.themeTokens
}

func (s *Store) UpdateProductCard(patch dto.ProductCardPatch) model.ProductCardStyle {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.productCard.BgColor, patch.BgColor)
	setStr(&s.productCard.TextColor, patch.TextColor)
	setStr(&s.productCard.TitleColor, patch.TitleColor)
	setStr(&s.productCard.PriceColor, patch.PriceColor)
	setStr(&s.productCard.BorderColor, patch.BorderColor)
	if patch.Shadow != nil {
		s.productCard.Shadow = *patch.Shadow
	}
	if patch.Radius != nil {
		s.productCard.Radius = *patch.Radius
	}
	setStr(&s.productCard.ButtonBg, patch.ButtonBg)
	setStr(&s.productCard.ButtonText, patch.ButtonText)
	setStr(&s.productCard.BadgeBg, patch.BadgeBg)
	setStr(&s.productCard.BadgeText, patch.BadgeText)
	return s.productCard
}

func (s *Store) UpdateCopy(patch dto.CopyPatch) model.TenantCopy {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.copyText.Headline, patch.Headline)
	setStr(&s.copyText.Subheadline, patch.Subheadline)
	setStr(&s.copyText.CTAPrimaryText, patch.CTAPrimaryText)
	setStr(&s.copyText.CTASecondaryText, patch.CTASecondaryText)
	setStr(&s.copyText.FooterText, patch.FooterText)
	setStr(&s.copyText.SupportEmail, patch.SupportEmail)
	return s.copyText
}

func (s *Store) UpdateDomains(patch dto.DomainsPatch) model.TenantDomains {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.domains.Subdomain, patch.Subdomain)
	setStr(&s.domains.CustomDomain, patch.CustomDomain)
	return s.domains
}

func (s *Store) UpdateSettings(patch dto.SettingsPatch) model.StoreSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	setStr(&s.settings.Name, patch.Name)
	setStr(&s.settings.LogoURL, patch.LogoURL)
	setStr(&s.settings.Subdomain, patch.Subdomain)
	setStr(&s.settings.Theme, patch.Theme)
	setStr(&s.settings.StoreType, patch.StoreType)
	return s.settings
}

// ChangePlan switches the subscription plan and appends to the history log.
// History is append-only; prior entries are never rewritten.
func (s *Store) ChangePlan(plan model.SubscriptionPlan) model.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	action := "Upgrade"
	if plan == model.PlanStarter {
		action = "Downgrade"
	}
	s.subscription.Plan = plan
	s.subscription.History = append(s.subscription.History, model.SubscriptionHistoryEntry{
		Date:   time.Now().UTC(),
		Action: action,
		Plan:   plan,
	})

	sub := s.subscription
	sub.History = append([]model.SubscriptionHistoryEntry(nil), s.subscription.History...)
	return sub
}
