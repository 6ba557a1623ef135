package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"nexshop/internal/model"

	"gorm.io/gorm"
)

func avatarURL(name, background string) string {
	return fmt.Sprintf(
		"https://ui-avatars.com/api/?name=%s&background=%s&color=fff&size=80",
		url.QueryEscape(name), background,
	)
}

// LoginWithGoogle starts a customer session from a simulated Google login.
// A known customer email reuses the seeded customer id so order history
// lines up.
func (s *Store) LoginWithGoogle(ctx context.Context, email, name string) (model.CustomerSession, error) {
	userID := fmt.Sprintf("google-%d", time.Now().UnixMilli())
	existing, err := s.customers.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CustomerSession{}, fmt.Errorf("find customer: %w", err)
	}
	if existing != nil {
		userID = existing.ID
	}

	session := model.CustomerSession{
		IsLoggedIn: true,
		UserID:     userID,
		Name:       name,
		Email:      email,
		Provider:   model.ProviderGoogle,
		AvatarURL:  avatarURL(name, "22c55e"),
	}

	s.mu.Lock()
	s.customerSession = session
	s.mu.Unlock()
	return session, nil
}

// LoginWithDiscord starts a customer session from the simulated Discord
// OAuth callback.
func (s *Store) LoginWithDiscord(username, discordID string) model.CustomerSession {
	session := model.CustomerSession{
		IsLoggedIn:      true,
		UserID:          "discord-" + discordID,
		Name:            username,
		Provider:        model.ProviderDiscord,
		DiscordID:       discordID,
		DiscordUsername: username,
		AvatarURL:       avatarURL(username, "5865F2"),
	}

	s.mu.Lock()
	s.customerSession = session
	s.mu.Unlock()
	return session
}

func (s *Store) LogoutCustomer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customerSession = model.CustomerSession{}
}

func (s *Store) CustomerSession() model.CustomerSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.customerSession
}

// SetOAuthState remembers the state nonce handed to the Discord authorize
// redirect. One pending state per session.
func (s *Store) SetOAuthState(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingOAuthState = state
}

// ConsumeOAuthState compares the callback state against the pending one and
// clears it either way.
func (s *Store) ConsumeOAuthState(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := state != "" && state == s.pendingOAuthState
	s.pendingOAuthState = ""
	return ok
}
