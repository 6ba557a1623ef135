package client

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/url"
	"time"

	"nexshop/internal/config"
)

// DiscordClient covers the OAuth2 pieces the storefront login needs. The
// code exchange is simulated: no token request leaves the process, and the
// profile returned is a fixture. A real integration replaces ExchangeCode
// with the POST /oauth2/token + GET /users/@me round trips.
type DiscordClient interface {
	AuthorizeURL(redirectURI, state string) string
	GenerateState() (string, error)
	ExchangeCode(ctx context.Context, code string) (*DiscordProfile, error)
}

type DiscordProfile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatar_url"`
}

type discordClientImpl struct {
	clientID    string
	pacingDelay time.Duration
}

func NewDiscordClient(discordCfg *config.Discord, pacingDelay time.Duration) DiscordClient {
	return &discordClientImpl{
		clientID:    discordCfg.ClientID,
		pacingDelay: pacingDelay,
	}
}

func (c *discordClientImpl) AuthorizeURL(redirectURI, state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", redirectURI)
	params.Set("response_type", "code")
	params.Set("scope", "identify email")
	params.Set("state", state)

	return "https://discord.com/oauth2/authorize?" + params.Encode()
}

// GenerateState returns a random hex nonce for CSRF-style comparison on the
// callback.
func (c *discordClientImpl) GenerateState() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ExchangeCode waits the pacing delay and hands back the fixture profile.
func (c *discordClientImpl) ExchangeCode(ctx context.Context, code string) (*DiscordProfile, error) {
	select {
	case <-time.After(c.pacingDelay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &DiscordProfile{
		ID:          "123456789012345678",
		Username:    "player_fivem",
		DisplayName: "Player FiveM",
		Email:       "player@discord.example.com",
	}, nil
}
