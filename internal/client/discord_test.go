package client_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"nexshop/internal/client"
	"nexshop/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscordClient(t *testing.T, delay time.Duration) client.DiscordClient {
	t.Helper()
	return client.NewDiscordClient(&config.Discord{ClientID: "test-client-id"}, delay)
}

func TestAuthorizeURL(t *testing.T) {
	t.Parallel()
	c := newDiscordClient(t, 0)

	raw := c.AuthorizeURL("http://localhost:8080/api/t/demo/auth/discord/callback", "nonce123")
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "discord.com", u.Host)
	assert.Equal(t, "/oauth2/authorize", u.Path)

	q := u.Query()
	assert.Equal(t, "test-client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "identify email", q.Get("scope"))
	assert.Equal(t, "nonce123", q.Get("state"))
	assert.Equal(t, "http://localhost:8080/api/t/demo/auth/discord/callback", q.Get("redirect_uri"))
}

func TestGenerateStateIsUnique(t *testing.T) {
	t.Parallel()
	c := newDiscordClient(t, 0)

	a, err := c.GenerateState()
	require.NoError(t, err)
	b, err := c.GenerateState()
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.NotEqual(t, a, b)
}

func TestExchangeCodeReturnsFixtureProfile(t *testing.T) {
	t.Parallel()
	c := newDiscordClient(t, 0)

	profile, err := c.ExchangeCode(context.Background(), "any-code")
	require.NoError(t, err)
	assert.Equal(t, "123456789012345678", profile.ID)
	assert.Equal(t, "player_fivem", profile.Username)
	assert.NotEmpty(t, profile.Email)
}

func TestExchangeCodeHonorsContext(t *testing.T) {
	t.Parallel()
	c := newDiscordClient(t, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ExchangeCode(ctx, "any-code")
	assert.ErrorIs(t, err, context.Canceled)
}
