package handler

import (
	"fmt"
	"net/http"

	"nexshop/internal/client"
	"nexshop/internal/config"
	"nexshop/internal/dto"
	"nexshop/internal/middleware"
	"nexshop/internal/model"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	discordClient client.DiscordClient
	authCfg       config.Auth
	baseURL       string
}

func NewAuthHandler(discordClient client.DiscordClient, authCfg config.Auth, baseURL string) *AuthHandler {
	return &AuthHandler{
		discordClient: discordClient,
		authCfg:       authCfg,
		baseURL:       baseURL,
	}
}

func (h *AuthHandler) loginResponse(c echo.Context, session model.CustomerSession) error {
	token, err := middleware.IssueCustomerToken(h.authCfg.JWTSecret, h.authCfg.TokenTTL, c.Param("tenant"), session)
	if err != nil {
		return fmt.Errorf("sign customer token: %w", err)
	}
	return c.JSON(http.StatusOK, &dto.LoginResponse{
		Token:   token,
		Session: session,
	})
}

// GoogleLogin simulates the Google flow: the payload is taken at face value
// and a session starts immediately.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	st := middleware.StoreFrom(c)

	var req dto.GoogleLoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid req body")
	}
	if req.Email == "" || req.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email and name required")
	}

	session, err := st.LoginWithGoogle(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		return err
	}
	return h.loginResponse(c, session)
}

// DiscordAuthorize hands the client the authorize URL and remembers the
// state nonce for the callback comparison.
func (h *AuthHandler) DiscordAuthorize(c echo.Context) error {
	st := middleware.StoreFrom(c)

	state, err := h.discordClient.GenerateState()
	if err != nil {
		return fmt.Errorf("generate oauth state: %w", err)
	}
	st.SetOAuthState(state)

	redirectURI := fmt.Sprintf("%s/api/t/%s/auth/discord/callback", h.baseURL, st.Tenant())
	return c.JSON(http.StatusOK, &dto.DiscordAuthorizeResponse{
		AuthorizeURL: h.discordClient.AuthorizeURL(redirectURI, state),
		State:        state,
	})
}

// DiscordCallback checks the state nonce, exchanges the code for the mock
// profile and starts the customer session.
func (h *AuthHandler) DiscordCallback(c echo.Context) error {
	ctx := c.Request().Context()
	st := middleware.StoreFrom(c)

	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid oauth callback")
	}
	if !st.ConsumeOAuthState(state) {
		return echo.NewHTTPError(http.StatusBadRequest, "oauth state mismatch")
	}

	profile, err := h.discordClient.ExchangeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("exchange discord code: %w", err)
	}

	session := st.LoginWithDiscord(profile.Username, profile.ID)
	return h.loginResponse(c, session)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	st := middleware.StoreFrom(c)
	st.LogoutCustomer()
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	st := middleware.StoreFrom(c)
	return c.JSON(http.StatusOK, st.CustomerSession())
}
