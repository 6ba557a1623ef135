package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"nexshop/internal/middleware"
	"nexshop/internal/model"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func testSession() model.CustomerSession {
	return model.CustomerSession{
		IsLoggedIn: true,
		UserID:     "cust-1",
		Name:       "Lucas Silva",
		Email:      "lucas@email.com",
		Provider:   model.ProviderGoogle,
	}
}

func TestCustomerTokenRoundTrip(t *testing.T) {
	t.Parallel()

	token, err := middleware.IssueCustomerToken(testSecret, time.Hour, "demo", testSession())
	require.NoError(t, err)

	claims, err := middleware.ParseCustomerToken(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", claims.Subject)
	assert.Equal(t, "Lucas Silva", claims.Name)
	assert.Equal(t, "demo", claims.Tenant)
	assert.Equal(t, model.ProviderGoogle, claims.Provider)
}

func TestParseCustomerTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := middleware.IssueCustomerToken(testSecret, time.Hour, "demo", testSession())
	require.NoError(t, err)

	_, err = middleware.ParseCustomerToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseCustomerTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	token, err := middleware.IssueCustomerToken(testSecret, -time.Minute, "demo", testSession())
	require.NoError(t, err)

	_, err = middleware.ParseCustomerToken(testSecret, token)
	assert.Error(t, err)
}

func callWithAuth(t *testing.T, mw echo.MiddlewareFunc, tenant, authHeader string) error {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("tenant")
	c.SetParamValues(tenant)

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return handler(c)
}

func TestCustomerAuthMiddleware(t *testing.T) {
	t.Parallel()
	mw := middleware.CustomerAuth(testSecret)

	token, err := middleware.IssueCustomerToken(testSecret, time.Hour, "demo", testSession())
	require.NoError(t, err)

	assert.NoError(t, callWithAuth(t, mw, "demo", "Bearer "+token))

	err = callWithAuth(t, mw, "demo", "")
	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	// A token minted for one tenant does not open another.
	err = callWithAuth(t, mw, "other", "Bearer "+token)
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	t.Parallel()
	mw := middleware.AdminAuth("hunter2")

	assert.NoError(t, callWithAuth(t, mw, "demo", "Bearer hunter2"))

	var httpErr *echo.HTTPError
	err := callWithAuth(t, mw, "demo", "Bearer wrong")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)

	err = callWithAuth(t, mw, "demo", "")
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
