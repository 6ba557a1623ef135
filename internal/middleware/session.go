package middleware

import (
	"fmt"
	"net/http"

	"nexshop/internal/store"

	"github.com/labstack/echo/v4"
)

// HeaderSessionToken carries the browser-session token. The server issues
// one on first touch and echoes it back; everything the client does under
// that token hits the same in-memory store.
const HeaderSessionToken = "X-Session-Token"

const storeContextKey = "tenant_store"

// Session resolves the tenant store for the request and stashes it in the
// echo context. A request without a token gets a fresh session.
func Session(manager *store.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tenant := c.Param("tenant")
			if tenant == "" {
				return echo.NewHTTPError(http.StatusBadRequest, "missing tenant slug")
			}

			token := c.Request().Header.Get(HeaderSessionToken)
			if token == "" {
				token = manager.IssueToken()
			}

			st, err := manager.Get(tenant, token)
			if err != nil {
				return fmt.Errorf("open tenant session: %w", err)
			}
			defer manager.Release(tenant, token)

			c.Response().Header().Set(HeaderSessionToken, token)
			c.Set(storeContextKey, st)
			return next(c)
		}
	}
}

// StoreFrom pulls the session store out of the echo context. Panics if the
// Session middleware did not run, which is a wiring bug.
func StoreFrom(c echo.Context) *store.Store {
	st, ok := c.Get(storeContextKey).(*store.Store)
	if !ok {
		panic("middleware: no tenant store on context")
	}
	return st
}
