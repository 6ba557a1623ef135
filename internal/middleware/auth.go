package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"nexshop/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const customerContextKey = "customer_claims"

// CustomerClaims is the signed identity handed out by the simulated logins.
type CustomerClaims struct {
	jwt.RegisteredClaims
	Name     string             `json:"name,omitempty"`
	Email    string             `json:"email,omitempty"`
	Provider model.AuthProvider `json:"provider,omitempty"`
	Tenant   string             `json:"tenant"`
}

// IssueCustomerToken signs a JWT for a freshly logged-in customer session.
func IssueCustomerToken(secret string, ttl time.Duration, tenant string, session model.CustomerSession) (string, error) {
	now := time.Now()
	claims := &CustomerClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:     session.Name,
		Email:    session.Email,
		Provider: session.Provider,
		Tenant:   tenant,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseCustomerToken verifies the signature and expiry.
func ParseCustomerToken(secret, token string) (*CustomerClaims, error) {
	claims := &CustomerClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// CustomerAuth requires a valid customer JWT for the tenant in the path.
func CustomerAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}
			claims, err := ParseCustomerToken(secret, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if claims.Tenant != c.Param("tenant") {
				return echo.NewHTTPError(http.StatusUnauthorized, "token issued for another tenant")
			}
			c.Set(customerContextKey, claims)
			return next(c)
		}
	}
}

// CustomerFrom returns the claims set by CustomerAuth, or nil.
func CustomerFrom(c echo.Context) *CustomerClaims {
	claims, _ := c.Get(customerContextKey).(*CustomerClaims)
	return claims
}

// AdminAuth gates the back office with a shared bearer token. Demo-level
// auth; real authorization is out of scope.
func AdminAuth(adminToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, "admin token required")
			}
			return next(c)
		}
	}
}
