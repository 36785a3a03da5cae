package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/legalconnect/platform-api/internal/core/domain"
	"github.com/legalconnect/platform-api/internal/core/ports"
)

// ctxIdentity extracts the identity claims injected by the Auth middleware
// and fast-fails before any service call: user_id and a recognized role must
// both be present, otherwise the JWT is structurally valid but operationally
// unusable.
func ctxIdentity(c echo.Context) (ports.Identity, error) {
	userID, _ := c.Get("user_id").(string)
	name, _ := c.Get("name").(string)
	role, _ := c.Get("role").(string)

	if userID == "" || !domain.Role(role).Valid() {
		return ports.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	return ports.Identity{UserID: userID, Name: name, Role: domain.Role(role)}, nil
}

// ctxToken returns the raw bearer token the Auth middleware stored.
func ctxToken(c echo.Context) (string, error) {
	token, _ := c.Get("token").(string)
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return token, nil
}
