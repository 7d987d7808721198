package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/udistrital/unidoc_api/pkg/kernel"
)

const localsKeyAuthContext = "auth_context"

// AuthContext is the per-request identity resolved from the bearer token
type AuthContext struct {
	UserID kernel.UserID
	Email  kernel.Email
	Rol    kernel.Rol
	Scopes []string
}

// HasAnyScope checks if the context grants at least one of the scopes.
// A granted "familia:*" covers every scope of that family.
func (a *AuthContext) HasAnyScope(scopes ...string) bool {
	for _, granted := range a.Scopes {
		if granted == ScopeAll {
			return true
		}
		for _, wanted := range scopes {
			if granted == wanted {
				return true
			}
			if familia, ok := strings.CutSuffix(granted, ":*"); ok && strings.HasPrefix(wanted, familia+":") {
				return true
			}
		}
	}
	return false
}

// TokenMiddleware guards routes with bearer-token authentication
type TokenMiddleware struct {
	tokenService TokenService
}

// NewTokenMiddleware creates the auth middleware
func NewTokenMiddleware(tokenService TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokenService: tokenService}
}

// Authenticate validates the bearer token and stores the AuthContext
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return ErrTokenMissing()
		}

		// Format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ErrTokenInvalid().WithDetail("reason", "malformed authorization header")
		}

		claims, err := m.tokenService.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(localsKeyAuthContext, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Rol:    claims.Rol,
			Scopes: ScopesForRol(claims.Rol),
		})

		return c.Next()
	}
}

// RequireRol restricts a route to the given roles
func (m *TokenMiddleware) RequireRol(roles ...kernel.Rol) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrTokenMissing()
		}

		for _, rol := range roles {
			if authContext.Rol == rol {
				return c.Next()
			}
		}

		return ErrForbidden().WithDetail("rol", authContext.Rol)
	}
}

// RequireScope restricts a route to contexts granting the scope
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authContext, ok := GetAuthContext(c)
		if !ok {
			return ErrTokenMissing()
		}

		if !authContext.HasAnyScope(scope) {
			return ErrForbidden().WithDetail("required_scope", scope)
		}

		return c.Next()
	}
}

// GetAuthContext extracts the AuthContext stored by Authenticate
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authContext, ok := c.Locals(localsKeyAuthContext).(*AuthContext)
	return authContext, ok
}
