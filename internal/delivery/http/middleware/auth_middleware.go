package middleware

import (
	"errors"
	"net/http"
	"strings"

	"backlot/config"
	"backlot/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerContextKey is where the authenticated caller identity is stored on
// the echo context.
const callerContextKey = "caller"

// AuthMiddleware validates the platform access token and materializes the
// caller identity every operation receives.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// Authenticate validates the JWT access token and stores the caller on the
// context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return []byte(m.cfg.SecretKey.Access), nil
		})
		if err != nil || !token.Valid {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Failed to parse token claims"})
		}

		caller, err := callerFromClaims(claims)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": err.Error()})
		}

		c.Set(callerContextKey, caller)

		return next(c)
	}
}

// CallerFrom returns the authenticated caller stored by Authenticate.
func CallerFrom(c echo.Context) (entity.Caller, bool) {
	caller, ok := c.Get(callerContextKey).(entity.Caller)

	return caller, ok
}

func callerFromClaims(claims jwt.MapClaims) (entity.Caller, error) {
	var caller entity.Caller

	userIDStr, ok := claims["sub"].(string)
	if !ok {
		return caller, errors.New("user ID missing from token")
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return caller, errors.New("invalid user ID format in token")
	}
	caller.UserID = userID

	// Tenant memberships scope every operation the caller performs.
	tenantsClaim, _ := claims["tenants"].([]any)
	for _, raw := range tenantsClaim {
		tenantStr, ok := raw.(string)
		if !ok {
			continue
		}
		tenantID, err := uuid.Parse(tenantStr)
		if err != nil {
			continue
		}
		caller.TenantIDs = append(caller.TenantIDs, tenantID)
	}

	rolesClaim, _ := claims["roles"].([]any)
	for _, raw := range rolesClaim {
		if roleStr, ok := raw.(string); ok {
			caller.Roles = append(caller.Roles, roleStr)
		}
	}

	system, _ := claims["system"].(bool)
	caller.System = system

	return caller, nil
}
