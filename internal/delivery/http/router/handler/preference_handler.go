package handler

import (
	"net/http"

	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/response"
	"backlot/internal/domain/entity"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// PreferenceHandler serves the per-user notification settings endpoints.
// Every route is scoped /users/:userID/tenants/:tenantID/modules/:module.
type PreferenceHandler struct {
	preferences usecase.PreferenceUsecase
}

// NewPreferenceHandler is the constructor for PreferenceHandler.
func NewPreferenceHandler(preferences usecase.PreferenceUsecase) *PreferenceHandler {
	return &PreferenceHandler{preferences: preferences}
}

type preferenceScope struct {
	caller   entity.Caller
	userID   uuid.UUID
	tenantID uuid.UUID
	module   entity.Module
}

func (h *PreferenceHandler) scope(c echo.Context) (*preferenceScope, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return nil, response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_USER_ID", "invalid user id")
	}
	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_TENANT_ID", "invalid tenant id")
	}

	module := entity.Module(c.Param("module"))
	if !module.Valid() {
		return nil, response.BadRequest(c, "INVALID_MODULE", "unknown module")
	}

	return &preferenceScope{
		caller:   caller,
		userID:   userID,
		tenantID: tenantID,
		module:   module,
	}, nil
}

// Get returns the user's preference, creating module defaults on first
// lookup.
func (h *PreferenceHandler) Get(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	pref, err := h.preferences.GetPreference(c.Request().Context(), scope.caller, scope.userID, scope.tenantID, scope.module)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref, "")
}

// eventPreferenceRequest toggles one event and one channel.
type eventPreferenceRequest struct {
	Event   string `json:"event" validate:"required"`
	Channel string `json:"channel" validate:"required"`
	Enabled bool   `json:"enabled"`
}

// UpdateEvent toggles one event's channel subscription. The channel "all"
// applies to every channel at once.
func (h *PreferenceHandler) UpdateEvent(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	var req eventPreferenceRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse event preference payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferences.UpdateEventPreference(
		c.Request().Context(),
		scope.caller, scope.userID, scope.tenantID, scope.module,
		req.Event, entity.Channel(req.Channel), req.Enabled,
	)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref, "event preference updated")
}

// channelsRequest replaces the module-wide channel toggles.
type channelsRequest struct {
	Channels map[entity.Channel]bool `json:"channels" validate:"required"`
}

// UpdateChannels replaces the module-wide channel toggles.
func (h *PreferenceHandler) UpdateChannels(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	var req channelsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse channels payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferences.UpdateChannels(c.Request().Context(), scope.caller, scope.userID, scope.tenantID, scope.module, req.Channels)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref, "channels updated")
}

// UpdateQuietHours replaces the do-not-disturb window.
func (h *PreferenceHandler) UpdateQuietHours(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	var req entity.QuietHours
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse quiet hours payload")
	}

	pref, err := h.preferences.UpdateQuietHours(c.Request().Context(), scope.caller, scope.userID, scope.tenantID, scope.module, req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref, "quiet hours updated")
}

// rateLimitsRequest replaces the per-channel caps.
type rateLimitsRequest struct {
	Limits map[entity.Channel]entity.RateLimit `json:"limits" validate:"required"`
}

// UpdateRateLimits replaces the per-channel rate-limit caps.
func (h *PreferenceHandler) UpdateRateLimits(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	var req rateLimitsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse rate limits payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	pref, err := h.preferences.UpdateRateLimits(c.Request().Context(), scope.caller, scope.userID, scope.tenantID, scope.module, req.Limits)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, pref, "rate limits updated")
}
