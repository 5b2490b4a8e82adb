package handler

import (
	"net/http"
	"time"

	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/response"
	"backlot/internal/domain/entity"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the delivery and engagement reporting endpoints.
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUsecase
}

// NewAnalyticsHandler is the constructor for AnalyticsHandler.
func NewAnalyticsHandler(analytics usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

type analyticsScope struct {
	caller   entity.Caller
	tenantID uuid.UUID
	from     time.Time
	to       time.Time
}

func (h *AnalyticsHandler) scope(c echo.Context) (*analyticsScope, error) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return nil, response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	tenantID, err := uuid.Parse(c.Param("tenantID"))
	if err != nil {
		return nil, response.BadRequest(c, "INVALID_TENANT_ID", "invalid tenant id")
	}

	// Default window is the trailing 30 days.
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -30)

	if raw := c.QueryParam("from"); raw != "" {
		from, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_RANGE", "from must be RFC 3339")
		}
	}
	if raw := c.QueryParam("to"); raw != "" {
		to, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, response.BadRequest(c, "INVALID_RANGE", "to must be RFC 3339")
		}
	}
	if to.Before(from) {
		return nil, response.BadRequest(c, "INVALID_RANGE", "to precedes from")
	}

	return &analyticsScope{caller: caller, tenantID: tenantID, from: from, to: to}, nil
}

// DeliveryStats returns per-channel delivery and engagement rates.
func (h *AnalyticsHandler) DeliveryStats(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	stats, err := h.analytics.DeliveryStats(c.Request().Context(), scope.caller, scope.tenantID, scope.from, scope.to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// ProviderPerformance returns per-provider outcomes.
func (h *AnalyticsHandler) ProviderPerformance(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	stats, err := h.analytics.ProviderPerformance(c.Request().Context(), scope.caller, scope.tenantID, scope.from, scope.to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, stats, "")
}

// Timeline returns time-bucketed dispatch volume. Query param bucket accepts
// a Go duration string; the default is one hour.
func (h *AnalyticsHandler) Timeline(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	bucket := time.Hour
	if raw := c.QueryParam("bucket"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			return response.BadRequest(c, "INVALID_BUCKET", "bucket must be a positive duration")
		}
		bucket = parsed
	}

	buckets, err := h.analytics.Timeline(c.Request().Context(), scope.caller, scope.tenantID, scope.from, scope.to, bucket)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, buckets, "")
}

// UserSummary returns one user's per-channel outcomes.
func (h *AnalyticsHandler) UserSummary(c echo.Context) error {
	scope, err := h.scope(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "invalid user id")
	}

	summary, err := h.analytics.UserSummary(c.Request().Context(), scope.caller, userID, scope.tenantID, scope.from, scope.to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, summary, "")
}
