package handler

import (
	"net/http"
	"time"

	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/response"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HistoryHandler serves the combined hot+cold notification history.
type HistoryHandler struct {
	retention usecase.RetentionUsecase
}

// NewHistoryHandler is the constructor for HistoryHandler.
func NewHistoryHandler(retention usecase.RetentionUsecase) *HistoryHandler {
	return &HistoryHandler{retention: retention}
}

// Combined returns a user's notifications across hot and cold storage for
// the date range, each row tagged with its origin. Query params: tenant_id,
// from, to (RFC 3339).
func (h *HistoryHandler) Combined(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	userID, err := uuid.Parse(c.Param("userID"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "invalid user id")
	}
	tenantID, err := uuid.Parse(c.QueryParam("tenant_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_TENANT_ID", "invalid tenant id")
	}

	from, err := time.Parse(time.RFC3339, c.QueryParam("from"))
	if err != nil {
		return response.BadRequest(c, "INVALID_RANGE", "from must be RFC 3339")
	}
	to, err := time.Parse(time.RFC3339, c.QueryParam("to"))
	if err != nil {
		return response.BadRequest(c, "INVALID_RANGE", "to must be RFC 3339")
	}
	if to.Before(from) {
		return response.BadRequest(c, "INVALID_RANGE", "to precedes from")
	}

	history, err := h.retention.CombinedHistory(c.Request().Context(), caller, userID, tenantID, from, to)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, history, "")
}
