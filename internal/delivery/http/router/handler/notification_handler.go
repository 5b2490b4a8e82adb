package handler

import (
	"net/http"
	"strconv"

	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/response"
	"backlot/internal/domain/repository"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const defaultListLimit = 50

// NotificationHandler serves the in-app notification center endpoints.
type NotificationHandler struct {
	notifications usecase.NotificationUsecase
	deliveries    usecase.DeliveryUsecase
}

// NewNotificationHandler is the constructor for NotificationHandler.
func NewNotificationHandler(notifications usecase.NotificationUsecase, deliveries usecase.DeliveryUsecase) *NotificationHandler {
	return &NotificationHandler{
		notifications: notifications,
		deliveries:    deliveries,
	}
}

// List returns a user's notifications for a tenant, newest first.
// Query params: unread_only, include_dismissed, limit, offset.
func (h *NotificationHandler) List(c echo.Context) error {
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

	filter := repository.NotificationFilter{
		UnreadOnly:       c.QueryParam("unread_only") == "true",
		IncludeDismissed: c.QueryParam("include_dismissed") == "true",
	}

	limit := queryInt(c, "limit", defaultListLimit)
	offset := queryInt(c, "offset", 0)

	notifications, err := h.notifications.List(c.Request().Context(), caller, userID, tenantID, filter, limit, offset)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, notifications, "")
}

// UnreadCount returns the badge count for a user in a tenant.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
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

	count, err := h.notifications.UnreadCount(c.Request().Context(), caller, userID, tenantID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, map[string]int64{"unread": count}, "")
}

// MarkRead marks one notification read. Repeating the call is a no-op.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "invalid notification id")
	}

	if err := h.notifications.MarkRead(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "marked read")
}

// markReadBatchRequest carries the ids for a batch read operation.
type markReadBatchRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// MarkReadBatch marks several notifications read in one call.
func (h *NotificationHandler) MarkReadBatch(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	var req markReadBatchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse batch payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.notifications.MarkReadBatch(c.Request().Context(), caller, req.IDs); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "marked read")
}

// Dismiss dismisses one notification. Repeating the call is a no-op.
func (h *NotificationHandler) Dismiss(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "invalid notification id")
	}

	if err := h.notifications.Dismiss(c.Request().Context(), caller, id); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "dismissed")
}

// Attempts returns the delivery attempts of one notification.
func (h *NotificationHandler) Attempts(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_NOTIFICATION_ID", "invalid notification id")
	}

	attempts, err := h.deliveries.AttemptsForNotification(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, attempts, "")
}

func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}

	return value
}
