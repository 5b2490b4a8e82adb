// Package handler contains the HTTP handlers for the notification engine.
package handler

import (
	"net/http"

	deliverycontext "backlot/internal/delivery/context"
	"backlot/internal/delivery/http/middleware"
	"backlot/internal/delivery/http/response"
	"backlot/internal/domain/entity"
	"backlot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DispatchHandler receives producer events and hands them to the dispatcher.
type DispatchHandler struct {
	dispatch usecase.DispatchUsecase
}

// NewDispatchHandler is the constructor for DispatchHandler.
func NewDispatchHandler(dispatch usecase.DispatchUsecase) *DispatchHandler {
	return &DispatchHandler{dispatch: dispatch}
}

// notifyRequest is the producer-facing event payload.
type notifyRequest struct {
	TenantID  uuid.UUID            `json:"tenant_id" validate:"required"`
	Module    string               `json:"module" validate:"required"`
	Event     string               `json:"event" validate:"required"`
	Title     string               `json:"title" validate:"required"`
	Message   string               `json:"message" validate:"required"`
	ActionURL string               `json:"action_url"`
	Metadata  entity.EventMetadata `json:"metadata"`
}

// Notify accepts a tenant event for routing and dispatch. The receipt comes
// back immediately; delivery itself is asynchronous.
func (h *DispatchHandler) Notify(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "caller identity missing")
	}

	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse event payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	ctx = deliverycontext.WithRequestID(ctx, deliverycontext.GetRequestID(c))

	receipt, err := h.dispatch.Notify(ctx, caller, &entity.EventDescriptor{
		TenantID:  req.TenantID,
		Module:    entity.Module(req.Module),
		Event:     req.Event,
		Title:     req.Title,
		Message:   req.Message,
		ActionURL: req.ActionURL,
		Metadata:  req.Metadata,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, receipt, "event accepted")
}
