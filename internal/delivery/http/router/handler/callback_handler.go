package handler

import (
	"net/http"
	"time"

	"backlot/internal/delivery/http/response"
	"backlot/internal/domain/entity"
	"backlot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CallbackHandler receives delivery status callbacks from channel providers.
type CallbackHandler struct {
	delivery usecase.DeliveryUsecase
}

// NewCallbackHandler is the constructor for CallbackHandler.
func NewCallbackHandler(delivery usecase.DeliveryUsecase) *CallbackHandler {
	return &CallbackHandler{delivery: delivery}
}

// statusCallbackRequest is the normalized webhook payload the gateway
// adapters post.
type statusCallbackRequest struct {
	ExternalMessageID string    `json:"external_message_id" validate:"required"`
	Status            string    `json:"status" validate:"required"`
	Timestamp         time.Time `json:"timestamp"`
	ErrorCode         string    `json:"error_code"`
	ErrorMessage      string    `json:"error_message"`
}

// OnStatus applies one provider callback to its delivery attempt.
func (h *CallbackHandler) OnStatus(c echo.Context) error {
	provider := c.Param("provider")

	var req statusCallbackRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_BODY", "failed to parse callback payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err := h.delivery.OnDeliveryStatus(
		c.Request().Context(),
		provider,
		req.ExternalMessageID,
		entity.DeliveryStatus(req.Status),
		req.Timestamp,
		req.ErrorCode,
		req.ErrorMessage,
	)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nil, "status applied")
}
