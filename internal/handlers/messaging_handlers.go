package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type MessagingHandlers struct {
	messagingService services.MessagingService
}

func NewMessagingHandlers(messagingService services.MessagingService) *MessagingHandlers {
	return &MessagingHandlers{messagingService: messagingService}
}

// PostAnnouncement handles POST /community
func (h *MessagingHandlers) PostAnnouncement(c echo.Context) error {
	ctx := c.Request().Context()
	senderID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Title, "title"); err != nil {
		return common.SendValidationError(c, "title", err.Error())
	}
	if err := common.ValidateRequiredString(req.Body, "body"); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	message, err := h.messagingService.PostAnnouncement(ctx, senderID, req.Title, req.Body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// ListAnnouncements handles GET /community
func (h *MessagingHandlers) ListAnnouncements(c echo.Context) error {
	limit, offset := pagination(c)
	messages, err := h.messagingService.ListAnnouncements(c.Request().Context(), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}

// SendChat handles POST /chat
func (h *MessagingHandlers) SendChat(c echo.Context) error {
	ctx := c.Request().Context()
	senderID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		ReceiverID string `json:"receiver_id"`
		Body       string `json:"body"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	receiverID, err := common.ValidateUUID(req.ReceiverID, "receiver_id")
	if err != nil {
		return common.SendValidationError(c, "receiver_id", err.Error())
	}
	if err := common.ValidateRequiredString(req.Body, "body"); err != nil {
		return common.SendValidationError(c, "body", err.Error())
	}

	message, err := h.messagingService.SendChat(ctx, senderID, receiverID, req.Body)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, message)
}

// ListChat handles GET /chat
func (h *MessagingHandlers) ListChat(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := pagination(c)
	messages, err := h.messagingService.ListChat(ctx, userID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, messages)
}
