package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type RoomHandlers struct {
	roomService services.RoomService
}

func NewRoomHandlers(roomService services.RoomService) *RoomHandlers {
	return &RoomHandlers{roomService: roomService}
}

// CreateRoom handles POST /rooms
func (h *RoomHandlers) CreateRoom(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		PropertyID string  `json:"property_id"`
		RoomNumber string  `json:"room_number"`
		Floor      int     `json:"floor"`
		Type       string  `json:"type"`
		Rent       float64 `json:"rent"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	propertyID, err := common.ValidateUUID(req.PropertyID, "property_id")
	if err != nil {
		return common.SendValidationError(c, "property_id", err.Error())
	}
	if err := common.ValidateRequiredString(req.RoomNumber, "room_number"); err != nil {
		return common.SendValidationError(c, "room_number", err.Error())
	}

	room := &models.Room{
		PropertyID: propertyID,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Type:       req.Type,
		Rent:       req.Rent,
	}
	created, err := h.roomService.Create(ctx, landlordID, room)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// GetRoom handles GET /rooms/:id
func (h *RoomHandlers) GetRoom(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	room, err := h.roomService.Get(ctx, landlordID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /rooms/:id
func (h *RoomHandlers) UpdateRoom(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		RoomNumber string  `json:"room_number"`
		Floor      int     `json:"floor"`
		Type       string  `json:"type"`
		Rent       float64 `json:"rent"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.RoomNumber, "room_number"); err != nil {
		return common.SendValidationError(c, "room_number", err.Error())
	}

	room := &models.Room{
		ID:         id,
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		Type:       req.Type,
		Rent:       req.Rent,
	}
	updated, err := h.roomService.Update(ctx, landlordID, room)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRoom handles DELETE /rooms/:id
func (h *RoomHandlers) DeleteRoom(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	id, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.roomService.Delete(ctx, landlordID, id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ListRooms handles GET /rooms
func (h *RoomHandlers) ListRooms(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	limit, offset := pagination(c)
	rooms, err := h.roomService.List(ctx, landlordID, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// AssignTenant handles POST /rooms/:id/assign
func (h *RoomHandlers) AssignTenant(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	roomID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Email, "email"); err != nil {
		return common.SendValidationError(c, "email", err.Error())
	}

	room, err := h.roomService.AssignTenant(ctx, landlordID, roomID, normalizeEmail(req.Email))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// TenantRoom handles GET /tenant/room
func (h *RoomHandlers) TenantRoom(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	room, err := h.roomService.TenantRoom(ctx, tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, room)
}

// LandlordContact handles GET /tenant/landlord
func (h *RoomHandlers) LandlordContact(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	contact, err := h.roomService.LandlordContact(ctx, tenantID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, contact)
}
