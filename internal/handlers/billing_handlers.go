package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type BillingHandlers struct {
	billingService services.BillingService
}

func NewBillingHandlers(billingService services.BillingService) *BillingHandlers {
	return &BillingHandlers{billingService: billingService}
}

// CreateBill handles POST /bills
func (h *BillingHandlers) CreateBill(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		RoomID string  `json:"room_id"`
		Amount float64 `json:"amount"`
		Month  string  `json:"month"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	roomID, err := common.ValidateUUID(req.RoomID, "room_id")
	if err != nil {
		return common.SendValidationError(c, "room_id", err.Error())
	}
	month, err := common.ValidateMonth(req.Month, "month")
	if err != nil {
		return common.SendValidationError(c, "month", err.Error())
	}

	bill, err := h.billingService.CreateBill(ctx, landlordID, roomID, req.Amount, month)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, bill)
}

// ListBills handles GET /bills for both roles.
func (h *BillingHandlers) ListBills(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetRoleFromContext(ctx)

	limit, offset := pagination(c)

	var bills []*models.ElectricityBill
	var err error
	if role == models.RoleLandlord {
		bills, err = h.billingService.ListForLandlord(ctx, userID, limit, offset)
	} else {
		bills, err = h.billingService.ListForTenant(ctx, userID, limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, bills)
}

// MarkBillPaid handles POST /bills/:id/paid
func (h *BillingHandlers) MarkBillPaid(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	billID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	if err := h.billingService.MarkPaid(ctx, landlordID, billID); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
