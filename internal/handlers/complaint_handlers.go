package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type ComplaintHandlers struct {
	complaintService services.ComplaintService
}

func NewComplaintHandlers(complaintService services.ComplaintService) *ComplaintHandlers {
	return &ComplaintHandlers{complaintService: complaintService}
}

// FileComplaint handles POST /complaints
func (h *ComplaintHandlers) FileComplaint(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if err := common.ValidateRequiredString(req.Title, "title"); err != nil {
		return common.SendValidationError(c, "title", err.Error())
	}
	if err := common.ValidateRequiredString(req.Description, "description"); err != nil {
		return common.SendValidationError(c, "description", err.Error())
	}

	complaint, err := h.complaintService.File(ctx, tenantID, req.Title, req.Description)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, complaint)
}

// ListComplaints handles GET /complaints for both roles.
func (h *ComplaintHandlers) ListComplaints(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetRoleFromContext(ctx)

	limit, offset := pagination(c)

	var complaints []*models.Complaint
	var err error
	if role == models.RoleLandlord {
		complaints, err = h.complaintService.ListForLandlord(ctx, userID, limit, offset)
	} else {
		complaints, err = h.complaintService.ListForTenant(ctx, userID, limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, complaints)
}

// UpdateComplaintStatus handles PATCH /complaints/:id
func (h *ComplaintHandlers) UpdateComplaintStatus(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	complaintID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}

	complaint, err := h.complaintService.UpdateStatus(ctx, landlordID, complaintID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, complaint)
}
