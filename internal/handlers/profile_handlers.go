package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type ProfileHandlers struct {
	profileService services.ProfileService
}

func NewProfileHandlers(profileService services.ProfileService) *ProfileHandlers {
	return &ProfileHandlers{profileService: profileService}
}

// GetProfile handles GET /profile
func (h *ProfileHandlers) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	profile, err := h.profileService.Get(ctx, landlordID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// UploadProof handles POST /profile/proof (multipart form, field "proof").
func (h *ProfileHandlers) UploadProof(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	file, err := c.FormFile("proof")
	if err != nil {
		return common.SendValidationError(c, "proof", "proof file is required")
	}

	src, err := file.Open()
	if err != nil {
		return common.SendClientError(c, "Invalid file upload")
	}
	defer src.Close()

	profile, err := h.profileService.UploadProof(ctx, landlordID, file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, profile)
}

// ProofURL handles GET /profile/proof
func (h *ProfileHandlers) ProofURL(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	url, err := h.profileService.ProofURL(ctx, landlordID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
