package handlers

import (
	"net/http"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/labstack/echo/v4"
)

type DocumentHandlers struct {
	documentService services.DocumentService
}

func NewDocumentHandlers(documentService services.DocumentService) *DocumentHandlers {
	return &DocumentHandlers{documentService: documentService}
}

// UploadDocument handles POST /documents (multipart form, field "file").
func (h *DocumentHandlers) UploadDocument(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return common.SendValidationError(c, "file", "file is required")
	}

	src, err := file.Open()
	if err != nil {
		return common.SendClientError(c, "Invalid file upload")
	}
	defer src.Close()

	document, err := h.documentService.Upload(ctx, tenantID, file.Filename, file.Header.Get("Content-Type"), src, file.Size)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, document)
}

// ListDocuments handles GET /documents for both roles.
func (h *DocumentHandlers) ListDocuments(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetRoleFromContext(ctx)

	limit, offset := pagination(c)

	var documents []*models.Document
	var err error
	if role == models.RoleLandlord {
		documents, err = h.documentService.ListForLandlord(ctx, userID, limit, offset)
	} else {
		documents, err = h.documentService.ListForTenant(ctx, userID, limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, documents)
}

// DownloadDocument handles GET /documents/:id/url and returns a short-lived
// presigned URL rather than streaming the object.
func (h *DocumentHandlers) DownloadDocument(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetRoleFromContext(ctx)

	documentID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var url string
	if role == models.RoleLandlord {
		url, err = h.documentService.DownloadURLForLandlord(ctx, userID, documentID)
	} else {
		url, err = h.documentService.DownloadURLForTenant(ctx, userID, documentID)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
