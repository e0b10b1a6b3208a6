package handlers

import (
	"fmt"
	"net/http"
	"path"
	"strconv"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type PaymentHandlers struct {
	paymentService services.PaymentService
	storage        services.StorageService
	bucket         string
}

func NewPaymentHandlers(paymentService services.PaymentService, storage services.StorageService, bucket string) *PaymentHandlers {
	return &PaymentHandlers{
		paymentService: paymentService,
		storage:        storage,
		bucket:         bucket,
	}
}

// CreatePayment handles POST /payments. Accepts either JSON or a multipart
// form carrying an optional screenshot file.
func (h *PaymentHandlers) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	tenantID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	var amount float64
	var paymentType string
	var screenshotKey *string

	if file, err := c.FormFile("screenshot"); err == nil {
		amount, _ = strconv.ParseFloat(c.FormValue("amount"), 64)
		paymentType = c.FormValue("payment_type")

		src, err := file.Open()
		if err != nil {
			return common.SendClientError(c, "Invalid screenshot upload")
		}
		defer src.Close()

		key := fmt.Sprintf("screenshots/%s/%s%s", tenantID, uuid.NewString(), path.Ext(file.Filename))
		contentType := file.Header.Get("Content-Type")
		if err := h.storage.Upload(ctx, h.bucket, key, contentType, src, file.Size); err != nil {
			return common.SendServerError(c, "Failed to store screenshot")
		}
		screenshotKey = &key
	} else {
		var req struct {
			Amount      float64 `json:"amount"`
			PaymentType string  `json:"payment_type"`
		}
		if err := c.Bind(&req); err != nil {
			return common.SendClientError(c, "Invalid request format")
		}
		amount = req.Amount
		paymentType = req.PaymentType
	}

	if err := common.ValidatePositiveFloat(amount, "amount", 10_000_000); err != nil {
		return common.SendValidationError(c, "amount", err.Error())
	}
	if err := common.ValidateRequiredString(paymentType, "payment_type"); err != nil {
		return common.SendValidationError(c, "payment_type", err.Error())
	}

	payment, err := h.paymentService.Create(ctx, tenantID, amount, paymentType, screenshotKey)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /payments for both roles; landlords see every
// payment under their ownership chain, tenants see their own.
func (h *PaymentHandlers) ListPayments(c echo.Context) error {
	ctx := c.Request().Context()
	userID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}
	role, _ := common.GetRoleFromContext(ctx)

	limit, offset := pagination(c)

	var payments []*models.Payment
	var err error
	if role == models.RoleLandlord {
		payments, err = h.paymentService.ListForLandlord(ctx, userID, limit, offset)
	} else {
		payments, err = h.paymentService.ListForTenant(ctx, userID, limit, offset)
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payments)
}

// UpdatePaymentStatus handles PATCH /payments/:id
func (h *PaymentHandlers) UpdatePaymentStatus(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	paymentID, err := common.ValidateUUID(c.Param("id"), "id")
	if err != nil {
		return common.SendValidationError(c, "id", err.Error())
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendClientError(c, "Invalid request format")
	}
	if req.Status != models.PaymentApproved && req.Status != models.PaymentRejected {
		return common.SendClientError(c, "Invalid status.")
	}

	payment, err := h.paymentService.Transition(ctx, landlordID, paymentID, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, payment)
}
