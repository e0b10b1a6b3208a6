package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentdesk/internal/common"
	"rentdesk/internal/models"
	"rentdesk/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPaymentService struct {
	mock.Mock
}

func (m *mockPaymentService) Create(ctx context.Context, tenantID uuid.UUID, amount float64, paymentType string, screenshotKey *string) (*models.Payment, error) {
	args := m.Called(ctx, tenantID, amount, paymentType, screenshotKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *mockPaymentService) ListForTenant(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *mockPaymentService) ListForLandlord(ctx context.Context, landlordID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, landlordID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *mockPaymentService) Transition(ctx context.Context, landlordID, paymentID uuid.UUID, status string) (*models.Payment, error) {
	args := m.Called(ctx, landlordID, paymentID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Upload(ctx context.Context, bucketName, objectName, contentType string, reader io.Reader, objectSize int64) error {
	args := m.Called(ctx, bucketName, objectName, contentType, reader, objectSize)
	return args.Error(0)
}

func (m *mockStorage) GetPresignedURL(ctx context.Context, bucketName, objectName string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiry)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(ctx context.Context, bucketName, objectName string) error {
	args := m.Called(ctx, bucketName, objectName)
	return args.Error(0)
}

func (m *mockStorage) EnsureBucketExists(ctx context.Context, bucketName string) error {
	args := m.Called(ctx, bucketName)
	return args.Error(0)
}

func paymentRequest(t *testing.T, method, target, body string, userID uuid.UUID, role string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req = req.WithContext(common.WithIdentity(req.Context(), userID, role))
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUpdatePaymentStatus_InvalidStatusRejected(t *testing.T) {
	svc := &mockPaymentService{}
	h := NewPaymentHandlers(svc, &mockStorage{}, "media")
	landlordID := uuid.New()
	paymentID := uuid.New()

	c, rec := paymentRequest(t, http.MethodPatch, "/payments/"+paymentID.String(), `{"status":"pending"}`, landlordID, models.RoleLandlord)
	c.SetParamNames("id")
	c.SetParamValues(paymentID.String())

	err := h.UpdatePaymentStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp common.ErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid status.", resp.Error.Message)
	svc.AssertNotCalled(t, "Transition")
}

func TestUpdatePaymentStatus_Approve(t *testing.T) {
	svc := &mockPaymentService{}
	h := NewPaymentHandlers(svc, &mockStorage{}, "media")
	landlordID := uuid.New()
	paymentID := uuid.New()
	approved := &models.Payment{ID: paymentID, Status: models.PaymentApproved}

	svc.On("Transition", mock.Anything, landlordID, paymentID, models.PaymentApproved).Return(approved, nil)

	c, rec := paymentRequest(t, http.MethodPatch, "/payments/"+paymentID.String(), `{"status":"approved"}`, landlordID, models.RoleLandlord)
	c.SetParamNames("id")
	c.SetParamValues(paymentID.String())

	err := h.UpdatePaymentStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var got models.Payment
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, models.PaymentApproved, got.Status)
	svc.AssertExpectations(t)
}

func TestUpdatePaymentStatus_TerminalStateIs400(t *testing.T) {
	svc := &mockPaymentService{}
	h := NewPaymentHandlers(svc, &mockStorage{}, "media")
	landlordID := uuid.New()
	paymentID := uuid.New()

	svc.On("Transition", mock.Anything, landlordID, paymentID, models.PaymentRejected).Return(nil, services.ErrValidation)

	c, rec := paymentRequest(t, http.MethodPatch, "/payments/"+paymentID.String(), `{"status":"rejected"}`, landlordID, models.RoleLandlord)
	c.SetParamNames("id")
	c.SetParamValues(paymentID.String())

	err := h.UpdatePaymentStatus(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePayment_JSONBody(t *testing.T) {
	svc := &mockPaymentService{}
	h := NewPaymentHandlers(svc, &mockStorage{}, "media")
	tenantID := uuid.New()
	created := &models.Payment{ID: uuid.New(), TenantID: tenantID, Amount: 5500, Status: models.PaymentPending}

	svc.On("Create", mock.Anything, tenantID, 5500.0, "rent", (*string)(nil)).Return(created, nil)

	c, rec := paymentRequest(t, http.MethodPost, "/payments", `{"amount":5500,"payment_type":"rent"}`, tenantID, models.RoleTenant)

	err := h.CreatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreatePayment_NoRoomAssigned(t *testing.T) {
	svc := &mockPaymentService{}
	h := NewPaymentHandlers(svc, &mockStorage{}, "media")
	tenantID := uuid.New()

	svc.On("Create", mock.Anything, tenantID, 5500.0, "rent", (*string)(nil)).Return(nil, services.ErrNoRoomAssigned)

	c, rec := paymentRequest(t, http.MethodPost, "/payments", `{"amount":5500,"payment_type":"rent"}`, tenantID, models.RoleTenant)

	err := h.CreatePayment(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail":"No room assigned."}`, rec.Body.String())
}
