package handlers

import (
	"net/http"

	"rentdesk/internal/analytics"
	"rentdesk/internal/common"

	"github.com/labstack/echo/v4"
)

type AnalyticsHandlers struct {
	analyticsService analytics.Service
}

func NewAnalyticsHandlers(analyticsService analytics.Service) *AnalyticsHandlers {
	return &AnalyticsHandlers{analyticsService: analyticsService}
}

// MonthlyIncome handles GET /analytics/income
func (h *AnalyticsHandlers) MonthlyIncome(c echo.Context) error {
	ctx := c.Request().Context()
	landlordID, ok := common.GetUserIDFromContext(ctx)
	if !ok {
		return common.SendUnauthorizedError(c)
	}

	summary, err := h.analyticsService.MonthlyIncome(ctx, landlordID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
