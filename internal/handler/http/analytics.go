package http

import (
	"net/http"

	"github.com/cmlabs-hris/analytics-backend-go/internal/domain/analytics"
	"github.com/cmlabs-hris/analytics-backend-go/internal/handler/http/response"
)

type AnalyticsHandler interface {
	// GetSummary returns the full attendance metrics object for a period
	GetSummary(w http.ResponseWriter, r *http.Request)
	// GetTrend returns only the trend series for a period
	GetTrend(w http.ResponseWriter, r *http.Request)
	// GetDepartmentStats returns only the per-role breakdown for a period
	GetDepartmentStats(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetSummary handles GET /analytics/attendance
func (h *analyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period") // today|month|year, default: today

	result, err := h.analyticsService.GetSummary(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrend handles GET /analytics/attendance/trend
func (h *analyticsHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period") // today|month|year, default: today

	result, err := h.analyticsService.GetTrend(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentStats handles GET /analytics/attendance/departments
func (h *analyticsHandlerImpl) GetDepartmentStats(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period") // today|month|year, default: today

	result, err := h.analyticsService.GetDepartmentStats(r.Context(), period)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
