package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/cmlabs-hris/attendance-insights-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InsightsHandler interface {
	Analyze(w http.ResponseWriter, r *http.Request)
	GetEmployeeBehavior(w http.ResponseWriter, r *http.Request)
}

type insightsHandlerImpl struct {
	insightsService insights.InsightsService
}

func NewInsightsHandler(insightsService insights.InsightsService) InsightsHandler {
	return &insightsHandlerImpl{
		insightsService: insightsService,
	}
}

// Analyze implements InsightsHandler.
func (h *insightsHandlerImpl) Analyze(w http.ResponseWriter, r *http.Request) {
	var req insights.AnalyzeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode analyze request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate request
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	report, err := h.insightsService.AnalyzeBehavior(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GetEmployeeBehavior implements InsightsHandler.
func (h *insightsHandlerImpl) GetEmployeeBehavior(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	query := r.URL.Query()
	filter := insights.BehaviorFilter{
		StartDate: query.Get("start_date"),
		EndDate:   query.Get("end_date"),
		Enhance:   query.Get("enhance") == "true",
	}

	// Validate filter
	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	// Call service
	report, err := h.insightsService.AnalyzeEmployee(r.Context(), employeeID, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}
