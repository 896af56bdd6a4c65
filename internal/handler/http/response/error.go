package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/insights"
	"github.com/cmlabs-hris/attendance-insights-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, insights.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, insights.ErrNoAttendanceData):
		NotFound(w, "No attendance data found for the requested period")
	case errors.Is(err, insights.ErrEnhancementDisabled):
		BadRequest(w, "AI enhancement is not enabled", nil)
	case errors.Is(err, insights.ErrEnhancerUnavailable):
		ServiceUnavailable(w, "Insight enhancement is temporarily unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
