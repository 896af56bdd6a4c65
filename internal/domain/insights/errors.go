package insights

import "errors"

// Behavior analysis domain errors
var (
	ErrEmployeeNotFound    = errors.New("employee not found")
	ErrNoAttendanceData    = errors.New("no attendance data found for the requested period")
	ErrEnhancementDisabled = errors.New("ai enhancement is not enabled")
	ErrEnhancerUnavailable = errors.New("insight model is temporarily unavailable")
)
