package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Crafting operation error messages
	ErrMsgEnumerateFailed = "Failed to enumerate outcomes"
	ErrMsgSimulateFailed  = "Failed to simulate action"
	ErrMsgBatchFailed     = "Failed to run batch simulation"
)

// Log messages
const (
	LogMsgEnumerateRequest = "Enumerate request"
	LogMsgSimulateRequest  = "Simulate request"
	LogMsgBatchRequest     = "Batch request"
	LogMsgActionApplied    = "Action applied"
	LogMsgReadinessFailed  = "Readiness check failed"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgCatalogFailed  = "mod catalog unavailable"
)
