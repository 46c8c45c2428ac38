package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients
const (
	// Authentication errors (AUTH_*)
	ErrInvalidCredentials = "AUTH_001" // API key rejected
	ErrInvalidToken       = "AUTH_002" // Token invalid or malformed
	ErrExpiredToken       = "AUTH_003" // Token expired
	ErrAuthNotConfigured  = "AUTH_004" // Token endpoint hit while auth is disabled

	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required parameter absent
	ErrInvalidRangeFormat  = "VAL_003" // Year or month range token rejected

	// Server errors (SRV_*)
	ErrInternalServer    = "SRV_001" // Internal server error
	ErrDatabaseOperation = "SRV_002" // Database operation failed
	ErrExternalService   = "SRV_003" // Upstream disclosure portal or exchange error
	ErrFeatureDisabled   = "SRV_004" // Endpoint requires a disabled subsystem
)

// Error code to HTTP status mapping
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:  http.StatusUnauthorized,
	ErrInvalidToken:        http.StatusUnauthorized,
	ErrExpiredToken:        http.StatusUnauthorized,
	ErrAuthNotConfigured:   http.StatusServiceUnavailable,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidRangeFormat:  http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrFeatureDisabled:     http.StatusServiceUnavailable,
}

// APIError is the standardized error payload
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error in an API error with the given code
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
