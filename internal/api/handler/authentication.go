package handler

import (
	"errors"
	"net/http"

	"github.com/twmops/revenue-insight-api/internal/usecases/authenticating"
	"github.com/twmops/revenue-insight-api/pkg/apiErrors"
)

type TokenRequest struct {
	APIKey string `json:"api_key"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

// IssueToken exchanges a valid API key for a bearer token
func IssueToken(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req TokenRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "invalid request body", nil)
			return
		}

		if req.APIKey == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "api_key is required", nil)
			return
		}

		token, err := service.IssueToken(req.APIKey)
		if err != nil {
			handleTokenError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(TokenResponse{Token: token})
	}
}

func handleTokenError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, authenticating.ErrAuthDisabled):
		apiErrors.WriteError(w, apiErrors.ErrAuthNotConfigured, "authentication is not configured on this instance", nil)
	case errors.Is(err, authenticating.ErrInvalidAPIKey):
		apiErrors.WriteError(w, apiErrors.ErrInvalidCredentials, "invalid API key", nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "could not issue token", nil)
	}
}
