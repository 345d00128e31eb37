package httputil

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/engagement/internal/error_values"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Kind names the class of err for clients that branch on it, empty when unknown.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, errorvalues.ErrInsufficientFreezes):
		return "insufficient_freezes"
	case errors.Is(err, errorvalues.ErrNothingToBridge):
		return "nothing_to_bridge"
	case errors.Is(err, errorvalues.ErrFreezeAlreadyConsumed), errors.Is(err, errorvalues.ErrFreezeExpired):
		return "freeze_unavailable"
	case errors.Is(err, errorvalues.ErrUnknownStream):
		return "unknown_stream"
	case errors.Is(err, errorvalues.ErrNotFound):
		return "not_found"
	case errors.Is(err, errorvalues.ErrValidation):
		return "validation"
	case errors.Is(err, errorvalues.ErrStorage):
		return "storage"
	}
	return ""
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Kind:    Kind(details),
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
