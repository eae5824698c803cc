package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloomafter40/platform/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeUseCaseError maps the usecase error taxonomy onto HTTP statuses.
// Domain rejections carry their message to the client; technical failures
// stay generic.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainStatus(domainErr.Code), domainErr.Message)
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal server error")
}

func domainStatus(code string) int {
	switch code {
	case "VALIDATION_ERROR":
		return http.StatusBadRequest
	case "INVALID_CREDENTIALS":
		return http.StatusUnauthorized
	case "PAYMENT_FAILED":
		return http.StatusPaymentRequired
	case "MODULE_NOT_AVAILABLE", "COMPONENT_NOT_FOUND":
		return http.StatusNotFound
	case "EMAIL_TAKEN":
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
