package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bloomafter40/platform/internal/usecase"
)

type PaymentHandler struct {
	createIntent *usecase.CreatePaymentIntentUseCase
}

func NewPaymentHandler(createIntent *usecase.CreatePaymentIntentUseCase) *PaymentHandler {
	return &PaymentHandler{createIntent: createIntent}
}

// CreateIntent backs the coaching checkout page: amount in, client secret out.
func (h *PaymentHandler) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePaymentIntentInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.createIntent.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, output)
}
