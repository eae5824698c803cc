package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bloomafter40/platform/internal/usecase"
)

type ConversionHandler struct {
	trackConversion *usecase.TrackConversionUseCase
}

func NewConversionHandler(trackConversion *usecase.TrackConversionUseCase) *ConversionHandler {
	return &ConversionHandler{trackConversion: trackConversion}
}

func (h *ConversionHandler) Track(w http.ResponseWriter, r *http.Request) {
	var input usecase.TrackConversionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.trackConversion.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]bool{"tracked": true})
}
