package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
	"github.com/bloomafter40/platform/internal/registry"
	"github.com/bloomafter40/platform/internal/usecase"
)

type ComponentHandler struct {
	registry         *registry.Registry
	progress         entity.ProgressRepositoryInterface
	completeExercise *usecase.CompleteExerciseUseCase
}

func NewComponentHandler(
	reg *registry.Registry,
	progress entity.ProgressRepositoryInterface,
	completeExercise *usecase.CompleteExerciseUseCase,
) *ComponentHandler {
	return &ComponentHandler{
		registry:         reg,
		progress:         progress,
		completeExercise: completeExercise,
	}
}

// ListModule returns a module's component descriptors, or the coming-soon
// fallback for a module outside the published program.
func (h *ComponentHandler) ListModule(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")

	descriptors, ok := h.registry.ListModule(moduleID)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "coming_soon",
			"message": "This module is coming soon",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"module_id":  moduleID,
		"components": descriptors,
	})
}

// GetComponent resolves one exercise. The two miss cases are distinct: an
// unknown module is "coming soon", an unknown component inside a known
// module is "not found". A previously saved response rides along so the
// client can resume.
func (h *ComponentHandler) GetComponent(w http.ResponseWriter, r *http.Request) {
	moduleID := chi.URLParam(r, "moduleID")
	componentID := chi.URLParam(r, "componentID")

	exercise, outcome := h.registry.Resolve(moduleID, componentID)
	switch outcome {
	case registry.ModuleComingSoon:
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "coming_soon",
			"message": "This module is coming soon",
		})
		return
	case registry.ComponentNotFound:
		writeJSON(w, http.StatusNotFound, map[string]string{
			"status":  "not_found",
			"message": "Component not found",
		})
		return
	}

	response := map[string]any{"exercise": exercise}

	saved, err := h.progress.FindResponse(r.Context(), middleware.UserID(r.Context()), moduleID, componentID)
	if err == nil {
		response["saved_response"] = saved
	} else if !errors.Is(err, entity.ErrProgressNotFound) {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	writeJSON(w, http.StatusOK, response)
}

type completeRequest struct {
	ResponseData json.RawMessage `json:"response_data,omitempty"`
}

func (h *ComponentHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req completeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.completeExercise.Execute(r.Context(), usecase.CompleteExerciseInput{
		UserID:       middleware.UserID(r.Context()),
		ModuleID:     chi.URLParam(r, "moduleID"),
		ComponentID:  chi.URLParam(r, "componentID"),
		ResponseData: req.ResponseData,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}

// ListProgress returns everything the user has completed across the program.
func (h *ComponentHandler) ListProgress(w http.ResponseWriter, r *http.Request) {
	records, err := h.progress.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch progress")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"progress": records})
}
