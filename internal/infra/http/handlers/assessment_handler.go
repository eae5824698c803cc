package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type AssessmentHandler struct {
	assessments entity.AssessmentRepositoryInterface
}

func NewAssessmentHandler(assessments entity.AssessmentRepositoryInterface) *AssessmentHandler {
	return &AssessmentHandler{assessments: assessments}
}

type assessmentRequest struct {
	AssessmentType string          `json:"assessment_type"`
	Score          int             `json:"score"`
	Answers        json.RawMessage `json:"answers,omitempty"`
}

func (h *AssessmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req assessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.AssessmentType == "" {
		writeError(w, http.StatusBadRequest, "Invalid assessment data")
		return
	}

	assessment := entity.NewHealthAssessment(middleware.UserID(r.Context()), req.AssessmentType, req.Score, req.Answers)

	if err := h.assessments.Create(r.Context(), assessment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save assessment")
		return
	}

	writeJSON(w, http.StatusCreated, assessment)
}

func (h *AssessmentHandler) List(w http.ResponseWriter, r *http.Request) {
	assessments, err := h.assessments.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch assessments")
		return
	}

	writeJSON(w, http.StatusOK, assessments)
}
