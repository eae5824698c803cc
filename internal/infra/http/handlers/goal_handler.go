package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
)

type GoalHandler struct {
	goals entity.GoalRepositoryInterface
}

func NewGoalHandler(goals entity.GoalRepositoryInterface) *GoalHandler {
	return &GoalHandler{goals: goals}
}

type goalRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category,omitempty"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	Completed   bool       `json:"completed"`
}

func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid goal data")
		return
	}

	goal := entity.NewGoal(middleware.UserID(r.Context()), req.Title, req.Description, req.Category, req.TargetDate)

	if err := h.goals.Create(r.Context(), goal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save goal")
		return
	}

	writeJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) List(w http.ResponseWriter, r *http.Request) {
	goals, err := h.goals.FindByUserID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch goals")
		return
	}

	writeJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) Update(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goals.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || goal.UserID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		writeError(w, http.StatusBadRequest, "Invalid goal data")
		return
	}

	goal.Title = req.Title
	goal.Description = req.Description
	goal.Category = req.Category
	goal.TargetDate = req.TargetDate

	if req.Completed && !goal.Completed {
		now := time.Now()
		goal.CompletedAt = &now
	} else if !req.Completed {
		goal.CompletedAt = nil
	}
	goal.Completed = req.Completed

	if err := h.goals.Update(r.Context(), goal); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update goal")
		return
	}

	writeJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	goal, err := h.goals.FindByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil || goal.UserID != middleware.UserID(r.Context()) {
		writeError(w, http.StatusNotFound, "Goal not found")
		return
	}

	if err := h.goals.Delete(r.Context(), goal.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
