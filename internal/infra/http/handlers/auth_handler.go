package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bloomafter40/platform/internal/entity"
	"github.com/bloomafter40/platform/internal/infra/http/middleware"
	"github.com/bloomafter40/platform/internal/usecase"
)

type AuthHandler struct {
	auth  *usecase.AuthUseCase
	users entity.UserRepositoryInterface
}

func NewAuthHandler(auth *usecase.AuthUseCase, users entity.UserRepositoryInterface) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.auth.Register(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	setSessionCookie(w, output.Session)
	writeJSON(w, http.StatusCreated, output.User)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input usecase.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.auth.Login(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	setSessionCookie(w, output.Session)
	writeJSON(w, http.StatusOK, output.User)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to log out")
			return
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"logged_out": true})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.users.FindByID(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func setSessionCookie(w http.ResponseWriter, session *entity.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		MaxAge:   int(time.Until(session.ExpiresAt).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
