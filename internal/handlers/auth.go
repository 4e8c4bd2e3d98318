package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/i18n"
	"github.com/plusgraphics/backoffice/internal/session"
	"github.com/plusgraphics/backoffice/internal/validation"
)

// AuthHandler serves login, logout and registration pages.
type AuthHandler struct {
	Sessions *session.Manager
	Log      *zap.Logger
}

func NewAuthHandler(sessions *session.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{Sessions: sessions, Log: log}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderPage(w, r, h.Log, "login.html", map[string]any{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	v := validation.Violations{}
	validation.Required("email", email, v)
	validation.Required("password", password, v)
	if !v.Empty() {
		renderPage(w, r, h.Log, "login.html", map[string]any{
			"Email":      email,
			"Violations": v,
		})
		return
	}

	user, err := h.Sessions.Login(r.Context(), w, email, password)
	if err != nil {
		msg := errMessage(r, err)
		if errors.Is(err, session.ErrInvalidCredentials) {
			msg = i18n.T(lang(r), "auth_error")
		}
		h.Log.Info("login rejected", zap.String("email", email))
		renderPage(w, r, h.Log, "login.html", map[string]any{
			"Email": email,
			"Error": msg,
		})
		return
	}

	h.Log.Info("login", zap.Int("user_id", user.ID), zap.String("role", user.Role))
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Sessions.Logout(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Register validates the sign-up form. Account creation itself lives on
// the backend; mismatched or short passwords never leave this process.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		renderPage(w, r, h.Log, "register.html", map[string]any{})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")
	confirm := r.FormValue("confirm_password")

	v := validation.Violations{}
	validation.Required("name", name, v)
	validation.Required("email", email, v)
	validation.Email("email", email, v)
	validation.Required("password", password, v)
	validation.PasswordsMatch("confirm_password", password, confirm, v)
	if len(password) > 0 && len(password) < 6 {
		v["password"] = "out_of_range"
	}
	if !v.Empty() {
		renderPage(w, r, h.Log, "register.html", map[string]any{
			"Name":       name,
			"Email":      email,
			"Violations": v,
		})
		return
	}

	// Registration endpoint is not exposed by the backend yet; send the
	// validated visitor through onboarding.
	http.Redirect(w, r, "/onboarding", http.StatusSeeOther)
}
