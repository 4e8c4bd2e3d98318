package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/session"
)

type SettingsHandler struct {
	Users api.UserDirectory
	Log   *zap.Logger
}

func NewSettingsHandler(users api.UserDirectory, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{Users: users, Log: log}
}

// Page shows the current user's profile. The account user directory
// lives on its own admin-only page.
func (h *SettingsHandler) Page(w http.ResponseWriter, r *http.Request) {
	s, ok := session.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	data := map[string]any{
		"User":    s.User,
		"IsAdmin": s.HasRole(models.RoleAdmin),
	}
	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderPage(w, r, h.Log, "settings.html", data)
}

// UserList shows the account's users from the backend.
func (h *SettingsHandler) UserList(w http.ResponseWriter, r *http.Request) {
	var users []models.User
	list, err := h.Users.ListUsers(r.Context())
	if err != nil {
		h.Log.Warn("user list unavailable", zap.Error(err))
	} else {
		users = list
	}

	data := map[string]any{"Users": users}
	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderPage(w, r, h.Log, "users.html", data)
}

// SetLanguage stores the UI language preference in a cookie and sends
// the user back where they came from.
func (h *SettingsHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("lang")
	if lang != "es" && lang != "en" {
		lang = "es"
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "lang",
		Value:    lang,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
	ref := r.Referer()
	if ref == "" {
		ref = "/settings"
	}
	http.Redirect(w, r, ref, http.StatusSeeOther)
}
