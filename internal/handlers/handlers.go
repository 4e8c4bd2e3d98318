// Package handlers holds the page handlers. Every page follows the same
// pattern: fetch a collection from the backend, render it (or an error
// state with a retry link), and post form data back.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/i18n"
	"github.com/plusgraphics/backoffice/internal/view"
)

// errMessage turns a backend failure into the user-facing message: the
// server's mensaje when there is one, a generic connection error
// otherwise.
func errMessage(r *http.Request, err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return i18n.T(lang(r), "connection_error")
}

func lang(r *http.Request) string {
	if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
		return c.Value
	}
	return i18n.DetectLanguage(r.Header.Get("Accept-Language"))
}

// renderFetchError shows the error state with a retry link that
// re-issues the same fetch.
func renderFetchError(w http.ResponseWriter, r *http.Request, log *zap.Logger, page string, err error) {
	log.Error("fetch failed", zap.String("page", page), zap.Error(err))
	if !httpx.WantsHTML(r) {
		httpx.JSONError(w, http.StatusBadGateway, "backend_unavailable", nil)
		return
	}
	data := map[string]any{
		"Title":    page,
		"Message":  errMessage(r, err),
		"RetryURL": r.URL.RequestURI(),
	}
	if rerr := view.Render(w, r, "error.html", data); rerr != nil {
		http.Error(w, errMessage(r, err), http.StatusBadGateway)
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, log *zap.Logger, name string, data any) {
	if err := view.Render(w, r, name, data); err != nil {
		log.Error("render failed", zap.String("template", name), zap.Error(err))
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
