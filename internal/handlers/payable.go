package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/filter"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/validation"
)

type PayableHandler struct {
	Repo api.PayableRepository
	Log  *zap.Logger
}

func NewPayableHandler(repo api.PayableRepository, log *zap.Logger) *PayableHandler {
	return &PayableHandler{Repo: repo, Log: log}
}

// List shows outstanding payables by default; ?all=1 includes settled
// invoices via the /all sub-resource.
func (h *PayableHandler) List(w http.ResponseWriter, r *http.Request) {
	showAll := r.URL.Query().Get("all") != ""

	var (
		payables []models.Payable
		err      error
	)
	if showAll {
		payables, err = h.Repo.ListAllPayables(r.Context())
	} else {
		payables, err = h.Repo.ListPayables(r.Context())
	}
	if err != nil {
		renderFetchError(w, r, h.Log, "payables", err)
		return
	}
	stats, err := h.Repo.PayableStats(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "payables", err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := filter.Payables(payables, q)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": filtered, "stats": stats})
		return
	}
	renderPage(w, r, h.Log, "payables.html", map[string]any{
		"Payables": filtered,
		"Stats":    stats,
		"ShowAll":  showAll,
		"Query":    q,
		"Total":    len(payables),
	})
}

func (h *PayableHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	amount, _ := strconv.ParseFloat(r.FormValue("monto"), 64)

	v := validation.Violations{}
	validation.Required("proveedor", r.FormValue("proveedor"), v)
	validation.PositiveFloat("monto", amount, v)
	validation.Required("fecha_vencimiento", r.FormValue("fecha_vencimiento"), v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	p := models.NewPayable{
		Supplier:    r.FormValue("proveedor"),
		Amount:      amount,
		DueDate:     r.FormValue("fecha_vencimiento"),
		Description: r.FormValue("descripcion"),
	}
	if err := h.Repo.CreatePayable(r.Context(), p); err != nil {
		renderFetchError(w, r, h.Log, "payables", err)
		return
	}
	http.Redirect(w, r, "/payables", http.StatusSeeOther)
}

func (h *PayableHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Repo.MarkPayablePaid(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "payables", err)
		return
	}
	http.Redirect(w, r, "/payables", http.StatusSeeOther)
}
