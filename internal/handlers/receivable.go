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

type ReceivableHandler struct {
	Repo      api.ReceivableRepository
	Customers api.CustomerRepository
	Log       *zap.Logger
}

func NewReceivableHandler(repo api.ReceivableRepository, customers api.CustomerRepository, log *zap.Logger) *ReceivableHandler {
	return &ReceivableHandler{Repo: repo, Customers: customers, Log: log}
}

// List fetches the receivables and their stats cards together.
func (h *ReceivableHandler) List(w http.ResponseWriter, r *http.Request) {
	receivables, err := h.Repo.ListReceivables(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "receivables", err)
		return
	}
	stats, err := h.Repo.ReceivableStats(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "receivables", err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := filter.Receivables(receivables, q)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": filtered, "stats": stats})
		return
	}

	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		customers = nil
	}
	renderPage(w, r, h.Log, "receivables.html", map[string]any{
		"Receivables": filtered,
		"Stats":       stats,
		"Customers":   customers,
		"Query":       q,
		"Total":       len(receivables),
	})
}

func (h *ReceivableHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	amount, _ := strconv.ParseFloat(r.FormValue("monto"), 64)
	customerID, _ := strconv.Atoi(r.FormValue("cliente_id"))

	v := validation.Violations{}
	validation.Required("numero_factura", r.FormValue("numero_factura"), v)
	validation.PositiveInt("cliente_id", customerID, v)
	validation.PositiveFloat("monto", amount, v)
	validation.Required("fecha_vencimiento", r.FormValue("fecha_vencimiento"), v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}

	var orderID *int
	if id, err := strconv.Atoi(r.FormValue("pedido_id")); err == nil && id > 0 {
		orderID = &id
	}

	rec := models.NewReceivable{
		InvoiceCode: r.FormValue("numero_factura"),
		CustomerID:  customerID,
		OrderID:     orderID,
		Amount:      amount,
		DueDate:     r.FormValue("fecha_vencimiento"),
		Notes:       r.FormValue("notas"),
	}
	if err := h.Repo.CreateReceivable(r.Context(), rec); err != nil {
		renderFetchError(w, r, h.Log, "receivables", err)
		return
	}
	http.Redirect(w, r, "/receivables", http.StatusSeeOther)
}

func (h *ReceivableHandler) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Repo.MarkReceivablePaid(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "receivables", err)
		return
	}
	http.Redirect(w, r, "/receivables", http.StatusSeeOther)
}
