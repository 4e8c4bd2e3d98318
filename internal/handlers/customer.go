package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/filter"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/validation"
)

type CustomerHandler struct {
	Repo api.CustomerRepository
	Log  *zap.Logger
}

func NewCustomerHandler(repo api.CustomerRepository, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{Repo: repo, Log: log}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.Repo.ListCustomers(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "customers", err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := filter.Customers(customers, q)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, filtered)
		return
	}
	renderPage(w, r, h.Log, "customers.html", map[string]any{
		"Customers": filtered,
		"Query":     q,
		"Total":     len(customers),
	})
}

func (h *CustomerHandler) New(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.Log, "customer_form.html", map[string]any{
		"Customer": models.Customer{},
	})
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	c, v, ok := h.parseCustomer(w, r)
	if !ok {
		return
	}
	if !v.Empty() {
		if !httpx.WantsHTML(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		renderPage(w, r, h.Log, "customer_form.html", map[string]any{
			"Customer":   c,
			"Violations": v,
		})
		return
	}
	if err := h.Repo.CreateCustomer(r.Context(), c); err != nil {
		h.submitError(w, r, c, false, err)
		return
	}
	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusCreated, map[string]string{"mensaje": "Cliente creado"})
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *CustomerHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	c, err := h.Repo.GetCustomer(r.Context(), id)
	if err != nil {
		renderFetchError(w, r, h.Log, "customers", err)
		return
	}
	renderPage(w, r, h.Log, "customer_form.html", map[string]any{
		"Customer": *c,
		"Editing":  true,
	})
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	c, v, parsed := h.parseCustomer(w, r)
	if !parsed {
		return
	}
	c.ID = id
	if !v.Empty() {
		renderPage(w, r, h.Log, "customer_form.html", map[string]any{
			"Customer":   c,
			"Editing":    true,
			"Violations": v,
		})
		return
	}
	if err := h.Repo.UpdateCustomer(r.Context(), id, c); err != nil {
		h.submitError(w, r, c, true, err)
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Repo.DeleteCustomer(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "customers", err)
		return
	}
	http.Redirect(w, r, "/customers", http.StatusSeeOther)
}

func (h *CustomerHandler) parseCustomer(w http.ResponseWriter, r *http.Request) (models.Customer, validation.Violations, bool) {
	var c models.Customer
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return c, nil, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return c, nil, false
		}
		c = models.Customer{
			Name:    strings.TrimSpace(r.FormValue("nombre")),
			Email:   strings.TrimSpace(r.FormValue("email")),
			Phone:   strings.TrimSpace(r.FormValue("telefono")),
			Address: r.FormValue("direccion"),
			Notes:   r.FormValue("notas"),
		}
	}
	v := validation.Violations{}
	validation.Required("nombre", c.Name, v)
	validation.Email("email", c.Email, v)
	return c, v, true
}

func (h *CustomerHandler) submitError(w http.ResponseWriter, r *http.Request, c models.Customer, editing bool, err error) {
	h.Log.Error("customer submit failed", zap.Error(err))
	if !httpx.WantsHTML(r) {
		httpx.JSONError(w, http.StatusBadGateway, "backend_unavailable", nil)
		return
	}
	renderPage(w, r, h.Log, "customer_form.html", map[string]any{
		"Customer": c,
		"Editing":  editing,
		"Error":    errMessage(r, err),
	})
}
