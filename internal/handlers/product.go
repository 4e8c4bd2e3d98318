package handlers

import (
	"encoding/json"
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

type ProductHandler struct {
	Repo api.ProductRepository
	Log  *zap.Logger
}

func NewProductHandler(repo api.ProductRepository, log *zap.Logger) *ProductHandler {
	return &ProductHandler{Repo: repo, Log: log}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.Repo.ListProducts(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "products", err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := filter.Products(products, q)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, filtered)
		return
	}
	renderPage(w, r, h.Log, "products.html", map[string]any{
		"Products": filtered,
		"Query":    q,
		"Total":    len(products),
	})
}

func (h *ProductHandler) New(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.Log, "product_form.html", map[string]any{
		"Product": models.Product{Type: models.ProductTypeGFX},
	})
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	p, v, ok := h.parseProduct(w, r)
	if !ok {
		return
	}
	if !v.Empty() {
		if !httpx.WantsHTML(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		renderPage(w, r, h.Log, "product_form.html", map[string]any{
			"Product":    p,
			"Violations": v,
		})
		return
	}

	if err := h.Repo.CreateProduct(r.Context(), p); err != nil {
		h.submitError(w, r, "product_form.html", p, err)
		return
	}
	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusCreated, map[string]string{"mensaje": "Producto creado"})
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, err := h.Repo.GetProduct(r.Context(), id)
	if err != nil {
		renderFetchError(w, r, h.Log, "products", err)
		return
	}
	renderPage(w, r, h.Log, "product_form.html", map[string]any{
		"Product": *p,
		"Editing": true,
	})
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p, v, parsed := h.parseProduct(w, r)
	if !parsed {
		return
	}
	p.ID = id
	if !v.Empty() {
		renderPage(w, r, h.Log, "product_form.html", map[string]any{
			"Product":    p,
			"Editing":    true,
			"Violations": v,
		})
		return
	}
	if err := h.Repo.UpdateProduct(r.Context(), id, p); err != nil {
		h.submitError(w, r, "product_form.html", p, err)
		return
	}
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Repo.DeleteProduct(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "products", err)
		return
	}
	// Re-fetch via redirect; no optimistic update.
	http.Redirect(w, r, "/products", http.StatusSeeOther)
}

// parseProduct reads either a JSON or form body and validates it. The
// bool result is false when the body was unreadable and a response has
// already been written.
func (h *ProductHandler) parseProduct(w http.ResponseWriter, r *http.Request) (models.Product, validation.Violations, bool) {
	var p models.Product
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
			return p, nil, false
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form", http.StatusBadRequest)
			return p, nil, false
		}
		price, _ := strconv.ParseFloat(r.FormValue("precio"), 64)
		p = models.Product{
			Name:        strings.TrimSpace(r.FormValue("nombre")),
			Type:        r.FormValue("tipo"),
			Price:       price,
			Description: r.FormValue("descripcion"),
		}
	}

	v := validation.Violations{}
	validation.Required("nombre", p.Name, v)
	validation.OneOf("tipo", p.Type, []string{models.ProductTypeGFX, models.ProductTypeVFX}, v)
	validation.PositiveFloat("precio", p.Price, v)
	return p, v, true
}

func (h *ProductHandler) submitError(w http.ResponseWriter, r *http.Request, page string, p models.Product, err error) {
	h.Log.Error("product submit failed", zap.Error(err))
	if !httpx.WantsHTML(r) {
		httpx.JSONError(w, http.StatusBadGateway, "backend_unavailable", nil)
		return
	}
	renderPage(w, r, h.Log, page, map[string]any{
		"Product": p,
		"Error":   errMessage(r, err),
	})
}
