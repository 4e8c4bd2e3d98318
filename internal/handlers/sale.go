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
	"github.com/plusgraphics/backoffice/internal/report"
	"github.com/plusgraphics/backoffice/internal/validation"
)

type SaleHandler struct {
	Sales     api.SaleRepository
	Products  api.ProductRepository
	Customers api.CustomerRepository
	Log       *zap.Logger
}

func NewSaleHandler(sales api.SaleRepository, products api.ProductRepository, customers api.CustomerRepository, log *zap.Logger) *SaleHandler {
	return &SaleHandler{Sales: sales, Products: products, Customers: customers, Log: log}
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Sales.ListSales(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "sales", err)
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	filtered := filter.Sales(sales, q)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, filtered)
		return
	}
	renderPage(w, r, h.Log, "sales.html", map[string]any{
		"Sales":   filtered,
		"Query":   q,
		"Total":   len(sales),
		"Revenue": report.TotalRevenue(filtered),
	})
}

func (h *SaleHandler) New(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "sales", err)
		return
	}
	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "sales", err)
		return
	}
	renderPage(w, r, h.Log, "sale_form.html", map[string]any{
		"Products":  products,
		"Customers": customers,
	})
}

// Create registers one sale; the backend computes the total from the
// product price.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	productID, _ := strconv.Atoi(r.FormValue("producto_id"))
	quantity, _ := strconv.Atoi(r.FormValue("cantidad"))

	v := validation.Violations{}
	validation.PositiveInt("producto_id", productID, v)
	validation.PositiveInt("cantidad", quantity, v)
	if !v.Empty() {
		if !httpx.WantsHTML(r) {
			httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
			return
		}
		h.renderFormError(w, r, "Producto y cantidad son obligatorios")
		return
	}

	var customerID *int
	if id, err := strconv.Atoi(r.FormValue("cliente_id")); err == nil && id > 0 {
		customerID = &id
	}

	s := models.NewSale{CustomerID: customerID, ProductID: productID, Quantity: quantity}
	if err := h.Sales.CreateSale(r.Context(), s); err != nil {
		h.renderFormError(w, r, errMessage(r, err))
		return
	}
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Sales.DeleteSale(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "sales", err)
		return
	}
	http.Redirect(w, r, "/sales", http.StatusSeeOther)
}

func (h *SaleHandler) renderFormError(w http.ResponseWriter, r *http.Request, msg string) {
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		products = nil
	}
	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		customers = nil
	}
	renderPage(w, r, h.Log, "sale_form.html", map[string]any{
		"Products":  products,
		"Customers": customers,
		"Error":     msg,
	})
}
