package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/cart"
	"github.com/plusgraphics/backoffice/internal/filter"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
)

type OrderHandler struct {
	Orders    api.OrderRepository
	Products  api.ProductRepository
	Customers api.CustomerRepository
	Log       *zap.Logger
}

func NewOrderHandler(orders api.OrderRepository, products api.ProductRepository, customers api.CustomerRepository, log *zap.Logger) *OrderHandler {
	return &OrderHandler{Orders: orders, Products: products, Customers: customers, Log: log}
}

// List renders the orders table. The filter panel only applies when the
// form was submitted ("apply" present), matching the page's explicit
// apply action.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}

	q := r.URL.Query()
	f := filter.OrderFilter{}
	if q.Get("apply") != "" {
		f = filter.OrderFilter{
			Client:   q.Get("client"),
			Status:   q.Get("status"),
			Type:     q.Get("type"),
			Assignee: q.Get("assignee"),
			Item:     q.Get("item"),
			DateFrom: q.Get("date_from"),
			DateTo:   q.Get("date_to"),
		}
	}
	filtered := filter.Orders(orders, f)

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, filtered)
		return
	}
	renderPage(w, r, h.Log, "orders.html", map[string]any{
		"Orders":    filtered,
		"Total":     len(orders),
		"Filter":    f,
		"Clients":   filter.UniqueClients(orders),
		"Statuses":  filter.UniqueStatuses(orders),
		"Assignees": filter.UniqueAssignees(orders),
		"Items":     filter.UniqueItems(orders),
	})
}

// New renders the order form with the product and customer selects.
func (h *OrderHandler) New(w http.ResponseWriter, r *http.Request) {
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	renderPage(w, r, h.Log, "order_form.html", map[string]any{
		"Products":  products,
		"Customers": customers,
	})
}

// Create builds the cart out of the posted line items (merging
// duplicate products into quantities) and submits the order. Customer
// and at least one product are mandatory.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	clientName := strings.TrimSpace(r.FormValue("cliente"))
	products, err := h.Products.ListProducts(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}

	c := buildCart(products, r.Form["producto_id"], r.Form["cantidad"])
	if clientName == "" || c.Empty() {
		h.renderFormError(w, r, products, "Cliente y al menos un producto son obligatorios")
		return
	}

	// Resolve the customer by name; unknown names pass through as nil
	// and the backend keeps the order unlinked.
	var customerID *int
	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	for _, cu := range customers {
		if strings.EqualFold(cu.Name, clientName) {
			id := cu.ID
			customerID = &id
			break
		}
	}

	paid := r.FormValue("pago_realizado") == "on" || r.FormValue("pago_realizado") == "true"
	status := models.OrderStatusPending
	if paid {
		status = models.OrderStatusPaid
	}

	order := models.NewOrder{
		CustomerID: customerID,
		Date:       r.FormValue("fecha"),
		Assignee:   r.FormValue("encargado_principal"),
		Paid:       paid,
		Notes:      r.FormValue("notas"),
		Status:     status,
		Items:      c.Items(),
	}
	if err := h.Orders.CreateOrder(r.Context(), order); err != nil {
		h.renderFormError(w, r, products, errMessage(r, err))
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// UpdateStatus hits the /estado sub-resource and re-fetches the list.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	status := r.FormValue("estado")
	if status == "" {
		http.Error(w, "estado required", http.StatusBadRequest)
		return
	}
	if err := h.Orders.UpdateOrderStatus(r.Context(), id, status); err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// UpdatePayment toggles pago_realizado.
func (h *OrderHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	paid, _ := strconv.ParseBool(r.FormValue("pago_realizado"))
	if err := h.Orders.UpdateOrderPayment(r.Context(), id, paid); err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.Orders.DeleteOrder(r.Context(), id); err != nil {
		renderFetchError(w, r, h.Log, "orders", err)
		return
	}
	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// buildCart merges the posted (producto_id, cantidad) pairs through the
// cart so duplicate products become quantities, not extra rows.
func buildCart(products []models.Product, ids, quantities []string) *cart.Cart {
	byID := make(map[int]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	c := &cart.Cart{}
	for i, raw := range ids {
		id, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		p, ok := byID[id]
		if !ok {
			continue
		}
		qty := 1
		if i < len(quantities) {
			if n, err := strconv.Atoi(quantities[i]); err == nil && n > 0 {
				qty = n
			}
		}
		c.Add(p)
		if qty > 1 {
			c.UpdateQuantity(p.ID, qty-1)
		}
	}
	return c
}

func (h *OrderHandler) renderFormError(w http.ResponseWriter, r *http.Request, products []models.Product, msg string) {
	customers, err := h.Customers.ListCustomers(r.Context())
	if err != nil {
		customers = nil
	}
	renderPage(w, r, h.Log, "order_form.html", map[string]any{
		"Products":  products,
		"Customers": customers,
		"Error":     msg,
	})
}
