package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/filter"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/report"
	"github.com/plusgraphics/backoffice/internal/session"
)

type DashboardHandler struct {
	Stats  *report.Service
	Orders api.OrderRepository
	Log    *zap.Logger
}

func NewDashboardHandler(stats *report.Service, orders api.OrderRepository, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{Stats: stats, Orders: orders, Log: log}
}

// Page renders the landing dashboard: the stats cards on top and the
// full orders table underneath, with the filter panel collapsed until
// the apply flag is present.
func (h *DashboardHandler) Page(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Stats.Overview(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "dashboard", err)
		return
	}
	orders, err := h.Orders.ListOrders(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "dashboard", err)
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

	data := map[string]any{
		"Overview":  overview,
		"Orders":    filter.Orders(orders, f),
		"Total":     len(orders),
		"Filter":    f,
		"Clients":   filter.UniqueClients(orders),
		"Statuses":  filter.UniqueStatuses(orders),
		"Assignees": filter.UniqueAssignees(orders),
		"Items":     filter.UniqueItems(orders),
	}
	if s, ok := session.FromContext(r.Context()); ok {
		data["User"] = s.User
	}

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderPage(w, r, h.Log, "dashboard.html", data)
}
