package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/report"
)

const topN = 6

var reportPeriods = []string{"week", "month", "quarter", "year"}

type ReportsHandler struct {
	Source api.ReportSource
	Log    *zap.Logger
}

func NewReportsHandler(src api.ReportSource, log *zap.Logger) *ReportsHandler {
	return &ReportsHandler{Source: src, Log: log}
}

// Page renders the reports view. The headline numbers come from the
// report endpoints when the backend serves them; the rankings and
// category split are computed locally from the raw ventas, the same way
// the stats cards do.
func (h *ReportsHandler) Page(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("periodo")
	if !validPeriod(period) {
		period = "month"
	}

	sales, err := h.Source.ListSales(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "reports", err)
		return
	}
	products, err := h.Source.ListProducts(r.Context())
	if err != nil {
		renderFetchError(w, r, h.Log, "reports", err)
		return
	}

	// The backend summary is optional: when the endpoint fails the
	// page falls back to locally derived numbers.
	summary, err := h.Source.ReportDashboard(r.Context(), period)
	if err != nil {
		h.Log.Warn("report dashboard endpoint unavailable, deriving locally", zap.Error(err))
		summary = &api.DashboardReport{
			TotalSales:    report.TotalRevenue(sales),
			TotalOrders:   len(sales),
			AvgOrderValue: report.AverageOrderValue(sales),
		}
	}

	trend, err := h.Source.ReportTrend(r.Context())
	if err != nil {
		h.Log.Warn("trend endpoint unavailable", zap.Error(err))
		trend = []models.MonthlyRevenue{}
	}

	data := map[string]any{
		"Period":       period,
		"Periods":      reportPeriods,
		"Summary":      summary,
		"Split":        report.SplitByCategory(sales, products),
		"TopProducts":  report.TopProducts(sales, products, topN),
		"TopCustomers": report.TopCustomers(sales, topN),
		"Trend":        trend,
	}

	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderPage(w, r, h.Log, "reports.html", data)
}

// Export streams the backend's report file through unchanged.
func (h *ReportsHandler) Export(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("periodo")
	if !validPeriod(period) {
		period = "month"
	}
	body, contentType, err := h.Source.ExportReport(r.Context(), period)
	if err != nil {
		renderFetchError(w, r, h.Log, "reports", err)
		return
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="reporte-`+period+`"`)
	_, _ = w.Write(body)
}

func validPeriod(p string) bool {
	for _, allowed := range reportPeriods {
		if p == allowed {
			return true
		}
	}
	return false
}
