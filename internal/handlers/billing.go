package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/httpx"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/report"
)

// Plan is one subscription tier on the billing and pricing pages.
type Plan struct {
	ID       string
	Name     string
	Price    float64
	Limits   models.PlanLimits
	Features []string
	Current  bool
}

// PlanCatalog is the static tier list. Prices and limits live here
// until the backend grows a billing API; -1 means unlimited.
var PlanCatalog = []Plan{
	{
		ID:    "basico",
		Name:  "Básico",
		Price: 29,
		Limits: models.PlanLimits{
			Products:       100,
			Users:          2,
			OrdersPerMonth: 500,
			StorageGB:      2,
		},
		Features: []string{"catalogo", "pedidos", "reportes_basicos"},
	},
	{
		ID:    "profesional",
		Name:  "Profesional",
		Price: 79,
		Limits: models.PlanLimits{
			Products:       1000,
			Users:          5,
			OrdersPerMonth: 5000,
			StorageGB:      10,
		},
		Features: []string{"catalogo", "pedidos", "reportes_completos", "cuentas", "exportar"},
		Current:  true,
	},
	{
		ID:    "empresarial",
		Name:  "Empresarial",
		Price: 199,
		Limits: models.PlanLimits{
			Products:       report.Unlimited,
			Users:          report.Unlimited,
			OrdersPerMonth: report.Unlimited,
			StorageGB:      100,
		},
		Features: []string{"todo_profesional", "usuarios_ilimitados", "soporte_prioritario"},
	},
}

// demoUsage stands in for real metering until the backend reports it.
var demoUsage = models.PlanUsage{
	Products:       245,
	Users:          3,
	OrdersPerMonth: 1250,
	StorageGB:      2.3,
}

type BillingHandler struct {
	Log *zap.Logger
}

func NewBillingHandler(log *zap.Logger) *BillingHandler {
	return &BillingHandler{Log: log}
}

// Page shows the current plan, usage against its limits, and the
// upgrade options.
func (h *BillingHandler) Page(w http.ResponseWriter, r *http.Request) {
	current := currentPlan()
	rows := report.UsageRows(demoUsage, current.Limits)

	data := map[string]any{
		"Plans":       PlanCatalog,
		"Current":     current,
		"Usage":       rows,
		"HasWarnings": report.HasWarnings(rows),
	}
	if !httpx.WantsHTML(r) {
		httpx.JSON(w, http.StatusOK, data)
		return
	}
	renderPage(w, r, h.Log, "billing.html", data)
}

// Pricing is the public marketing page with the same catalog.
func (h *BillingHandler) Pricing(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.Log, "pricing.html", map[string]any{
		"Plans": PlanCatalog,
	})
}

func currentPlan() Plan {
	for _, p := range PlanCatalog {
		if p.Current {
			return p
		}
	}
	return PlanCatalog[0]
}
