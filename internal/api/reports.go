package api

import (
	"context"
	"io"
	"net/http"

	"github.com/plusgraphics/backoffice/internal/models"
)

// DashboardReport is reportes/dashboard: headline numbers plus
// month-over-month growth percentages computed server-side.
type DashboardReport struct {
	TotalSales    float64 `json:"ventas_totales"`
	TotalOrders   int     `json:"total_pedidos"`
	AvgOrderValue float64 `json:"valor_promedio"`
	NewCustomers  int     `json:"clientes_nuevos"`
	SalesGrowth   float64 `json:"crecimiento_ventas"`
	OrdersGrowth  float64 `json:"crecimiento_pedidos"`
	AvgGrowth     float64 `json:"crecimiento_promedio"`
	ClientGrowth  float64 `json:"crecimiento_clientes"`
}

// RevenueByType is reportes/ingresos-tipo.
type RevenueByType struct {
	GFX float64 `json:"gfx"`
	VFX float64 `json:"vfx"`
}

// TopProduct is one row of reportes/productos-top.
type TopProduct struct {
	Name    string  `json:"nombre"`
	Type    string  `json:"tipo"`
	Orders  int     `json:"pedidos"`
	Revenue float64 `json:"ingresos"`
}

// TopCustomer is one row of reportes/clientes-top.
type TopCustomer struct {
	Name      string  `json:"nombre"`
	Orders    int     `json:"pedidos"`
	Revenue   float64 `json:"ingresos"`
	LastOrder string  `json:"ultimo_pedido,omitempty"`
}

// DashboardStats is dashboard/stats, the lightweight card payload.
type DashboardStats struct {
	TotalRevenue      float64 `json:"ganancias_totales"`
	PendingDeliveries int     `json:"entregas_pendientes"`
	AvailableProducts int     `json:"servicios_disponibles"`
}

func (c *Client) ReportDashboard(ctx context.Context, period string) (*DashboardReport, error) {
	var out DashboardReport
	if err := c.do(ctx, http.MethodGet, "/reportes/dashboard?periodo="+period, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReportRevenueByType(ctx context.Context, period string) (*RevenueByType, error) {
	var out RevenueByType
	if err := c.do(ctx, http.MethodGet, "/reportes/ingresos-tipo?periodo="+period, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ReportTrend(ctx context.Context) ([]models.MonthlyRevenue, error) {
	var out []models.MonthlyRevenue
	if err := c.do(ctx, http.MethodGet, "/reportes/tendencia", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReportTopProducts(ctx context.Context, limit int) ([]TopProduct, error) {
	var out []TopProduct
	if err := c.do(ctx, http.MethodGet, "/reportes/productos-top", nil, &out); err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *Client) ReportTopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	var out []TopCustomer
	if err := c.do(ctx, http.MethodGet, "/reportes/clientes-top", nil, &out); err != nil {
		return nil, err
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ExportReport streams reportes/exportar as-is; the backend owns the
// file format.
func (c *Client) ExportReport(ctx context.Context, period string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/reportes/exportar?periodo="+period, nil)
	if err != nil {
		return nil, "", err
	}
	if tok := c.token(ctx); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", decodeError(resp)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}

func (c *Client) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var out DashboardStats
	if err := c.do(ctx, http.MethodGet, "/dashboard/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
