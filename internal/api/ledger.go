package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plusgraphics/backoffice/internal/models"
)

// ─── Receivables (cuentas por cobrar) ────────────────────────────────────────

func (c *Client) ListReceivables(ctx context.Context) ([]models.Receivable, error) {
	var out []models.Receivable
	if err := c.do(ctx, http.MethodGet, "/cuentas-por-cobrar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ReceivableStats(ctx context.Context) (*models.ReceivableStats, error) {
	var out models.ReceivableStats
	if err := c.do(ctx, http.MethodGet, "/cuentas-por-cobrar/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReceivable(ctx context.Context, r models.NewReceivable) error {
	return c.do(ctx, http.MethodPost, "/cuentas-por-cobrar", r, nil)
}

func (c *Client) MarkReceivablePaid(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/cuentas-por-cobrar/%d/marcar-pagado", id), nil, nil)
}

// ─── Payables (cuentas por pagar) ────────────────────────────────────────────

func (c *Client) ListPayables(ctx context.Context) ([]models.Payable, error) {
	var out []models.Payable
	if err := c.do(ctx, http.MethodGet, "/cuentas-por-pagar", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllPayables includes already-paid invoices via the /all sub-resource.
func (c *Client) ListAllPayables(ctx context.Context) ([]models.Payable, error) {
	var out []models.Payable
	if err := c.do(ctx, http.MethodGet, "/cuentas-por-pagar/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) PayableStats(ctx context.Context) (*models.PayableStats, error) {
	var out models.PayableStats
	if err := c.do(ctx, http.MethodGet, "/cuentas-por-pagar/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreatePayable(ctx context.Context, p models.NewPayable) error {
	return c.do(ctx, http.MethodPost, "/cuentas-por-pagar", p, nil)
}

func (c *Client) MarkPayablePaid(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/cuentas-por-pagar/%d/marcar-pagado", id), nil, nil)
}
