package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plusgraphics/backoffice/internal/models"
)

// ─── Orders ──────────────────────────────────────────────────────────────────

func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/pedidos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateOrder(ctx context.Context, o models.NewOrder) error {
	return c.do(ctx, http.MethodPost, "/pedidos", o, nil)
}

func (c *Client) UpdateOrder(ctx context.Context, id int, o models.NewOrder) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d", id), o, nil)
}

// UpdateOrderStatus hits the /estado sub-resource.
func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status string) error {
	in := map[string]string{"estado": status}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d/estado", id), in, nil)
}

// UpdateOrderPayment hits the /pago sub-resource.
func (c *Client) UpdateOrderPayment(ctx context.Context, id int, paid bool) error {
	in := map[string]bool{"pago_realizado": paid}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/pedidos/%d/pago", id), in, nil)
}

func (c *Client) DeleteOrder(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/pedidos/%d", id), nil, nil)
}

// ─── Sales ───────────────────────────────────────────────────────────────────

func (c *Client) ListSales(ctx context.Context) ([]models.Sale, error) {
	var out []models.Sale
	if err := c.do(ctx, http.MethodGet, "/ventas", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateSale(ctx context.Context, s models.NewSale) error {
	return c.do(ctx, http.MethodPost, "/ventas", s, nil)
}

func (c *Client) DeleteSale(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/ventas/%d", id), nil, nil)
}
