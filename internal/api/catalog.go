package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/plusgraphics/backoffice/internal/models"
)

// ─── Products ────────────────────────────────────────────────────────────────

func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/productos", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/productos/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, p models.Product) error {
	return c.do(ctx, http.MethodPost, "/productos", p, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id int, p models.Product) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/productos/%d", id), p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/productos/%d", id), nil, nil)
}

// ─── Customers ───────────────────────────────────────────────────────────────

func (c *Client) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	if err := c.do(ctx, http.MethodGet, "/clientes", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetCustomer(ctx context.Context, id int) (*models.Customer, error) {
	var out models.Customer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/clientes/%d", id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateCustomer(ctx context.Context, cu models.Customer) error {
	return c.do(ctx, http.MethodPost, "/clientes", cu, nil)
}

func (c *Client) UpdateCustomer(ctx context.Context, id int, cu models.Customer) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/clientes/%d", id), cu, nil)
}

func (c *Client) DeleteCustomer(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/clientes/%d", id), nil, nil)
}
