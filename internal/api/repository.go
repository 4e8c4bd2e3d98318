package api

import (
	"context"

	"github.com/plusgraphics/backoffice/internal/models"
)

// Repository interfaces let page handlers depend on an abstraction
// instead of raw HTTP calls. *Client satisfies all of them.

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, id int, p models.Product) error
	DeleteProduct(ctx context.Context, id int) error
}

type CustomerRepository interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	GetCustomer(ctx context.Context, id int) (*models.Customer, error)
	CreateCustomer(ctx context.Context, c models.Customer) error
	UpdateCustomer(ctx context.Context, id int, c models.Customer) error
	DeleteCustomer(ctx context.Context, id int) error
}

type OrderRepository interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	CreateOrder(ctx context.Context, o models.NewOrder) error
	UpdateOrder(ctx context.Context, id int, o models.NewOrder) error
	UpdateOrderStatus(ctx context.Context, id int, status string) error
	UpdateOrderPayment(ctx context.Context, id int, paid bool) error
	DeleteOrder(ctx context.Context, id int) error
}

type SaleRepository interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	CreateSale(ctx context.Context, s models.NewSale) error
	DeleteSale(ctx context.Context, id int) error
}

type ReceivableRepository interface {
	ListReceivables(ctx context.Context) ([]models.Receivable, error)
	ReceivableStats(ctx context.Context) (*models.ReceivableStats, error)
	CreateReceivable(ctx context.Context, r models.NewReceivable) error
	MarkReceivablePaid(ctx context.Context, id int) error
}

type PayableRepository interface {
	ListPayables(ctx context.Context) ([]models.Payable, error)
	ListAllPayables(ctx context.Context) ([]models.Payable, error)
	PayableStats(ctx context.Context) (*models.PayableStats, error)
	CreatePayable(ctx context.Context, p models.NewPayable) error
	MarkPayablePaid(ctx context.Context, id int) error
}

// ReportSource covers the read-only aggregation endpoints plus the raw
// collections the stats cards combine locally.
type ReportSource interface {
	ListSales(ctx context.Context) ([]models.Sale, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	ReportDashboard(ctx context.Context, period string) (*DashboardReport, error)
	ReportRevenueByType(ctx context.Context, period string) (*RevenueByType, error)
	ReportTrend(ctx context.Context) ([]models.MonthlyRevenue, error)
	ReportTopProducts(ctx context.Context, limit int) ([]TopProduct, error)
	ReportTopCustomers(ctx context.Context, limit int) ([]TopCustomer, error)
	ExportReport(ctx context.Context, period string) ([]byte, string, error)
}

// UserDirectory lists the account's users for the settings page.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// Authenticator is the slice of the client the session layer needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifyToken(ctx context.Context) (bool, error)
}

var (
	_ ProductRepository    = (*Client)(nil)
	_ CustomerRepository   = (*Client)(nil)
	_ OrderRepository      = (*Client)(nil)
	_ SaleRepository       = (*Client)(nil)
	_ ReceivableRepository = (*Client)(nil)
	_ PayableRepository    = (*Client)(nil)
	_ ReportSource         = (*Client)(nil)
	_ UserDirectory        = (*Client)(nil)
	_ Authenticator        = (*Client)(nil)
)
