// Package models defines the records exchanged with the remote backend.
// JSON tags follow the backend's wire names; the front-end adds no
// invariants beyond optional-field defaults.
package models

// Product categories.
const (
	ProductTypeGFX = "gfx"
	ProductTypeVFX = "vfx"
)

// Order statuses. Anything other than the terminal two counts as a
// pending delivery.
const (
	OrderStatusPending   = "pendiente"
	OrderStatusPaid      = "pagado"
	OrderStatusFinished  = "terminado"
	OrderStatusCompleted = "completado"
)

// User roles.
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// User is the session user record returned by auth/login.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Product is a catalog product or service.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"nombre"`
	Type        string  `json:"tipo"`
	Price       float64 `json:"precio"`
	Description string  `json:"descripcion,omitempty"`
}

// Customer is a client record.
type Customer struct {
	ID      int    `json:"id"`
	Name    string `json:"nombre"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"telefono,omitempty"`
	Address string `json:"direccion,omitempty"`
	Notes   string `json:"notas,omitempty"`
}

// OrderItem is one product line inside an order, as the backend joins
// it onto GET /pedidos.
type OrderItem struct {
	ProductID int     `json:"producto_id,omitempty"`
	Name      string  `json:"nombre"`
	Quantity  int     `json:"cantidad"`
	Price     float64 `json:"precio"`
	Type      string  `json:"tipo"`
}

// Order is a customer order with its joined product lines.
type Order struct {
	ID           int         `json:"id"`
	CustomerID   int         `json:"cliente_id,omitempty"`
	CustomerName string      `json:"cliente_nombre,omitempty"`
	Date         string      `json:"fecha"`
	Assignee     string      `json:"encargado_principal,omitempty"`
	Paid         bool        `json:"pago_realizado"`
	Notes        string      `json:"notas,omitempty"`
	Status       string      `json:"estado"`
	Items        []OrderItem `json:"productos"`
}

// NewOrderItem is the create/update payload for an order line.
type NewOrderItem struct {
	ProductID int `json:"producto_id"`
	Quantity  int `json:"cantidad"`
}

// NewOrder is the create/update payload for POST/PUT /pedidos.
type NewOrder struct {
	CustomerID *int           `json:"cliente_id"`
	Date       string         `json:"fecha,omitempty"`
	Assignee   string         `json:"encargado_principal"`
	Paid       bool           `json:"pago_realizado"`
	Notes      string         `json:"notas"`
	Status     string         `json:"estado"`
	Items      []NewOrderItem `json:"productos"`
}

// Sale is one registered sale; one sale covers one product line.
type Sale struct {
	ID           int     `json:"id"`
	CustomerID   int     `json:"cliente_id,omitempty"`
	CustomerName string  `json:"cliente_nombre,omitempty"`
	ProductID    int     `json:"producto_id"`
	ProductName  string  `json:"producto_nombre,omitempty"`
	Quantity     int     `json:"cantidad"`
	Total        float64 `json:"total"`
	Date         string  `json:"fecha"`
}

// NewSale is the POST /ventas payload; the backend computes the total.
type NewSale struct {
	CustomerID *int `json:"cliente_id"`
	ProductID  int  `json:"producto_id"`
	Quantity   int  `json:"cantidad"`
}

// Receivable is an invoice owed to the business (cuenta por cobrar).
// Status and overdue days are derived server-side.
type Receivable struct {
	ID           int     `json:"id"`
	InvoiceCode  string  `json:"numero_factura"`
	CustomerID   int     `json:"cliente_id"`
	CustomerName string  `json:"cliente_nombre,omitempty"`
	OrderID      *int    `json:"pedido_id,omitempty"`
	Amount       float64 `json:"monto"`
	PaidAmount   float64 `json:"monto_pagado"`
	Balance      float64 `json:"saldo"`
	DueDate      string  `json:"fecha_vencimiento"`
	Status       string  `json:"estado"`
	DaysOverdue  int     `json:"dias_vencido"`
	Notes        string  `json:"notas,omitempty"`
}

// NewReceivable is the POST /cuentas-por-cobrar payload.
type NewReceivable struct {
	InvoiceCode string  `json:"numero_factura"`
	CustomerID  int     `json:"cliente_id"`
	OrderID     *int    `json:"pedido_id"`
	Amount      float64 `json:"monto"`
	DueDate     string  `json:"fecha_vencimiento"`
	Notes       string  `json:"notas"`
}

// ReceivableStats is GET /cuentas-por-cobrar/stats.
type ReceivableStats struct {
	TotalOutstanding float64 `json:"total_por_cobrar"`
	PendingInvoices  int     `json:"facturas_pendientes"`
	OverdueInvoices  int     `json:"facturas_vencidas"`
	TotalInvoices    int     `json:"total_facturas"`
}

// Payable is an invoice the business owes (cuenta por pagar).
type Payable struct {
	ID          int     `json:"id"`
	InvoiceCode string  `json:"codigo_factura"`
	Supplier    string  `json:"proveedor"`
	Amount      float64 `json:"monto"`
	PaidAmount  float64 `json:"monto_pagado"`
	Balance     float64 `json:"saldo"`
	DueDate     string  `json:"fecha_vencimiento"`
	Status      string  `json:"estado"`
	Description string  `json:"descripcion,omitempty"`
	DaysOverdue int     `json:"dias_vencido"`
	PaymentDate string  `json:"fecha_pago,omitempty"`
}

// NewPayable is the POST /cuentas-por-pagar payload.
type NewPayable struct {
	Supplier    string  `json:"proveedor"`
	Amount      float64 `json:"monto"`
	DueDate     string  `json:"fecha_vencimiento"`
	Description string  `json:"descripcion"`
}

// PayableStats is GET /cuentas-por-pagar/stats.
type PayableStats struct {
	TotalOutstanding float64 `json:"total_por_pagar"`
	PendingInvoices  int     `json:"facturas_pendientes"`
	OverdueInvoices  int     `json:"facturas_vencidas"`
	DueSoon          int     `json:"proximas_vencer"`
}

// MonthlyRevenue is one row of the reportes/tendencia payload. The
// growth percentages come straight from the backend.
type MonthlyRevenue struct {
	Month  string  `json:"mes"`
	GFX    float64 `json:"gfx"`
	VFX    float64 `json:"vfx"`
	Total  float64 `json:"total"`
	Growth float64 `json:"crecimiento,omitempty"`
}

// PlanLimits describes the quota of a subscription plan. A limit of -1
// means unlimited.
type PlanLimits struct {
	Products       int     `json:"products"`
	Users          int     `json:"users"`
	OrdersPerMonth int     `json:"orders_per_month"`
	StorageGB      float64 `json:"storage_gb"`
}

// PlanUsage is the current consumption against PlanLimits.
type PlanUsage struct {
	Products       int     `json:"products"`
	Users          int     `json:"users"`
	OrdersPerMonth int     `json:"orders_per_month"`
	StorageGB      float64 `json:"storage_gb"`
}
