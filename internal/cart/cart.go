// Package cart builds an order's line items before submission: quantity
// merging, per-line assigned payments, and the quoted/assigned/margin
// totals shown in the order form summary.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/plusgraphics/backoffice/internal/models"
)

// Assigned payments default to 60% of the unit price, rounded to the
// nearest whole unit, matching how the business splits work with the
// assignees.
var defaultPaymentShare = decimal.NewFromFloat(0.6)

// Line is one product row in the cart.
type Line struct {
	ProductID       int
	Name            string
	Type            string
	Price           float64
	Quantity        int
	AssignedPayment float64
}

// LineTotal is price x quantity for the row.
func (l Line) LineTotal() float64 {
	t, _ := decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))).Float64()
	return t
}

// Cart is an ordered list of lines keyed by product ID. The zero value
// is ready to use.
type Cart struct {
	lines []Line
}

// Lines returns the rows in insertion order.
func (c *Cart) Lines() []Line { return c.lines }

// Empty reports whether the cart has no rows.
func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Add puts a product in the cart. Adding a product that is already
// present increments its quantity instead of duplicating the row.
func (c *Cart) Add(p models.Product) {
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	pay, _ := decimal.NewFromFloat(p.Price).Mul(defaultPaymentShare).Round(0).Float64()
	c.lines = append(c.lines, Line{
		ProductID:       p.ID,
		Name:            p.Name,
		Type:            p.Type,
		Price:           p.Price,
		Quantity:        1,
		AssignedPayment: pay,
	})
}

// UpdateQuantity changes a row's quantity by delta. A row whose
// quantity would drop to zero or below is removed.
func (c *Cart) UpdateQuantity(productID, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity += delta
			if c.lines[i].Quantity <= 0 {
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
			return
		}
	}
}

// SetAssignedPayment overrides the per-unit assigned payment of a row.
func (c *Cart) SetAssignedPayment(productID int, payment float64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].AssignedPayment = payment
			return
		}
	}
}

// Remove deletes a row regardless of quantity.
func (c *Cart) Remove(productID int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// TotalQuoted is the sum of price x quantity over all rows.
func (c *Cart) TotalQuoted() float64 {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(decimal.NewFromFloat(l.Price).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := sum.Float64()
	return f
}

// TotalAssigned is the sum of assigned payment x quantity.
func (c *Cart) TotalAssigned() float64 {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(decimal.NewFromFloat(l.AssignedPayment).Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	f, _ := sum.Float64()
	return f
}

// EstimatedMargin is quoted minus assigned.
func (c *Cart) EstimatedMargin() float64 {
	m, _ := decimal.NewFromFloat(c.TotalQuoted()).Sub(decimal.NewFromFloat(c.TotalAssigned())).Float64()
	return m
}

// Items converts the cart to the order create payload.
func (c *Cart) Items() []models.NewOrderItem {
	items := make([]models.NewOrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, models.NewOrderItem{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	return items
}
