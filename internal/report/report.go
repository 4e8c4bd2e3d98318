// Package report computes the derived numbers shown on the dashboard
// stats cards and the reports page: revenue sums, pending-delivery
// counts, category splits, and top-N rankings.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/plusgraphics/backoffice/internal/models"
)

// TotalRevenue sums sale totals.
func TotalRevenue(sales []models.Sale) float64 {
	sum := decimal.Zero
	for _, s := range sales {
		sum = sum.Add(decimal.NewFromFloat(s.Total))
	}
	f, _ := sum.Float64()
	return f
}

// PendingDeliveries counts orders whose status is not terminal.
func PendingDeliveries(orders []models.Order) int {
	n := 0
	for _, o := range orders {
		if o.Status != models.OrderStatusFinished && o.Status != models.OrderStatusCompleted {
			n++
		}
	}
	return n
}

// CategorySplit is the gfx/vfx revenue breakdown with percentages of
// the combined total.
type CategorySplit struct {
	GFX        float64
	VFX        float64
	GFXPercent float64
	VFXPercent float64
}

// SplitByCategory attributes each sale's total to its product's type.
// Sales whose product is unknown are ignored.
func SplitByCategory(sales []models.Sale, products []models.Product) CategorySplit {
	types := make(map[int]string, len(products))
	for _, p := range products {
		types[p.ID] = p.Type
	}
	gfx, vfx := decimal.Zero, decimal.Zero
	for _, s := range sales {
		switch types[s.ProductID] {
		case models.ProductTypeGFX:
			gfx = gfx.Add(decimal.NewFromFloat(s.Total))
		case models.ProductTypeVFX:
			vfx = vfx.Add(decimal.NewFromFloat(s.Total))
		}
	}
	split := CategorySplit{}
	split.GFX, _ = gfx.Float64()
	split.VFX, _ = vfx.Float64()
	total := gfx.Add(vfx)
	if !total.IsZero() {
		hundred := decimal.NewFromInt(100)
		split.GFXPercent, _ = gfx.Mul(hundred).Div(total).Round(1).Float64()
		split.VFXPercent, _ = vfx.Mul(hundred).Div(total).Round(1).Float64()
	}
	return split
}

// Ranked is one row of a top-N ranking.
type Ranked struct {
	Name    string
	Type    string
	Count   int
	Revenue float64
}

// AveragePerOrder is revenue divided by order count.
func (r Ranked) AveragePerOrder() float64 {
	if r.Count == 0 {
		return 0
	}
	f, _ := decimal.NewFromFloat(r.Revenue).Div(decimal.NewFromInt(int64(r.Count))).Round(2).Float64()
	return f
}

// TopProducts ranks products by sales revenue, descending. Ties keep
// their first-seen order (stable).
func TopProducts(sales []models.Sale, products []models.Product, n int) []Ranked {
	types := make(map[int]string, len(products))
	for _, p := range products {
		types[p.ID] = p.Type
	}
	return rank(sales, n, func(s models.Sale) (string, string) {
		return s.ProductName, types[s.ProductID]
	})
}

// TopCustomers ranks customers by sales revenue, descending.
func TopCustomers(sales []models.Sale, n int) []Ranked {
	return rank(sales, n, func(s models.Sale) (string, string) {
		return s.CustomerName, ""
	})
}

func rank(sales []models.Sale, n int, key func(models.Sale) (name, typ string)) []Ranked {
	idx := map[string]int{}
	var rows []Ranked
	for _, s := range sales {
		name, typ := key(s)
		if name == "" {
			continue
		}
		i, ok := idx[name]
		if !ok {
			i = len(rows)
			idx[name] = i
			rows = append(rows, Ranked{Name: name, Type: typ})
		}
		rows[i].Count++
		rev, _ := decimal.NewFromFloat(rows[i].Revenue).Add(decimal.NewFromFloat(s.Total)).Float64()
		rows[i].Revenue = rev
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].Revenue > rows[b].Revenue })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

// AverageOrderValue is total revenue over the number of sales.
func AverageOrderValue(sales []models.Sale) float64 {
	if len(sales) == 0 {
		return 0
	}
	f, _ := decimal.NewFromFloat(TotalRevenue(sales)).Div(decimal.NewFromInt(int64(len(sales)))).Round(2).Float64()
	return f
}
