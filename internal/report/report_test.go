package report

import (
	"testing"

	"github.com/plusgraphics/backoffice/internal/models"
)

func TestTotalRevenue(t *testing.T) {
	sales := []models.Sale{
		{Total: 100.10},
		{Total: 200.20},
		{Total: 0.30},
	}
	if got := TotalRevenue(sales); got != 300.60 {
		t.Fatalf("TotalRevenue = %v, want 300.60", got)
	}
	if got := TotalRevenue(nil); got != 0 {
		t.Fatalf("TotalRevenue(nil) = %v, want 0", got)
	}
}

func TestPendingDeliveries(t *testing.T) {
	orders := []models.Order{
		{Status: models.OrderStatusPending},
		{Status: models.OrderStatusPaid},
		{Status: models.OrderStatusFinished},
		{Status: models.OrderStatusCompleted},
	}
	if got := PendingDeliveries(orders); got != 2 {
		t.Fatalf("PendingDeliveries = %d, want 2 (pendiente + pagado)", got)
	}
}

func TestSplitByCategory(t *testing.T) {
	products := []models.Product{
		{ID: 1, Type: models.ProductTypeGFX},
		{ID: 2, Type: models.ProductTypeVFX},
	}
	sales := []models.Sale{
		{ProductID: 1, Total: 75},
		{ProductID: 2, Total: 25},
		{ProductID: 99, Total: 1000}, // unknown product, ignored
	}

	split := SplitByCategory(sales, products)
	if split.GFX != 75 || split.VFX != 25 {
		t.Fatalf("split = %+v, want GFX 75 / VFX 25", split)
	}
	if split.GFXPercent != 75 || split.VFXPercent != 25 {
		t.Fatalf("percentages = %v/%v, want 75/25", split.GFXPercent, split.VFXPercent)
	}

	// No sales: percentages stay zero, no division by zero.
	empty := SplitByCategory(nil, products)
	if empty.GFXPercent != 0 || empty.VFXPercent != 0 {
		t.Fatalf("empty split percentages = %+v, want zeros", empty)
	}
}

func TestTopProductsRanking(t *testing.T) {
	products := []models.Product{
		{ID: 1, Type: models.ProductTypeGFX},
		{ID: 2, Type: models.ProductTypeVFX},
	}
	sales := []models.Sale{
		{ProductID: 1, ProductName: "Logo", Total: 50},
		{ProductID: 2, ProductName: "Intro", Total: 120},
		{ProductID: 1, ProductName: "Logo", Total: 30},
	}

	top := TopProducts(sales, products, 10)
	if len(top) != 2 {
		t.Fatalf("len = %d, want 2", len(top))
	}
	if top[0].Name != "Intro" || top[0].Revenue != 120 {
		t.Errorf("top[0] = %+v, want Intro with 120", top[0])
	}
	if top[1].Name != "Logo" || top[1].Revenue != 80 || top[1].Count != 2 {
		t.Errorf("top[1] = %+v, want Logo revenue 80 count 2", top[1])
	}
	if top[0].Type != models.ProductTypeVFX {
		t.Errorf("top[0].Type = %q, want vfx", top[0].Type)
	}

	// Limit truncates.
	if got := TopProducts(sales, products, 1); len(got) != 1 {
		t.Fatalf("limit 1 gave %d rows", len(got))
	}
}

func TestTopCustomersSkipsUnnamed(t *testing.T) {
	sales := []models.Sale{
		{CustomerName: "Acme", Total: 10},
		{CustomerName: "", Total: 999},
		{CustomerName: "Acme", Total: 5},
	}
	top := TopCustomers(sales, 5)
	if len(top) != 1 {
		t.Fatalf("len = %d, want 1", len(top))
	}
	if top[0].Revenue != 15 || top[0].Count != 2 {
		t.Fatalf("top[0] = %+v, want revenue 15 count 2", top[0])
	}
	if top[0].AveragePerOrder() != 7.5 {
		t.Errorf("AveragePerOrder = %v, want 7.5", top[0].AveragePerOrder())
	}
}

func TestAverageOrderValue(t *testing.T) {
	if got := AverageOrderValue(nil); got != 0 {
		t.Fatalf("AverageOrderValue(nil) = %v, want 0", got)
	}
	sales := []models.Sale{{Total: 10}, {Total: 25}}
	if got := AverageOrderValue(sales); got != 17.5 {
		t.Fatalf("AverageOrderValue = %v, want 17.5", got)
	}
}
