package cart

import (
	"testing"

	"github.com/plusgraphics/backoffice/internal/models"
)

var (
	logoA  = models.Product{ID: 1, Name: "Logo Animado", Type: models.ProductTypeGFX, Price: 10}
	introB = models.Product{ID: 2, Name: "Intro 3D", Type: models.ProductTypeVFX, Price: 5}
)

func TestAddAccumulatesTotal(t *testing.T) {
	c := &Cart{}
	c.Add(logoA)
	c.Add(logoA)
	c.Add(introB)

	if got := c.TotalQuoted(); got != 25 {
		t.Fatalf("TotalQuoted = %v, want 25", got)
	}
	if len(c.Lines()) != 2 {
		t.Fatalf("lines = %d, want 2 (duplicate merged)", len(c.Lines()))
	}
	if c.Lines()[0].Quantity != 2 {
		t.Errorf("first line quantity = %d, want 2", c.Lines()[0].Quantity)
	}

	c.Remove(introB.ID)
	if got := c.TotalQuoted(); got != 20 {
		t.Fatalf("TotalQuoted after remove = %v, want 20", got)
	}
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	c := &Cart{}
	c.Add(logoA)
	c.UpdateQuantity(logoA.ID, -1)
	if !c.Empty() {
		t.Fatal("cart should be empty after removing the last unit")
	}

	c.Add(logoA)
	c.UpdateQuantity(logoA.ID, 3)
	if q := c.Lines()[0].Quantity; q != 4 {
		t.Errorf("quantity = %d, want 4", q)
	}
}

func TestDefaultAssignedPayment(t *testing.T) {
	c := &Cart{}
	c.Add(models.Product{ID: 3, Name: "Banner", Type: models.ProductTypeGFX, Price: 100})
	if pay := c.Lines()[0].AssignedPayment; pay != 60 {
		t.Fatalf("AssignedPayment = %v, want 60", pay)
	}

	// 0.6*25 = 15, no rounding needed; 0.6*33 = 19.8 rounds to 20.
	c2 := &Cart{}
	c2.Add(models.Product{ID: 4, Name: "Reel", Type: models.ProductTypeVFX, Price: 33})
	if pay := c2.Lines()[0].AssignedPayment; pay != 20 {
		t.Fatalf("AssignedPayment = %v, want 20", pay)
	}
}

func TestMargin(t *testing.T) {
	c := &Cart{}
	c.Add(models.Product{ID: 1, Name: "Logo", Type: models.ProductTypeGFX, Price: 100})
	c.UpdateQuantity(1, 1) // qty 2
	c.SetAssignedPayment(1, 40)

	if got := c.TotalQuoted(); got != 200 {
		t.Errorf("TotalQuoted = %v, want 200", got)
	}
	if got := c.TotalAssigned(); got != 80 {
		t.Errorf("TotalAssigned = %v, want 80", got)
	}
	if got := c.EstimatedMargin(); got != 120 {
		t.Errorf("EstimatedMargin = %v, want 120", got)
	}
}

func TestItemsPayload(t *testing.T) {
	c := &Cart{}
	c.Add(logoA)
	c.Add(logoA)
	c.Add(introB)

	items := c.Items()
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}
	if items[0].ProductID != 1 || items[0].Quantity != 2 {
		t.Errorf("items[0] = %+v, want {1 2}", items[0])
	}
	if items[1].ProductID != 2 || items[1].Quantity != 1 {
		t.Errorf("items[1] = %+v, want {2 1}", items[1])
	}
}
