package filter

import (
	"testing"

	"github.com/plusgraphics/backoffice/internal/models"
)

func TestProductsSubstringMatch(t *testing.T) {
	products := []models.Product{
		{ID: 1, Name: "Logo Animado", Description: "animación 2D"},
		{ID: 2, Name: "Intro 3D", Description: "apertura"},
		{ID: 3, Name: "Banner", Description: "web"},
	}

	got := Products(products, "ani")
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("Products(ani) = %v, want only ID 1", got)
	}

	// Case-insensitive, and description counts too.
	if got := Products(products, "WEB"); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("Products(WEB) = %v, want only ID 3", got)
	}

	// Empty query returns everything unchanged.
	if got := Products(products, ""); len(got) != len(products) {
		t.Fatalf("empty query dropped items: %d != %d", len(got), len(products))
	}
}

func TestFilteredIsSubset(t *testing.T) {
	customers := []models.Customer{
		{ID: 1, Name: "Acme", Email: "a@acme.com"},
		{ID: 2, Name: "Studio X", Phone: "555-1234"},
	}
	got := Customers(customers, "555")
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("phone match failed: %v", got)
	}
	for _, c := range got {
		found := false
		for _, orig := range customers {
			if orig.ID == c.ID {
				found = true
			}
		}
		if !found {
			t.Fatalf("filtered result %v not in input", c)
		}
	}
}

func orderFixture() []models.Order {
	return []models.Order{
		{ID: 1, CustomerName: "Acme", Status: "pendiente", Assignee: "ana", Date: "2026-01-10",
			Items: []models.OrderItem{{Name: "Logo", Type: "gfx"}}},
		{ID: 2, CustomerName: "Studio X", Status: "terminado", Assignee: "luis", Date: "2026-02-05",
			Items: []models.OrderItem{{Name: "Intro 3D", Type: "vfx"}}},
		{ID: 3, CustomerName: "Acme Films", Status: "pagado", Assignee: "ana", Date: "2026-02-20 14:30:00",
			Items: []models.OrderItem{{Name: "Logo", Type: "gfx"}, {Name: "Reel", Type: "vfx"}}},
	}
}

func TestOrderFilterEmptyMatchesAll(t *testing.T) {
	orders := orderFixture()
	got := Orders(orders, OrderFilter{})
	if len(got) != len(orders) {
		t.Fatalf("empty filter: %d != %d", len(got), len(orders))
	}
}

func TestOrderFilterFields(t *testing.T) {
	orders := orderFixture()

	cases := []struct {
		name string
		f    OrderFilter
		want []int
	}{
		{"client substring", OrderFilter{Client: "acme"}, []int{1, 3}},
		{"status exact", OrderFilter{Status: "terminado"}, []int{2}},
		{"type any item", OrderFilter{Type: "vfx"}, []int{2, 3}},
		{"assignee exact", OrderFilter{Assignee: "ana"}, []int{1, 3}},
		{"item substring", OrderFilter{Item: "logo"}, []int{1, 3}},
		{"date range", OrderFilter{DateFrom: "2026-02-01", DateTo: "2026-02-28"}, []int{2, 3}},
		{"date with time suffix", OrderFilter{DateFrom: "2026-02-20"}, []int{3}},
		{"conjunction", OrderFilter{Client: "acme", Type: "vfx"}, []int{3}},
		{"no match", OrderFilter{Client: "acme", Status: "terminado"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Orders(orders, tc.f)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d orders, want %d: %v", len(got), len(tc.want), got)
			}
			for i, o := range got {
				if o.ID != tc.want[i] {
					t.Errorf("got[%d].ID = %d, want %d", i, o.ID, tc.want[i])
				}
			}
		})
	}
}

func TestUniqueValuesSorted(t *testing.T) {
	orders := orderFixture()

	clients := UniqueClients(orders)
	want := []string{"Acme", "Acme Films", "Studio X"}
	if len(clients) != len(want) {
		t.Fatalf("clients = %v, want %v", clients, want)
	}
	for i := range want {
		if clients[i] != want[i] {
			t.Fatalf("clients = %v, want %v", clients, want)
		}
	}

	items := UniqueItems(orders)
	if len(items) != 3 { // Logo, Intro 3D, Reel
		t.Fatalf("items = %v, want 3 distinct", items)
	}

	assignees := UniqueAssignees(orders)
	if len(assignees) != 2 {
		t.Fatalf("assignees = %v, want 2 distinct", assignees)
	}
}
