package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/models"
)

type fakeProductRepo struct {
	products []models.Product
	listErr  error
	creates  int
	updates  int
	deletes  int
}

func (f *fakeProductRepo) ListProducts(context.Context) ([]models.Product, error) {
	return f.products, f.listErr
}
func (f *fakeProductRepo) GetProduct(_ context.Context, id int) (*models.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, f.listErr
}
func (f *fakeProductRepo) CreateProduct(context.Context, models.Product) error {
	f.creates++
	return nil
}
func (f *fakeProductRepo) UpdateProduct(context.Context, int, models.Product) error {
	f.updates++
	return nil
}
func (f *fakeProductRepo) DeleteProduct(context.Context, int) error {
	f.deletes++
	return nil
}

func postForm(path string, form url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.Header.Set("Accept", "text/html")
	return r
}

func TestProductCreateRejectsNonPositivePrice(t *testing.T) {
	repo := &fakeProductRepo{}
	h := NewProductHandler(repo, zap.NewNop())

	for _, price := range []string{"0", "-10", "abc", ""} {
		w := httptest.NewRecorder()
		h.Create(w, postForm("/products", url.Values{
			"nombre": {"Logo"},
			"tipo":   {"gfx"},
			"precio": {price},
		}))

		if w.Code != http.StatusOK {
			t.Errorf("price %q: code = %d, want form re-render", price, w.Code)
		}
		if !strings.Contains(w.Body.String(), "mayor a 0") {
			t.Errorf("price %q: validation message missing from form", price)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("creates = %d, invalid submissions must never reach the backend", repo.creates)
	}
}

func TestProductCreateValidSubmitsAndRedirects(t *testing.T) {
	repo := &fakeProductRepo{}
	h := NewProductHandler(repo, zap.NewNop())

	w := httptest.NewRecorder()
	h.Create(w, postForm("/products", url.Values{
		"nombre": {"Logo Animado"},
		"tipo":   {"gfx"},
		"precio": {"149.99"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/products" {
		t.Fatalf("location = %q", loc)
	}
	if repo.creates != 1 {
		t.Fatalf("creates = %d, want 1", repo.creates)
	}
}

func TestProductCreateJSONValidation(t *testing.T) {
	repo := &fakeProductRepo{}
	h := NewProductHandler(repo, zap.NewNop())

	r := httptest.NewRequest(http.MethodPost, "/products",
		strings.NewReader(`{"nombre":"","tipo":"3d","precio":0}`))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	h.Create(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("code = %d, want 400", w.Code)
	}
	body := w.Body.String()
	for _, field := range []string{"nombre", "tipo", "precio"} {
		if !strings.Contains(body, field) {
			t.Errorf("details missing %q: %s", field, body)
		}
	}
	if repo.creates != 0 {
		t.Fatalf("creates = %d, want 0", repo.creates)
	}
}

func TestProductListFiltersBySearch(t *testing.T) {
	repo := &fakeProductRepo{products: []models.Product{
		{ID: 1, Name: "Logo Animado", Type: "gfx", Price: 100},
		{ID: 2, Name: "Intro 3D", Type: "vfx", Price: 250},
	}}
	h := NewProductHandler(repo, zap.NewNop())

	r := httptest.NewRequest(http.MethodGet, "/products?q=intro", nil)
	r.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	h.List(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Intro 3D") || strings.Contains(body, "Logo Animado") {
		t.Fatalf("filter not applied: %s", body)
	}
}
