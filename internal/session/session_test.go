package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/config"
	"github.com/plusgraphics/backoffice/internal/models"
)

type fakeAuth struct {
	result *api.LoginResult
	err    error
}

func (f *fakeAuth) Login(context.Context, string, string) (*api.LoginResult, error) {
	return f.result, f.err
}
func (f *fakeAuth) VerifyToken(context.Context) (bool, error) { return f.err == nil, f.err }

func testManager(auth api.Authenticator) *Manager {
	return NewManager(config.SessionConfig{Secret: "test-secret", MaxAge: 3600}, auth)
}

func TestCookieRoundTrip(t *testing.T) {
	m := testManager(nil)
	user := &models.User{ID: 7, Name: "Ana", Email: "ana@test.com", Role: models.RoleAdmin}

	w := httptest.NewRecorder()
	m.write(w, &Session{User: user, Token: "tok-123"})

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookies[0])

	s := m.Read(r)
	if s == nil {
		t.Fatal("Read returned nil for a valid cookie")
	}
	if s.User.ID != 7 || s.Token != "tok-123" {
		t.Fatalf("session = %+v", s)
	}
	if !s.HasRole(models.RoleAdmin) {
		t.Error("HasRole(admin) = false")
	}
	if s.HasRole(models.RoleEmployee) {
		t.Error("HasRole(employee) = true for an admin")
	}
}

func TestTamperedCookieIsAnonymous(t *testing.T) {
	m := testManager(nil)
	w := httptest.NewRecorder()
	m.write(w, &Session{User: &models.User{ID: 1}, Token: "t"})
	c := w.Result().Cookies()[0]

	// Flip the payload; the signature no longer matches.
	parts := strings.SplitN(c.Value, ".", 2)
	c.Value = parts[0] + "x." + parts[1]

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(c)
	if s := m.Read(r); s != nil {
		t.Fatalf("tampered cookie yielded session %+v", s)
	}

	// Garbage value too.
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(&http.Cookie{Name: "session", Value: "not-a-session"})
	if s := m.Read(r2); s != nil {
		t.Fatal("garbage cookie yielded a session")
	}
}

func TestLoginWritesSession(t *testing.T) {
	user := &models.User{ID: 3, Name: "Luis", Role: models.RoleEmployee}
	m := testManager(&fakeAuth{result: &api.LoginResult{Success: true, User: user, Token: "bearer-x"}})

	w := httptest.NewRecorder()
	got, err := m.Login(context.Background(), w, "luis@test.com", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != 3 {
		t.Fatalf("user = %+v", got)
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	s := m.Read(r)
	if s == nil || s.Token != "bearer-x" {
		t.Fatalf("session after login = %+v", s)
	}
}

func TestLoginRejectionMapsTo401Error(t *testing.T) {
	m := testManager(&fakeAuth{err: &api.Error{Status: http.StatusUnauthorized, Message: "Credenciales inválidas"}})
	_, err := m.Login(context.Background(), httptest.NewRecorder(), "x@y.z", "bad")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}

	// Unsuccessful body without HTTP error also rejects.
	m2 := testManager(&fakeAuth{result: &api.LoginResult{Success: false}})
	if _, err := m2.Login(context.Background(), httptest.NewRecorder(), "x@y.z", "bad"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestMiddlewareAndRequireAuth(t *testing.T) {
	m := testManager(nil)

	var sawToken string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sawToken = TokenFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := m.Middleware(RequireAuth(inner))

	// Anonymous HTML request redirects to /login.
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/login" {
		t.Fatalf("anonymous: code=%d location=%q", w.Code, w.Header().Get("Location"))
	}

	// Anonymous JSON request gets 401.
	w = httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	r.Header.Set("Accept", "application/json")
	h.ServeHTTP(w, r)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous json: code=%d", w.Code)
	}

	// Authenticated request flows through with its token.
	cw := httptest.NewRecorder()
	m.write(cw, &Session{User: &models.User{ID: 1}, Token: "tok"})
	r = httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cw.Result().Cookies() {
		r.AddCookie(c)
	}
	w = httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Fatalf("authenticated: code=%d", w.Code)
	}
	if sawToken != "tok" {
		t.Fatalf("token in context = %q, want tok", sawToken)
	}
}

func TestRequireRole(t *testing.T) {
	m := testManager(nil)
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := m.Middleware(RequireRole(models.RoleAdmin)(inner))

	cw := httptest.NewRecorder()
	m.write(cw, &Session{User: &models.User{ID: 1, Role: models.RoleEmployee}, Token: "t"})
	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	for _, c := range cw.Result().Cookies() {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	if w.Code != http.StatusForbidden {
		t.Fatalf("employee on admin route: code=%d, want 403", w.Code)
	}
}
