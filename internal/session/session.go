// Package session holds the browser session: the authenticated user and
// the backend bearer token, persisted in an HMAC-signed cookie. The
// lifecycle is anonymous -> authenticated -> anonymous; there is no
// token refresh or expiry handling beyond the cookie's own lifetime.
package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/config"
	"github.com/plusgraphics/backoffice/internal/models"
)

const cookieName = "session"

type ctxKey struct{}

// ErrInvalidCredentials is returned when the backend rejects the login.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Session is the authenticated state carried through a request.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// Authenticated reports whether a user is attached.
func (s *Session) Authenticated() bool { return s != nil && s.User != nil }

// HasRole is a pure membership check against the stored user's role.
func (s *Session) HasRole(roles ...string) bool {
	if !s.Authenticated() {
		return false
	}
	for _, r := range roles {
		if s.User.Role == r {
			return true
		}
	}
	return false
}

// Manager reads and writes session cookies. It is injected into
// handlers rather than living as ambient package state so it can be
// unit-tested without a browser storage shim.
type Manager struct {
	secret []byte
	maxAge time.Duration
	auth   api.Authenticator
}

// NewManager builds a Manager from config and the backend authenticator.
func NewManager(cfg config.SessionConfig, auth api.Authenticator) *Manager {
	return &Manager{
		secret: []byte(cfg.Secret),
		maxAge: time.Duration(cfg.MaxAge) * time.Second,
		auth:   auth,
	}
}

// Login exchanges credentials with the backend and, on success, writes
// the signed session cookie.
func (m *Manager) Login(ctx context.Context, w http.ResponseWriter, email, password string) (*models.User, error) {
	res, err := m.auth.Login(ctx, email, password)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !res.Success || res.User == nil {
		return nil, ErrInvalidCredentials
	}
	m.write(w, &Session{User: res.User, Token: res.Token})
	return res.User, nil
}

// Logout clears the session cookie.
func (m *Manager) Logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// write sets the signed cookie: base64(payload) + "." + base64(hmac).
func (m *Manager) write(w http.ResponseWriter, s *Session) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	payload := base64.RawURLEncoding.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    payload + "." + m.sign(payload),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(m.maxAge),
	})
}

func (m *Manager) sign(payload string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// Read parses and validates the session cookie. Any parse or signature
// failure yields nil (anonymous); the next response overwrites the
// broken cookie on login.
func (m *Manager) Read(r *http.Request) *Session {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return nil
	}
	payload, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(m.sign(payload))) {
		return nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return nil
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || s.User == nil {
		return nil
	}
	return &s
}

// Middleware attaches the session (if any) to the request context.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s := m.Read(r); s != nil {
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, s))
		}
		next.ServeHTTP(w, r)
	})
}

// FromContext extracts the session from the request context.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok && s.Authenticated()
}

// TokenFromContext returns the backend bearer token for the current
// session, or empty. It matches api.TokenFunc.
func TokenFromContext(ctx context.Context) string {
	if s, ok := FromContext(ctx); ok {
		return s.Token
	}
	return ""
}

// RequireAuth redirects anonymous HTML requests to /login and returns
// 401 JSON otherwise.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); !ok {
			accept := r.Header.Get("Accept")
			if strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html") {
				http.Error(w, `{"error":"unauthorized"}`, http.StatusUnauthorized)
				return
			}
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole allows only sessions whose user holds one of the roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, ok := FromContext(r.Context())
			if !ok || !s.HasRole(roles...) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
