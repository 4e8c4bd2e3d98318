package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/api"
	"github.com/plusgraphics/backoffice/internal/handlers"
	"github.com/plusgraphics/backoffice/internal/middleware"
	"github.com/plusgraphics/backoffice/internal/models"
	"github.com/plusgraphics/backoffice/internal/report"
	"github.com/plusgraphics/backoffice/internal/session"
	"github.com/plusgraphics/backoffice/internal/view"
	"github.com/plusgraphics/backoffice/internal/webhook"
)

// App is the main application handler that sets up all routes.
type App struct {
	mux      *http.ServeMux
	sessions *session.Manager
	log      *zap.Logger
}

// NewApp wires the handlers against the backend client and configures
// every route.
func NewApp(client *api.Client, sessions *session.Manager, log *zap.Logger) *App {
	app := &App{
		mux:      http.NewServeMux(),
		sessions: sessions,
		log:      log,
	}

	auth := handlers.NewAuthHandler(sessions, log)
	dashboard := handlers.NewDashboardHandler(report.NewService(client), client, log)
	products := handlers.NewProductHandler(client, log)
	customers := handlers.NewCustomerHandler(client, log)
	orders := handlers.NewOrderHandler(client, client, client, log)
	sales := handlers.NewSaleHandler(client, client, client, log)
	receivables := handlers.NewReceivableHandler(client, client, log)
	payables := handlers.NewPayableHandler(client, log)
	reports := handlers.NewReportsHandler(client, log)
	onboarding := handlers.NewOnboardingHandler(log)
	settings := handlers.NewSettingsHandler(client, log)
	billing := handlers.NewBillingHandler(log)
	stripe := webhook.NewHandler(log)

	mux := app.mux

	// Public pages
	mux.HandleFunc("GET /{$}", app.landingPage)
	mux.HandleFunc("GET /login", auth.Login)
	mux.HandleFunc("POST /login", auth.Login)
	mux.HandleFunc("GET /register", auth.Register)
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /logout", auth.Logout)
	mux.HandleFunc("GET /pricing", billing.Pricing)
	mux.Handle("POST /webhooks/stripe", stripe)
	mux.HandleFunc("POST /lang", settings.SetLanguage)

	// The wizard keeps its state in the form itself, so fresh signups
	// can walk through it before they hold a session.
	mux.HandleFunc("GET /onboarding", onboarding.Page)
	mux.HandleFunc("POST /onboarding", onboarding.Step)

	// Authenticated pages
	page := func(h http.HandlerFunc) http.Handler { return session.RequireAuth(h) }

	admin := func(h http.HandlerFunc) http.Handler {
		return session.RequireAuth(session.RequireRole(models.RoleAdmin)(h))
	}

	mux.Handle("GET /dashboard", page(dashboard.Page))

	mux.Handle("GET /products", page(products.List))
	mux.Handle("GET /products/new", page(products.New))
	mux.Handle("POST /products", page(products.Create))
	mux.Handle("GET /products/{id}/edit", page(products.Edit))
	mux.Handle("POST /products/{id}", page(products.Update))
	mux.Handle("POST /products/{id}/delete", page(products.Delete))

	mux.Handle("GET /customers", page(customers.List))
	mux.Handle("GET /customers/new", page(customers.New))
	mux.Handle("POST /customers", page(customers.Create))
	mux.Handle("GET /customers/{id}/edit", page(customers.Edit))
	mux.Handle("POST /customers/{id}", page(customers.Update))
	mux.Handle("POST /customers/{id}/delete", page(customers.Delete))

	mux.Handle("GET /orders", page(orders.List))
	mux.Handle("GET /orders/new", page(orders.New))
	mux.Handle("POST /orders", page(orders.Create))
	mux.Handle("POST /orders/{id}/status", page(orders.UpdateStatus))
	mux.Handle("POST /orders/{id}/payment", page(orders.UpdatePayment))
	mux.Handle("POST /orders/{id}/delete", page(orders.Delete))

	mux.Handle("GET /sales", page(sales.List))
	mux.Handle("GET /sales/new", page(sales.New))
	mux.Handle("POST /sales", page(sales.Create))
	mux.Handle("POST /sales/{id}/delete", page(sales.Delete))

	mux.Handle("GET /receivables", page(receivables.List))
	mux.Handle("POST /receivables", page(receivables.Create))
	mux.Handle("POST /receivables/{id}/paid", page(receivables.MarkPaid))

	mux.Handle("GET /payables", page(payables.List))
	mux.Handle("POST /payables", page(payables.Create))
	mux.Handle("POST /payables/{id}/paid", page(payables.MarkPaid))

	mux.Handle("GET /reports", page(reports.Page))
	mux.Handle("GET /reports/export", page(reports.Export))

	mux.Handle("GET /settings", page(settings.Page))
	mux.Handle("GET /settings/users", admin(settings.UserList))
	mux.Handle("GET /billing", page(billing.Page))

	// Static files
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	return app
}

// ServeHTTP implements http.Handler with the global middleware chain
// applied outside the mux.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := http.Handler(a.mux)
	h = a.sessions.Middleware(h)
	h = middleware.Recoverer(a.log)(h)
	h = middleware.Logger(a.log)(h)
	h = middleware.RequestID(h)
	h.ServeHTTP(w, r)
}

func (a *App) landingPage(w http.ResponseWriter, r *http.Request) {
	_, loggedIn := session.FromContext(r.Context())
	data := map[string]any{
		"IsLoggedIn": loggedIn,
	}
	if err := view.Render(w, r, "index.html", data); err != nil {
		a.log.Error("render failed", zap.String("template", "index.html"), zap.Error(err))
		http.Error(w, "template render error", http.StatusInternalServerError)
	}
}
