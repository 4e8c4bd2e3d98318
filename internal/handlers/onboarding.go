package handlers

import (
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/plusgraphics/backoffice/internal/onboarding"
	"github.com/plusgraphics/backoffice/internal/validation"
)

type OnboardingHandler struct {
	Log *zap.Logger
}

func NewOnboardingHandler(log *zap.Logger) *OnboardingHandler {
	return &OnboardingHandler{Log: log}
}

// Page shows the wizard at step 1 with the defaults preselected.
func (h *OnboardingHandler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, onboarding.New(), nil)
}

// Step handles a wizard submit. The accumulated form travels in hidden
// fields so no server-side draft state exists; back always works,
// forward is gated on the step's required field, and the final submit
// completes setup and lands on the dashboard.
func (h *OnboardingHandler) Step(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	step, _ := strconv.Atoi(r.FormValue("step"))
	wiz := &onboarding.Wizard{
		Step: onboarding.ClampStep(step),
		Form: formFromRequest(r),
	}

	if r.FormValue("action") == "back" {
		wiz.Prev()
		h.render(w, r, wiz, nil)
		return
	}

	violations := validateStep(wiz)
	if len(violations) > 0 {
		h.render(w, r, wiz, violations)
		return
	}

	if wiz.Done() {
		h.Log.Info("onboarding completed",
			zap.String("company", wiz.Form.CompanyName),
			zap.String("plan", wiz.Form.SelectedPlan))
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	wiz.Next()
	h.render(w, r, wiz, nil)
}

func validateStep(wiz *onboarding.Wizard) validation.Violations {
	v := validation.Violations{}
	switch wiz.Step {
	case onboarding.StepCompany:
		validation.Required("nombre_empresa", wiz.Form.CompanyName, v)
	case onboarding.StepSettings:
		validation.Required("tipo_negocio", wiz.Form.BusinessType, v)
	case onboarding.StepPlan:
		validation.OneOf("plan", wiz.Form.SelectedPlan, onboarding.Plans, v)
	}
	return v
}

func formFromRequest(r *http.Request) onboarding.Form {
	f := onboarding.NewForm()
	f.CompanyName = r.FormValue("nombre_empresa")
	f.Industry = r.FormValue("industria")
	f.CompanySize = r.FormValue("tamano_empresa")
	f.Address = r.FormValue("direccion")
	f.Phone = r.FormValue("telefono")
	f.Website = r.FormValue("sitio_web")
	if v := r.FormValue("moneda"); v != "" {
		f.Currency = v
	}
	if v := r.FormValue("zona_horaria"); v != "" {
		f.Timezone = v
	}
	f.BusinessType = r.FormValue("tipo_negocio")
	if v := r.FormValue("plan"); v != "" {
		f.SelectedPlan = v
	}
	return f
}

func (h *OnboardingHandler) render(w http.ResponseWriter, r *http.Request, wiz *onboarding.Wizard, violations validation.Violations) {
	renderPage(w, r, h.Log, "onboarding.html", map[string]any{
		"Wizard":     wiz,
		"Plans":      onboarding.Plans,
		"Violations": violations,
	})
}
