package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestOnboardingAdvancesWithCarriedFields(t *testing.T) {
	h := NewOnboardingHandler(zap.NewNop())

	// Step 1 with the company name filled moves to step 2 and keeps
	// the data in hidden fields.
	w := httptest.NewRecorder()
	h.Step(w, postForm("/onboarding", url.Values{
		"step":           {"1"},
		"action":         {"next"},
		"nombre_empresa": {"Plus Graphics"},
		"telefono":       {"555-0100"},
	}))
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `name="step" value="2"`) {
		t.Fatalf("did not advance to step 2: %s", body)
	}
	if !strings.Contains(body, `value="Plus Graphics"`) || !strings.Contains(body, `value="555-0100"`) {
		t.Fatal("step 1 data not carried into step 2 form")
	}
}

func TestOnboardingBlocksOnMissingRequiredField(t *testing.T) {
	h := NewOnboardingHandler(zap.NewNop())

	w := httptest.NewRecorder()
	h.Step(w, postForm("/onboarding", url.Values{
		"step":   {"1"},
		"action": {"next"},
	}))
	if !strings.Contains(w.Body.String(), `name="step" value="1"`) {
		t.Fatal("advanced past step 1 without a company name")
	}
}

func TestOnboardingBackAlwaysWorks(t *testing.T) {
	h := NewOnboardingHandler(zap.NewNop())

	// Back from step 2 without the step's own field filled.
	w := httptest.NewRecorder()
	h.Step(w, postForm("/onboarding", url.Values{
		"step":           {"2"},
		"action":         {"back"},
		"nombre_empresa": {"Plus Graphics"},
	}))
	if !strings.Contains(w.Body.String(), `name="step" value="1"`) {
		t.Fatal("back from step 2 did not land on step 1")
	}
}

func TestOnboardingFinalSubmitRedirects(t *testing.T) {
	h := NewOnboardingHandler(zap.NewNop())

	w := httptest.NewRecorder()
	h.Step(w, postForm("/onboarding", url.Values{
		"step":           {"3"},
		"action":         {"next"},
		"nombre_empresa": {"Plus Graphics"},
		"tipo_negocio":   {"estudio"},
		"plan":           {"profesional"},
	}))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Fatalf("location = %q", loc)
	}
}

func TestOnboardingClampsOutOfRangeStep(t *testing.T) {
	h := NewOnboardingHandler(zap.NewNop())

	w := httptest.NewRecorder()
	h.Step(w, postForm("/onboarding", url.Values{
		"step":           {"99"},
		"action":         {"next"},
		"nombre_empresa": {"Plus Graphics"},
		"tipo_negocio":   {"estudio"},
		"plan":           {"profesional"},
	}))
	// Step clamps to 3; a complete form finishes.
	if w.Code != http.StatusSeeOther {
		t.Fatalf("code = %d, want 303 after clamping to the last step", w.Code)
	}
}
