// Package onboarding models the three-step setup wizard: company info,
// initial settings, plan selection. Steps advance linearly and clamp at
// the bounds; step data travels with the form, nothing is persisted
// until the final submit.
package onboarding

// Wizard steps, in order.
const (
	StepCompany  = 1
	StepSettings = 2
	StepPlan     = 3

	FirstStep = StepCompany
	LastStep  = StepPlan
)

// Plans offered on the final step.
var Plans = []string{"basico", "profesional", "empresarial"}

// Form accumulates every field across the steps.
type Form struct {
	// Step 1: company info
	CompanyName string
	Industry    string
	CompanySize string
	Address     string
	Phone       string
	Website     string

	// Step 2: initial settings
	Currency     string
	Timezone     string
	BusinessType string

	// Step 3: plan
	SelectedPlan string
}

// NewForm returns a form with the defaults preselected.
func NewForm() Form {
	return Form{
		Currency:     "USD",
		Timezone:     "America/New_York",
		SelectedPlan: "profesional",
	}
}

// Wizard tracks the current step over a form.
type Wizard struct {
	Step int
	Form Form
}

// New starts a wizard at the first step.
func New() *Wizard {
	return &Wizard{Step: FirstStep, Form: NewForm()}
}

// ClampStep forces s into the valid range.
func ClampStep(s int) int {
	if s < FirstStep {
		return FirstStep
	}
	if s > LastStep {
		return LastStep
	}
	return s
}

// CanAdvance reports whether the current step's required field is
// filled: company name, business type, then plan.
func (w *Wizard) CanAdvance() bool {
	switch w.Step {
	case StepCompany:
		return w.Form.CompanyName != ""
	case StepSettings:
		return w.Form.BusinessType != ""
	case StepPlan:
		return w.Form.SelectedPlan != ""
	}
	return false
}

// Next moves forward one step if allowed, clamping at the last step.
func (w *Wizard) Next() {
	if !w.CanAdvance() {
		return
	}
	w.Step = ClampStep(w.Step + 1)
}

// Prev moves back one step, clamping at the first.
func (w *Wizard) Prev() {
	w.Step = ClampStep(w.Step - 1)
}

// Done reports whether the wizard sits on the last step with its
// required field filled, ready for the final submit.
func (w *Wizard) Done() bool {
	return w.Step == LastStep && w.CanAdvance()
}

// Progress is the completion percentage shown above the steps.
func (w *Wizard) Progress() float64 {
	return float64(w.Step) / float64(LastStep) * 100
}
