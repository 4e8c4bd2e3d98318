package onboarding

import "testing"

func TestClampStep(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 1}, {-5, 1}, {1, 1}, {2, 2}, {3, 3}, {4, 3}, {99, 3},
	}
	for _, tc := range cases {
		if got := ClampStep(tc.in); got != tc.want {
			t.Errorf("ClampStep(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNextGatedOnRequiredField(t *testing.T) {
	w := New()
	if w.Step != StepCompany {
		t.Fatalf("start step = %d, want %d", w.Step, StepCompany)
	}

	// Missing company name blocks advancement.
	w.Next()
	if w.Step != StepCompany {
		t.Fatalf("advanced without company name, step = %d", w.Step)
	}

	w.Form.CompanyName = "Plus Graphics"
	w.Next()
	if w.Step != StepSettings {
		t.Fatalf("step = %d, want %d", w.Step, StepSettings)
	}

	w.Next()
	if w.Step != StepSettings {
		t.Fatalf("advanced without business type, step = %d", w.Step)
	}
	w.Form.BusinessType = "estudio"
	w.Next()
	if w.Step != StepPlan {
		t.Fatalf("step = %d, want %d", w.Step, StepPlan)
	}
}

func TestBackAlwaysWorks(t *testing.T) {
	w := New()
	w.Step = StepPlan
	w.Prev()
	if w.Step != StepSettings {
		t.Fatalf("step = %d, want %d", w.Step, StepSettings)
	}
	w.Prev()
	w.Prev()
	w.Prev()
	if w.Step != StepCompany {
		t.Fatalf("step clamped at %d, want %d", w.Step, StepCompany)
	}
}

func TestDoneAndDefaults(t *testing.T) {
	w := New()
	if w.Done() {
		t.Fatal("fresh wizard cannot be done")
	}
	if w.Form.Currency != "USD" || w.Form.SelectedPlan != "profesional" {
		t.Fatalf("defaults = %+v", w.Form)
	}

	w.Step = StepPlan
	if !w.Done() {
		t.Fatal("last step with default plan should be done")
	}
	w.Form.SelectedPlan = ""
	if w.Done() {
		t.Fatal("empty plan cannot finish")
	}
}

func TestProgress(t *testing.T) {
	w := New()
	for step, want := range map[int]float64{1: 100.0 / 3, 2: 200.0 / 3, 3: 100} {
		w.Step = step
		if got := w.Progress(); got != want {
			t.Errorf("Progress at step %d = %v, want %v", step, got, want)
		}
	}
}
