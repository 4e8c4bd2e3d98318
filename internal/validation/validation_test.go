package validation

import "testing"

func TestRequired(t *testing.T) {
	v := Violations{}
	Required("nombre", "", v)
	Required("tipo", "   ", v)
	Required("ok", "value", v)

	if v["nombre"] != "required" || v["tipo"] != "required" {
		t.Fatalf("violations = %v", v)
	}
	if _, found := v["ok"]; found {
		t.Error("filled field flagged")
	}
}

func TestPositiveFloat(t *testing.T) {
	v := Violations{}
	PositiveFloat("precio", 0, v)
	if v["precio"] != "must_be_positive" {
		t.Fatalf("zero price: %v", v)
	}

	v = Violations{}
	PositiveFloat("precio", -5, v)
	if v["precio"] != "must_be_positive" {
		t.Fatalf("negative price: %v", v)
	}

	v = Violations{}
	PositiveFloat("precio", 0.01, v)
	if !v.Empty() {
		t.Fatalf("valid price flagged: %v", v)
	}
}

func TestEmail(t *testing.T) {
	v := Violations{}
	Email("email", "not-an-email", v)
	if v["email"] != "invalid_email" {
		t.Fatalf("violations = %v", v)
	}

	v = Violations{}
	Email("email", "ana@test.com", v)
	Email("optional", "", v) // empty is allowed
	if !v.Empty() {
		t.Fatalf("valid/empty emails flagged: %v", v)
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"gfx", "vfx"}

	v := Violations{}
	OneOf("tipo", "gfx", allowed, v)
	if !v.Empty() {
		t.Fatalf("allowed value flagged: %v", v)
	}

	OneOf("tipo", "3d", allowed, v)
	if v["tipo"] != "invalid_value" {
		t.Fatalf("violations = %v", v)
	}
}

func TestPasswordsMatch(t *testing.T) {
	v := Violations{}
	PasswordsMatch("confirm", "secret1", "secret2", v)
	if v["confirm"] != "passwords_mismatch" {
		t.Fatalf("violations = %v", v)
	}

	v = Violations{}
	PasswordsMatch("confirm", "secret1", "secret1", v)
	if !v.Empty() {
		t.Fatalf("matching passwords flagged: %v", v)
	}
}
