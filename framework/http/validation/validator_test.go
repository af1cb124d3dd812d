package validation_test

import (
	"testing"

	"github.com/Owen-Rose/chefs-suite/framework/http/validation"
)

// ── required ─────────────────────────────────────────────────────────────────

func TestRequired_FailsOnEmpty(t *testing.T) {
	v := validation.Make(map[string]string{"title": ""}, validation.Rules{"title": "required"})
	if !v.Fails() {
		t.Error("empty required field should fail")
	}
	if v.Errors().First("title") == "" {
		t.Error("expected an error message for title")
	}
}

func TestRequired_PassesOnValue(t *testing.T) {
	v := validation.Make(map[string]string{"title": "Coq au Vin"}, validation.Rules{"title": "required"})
	if v.Fails() {
		t.Errorf("unexpected failure: %v", v.Errors().Bag)
	}
}

func TestRequired_FailsOnWhitespaceOnly(t *testing.T) {
	v := validation.Make(map[string]string{"title": "   "}, validation.Rules{"title": "required"})
	if !v.Fails() {
		t.Error("whitespace-only required field should fail")
	}
}

// ── email ────────────────────────────────────────────────────────────────────

func TestEmail(t *testing.T) {
	tests := []struct {
		value string
		valid bool
	}{
		{"chef@example.com", true},
		{"sous.chef+test@kitchen.co", true},
		{"not-an-email", false},
		{"@missing.local", false},
	}
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			v := validation.Make(map[string]string{"email": tt.value}, validation.Rules{"email": "required|email"})
			if v.Passes() != tt.valid {
				t.Errorf("%q: got valid=%v, want %v", tt.value, v.Passes(), tt.valid)
			}
		})
	}
}

// ── numeric / integer / comparisons ──────────────────────────────────────────

func TestInteger(t *testing.T) {
	v := validation.Make(map[string]string{"servings": "four"}, validation.Rules{"servings": "required|integer"})
	if !v.Fails() {
		t.Error("non-integer should fail")
	}
}

func TestGte(t *testing.T) {
	v := validation.Make(map[string]string{"servings": "0"}, validation.Rules{"servings": "required|integer|gte:1"})
	if !v.Fails() {
		t.Error("0 servings should fail gte:1")
	}

	v2 := validation.Make(map[string]string{"servings": "6"}, validation.Rules{"servings": "required|integer|gte:1"})
	if v2.Fails() {
		t.Errorf("unexpected failure: %v", v2.Errors().Bag)
	}
}

func TestLtGt(t *testing.T) {
	v := validation.Make(map[string]string{"n": "5"}, validation.Rules{"n": "gt:5"})
	if !v.Fails() {
		t.Error("5 should fail gt:5")
	}
	v2 := validation.Make(map[string]string{"n": "5"}, validation.Rules{"n": "lt:5"})
	if !v2.Fails() {
		t.Error("5 should fail lt:5")
	}
	v3 := validation.Make(map[string]string{"n": "5"}, validation.Rules{"n": "lte:5|gte:5"})
	if v3.Fails() {
		t.Errorf("unexpected failure: %v", v3.Errors().Bag)
	}
}

// ── length rules ─────────────────────────────────────────────────────────────

func TestMinMax(t *testing.T) {
	v := validation.Make(map[string]string{"title": "x"}, validation.Rules{"title": "min:2"})
	if !v.Fails() {
		t.Error("1 char should fail min:2")
	}

	v2 := validation.Make(map[string]string{"title": "abcdef"}, validation.Rules{"title": "max:5"})
	if !v2.Fails() {
		t.Error("6 chars should fail max:5")
	}
}

func TestBetween(t *testing.T) {
	v := validation.Make(map[string]string{"title": "abc"}, validation.Rules{"title": "between:2,5"})
	if v.Fails() {
		t.Errorf("unexpected failure: %v", v.Errors().Bag)
	}
	v2 := validation.Make(map[string]string{"title": "abcdefgh"}, validation.Rules{"title": "between:2,5"})
	if !v2.Fails() {
		t.Error("8 chars should fail between:2,5")
	}
}

// ── in ───────────────────────────────────────────────────────────────────────

func TestIn(t *testing.T) {
	rules := validation.Rules{"role": "required|in:admin,chef,reader"}

	v := validation.Make(map[string]string{"role": "chef"}, rules)
	if v.Fails() {
		t.Errorf("unexpected failure: %v", v.Errors().Bag)
	}

	v2 := validation.Make(map[string]string{"role": "dishwasher"}, rules)
	if !v2.Fails() {
		t.Error("unknown role should fail in:")
	}
}

// ── multiple rules / bail behaviour ──────────────────────────────────────────

func TestStopsOnFirstFailurePerField(t *testing.T) {
	v := validation.Make(map[string]string{"email": ""}, validation.Rules{"email": "required|email|min:5"})
	v.Fails()
	if got := len(v.Errors().Bag["email"]); got != 1 {
		t.Errorf("expected 1 error for email (bail on first), got %d", got)
	}
}

func TestMultipleFieldsCollectIndependently(t *testing.T) {
	v := validation.Make(map[string]string{
		"title": "",
		"email": "nope",
	}, validation.Rules{
		"title": "required",
		"email": "required|email",
	})
	if !v.Fails() {
		t.Fatal("expected failure")
	}
	if len(v.Errors().Bag) != 2 {
		t.Errorf("expected errors for 2 fields, got %d", len(v.Errors().Bag))
	}
}

// ── sometimes ────────────────────────────────────────────────────────────────

func TestSometimes_SkipsWhenAbsent(t *testing.T) {
	v := validation.Make(map[string]string{}, validation.Rules{"description": "sometimes|min:10"})
	if v.Fails() {
		t.Errorf("absent sometimes-field should pass, got %v", v.Errors().Bag)
	}
}

func TestSometimes_ValidatesWhenPresent(t *testing.T) {
	v := validation.Make(map[string]string{"description": "short"}, validation.Rules{"description": "sometimes|min:10"})
	if !v.Fails() {
		t.Error("present sometimes-field should be validated")
	}
}
