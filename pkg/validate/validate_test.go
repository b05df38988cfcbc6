package validate_test

import (
	"testing"

	"github.com/artcocktail/artcocktail/pkg/validate"
)

type registerInput struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type statusInput struct {
	Status string `json:"status" validate:"required,in=Pending,Shipped,Delivered,Cancelled"`
}

type priceInput struct {
	Price float64 `json:"price" validate:"gte=0"`
	Note  string  `json:"note"  validate:"nullable,min=3"`
}

func TestValidInput(t *testing.T) {
	errs := validate.Struct(registerInput{
		Name:     "Jane Painter",
		Email:    "jane@example.com",
		Password: "secret123",
	})
	if validate.HasErrors(errs) {
		t.Errorf("expected no errors, got: %v", errs)
	}
}

func TestRequiredFails(t *testing.T) {
	errs := validate.Struct(registerInput{})
	if !validate.HasErrors(errs) {
		t.Fatal("expected required errors")
	}
	for _, field := range []string{"name", "email", "password"} {
		if _, ok := errs[field]; !ok {
			t.Errorf("expected %s to be required", field)
		}
	}
}

func TestEmailRule(t *testing.T) {
	errs := validate.Struct(registerInput{Name: "A", Email: "not-an-email", Password: "secret123"})
	if _, ok := errs["email"]; !ok {
		t.Error("expected email error")
	}
}

func TestMinLengthRule(t *testing.T) {
	errs := validate.Struct(registerInput{Name: "A", Email: "a@b.co", Password: "short"})
	if _, ok := errs["password"]; !ok {
		t.Error("expected password min-length error")
	}
}

func TestInRuleAcceptsListedValues(t *testing.T) {
	for _, s := range []string{"Pending", "Shipped", "Delivered", "Cancelled"} {
		if errs := validate.Struct(statusInput{Status: s}); validate.HasErrors(errs) {
			t.Errorf("status %q should pass, got: %v", s, errs)
		}
	}
}

func TestInRuleRejectsUnlistedValue(t *testing.T) {
	errs := validate.Struct(statusInput{Status: "Returned"})
	if _, ok := errs["status"]; !ok {
		t.Error("expected status error for unlisted value")
	}
}

func TestGteAndNullable(t *testing.T) {
	if errs := validate.Struct(priceInput{Price: -1}); !validate.HasErrors(errs) {
		t.Error("expected gte error for negative price")
	}
	if errs := validate.Struct(priceInput{Price: 0}); validate.HasErrors(errs) {
		t.Errorf("zero price with empty note should pass, got: %v", errs)
	}
	if errs := validate.Struct(priceInput{Note: "ab"}); !validate.HasErrors(errs) {
		t.Error("expected min error on short non-empty note")
	}
}

func TestPointerInput(t *testing.T) {
	errs := validate.Struct(&registerInput{Name: "Jane", Email: "jane@example.com", Password: "secret123"})
	if validate.HasErrors(errs) {
		t.Errorf("pointer input should validate, got: %v", errs)
	}
}
