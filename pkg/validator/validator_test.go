package validator

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type sampleRequest struct {
	Name  string `json:"name" validate:"required,max=10"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestValidate(t *testing.T) {
	if err := Validate(&sampleRequest{Name: "ok"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Validate(&sampleRequest{}); err == nil {
		t.Fatal("expected error for missing required field")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	err := Validate(&sampleRequest{Name: "far-too-long-name", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := FormatValidationErrors(err)
	// Field keys come from the json tag, not the Go field name.
	if _, ok := fields["name"]; !ok {
		t.Errorf("missing 'name' in %v", fields)
	}
	if got := fields["email"]; got != "Must be a valid email address" {
		t.Errorf("email message = %q", got)
	}
}

func TestValidateRequest(t *testing.T) {
	t.Run("valid body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"ok"}`))
		w := httptest.NewRecorder()

		req, ok := ValidateRequest[sampleRequest](w, r)
		if !ok {
			t.Fatalf("expected success, got %d %s", w.Code, w.Body.String())
		}
		if req.Name != "ok" {
			t.Fatalf("decoded name = %q", req.Name)
		}
	})

	t.Run("malformed JSON is a 400", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
		w := httptest.NewRecorder()

		if _, ok := ValidateRequest[sampleRequest](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("failed validation is a 422 with field map", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
		w := httptest.NewRecorder()

		if _, ok := ValidateRequest[sampleRequest](w, r); ok {
			t.Fatal("expected failure")
		}
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}

		var body struct {
			Fields map[string]string `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("body is not valid JSON: %v", err)
		}
		if body.Fields["name"] == "" {
			t.Fatalf("fields = %v, want a message for 'name'", body.Fields)
		}
	})
}
