package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"hello": "world"})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("unexpected Content-Type %q", ct)
	}
	if nosniff := w.Header().Get("X-Content-Type-Options"); nosniff != "nosniff" {
		t.Fatalf("unexpected X-Content-Type-Options %q", nosniff)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["hello"] != "world" {
		t.Fatalf("body = %v", body)
	}
}

func TestJSONError(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusNotFound, "item not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not valid JSON: %v", err)
	}
	if body["error"] != "item not found" {
		t.Fatalf("body = %v", body)
	}
}

func TestSafeError(t *testing.T) {
	err := errors.New("pq: connection refused at 10.0.0.5")

	tests := []struct {
		name         string
		status       int
		isProduction bool
		want         string
	}{
		{"5xx in production is masked", http.StatusInternalServerError, true, "Internal Server Error"},
		{"5xx in development passes through", http.StatusInternalServerError, false, err.Error()},
		{"4xx in production passes through", http.StatusNotFound, true, err.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeError(err, tt.status, tt.isProduction); got != tt.want {
				t.Fatalf("SafeError() = %q, want %q", got, tt.want)
			}
		})
	}
}
