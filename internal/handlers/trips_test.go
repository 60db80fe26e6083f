package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/models"
	"example.com/odyssey-travel/backend/internal/planner"
)

type testValidator struct {
	v *validator.Validate
}

func (tv testValidator) Validate(i interface{}) error {
	return tv.v.Struct(i)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = testValidator{v: validator.New()}
	return e
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const generateBody = `{
  "departure_location": "New York, USA",
  "destinations": ["Paris"],
  "start_date": "2025-06-01",
  "end_date": "2025-06-03",
  "budget": 900,
  "currency": "USD",
  "travelers": {"adults": 1}
}`

// TestGenerateHandlerFallback проверяет 200 с заметкой о шаблонной
// генерации, когда LLM не сконфигурирован.
func TestGenerateHandlerFallback(t *testing.T) {
	h := NewTripHandler(planner.New(nil), nil, nil)
	c, rec := postJSON(newTestEcho(), "/api/trips/generate", generateBody)

	if err := h.Generate(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var trip models.GeneratedTrip
	if err := json.Unmarshal(rec.Body.Bytes(), &trip); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if trip.ID == "" {
		t.Fatal("expected a trip id")
	}
	if trip.TotalDays != 3 || len(trip.Itinerary) != 3 {
		t.Fatalf("expected a 3-day itinerary, got total_days=%d len=%d", trip.TotalDays, len(trip.Itinerary))
	}
	if trip.GenerationNote == "" {
		t.Fatal("expected a generation note on the fallback path")
	}
}

// TestGenerateHandlerValidation проверяет 422 с картой полей.
func TestGenerateHandlerValidation(t *testing.T) {
	h := NewTripHandler(planner.New(nil), nil, nil)

	cases := []struct {
		name string
		body string
	}{
		{"missing destinations", `{"departure_location":"NYC","destinations":[],"start_date":"2025-06-01","end_date":"2025-06-03","budget":900,"currency":"USD"}`},
		{"zero budget", `{"departure_location":"NYC","destinations":["Paris"],"start_date":"2025-06-01","end_date":"2025-06-03","budget":0,"currency":"USD"}`},
		{"bad currency", `{"departure_location":"NYC","destinations":["Paris"],"start_date":"2025-06-01","end_date":"2025-06-03","budget":900,"currency":"DOLLARS"}`},
		{"bad date format", `{"departure_location":"NYC","destinations":["Paris"],"start_date":"06/01/2025","end_date":"2025-06-03","budget":900,"currency":"USD"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := postJSON(newTestEcho(), "/api/trips/generate", tc.body)

			if err := h.Generate(c); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if rec.Code != http.StatusUnprocessableEntity {
				t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
			}

			var payload map[string]interface{}
			if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
				t.Fatalf("invalid response body: %v", err)
			}
			if payload["error"] != "validation failed" {
				t.Fatalf("unexpected error message: %v", payload["error"])
			}
			if _, ok := payload["fields"]; !ok {
				t.Fatal("expected a fields map")
			}
		})
	}
}

// TestGenerateHandlerEndBeforeStart проверяет 422 для обратного диапазона дат.
func TestGenerateHandlerEndBeforeStart(t *testing.T) {
	h := NewTripHandler(planner.New(nil), nil, nil)

	body := `{"departure_location":"NYC","destinations":["Paris"],"start_date":"2025-06-03","end_date":"2025-06-01","budget":900,"currency":"USD"}`
	c, rec := postJSON(newTestEcho(), "/api/trips/generate", body)

	if err := h.Generate(c); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "end_date") {
		t.Fatalf("expected an end_date field error: %s", rec.Body.String())
	}
}
