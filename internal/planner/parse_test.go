package planner

import (
	"errors"
	"fmt"
	"testing"
)

const validTripJSON = `{
  "title": "3-Day Trip to Paris",
  "itinerary": [
    {"day_number": 1, "date": "2025-06-01", "location": "Paris", "estimated_cost": 240},
    {"day_number": 2, "date": "2025-06-02", "location": "Paris", "estimated_cost": 240},
    {"day_number": 3, "date": "2025-06-03", "location": "Paris", "estimated_cost": 240}
  ],
  "total_estimated_cost": 765
}`

// TestExtractJSONCodeFence проверяет снятие обертки ```json.
func TestExtractJSONCodeFence(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"title":"x"}`, `{"title":"x"}`},
		{"fenced", "```json\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"fenced no tag", "```\n{\"title\":\"x\"}\n```", `{"title":"x"}`},
		{"leading prose", "Here is your trip:\n{\"title\":\"x\"}", `{"title":"x"}`},
		{"empty", "", ""},
		{"no braces", "sorry, I cannot help with that", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := extractJSON(tc.input)
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestParseTripValid проверяет разбор корректного ответа.
func TestParseTripValid(t *testing.T) {
	trip, err := parseTrip(validTripJSON, 900, 3)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if trip.Title != "3-Day Trip to Paris" {
		t.Fatalf("unexpected title: %s", trip.Title)
	}
	if len(trip.Itinerary) != 3 {
		t.Fatalf("expected 3 days, got %d", len(trip.Itinerary))
	}
}

// TestParseTripMalformed проверяет ошибку на невалидном JSON.
func TestParseTripMalformed(t *testing.T) {
	if _, err := parseTrip(`{"title": "oops"`, 900, 3); !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
	if _, err := parseTrip("no json here", 900, 3); !errors.Is(err, ErrMalformedJSON) {
		t.Fatalf("expected ErrMalformedJSON, got %v", err)
	}
}

// TestParseTripMissingKeys проверяет обязательность title и itinerary.
func TestParseTripMissingKeys(t *testing.T) {
	if _, err := parseTrip(`{"itinerary":[{"day_number":1}]}`, 900, 1); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for missing title, got %v", err)
	}
	if _, err := parseTrip(`{"title":"x"}`, 900, 1); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch for missing itinerary, got %v", err)
	}
}

// TestParseTripWrongDayCount проверяет сверку длины маршрута.
func TestParseTripWrongDayCount(t *testing.T) {
	if _, err := parseTrip(validTripJSON, 900, 5); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}

// TestParseTripBudgetExceeded проверяет отказ при превышении бюджета.
func TestParseTripBudgetExceeded(t *testing.T) {
	if _, err := parseTrip(validTripJSON, 500, 3); !errors.Is(err, ErrBudgetExceeded) {
		t.Fatalf("expected ErrBudgetExceeded, got %v", err)
	}
}

// TestParseTripNegativeDayCost проверяет отказ при отрицательной стоимости дня.
func TestParseTripNegativeDayCost(t *testing.T) {
	raw := fmt.Sprintf(`{"title":"x","itinerary":[{"day_number":1,"estimated_cost":%d}],"total_estimated_cost":10}`, -5)
	if _, err := parseTrip(raw, 900, 1); !errors.Is(err, ErrSchemaMismatch) {
		t.Fatalf("expected ErrSchemaMismatch, got %v", err)
	}
}
