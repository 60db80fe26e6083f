package refdata

import "testing"

// TestSearchCities проверяет подстрочный поиск по имени и стране.
func TestSearchCities(t *testing.T) {
	matches := SearchCities("par")
	if len(matches) != 1 || matches[0].Name != "Paris" {
		t.Fatalf("unexpected matches for 'par': %+v", matches)
	}

	// Поиск по стране.
	matches = SearchCities("india")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for 'india', got %d", len(matches))
	}

	matches = SearchCities("  LONDON  ")
	if len(matches) != 1 || matches[0].Name != "London" {
		t.Fatalf("unexpected matches for 'LONDON': %+v", matches)
	}
}

// TestSearchCitiesShortQuery проверяет отсечение коротких запросов.
func TestSearchCitiesShortQuery(t *testing.T) {
	for _, query := range []string{"", "a", " b "} {
		matches := SearchCities(query)
		if matches == nil {
			t.Fatalf("expected an empty slice for %q, got nil", query)
		}
		if len(matches) != 0 {
			t.Fatalf("expected no matches for %q, got %d", query, len(matches))
		}
	}
}

// TestAirportsForCity проверяет выдачу аэропортов города.
func TestAirportsForCity(t *testing.T) {
	airports := AirportsForCity("new york")
	if len(airports) != 3 {
		t.Fatalf("expected 3 airports for New York, got %d", len(airports))
	}

	codes := make(map[string]bool, len(airports))
	for _, airport := range airports {
		codes[airport.Code] = true
	}
	for _, want := range []string{"JFK", "EWR", "LGA"} {
		if !codes[want] {
			t.Fatalf("expected airport %s", want)
		}
	}

	if got := AirportsForCity("Atlantis"); len(got) != 0 {
		t.Fatalf("did not expect airports for an unknown city, got %+v", got)
	}
}
