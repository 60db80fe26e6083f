package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"example.com/odyssey-travel/backend/internal/models"
)

var (
	ErrMalformedJSON  = errors.New("response is not valid json")
	ErrSchemaMismatch = errors.New("response does not match trip schema")
	ErrBudgetExceeded = errors.New("response exceeds trip budget")
)

// parseTrip разбирает сырой ответ LLM в GeneratedTrip. Обертки из
// code fence снимаются, обязательные ключи проверяются.
func parseTrip(raw string, budget float64, totalDays int) (models.GeneratedTrip, error) {
	var trip models.GeneratedTrip

	payload := extractJSON(raw)
	if payload == "" {
		return trip, ErrMalformedJSON
	}

	if err := json.Unmarshal([]byte(payload), &trip); err != nil {
		return trip, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	if strings.TrimSpace(trip.Title) == "" {
		return trip, fmt.Errorf("%w: missing title", ErrSchemaMismatch)
	}

	if len(trip.Itinerary) == 0 {
		return trip, fmt.Errorf("%w: missing itinerary", ErrSchemaMismatch)
	}

	if len(trip.Itinerary) != totalDays {
		return trip, fmt.Errorf("%w: itinerary has %d days, expected %d", ErrSchemaMismatch, len(trip.Itinerary), totalDays)
	}

	for _, day := range trip.Itinerary {
		if day.EstimatedCost < 0 {
			return trip, fmt.Errorf("%w: negative day cost", ErrSchemaMismatch)
		}
	}

	if trip.TotalEstimatedCost > budget {
		return trip, fmt.Errorf("%w: %.2f over %.2f", ErrBudgetExceeded, trip.TotalEstimatedCost, budget)
	}

	return trip, nil
}

func extractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimPrefix(strings.TrimSpace(trimmed), "json")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		trimmed = strings.TrimSpace(trimmed)
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}

	return trimmed[start : end+1]
}
