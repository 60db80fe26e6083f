package planner

import (
	"fmt"
	"strings"

	"example.com/odyssey-travel/backend/internal/models"
)

const systemMessage = "You are an expert travel planner. Always respond with valid JSON only."

// BuildPrompt собирает текст запроса к LLM. Чистая функция: одинаковый
// TripRequest всегда дает одинаковый промпт.
func BuildPrompt(req models.TripRequest, totalDays, totalTravelers int) string {
	interests := "General sightseeing"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}

	foodPreferences := req.FoodPreferences
	if foodPreferences == "" {
		foodPreferences = "No preference"
	}

	accommodation := req.AccommodationType
	if accommodation == "" {
		accommodation = "mid-range"
	}

	var extras strings.Builder
	if len(req.FitnessInterests) > 0 {
		fmt.Fprintf(&extras, "- Fitness Interests: %s\n", strings.Join(req.FitnessInterests, ", "))
	}
	if req.CabinClass != "" {
		fmt.Fprintf(&extras, "- Cabin Class: %s\n", req.CabinClass)
	}
	if req.CustomerType != "" {
		fmt.Fprintf(&extras, "- Customer Type: %s\n", req.CustomerType)
	}
	if len(req.ExistingBookings) > 0 {
		fmt.Fprintf(&extras, "- Existing Bookings: %s\n", strings.Join(req.ExistingBookings, ", "))
	}

	return fmt.Sprintf(`You are an expert travel planner. Create a comprehensive travel itinerary in JSON format.

TRIP DETAILS:
- Departure: %s
- Destinations: %s
- Dates: %s to %s (%d days)
- Budget: %.2f %s (total for entire trip)
- Travelers: %d total (%d adults, %d children 10+, %d children under 10, %d seniors, %d infants)
- Food Preferences: %s
- Accommodation: %s
- Interests: %s
%s
Return ONLY valid JSON (no markdown, no explanation, no code fences) with this exact structure:
{
  "title": "Descriptive trip title",
  "visa_requirements": [
    {"country": "Country", "visa_required": true, "visa_type": "Type or N/A", "processing_time": "X days", "cost": 0, "notes": "Important info", "apply_link": "https://..."}
  ],
  "flights": [
    {"from": "City", "to": "City", "date": "YYYY-MM-DD", "estimated_price": 0, "airlines": ["Airline1"], "booking_links": {"skyscanner": "https://www.skyscanner.com", "google_flights": "https://www.google.com/flights", "kayak": "https://www.kayak.com"}}
  ],
  "hotels": [
    {"name": "Hotel", "location": "Address", "price_per_night": 0, "rating": 4.5, "booking_link": "https://..."}
  ],
  "itinerary": [
    {
      "day_number": 1,
      "date": "YYYY-MM-DD",
      "location": "City, Country",
      "weather": {"temp_high": 25, "temp_low": 18, "condition": "Sunny", "humidity": 60},
      "morning_activities": [
        {"name": "Activity", "description": "Description", "duration": "2 hours", "cost": 0, "location": "Address", "maps_link": "https://maps.google.com/?q=...", "tips": "Pro tip"}
      ],
      "afternoon_activities": [],
      "evening_activities": [],
      "restaurants": [
        {"name": "Restaurant", "cuisine": "Type", "price_range": "$$", "must_try": ["Dish1"], "location": "Address", "maps_link": "https://maps.google.com/?q=...", "booking_link": "https://..."}
      ],
      "transportation": [
        {"type": "Uber/Metro/Bus/Walk", "from": "Location", "to": "Location", "duration": "20 min", "cost": 5, "booking_link": "https://..."}
      ],
      "fitness_activities": [],
      "day_trips": [
        {"destination": "Nearby place", "description": "What to see", "duration": "Full day", "cost": 50, "booking_link": "https://..."}
      ],
      "estimated_cost": 150
    }
  ],
  "booking_links": {
    "flights": {"skyscanner": "https://www.skyscanner.com", "google_flights": "https://www.google.com/flights", "kayak": "https://www.kayak.com"},
    "hotels": {"booking": "https://www.booking.com", "airbnb": "https://www.airbnb.com", "agoda": "https://www.agoda.com", "hotels": "https://www.hotels.com"},
    "transportation": {"uber": "https://www.uber.com", "lyft": "https://www.lyft.com", "rental_cars": "https://www.rentalcars.com", "rome2rio": "https://www.rome2rio.com"},
    "experiences": {"viator": "https://www.viator.com", "getyourguide": "https://www.getyourguide.com", "tripadvisor": "https://www.tripadvisor.com"}
  },
  "total_estimated_cost": 0
}

The itinerary array must contain exactly %d entries, one per day. Make the itinerary realistic, detailed, and within budget. Include actual popular attractions, restaurants, and transport options for the destinations.`,
		req.DepartureLocation,
		strings.Join(req.Destinations, ", "),
		req.StartDate,
		req.EndDate,
		totalDays,
		req.Budget,
		req.Currency,
		totalTravelers,
		req.Travelers.Adults,
		req.Travelers.ChildrenAbove10,
		req.Travelers.ChildrenBelow10,
		req.Travelers.Seniors,
		req.Travelers.Infants,
		foodPreferences,
		accommodation,
		interests,
		extras.String(),
		totalDays,
	)
}
