package planner

import (
	"fmt"
	"math"
	"net/url"
	"strings"
	"time"

	"example.com/odyssey-travel/backend/internal/models"
)

// Доли бюджета в шаблонном маршруте. Значения унаследованы от
// предыдущих ревизий генератора и не пересчитываются.
const (
	morningCostShare   = 0.15
	afternoonCostShare = 0.10
	eveningCostShare   = 0.10
	dayCostShare       = 0.80
	tripCostShare      = 0.85
	flightBudgetShare  = 0.20
)

const (
	metroLegCost     = 2.50
	walkLegCost      = 0
	rideshareLegCost = 12.00
)

// buildFallbackTrip синтезирует маршрут без обращения к LLM. Для любого
// запроса, прошедшего валидацию, функция обязана вернуть результат.
func buildFallbackTrip(req models.TripRequest, totalDays int) models.GeneratedTrip {
	travelers := req.Travelers.Total()
	if travelers < 1 {
		travelers = 1
	}

	dailyBudget := req.Budget / float64(totalDays) / float64(travelers)
	start, _ := time.Parse(dateLayout, req.StartDate)

	itinerary := make([]models.DayPlan, 0, totalDays)
	for i := 0; i < totalDays; i++ {
		destIndex := i
		if destIndex > len(req.Destinations)-1 {
			destIndex = len(req.Destinations) - 1
		}
		location := req.Destinations[destIndex]
		date := start.AddDate(0, 0, i).Format(dateLayout)

		itinerary = append(itinerary, models.DayPlan{
			DayNumber: i + 1,
			Date:      date,
			Location:  location,
			Weather: models.Weather{
				TempHigh:  24,
				TempLow:   16,
				Condition: "Check local forecast",
				Humidity:  60,
			},
			MorningActivities: []models.Activity{
				{
					Name:        fmt.Sprintf("Explore %s city center", location),
					Description: "Self-guided walk through the main sights and landmarks.",
					Duration:    "3 hours",
					Cost:        round2(dailyBudget * morningCostShare),
					Location:    location,
					MapsLink:    mapsLink(location + " city center"),
				},
			},
			AfternoonActivities: []models.Activity{
				{
					Name:        fmt.Sprintf("Visit a top museum or attraction in %s", location),
					Description: "Pick from the highest-rated local attractions.",
					Duration:    "3 hours",
					Cost:        round2(dailyBudget * afternoonCostShare),
					Location:    location,
					MapsLink:    mapsLink(location + " attractions"),
				},
			},
			EveningActivities: []models.Activity{
				{
					Name:        fmt.Sprintf("Dinner and evening stroll in %s", location),
					Description: "Local cuisine followed by a walk through the old town.",
					Duration:    "2 hours",
					Cost:        round2(dailyBudget * eveningCostShare),
					Location:    location,
					MapsLink:    mapsLink(location + " restaurants"),
				},
			},
			Restaurants: []models.Restaurant{
				{
					Name:       fmt.Sprintf("Popular local restaurant in %s", location),
					Cuisine:    "Local",
					PriceRange: "$$",
					Location:   location,
					MapsLink:   mapsLink(location + " best restaurants"),
				},
			},
			Transportation: []models.TransportLeg{
				{Type: "Metro", From: "Hotel", To: "City center", Duration: "20 min", Cost: metroLegCost},
				{Type: "Bus/Walk", From: "City center", To: "Attractions", Duration: "15 min", Cost: walkLegCost},
				{Type: "Rideshare", From: "Attractions", To: "Hotel", Duration: "15 min", Cost: rideshareLegCost},
			},
			EstimatedCost: round2(dailyBudget * dayCostShare),
		})
	}

	visaRequirements := make([]models.VisaRequirement, 0, len(req.Destinations))
	for _, destination := range req.Destinations {
		visaRequirements = append(visaRequirements, models.VisaRequirement{
			Country:        destination,
			VisaRequired:   true,
			VisaType:       "Check with embassy",
			ProcessingTime: "Varies",
			Notes:          "Visa rules depend on your passport. Confirm requirements with the embassy before booking.",
			ApplyLink:      searchLink(destination + " visa requirements"),
		})
	}

	flightPrice := round2(flightBudgetShare * req.Budget / float64(travelers))
	flights := []models.FlightOption{
		{
			From:           req.DepartureLocation,
			To:             req.Destinations[0],
			Date:           req.StartDate,
			EstimatedPrice: flightPrice,
			BookingLinks:   flightBookingLinks(),
		},
		{
			From:           req.Destinations[len(req.Destinations)-1],
			To:             req.DepartureLocation,
			Date:           req.EndDate,
			EstimatedPrice: flightPrice,
			BookingLinks:   flightBookingLinks(),
		},
	}

	return models.GeneratedTrip{
		Title:              fallbackTitle(req, totalDays),
		VisaRequirements:   visaRequirements,
		Flights:            flights,
		Itinerary:          itinerary,
		BookingLinks:       defaultBookingLinks(),
		TotalEstimatedCost: round2(req.Budget * tripCostShare),
	}
}

func fallbackTitle(req models.TripRequest, totalDays int) string {
	return fmt.Sprintf("%d-Day Trip to %s", totalDays, strings.Join(req.Destinations, " & "))
}

func flightBookingLinks() map[string]string {
	return map[string]string{
		"skyscanner":     "https://www.skyscanner.com",
		"google_flights": "https://www.google.com/flights",
		"kayak":          "https://www.kayak.com",
	}
}

func defaultBookingLinks() map[string]map[string]string {
	return map[string]map[string]string{
		"flights": flightBookingLinks(),
		"hotels": {
			"booking": "https://www.booking.com",
			"airbnb":  "https://www.airbnb.com",
			"agoda":   "https://www.agoda.com",
			"hotels":  "https://www.hotels.com",
		},
		"transportation": {
			"uber":        "https://www.uber.com",
			"lyft":        "https://www.lyft.com",
			"rental_cars": "https://www.rentalcars.com",
			"rome2rio":    "https://www.rome2rio.com",
		},
		"experiences": {
			"viator":       "https://www.viator.com",
			"getyourguide": "https://www.getyourguide.com",
			"tripadvisor":  "https://www.tripadvisor.com",
		},
	}
}

func mapsLink(query string) string {
	return "https://maps.google.com/?q=" + url.QueryEscape(query)
}

func searchLink(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
