package models

import "time"

type TripStatus string

type CustomerType string

const (
	TripStatusPlanned    TripStatus = "planned"
	TripStatusInProgress TripStatus = "in-progress"
	TripStatusCompleted  TripStatus = "completed"

	CustomerTypeFresh    CustomerType = "fresh"
	CustomerTypePartial  CustomerType = "partial"
	CustomerTypePlanOnly CustomerType = "plan_only"
)

type User struct {
	ID           string    `json:"id" bson:"id"`
	Email        string    `json:"email" bson:"email"`
	Name         string    `json:"name" bson:"name"`
	PasswordHash string    `json:"-" bson:"password"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}

type TravelerDetails struct {
	Adults          int `json:"adults" bson:"adults" validate:"min=0"`
	ChildrenAbove10 int `json:"children_above_10" bson:"children_above_10" validate:"min=0"`
	ChildrenBelow10 int `json:"children_below_10" bson:"children_below_10" validate:"min=0"`
	Seniors         int `json:"seniors" bson:"seniors" validate:"min=0"`
	Infants         int `json:"infants" bson:"infants" validate:"min=0"`
}

// Total возвращает общее число путешественников.
func (t TravelerDetails) Total() int {
	return t.Adults + t.ChildrenAbove10 + t.ChildrenBelow10 + t.Seniors + t.Infants
}

type TripRequest struct {
	DepartureLocation string          `json:"departure_location" validate:"required"`
	Destinations      []string        `json:"destinations" validate:"required,min=1,dive,required"`
	StartDate         string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate           string          `json:"end_date" validate:"required,datetime=2006-01-02"`
	Budget            float64         `json:"budget" validate:"gt=0"`
	Currency          string          `json:"currency" validate:"required,len=3,alpha"`
	Travelers         TravelerDetails `json:"travelers"`
	FoodPreferences   string          `json:"food_preferences,omitempty"`
	AccommodationType string          `json:"accommodation_type,omitempty"`
	Interests         []string        `json:"interests,omitempty"`
	FitnessInterests  []string        `json:"fitness_interests,omitempty"`
	CabinClass        string          `json:"cabin_class,omitempty" validate:"omitempty,oneof=economy premium-economy business first"`
	CustomerType      CustomerType    `json:"customer_type,omitempty" validate:"omitempty,oneof=fresh partial plan_only"`
	ExistingBookings  []string        `json:"existing_bookings,omitempty"`
}

type Weather struct {
	TempHigh  float64 `json:"temp_high" bson:"temp_high"`
	TempLow   float64 `json:"temp_low" bson:"temp_low"`
	Condition string  `json:"condition" bson:"condition"`
	Humidity  int     `json:"humidity" bson:"humidity"`
}

type Activity struct {
	Name        string  `json:"name" bson:"name"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Duration    string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Cost        float64 `json:"cost" bson:"cost"`
	Location    string  `json:"location,omitempty" bson:"location,omitempty"`
	MapsLink    string  `json:"maps_link,omitempty" bson:"maps_link,omitempty"`
	Tips        string  `json:"tips,omitempty" bson:"tips,omitempty"`
}

type Restaurant struct {
	Name        string   `json:"name" bson:"name"`
	Cuisine     string   `json:"cuisine,omitempty" bson:"cuisine,omitempty"`
	PriceRange  string   `json:"price_range,omitempty" bson:"price_range,omitempty"`
	MustTry     []string `json:"must_try,omitempty" bson:"must_try,omitempty"`
	Location    string   `json:"location,omitempty" bson:"location,omitempty"`
	MapsLink    string   `json:"maps_link,omitempty" bson:"maps_link,omitempty"`
	BookingLink string   `json:"booking_link,omitempty" bson:"booking_link,omitempty"`
}

type TransportLeg struct {
	Type        string  `json:"type" bson:"type"`
	From        string  `json:"from" bson:"from"`
	To          string  `json:"to" bson:"to"`
	Duration    string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Cost        float64 `json:"cost" bson:"cost"`
	BookingLink string  `json:"booking_link,omitempty" bson:"booking_link,omitempty"`
}

type DayTrip struct {
	Destination string  `json:"destination" bson:"destination"`
	Description string  `json:"description,omitempty" bson:"description,omitempty"`
	Duration    string  `json:"duration,omitempty" bson:"duration,omitempty"`
	Cost        float64 `json:"cost" bson:"cost"`
	BookingLink string  `json:"booking_link,omitempty" bson:"booking_link,omitempty"`
}

type DayPlan struct {
	DayNumber           int            `json:"day_number" bson:"day_number"`
	Date                string         `json:"date" bson:"date"`
	Location            string         `json:"location" bson:"location"`
	Weather             Weather        `json:"weather" bson:"weather"`
	MorningActivities   []Activity     `json:"morning_activities" bson:"morning_activities"`
	AfternoonActivities []Activity     `json:"afternoon_activities" bson:"afternoon_activities"`
	EveningActivities   []Activity     `json:"evening_activities" bson:"evening_activities"`
	Restaurants         []Restaurant   `json:"restaurants" bson:"restaurants"`
	Transportation      []TransportLeg `json:"transportation" bson:"transportation"`
	FitnessActivities   []Activity     `json:"fitness_activities,omitempty" bson:"fitness_activities,omitempty"`
	DayTrips            []DayTrip      `json:"day_trips,omitempty" bson:"day_trips,omitempty"`
	EstimatedCost       float64        `json:"estimated_cost" bson:"estimated_cost"`
}

type FlightOption struct {
	From           string            `json:"from" bson:"from"`
	To             string            `json:"to" bson:"to"`
	Date           string            `json:"date" bson:"date"`
	EstimatedPrice float64           `json:"estimated_price" bson:"estimated_price"`
	Airlines       []string          `json:"airlines,omitempty" bson:"airlines,omitempty"`
	BookingLinks   map[string]string `json:"booking_links,omitempty" bson:"booking_links,omitempty"`
}

type VisaRequirement struct {
	Country        string  `json:"country" bson:"country"`
	VisaRequired   bool    `json:"visa_required" bson:"visa_required"`
	VisaType       string  `json:"visa_type,omitempty" bson:"visa_type,omitempty"`
	ProcessingTime string  `json:"processing_time,omitempty" bson:"processing_time,omitempty"`
	Cost           float64 `json:"cost" bson:"cost"`
	Notes          string  `json:"notes,omitempty" bson:"notes,omitempty"`
	ApplyLink      string  `json:"apply_link,omitempty" bson:"apply_link,omitempty"`
}

type Hotel struct {
	Name          string  `json:"name" bson:"name"`
	Location      string  `json:"location,omitempty" bson:"location,omitempty"`
	PricePerNight float64 `json:"price_per_night" bson:"price_per_night"`
	Rating        float64 `json:"rating,omitempty" bson:"rating,omitempty"`
	BookingLink   string  `json:"booking_link,omitempty" bson:"booking_link,omitempty"`
}

// GeneratedTrip — итог генерации; схема одинакова для AI и fallback путей.
type GeneratedTrip struct {
	ID                 string                       `json:"id" bson:"id"`
	UserID             string                       `json:"user_id,omitempty" bson:"user_id,omitempty"`
	Status             TripStatus                   `json:"status,omitempty" bson:"status,omitempty"`
	Title              string                       `json:"title" bson:"title"`
	DepartureLocation  string                       `json:"departure_location" bson:"departure_location"`
	Destinations       []string                     `json:"destinations" bson:"destinations"`
	StartDate          string                       `json:"start_date" bson:"start_date"`
	EndDate            string                       `json:"end_date" bson:"end_date"`
	Budget             float64                      `json:"budget" bson:"budget"`
	Currency           string                       `json:"currency" bson:"currency"`
	Travelers          TravelerDetails              `json:"travelers" bson:"travelers"`
	TotalDays          int                          `json:"total_days" bson:"total_days"`
	VisaRequirements   []VisaRequirement            `json:"visa_requirements" bson:"visa_requirements"`
	Flights            []FlightOption               `json:"flights" bson:"flights"`
	Hotels             []Hotel                      `json:"hotels,omitempty" bson:"hotels,omitempty"`
	Itinerary          []DayPlan                    `json:"itinerary" bson:"itinerary"`
	BookingLinks       map[string]map[string]string `json:"booking_links" bson:"booking_links"`
	TotalEstimatedCost float64                      `json:"total_estimated_cost" bson:"total_estimated_cost"`
	GenerationNote     string                       `json:"generation_note,omitempty" bson:"generation_note,omitempty"`
	CreatedAt          string                       `json:"created_at" bson:"created_at"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

type NewsletterSubscription struct {
	ID        string    `json:"id" bson:"id"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
