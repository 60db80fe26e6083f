package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"example.com/odyssey-travel/backend/internal/ai"
	"example.com/odyssey-travel/backend/internal/models"
)

const dateLayout = "2006-01-02"

const fallbackNote = "AI generation was unavailable, so this itinerary was built from a standard template. Costs are budget-proportional estimates."

type Source string

const (
	SourceAI       Source = "ai"
	SourceFallback Source = "fallback"
)

// Result несет сгенерированный маршрут вместе с источником. Отказ LLM не
// является ошибкой для вызывающей стороны: он выражается Source=fallback.
type Result struct {
	Trip   models.GeneratedTrip
	Source Source
	Reason string
}

type Planner struct {
	client ai.Client
	now    func() time.Time
	newID  func() string
}

// New создает планировщик. client может быть nil — тогда используется
// только шаблонная генерация.
func New(client ai.Client) *Planner {
	return &Planner{
		client: client,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// TotalDays возвращает длительность поездки в днях, включая обе даты.
func TotalDays(req models.TripRequest) (int, error) {
	start, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start_date: %w", err)
	}

	end, err := time.Parse(dateLayout, req.EndDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end_date: %w", err)
	}

	if end.Before(start) {
		return 0, errors.New("end_date must not be before start_date")
	}

	return int(end.Sub(start).Hours()/24) + 1, nil
}

// Generate выполняет один проход пайплайна: промпт → LLM → разбор →
// сборка. Любой отказ на AI-пути переводит запрос на fallback-генератор,
// поэтому для валидного запроса метод не возвращает ошибку генерации.
func (p *Planner) Generate(ctx context.Context, req models.TripRequest) (Result, error) {
	totalDays, err := TotalDays(req)
	if err != nil {
		return Result{}, err
	}

	if p.client == nil {
		return p.degrade(req, totalDays, "ai disabled"), nil
	}

	totalTravelers := req.Travelers.Total()
	prompt := BuildPrompt(req, totalDays, totalTravelers)

	messages := []ai.Message{
		{Role: "system", Content: systemMessage},
		{Role: "user", Content: prompt},
	}

	content, _, err := p.client.Chat(ctx, messages)
	if err != nil {
		return p.degrade(req, totalDays, err.Error()), nil
	}

	trip, err := parseTrip(content, req.Budget, totalDays)
	if err != nil {
		return p.degrade(req, totalDays, err.Error()), nil
	}

	return Result{
		Trip:   p.assemble(trip, req, totalDays),
		Source: SourceAI,
	}, nil
}

func (p *Planner) degrade(req models.TripRequest, totalDays int, reason string) Result {
	slog.Warn("trip generation fell back to template", slog.String("reason", reason))

	trip := buildFallbackTrip(req, totalDays)
	trip.GenerationNote = fallbackNote

	return Result{
		Trip:   p.assemble(trip, req, totalDays),
		Source: SourceFallback,
		Reason: reason,
	}
}

// assemble штампует идентификатор, эхо-поля запроса и отметку времени.
// Схема результата не зависит от пути генерации.
func (p *Planner) assemble(trip models.GeneratedTrip, req models.TripRequest, totalDays int) models.GeneratedTrip {
	trip.ID = p.newID()
	trip.DepartureLocation = req.DepartureLocation
	trip.Destinations = req.Destinations
	trip.StartDate = req.StartDate
	trip.EndDate = req.EndDate
	trip.Budget = req.Budget
	trip.Currency = req.Currency
	trip.Travelers = req.Travelers
	trip.TotalDays = totalDays
	trip.CreatedAt = p.now().UTC().Format(time.RFC3339)

	// Нумерация и даты дней выравниваются по запросу независимо от того,
	// что вернула модель.
	start, _ := time.Parse(dateLayout, req.StartDate)
	for i := range trip.Itinerary {
		trip.Itinerary[i].DayNumber = i + 1
		trip.Itinerary[i].Date = start.AddDate(0, 0, i).Format(dateLayout)
	}

	if trip.BookingLinks == nil {
		trip.BookingLinks = defaultBookingLinks()
	}

	return trip
}
