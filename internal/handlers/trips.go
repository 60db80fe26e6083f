package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/auth"
	"example.com/odyssey-travel/backend/internal/mailer"
	"example.com/odyssey-travel/backend/internal/models"
	"example.com/odyssey-travel/backend/internal/planner"
	"example.com/odyssey-travel/backend/internal/repository"
)

type TripHandler struct {
	Planner *planner.Planner
	Trips   *repository.TripRepository
	Mailer  *mailer.Dispatcher
}

// NewTripHandler создает обработчик генерации и управления поездками.
func NewTripHandler(p *planner.Planner, trips *repository.TripRepository, dispatcher *mailer.Dispatcher) *TripHandler {
	return &TripHandler{
		Planner: p,
		Trips:   trips,
		Mailer:  dispatcher,
	}
}

type UpdateStatusRequest struct {
	Status models.TripStatus `json:"status" validate:"required,oneof=planned in-progress completed"`
}

// Generate строит маршрут по запросу. Отказ LLM не виден клиенту:
// деградированный результат возвращается с тем же 200 и заметкой в теле.
func (h *TripHandler) Generate(c echo.Context) error {
	var req models.TripRequest
	if err := c.Bind(&req); err != nil {
		return unprocessable(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	if _, err := planner.TotalDays(req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]interface{}{
			"error":  "validation failed",
			"fields": map[string]string{"end_date": err.Error()},
		})
	}

	result, err := h.Planner.Generate(c.Request().Context(), req)
	if err != nil {
		return serverError(c)
	}

	if result.Source == planner.SourceFallback {
		slog.Warn("trip generated from template",
			slog.String("trip_id", result.Trip.ID),
			slog.String("reason", result.Reason),
		)
	} else {
		slog.Info("trip generated by ai", slog.String("trip_id", result.Trip.ID))
	}

	return c.JSON(http.StatusOK, result.Trip)
}

// Save сохраняет сгенерированную поездку за текущим пользователем.
func (h *TripHandler) Save(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	var trip models.GeneratedTrip
	if err := c.Bind(&trip); err != nil {
		return badRequest(c, "invalid payload")
	}

	if strings.TrimSpace(trip.ID) == "" {
		return badRequest(c, "trip id is required")
	}

	trip.UserID = userID
	trip.Status = models.TripStatusPlanned

	if err := h.Trips.Save(c.Request().Context(), trip); err != nil {
		return serverError(c)
	}

	if email, ok := auth.EmailFromContext(c); ok {
		h.Mailer.Enqueue(mailer.Email{
			To:      email,
			Subject: fmt.Sprintf("Your itinerary: %s", trip.Title),
			Body:    fmt.Sprintf("Your trip %q (%s - %s) has been saved. Safe travels!\n", trip.Title, trip.StartDate, trip.EndDate),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Trip saved successfully",
		"trip_id": trip.ID,
	})
}

// MyTrips возвращает поездки текущего пользователя.
func (h *TripHandler) MyTrips(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	trips, err := h.Trips.ListByUser(c.Request().Context(), userID)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, trips)
}

// Get возвращает поездку по идентификатору.
func (h *TripHandler) Get(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	trip, err := h.Trips.Get(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Trip not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, trip)
}

// Delete удаляет поездку.
func (h *TripHandler) Delete(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	if err := h.Trips.Delete(c.Request().Context(), c.Param("id"), userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Trip not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Trip deleted successfully"})
}

// UpdateStatus меняет статус поездки.
func (h *TripHandler) UpdateStatus(c echo.Context) error {
	userID, ok := auth.UserIDFromContext(c)
	if !ok {
		return unauthorized(c, "invalid token")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return unprocessable(c, err)
	}

	if err := h.Trips.UpdateStatus(c.Request().Context(), c.Param("id"), userID, req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "Trip not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Status updated successfully"})
}
