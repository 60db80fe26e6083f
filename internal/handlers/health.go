package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root возвращает баннер сервиса.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Odyssey API - AI Travel Planning",
		"status":  "online",
	})
}

// Health возвращает статус сервиса.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "odyssey-api",
	})
}
