package server

import (
	"github.com/labstack/echo/v4"

	"example.com/odyssey-travel/backend/internal/handlers"
)

func registerRoutes(
	e *echo.Echo,
	authHandler *handlers.AuthHandler,
	tripHandler *handlers.TripHandler,
	refDataHandler *handlers.RefDataHandler,
	contactHandler *handlers.ContactHandler,
	authMiddleware echo.MiddlewareFunc,
	authRateLimiter echo.MiddlewareFunc,
	generateRateLimiter echo.MiddlewareFunc,
) {
	api := e.Group("/api")

	api.GET("/", handlers.Root)
	api.GET("/health", handlers.Health)

	authGroup := api.Group("/auth", authRateLimiter)
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.GET("/me", authHandler.Me, authMiddleware)

	trips := api.Group("/trips")
	trips.POST("/generate", tripHandler.Generate, generateRateLimiter)
	trips.POST("/save", tripHandler.Save, authMiddleware)
	trips.GET("/my-trips", tripHandler.MyTrips, authMiddleware)
	trips.GET("/:id", tripHandler.Get, authMiddleware)
	trips.DELETE("/:id", tripHandler.Delete, authMiddleware)
	trips.PATCH("/:id/status", tripHandler.UpdateStatus, authMiddleware)

	api.GET("/countries", refDataHandler.Countries)
	api.GET("/currencies", refDataHandler.Currencies)
	api.GET("/convert-currency", refDataHandler.ConvertCurrency)
	api.GET("/autocomplete/cities", refDataHandler.AutocompleteCities)
	api.GET("/airports/:city", refDataHandler.Airports)
	api.GET("/visa-requirements", refDataHandler.VisaRequirements)
	api.GET("/insurance-providers", refDataHandler.InsuranceProviders)
	api.GET("/baggage-info/:class", refDataHandler.BaggageInfo)
	api.GET("/packing-list/:style", refDataHandler.PackingList)
	api.GET("/destinations/popular", refDataHandler.PopularDestinations)

	api.POST("/contact", contactHandler.Submit)
	api.POST("/newsletter/subscribe", contactHandler.Subscribe)
}
