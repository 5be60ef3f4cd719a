package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/controllers/consumer"
)

// SetupCatalogRoutes registers the public browsing surface: listings,
// availability calendars, slot lookups and reviews
func SetupCatalogRoutes(app *fiber.App) {
	services := app.Group("/services")
	services.Get("/", consumer.GetAllServices)
	services.Get("/search", consumer.SearchServices)
	services.Get("/featured", consumer.GetFeaturedServices)
	services.Get("/categories/:category", consumer.GetServicesByCategory)
	services.Get("/:id", consumer.GetService)
	services.Get("/:id/availability", consumer.GetServiceAvailability)
	services.Get("/:id/slots", consumer.GetServiceSlots)

	facilities := app.Group("/facilities")
	facilities.Get("/", consumer.GetAllFacilities)
	facilities.Get("/:id", consumer.GetFacility)
	facilities.Get("/:id/availability", consumer.GetFacilityAvailability)
	facilities.Get("/:id/slots", consumer.GetFacilitySlots)

	app.Get("/reviews/:kind/:id", consumer.GetReviews)
}
