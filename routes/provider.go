package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/controllers/provider"
	"github.com/camiloreyes/servimarket-app/middleware"
	"github.com/camiloreyes/servimarket-app/models"
)

// SetupProviderRoutes registers the provider back office: listing
// management, upcoming bookings and the revenue dashboard
func SetupProviderRoutes(app *fiber.App) {
	group := app.Group("/provider",
		middleware.Protected(), middleware.RequireRole(models.RoleProvider))

	group.Get("/services", provider.GetMyServices)
	group.Post("/services", provider.CreateService)
	group.Put("/services/:id", provider.UpdateService)
	group.Delete("/services/:id", provider.DeleteService)

	group.Get("/facilities", provider.GetMyFacilities)
	group.Post("/facilities", provider.CreateFacility)
	group.Put("/facilities/:id", provider.UpdateFacility)
	group.Delete("/facilities/:id", provider.DeleteFacility)

	group.Post("/listings/:kind/:id/photo", provider.UploadListingImage)

	group.Get("/dashboard/upcoming", provider.GetUpcomingBookings)
	group.Get("/dashboard/revenue", provider.GetDashboardStats)
}
