package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/controllers"
	"github.com/camiloreyes/servimarket-app/controllers/consumer"
	"github.com/camiloreyes/servimarket-app/middleware"
)

// SetupConsumerRoutes registers the authenticated customer surface:
// bookings, invoices, payout methods, favorites and profile
func SetupConsumerRoutes(app *fiber.App) {
	group := app.Group("/consumer", middleware.Protected())

	group.Post("/bookings", consumer.CreateBooking)
	group.Get("/bookings", consumer.GetMyBookings)
	group.Get("/bookings/:id", consumer.GetMyBooking)

	group.Get("/invoices", consumer.GetMyInvoices)
	group.Get("/invoices/:id", consumer.GetMyInvoice)

	group.Get("/payout-methods", consumer.GetPayoutMethods)
	group.Post("/payout-methods", consumer.AddPayoutMethod)
	group.Delete("/payout-methods/:id", consumer.DeletePayoutMethod)

	group.Get("/favorites", consumer.GetFavorites)
	group.Post("/favorites/:id", consumer.AddFavorite)
	group.Delete("/favorites/:id", consumer.RemoveFavorite)

	group.Get("/profile", controllers.GetUserProfile)
	group.Patch("/profile", consumer.UpdateProfile)
	group.Post("/profile/picture", consumer.UploadProfilePicture)

	group.Post("/reviews", consumer.CreateReview)
}
