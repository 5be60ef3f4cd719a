package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/controllers"
	"github.com/camiloreyes/servimarket-app/middleware"
)

// SetupAuthRoutes registers registration, login and session routes
func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", controllers.Register)
	auth.Post("/login", controllers.Login)
	auth.Post("/refresh", controllers.RefreshToken)

	auth.Get("/me", middleware.Protected(), controllers.GetUserProfile)
	auth.Get("/user/:id", middleware.Protected(), controllers.GetUserByID)
	auth.Post("/logout", middleware.Protected(), controllers.Logout)
}
