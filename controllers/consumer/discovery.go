package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// GetAllServices returns service listings, optionally filtered by
// category and location
func GetAllServices(c *fiber.Ctx) error {
	query := db.DB.Preload("Provider")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}

	var services []models.Service
	if err := query.Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetService returns details for a specific service listing
func GetService(c *fiber.Ctx) error {
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Provider").First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}
	service.Provider.Password = ""
	return c.JSON(service)
}

// SearchServices searches listings by title or description
func SearchServices(c *fiber.Ctx) error {
	q := c.Query("q")
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Search query is required",
		})
	}

	var services []models.Service
	if err := db.DB.Preload("Provider").
		Where("title ILIKE ? OR description ILIKE ?", "%"+q+"%", "%"+q+"%").
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to search services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetServicesByCategory returns every service in one category
func GetServicesByCategory(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Provider").
		Where("category = ?", c.Params("category")).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetFeaturedServices returns the best rated listings for the landing page
func GetFeaturedServices(c *fiber.Ctx) error {
	var services []models.Service
	if err := db.DB.Preload("Provider").
		Order("rating DESC").
		Limit(6).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch featured services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// GetAllFacilities returns facility listings, optionally filtered by
// category, location and maximum hourly rate
func GetAllFacilities(c *fiber.Ctx) error {
	query := db.DB.Preload("Provider")

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if location := c.Query("location"); location != "" {
		query = query.Where("location ILIKE ?", "%"+location+"%")
	}
	if maxRate := c.QueryFloat("max_rate"); maxRate > 0 {
		query = query.Where("rate <= ?", maxRate)
	}

	var facilities []models.Facility
	if err := query.Find(&facilities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch facilities",
			Error:   err.Error(),
		})
	}
	return c.JSON(facilities)
}

// GetFacility returns details for a specific facility
func GetFacility(c *fiber.Ctx) error {
	id := c.Params("id")

	var facility models.Facility
	if err := db.DB.Preload("Provider").First(&facility, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}
	facility.Provider.Password = ""
	return c.JSON(facility)
}
