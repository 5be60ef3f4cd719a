package provider

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

func providerID(c *fiber.Ctx) (uint, error) {
	id, ok := c.Locals("userID").(uint)
	if !ok {
		return 0, fmt.Errorf("missing user id in token")
	}
	return id, nil
}

// GetMyServices lists the provider's own service listings
func GetMyServices(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var services []models.Service
	if err := db.DB.Where("provider_id = ?", id).Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch services",
			Error:   err.Error(),
		})
	}
	return c.JSON(services)
}

// CreateService publishes a new service listing owned by the provider
func CreateService(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	service := new(models.Service)
	if err := c.BodyParser(service); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if service.Title == "" || service.Category == "" || service.Rate <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Title, category and a positive rate are required",
		})
	}

	service.ID = 0
	service.ProviderID = id
	service.Rating = 0

	if err := db.DB.Create(service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create service",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService edits one of the provider's own service listings
func UpdateService(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), id).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Service)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Title != "" {
		service.Title = input.Title
	}
	if input.Description != "" {
		service.Description = input.Description
	}
	if input.Category != "" {
		service.Category = input.Category
	}
	if input.Rate > 0 {
		service.Rate = input.Rate
	}
	if input.Location != "" {
		service.Location = input.Location
	}
	if input.Phone != "" {
		service.Phone = input.Phone
	}
	if input.Whatsapp != "" {
		service.Whatsapp = input.Whatsapp
	}
	if input.Availability != nil {
		service.Availability = input.Availability
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update service",
			Error:   err.Error(),
		})
	}
	return c.JSON(service)
}

// DeleteService removes one of the provider's own service listings
func DeleteService(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var service models.Service
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), id).
		First(&service).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete service",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Service deleted successfully"})
}

// GetMyFacilities lists the provider's own facility listings
func GetMyFacilities(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var facilities []models.Facility
	if err := db.DB.Where("provider_id = ?", id).Find(&facilities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch facilities",
			Error:   err.Error(),
		})
	}
	return c.JSON(facilities)
}

// CreateFacility publishes a new facility listing owned by the provider
func CreateFacility(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	facility := new(models.Facility)
	if err := c.BodyParser(facility); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if facility.Name == "" || facility.Rate <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Name and a positive hourly rate are required",
		})
	}

	facility.ID = 0
	facility.ProviderID = id
	facility.Rating = 0

	if err := db.DB.Create(facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create facility",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(facility)
}

// UpdateFacility edits one of the provider's own facility listings
func UpdateFacility(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var facility models.Facility
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), id).
		First(&facility).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}

	input := new(models.Facility)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		facility.Name = input.Name
	}
	if input.Type != "" {
		facility.Type = input.Type
	}
	if input.Description != "" {
		facility.Description = input.Description
	}
	if input.Category != "" {
		facility.Category = input.Category
	}
	if input.Rate > 0 {
		facility.Rate = input.Rate
	}
	if input.Location != "" {
		facility.Location = input.Location
	}
	if input.Phone != "" {
		facility.Phone = input.Phone
	}
	if input.Whatsapp != "" {
		facility.Whatsapp = input.Whatsapp
	}
	if input.Amenities != "" {
		facility.Amenities = input.Amenities
	}
	if input.Availability != nil {
		facility.Availability = input.Availability
	}

	if err := db.DB.Save(&facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update facility",
			Error:   err.Error(),
		})
	}
	return c.JSON(facility)
}

// DeleteFacility removes one of the provider's own facility listings
func DeleteFacility(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var facility models.Facility
	if err := db.DB.Where("id = ? AND provider_id = ?", c.Params("id"), id).
		First(&facility).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Facility not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&facility).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete facility",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Facility deleted successfully"})
}

// UploadListingImage stores a listing photo on Cloudinary and saves the
// URL on the owned listing. Kind comes from the route.
func UploadListingImage(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	kind := models.ResourceKind(c.Params("kind"))
	if kind != models.KindService && kind != models.KindFacility {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown resource kind",
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No image file provided",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	// Fresh public id per upload so CDN caches never serve the old photo
	url, err := utils.UploadToCloudinary(file,
		fmt.Sprintf("%s_%s_%s", kind, c.Params("id"), utils.GenerateUUID()), "listings")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	var tx = db.DB
	if kind == models.KindFacility {
		tx = tx.Model(&models.Facility{})
	} else {
		tx = tx.Model(&models.Service{})
	}
	result := tx.Where("id = ? AND provider_id = ?", c.Params("id"), id).
		Update("image_url", url)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   result.Error.Error(),
		})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
		})
	}
	return c.JSON(fiber.Map{"image_url": url})
}
