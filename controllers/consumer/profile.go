package consumer

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// UpdateProfileInput is the set of fields a user can change themselves
type UpdateProfileInput struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// UpdateProfile updates the current user's name and phone
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	input := new(UpdateProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var user models.User
	if err := db.DB.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}

	if err := db.DB.Save(&user).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	user.Password = ""
	return c.JSON(user)
}

// UploadProfilePicture stores a new profile picture on Cloudinary and
// saves the returned URL on the user
func UploadProfilePicture(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "No picture file provided",
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

	url, err := utils.UploadToCloudinary(file, fmt.Sprintf("user_%d", userID), "profile_pictures")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload picture",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Model(&models.User{}).Where("id = ?", userID).
		Update("profile_picture", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save picture URL",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{"profile_picture": url})
}

// GetFavorites lists the current user's favorite services
func GetFavorites(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var user models.User
	if err := db.DB.Preload("FavoriteServices").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "User not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(user.FavoriteServices)
}

// AddFavorite marks a service as a favorite of the current user
func AddFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	user := models.User{ID: userID}
	if err := db.DB.Model(&user).Association("FavoriteServices").Append(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to add favorite",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Service added to favorites"})
}

// RemoveFavorite removes a service from the current user's favorites
func RemoveFavorite(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var service models.Service
	if err := db.DB.First(&service, c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	user := models.User{ID: userID}
	if err := db.DB.Model(&user).Association("FavoriteServices").Delete(&service); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to remove favorite",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Service removed from favorites"})
}
