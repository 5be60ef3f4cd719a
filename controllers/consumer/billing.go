package consumer

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// GetMyInvoices returns the current user's invoices, newest first
func GetMyInvoices(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var invoices []models.Invoice
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoices).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch invoices",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoices)
}

// GetMyInvoice returns one of the current user's invoices by id
func GetMyInvoice(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	id := c.Params("id")
	var invoice models.Invoice
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&invoice).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Invoice not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(invoice)
}

// GetPayoutMethods lists the current user's saved payout methods
func GetPayoutMethods(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var methods []models.PayoutMethod
	if err := db.DB.Where("user_id = ?", userID).Find(&methods).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch payout methods",
			Error:   err.Error(),
		})
	}
	return c.JSON(methods)
}

// AddPayoutMethod saves a new payout method after per-type validation
func AddPayoutMethod(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	method := new(models.PayoutMethod)
	if err := c.BodyParser(method); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	method.ID = 0
	method.UserID = userID

	if err := method.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid payout method",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Create(method).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save payout method",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(method)
}

// DeletePayoutMethod removes one of the current user's payout methods
func DeletePayoutMethod(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	id := c.Params("id")
	var method models.PayoutMethod
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&method).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Payout method not found",
			Error:   err.Error(),
		})
	}

	if err := db.DB.Delete(&method).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete payout method",
			Error:   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "Payout method deleted successfully"})
}
