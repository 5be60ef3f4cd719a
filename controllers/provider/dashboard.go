package provider

import (
	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// GetUpcomingBookings lists the provider's confirmed future bookings,
// soonest first
func GetUpcomingBookings(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Preload("User").
		Where("provider_id = ? AND status = ? AND start_time > ?",
			id, models.BookingStatusAccepted, utils.NowBogota()).
		Order("start_time ASC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch upcoming bookings",
			Error:   err.Error(),
		})
	}

	for i := range bookings {
		bookings[i].User.Password = ""
	}
	return c.JSON(bookings)
}

type monthlyRevenue struct {
	Month  string  `json:"month"`
	Total  float64 `json:"total"`
	Orders int64   `json:"orders"`
}

// GetDashboardStats summarizes the provider's business: booking counts,
// total revenue and a per-month breakdown of the paid invoices behind
// their bookings
func GetDashboardStats(c *fiber.Ctx) error {
	id, err := providerID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var totalBookings int64
	if err := db.DB.Model(&models.Booking{}).
		Where("provider_id = ?", id).
		Count(&totalBookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute dashboard stats",
			Error:   err.Error(),
		})
	}

	var upcoming int64
	if err := db.DB.Model(&models.Booking{}).
		Where("provider_id = ? AND status = ? AND start_time > ?",
			id, models.BookingStatusAccepted, utils.NowBogota()).
		Count(&upcoming).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute dashboard stats",
			Error:   err.Error(),
		})
	}

	var totalRevenue float64
	if err := db.DB.Model(&models.Invoice{}).
		Joins("JOIN bookings ON bookings.id = invoices.booking_id").
		Where("bookings.provider_id = ? AND invoices.status = ?",
			id, models.InvoiceStatusPaid).
		Select("COALESCE(SUM(invoices.amount), 0)").
		Scan(&totalRevenue).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute revenue",
			Error:   err.Error(),
		})
	}

	var byMonth []monthlyRevenue
	if err := db.DB.Model(&models.Invoice{}).
		Joins("JOIN bookings ON bookings.id = invoices.booking_id").
		Where("bookings.provider_id = ? AND invoices.status = ?",
			id, models.InvoiceStatusPaid).
		Select("to_char(invoices.created_at, 'YYYY-MM') AS month, " +
			"COALESCE(SUM(invoices.amount), 0) AS total, COUNT(*) AS orders").
		Group("to_char(invoices.created_at, 'YYYY-MM')").
		Order("month DESC").
		Limit(12).
		Scan(&byMonth).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to compute revenue breakdown",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"total_bookings":    totalBookings,
		"upcoming_bookings": upcoming,
		"total_revenue":     totalRevenue,
		"revenue_by_month":  byMonth,
	})
}
