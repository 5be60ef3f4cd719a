package consumer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/camiloreyes/servimarket-app/availability"
	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/redis"
	"github.com/camiloreyes/servimarket-app/utils"
)

// Month classifications change only at day boundaries except for the
// current day, so a short cache keeps calendar browsing cheap without
// serving stale same-day data for long.
const availabilityCacheTTL = 60 * time.Second

func weeklyForResource(kind models.ResourceKind, id string) (availability.Weekly, error) {
	switch kind {
	case models.KindFacility:
		var facility models.Facility
		if err := db.DB.First(&facility, id).Error; err != nil {
			return nil, err
		}
		return facility.Availability.Weekly(), nil
	default:
		var service models.Service
		if err := db.DB.First(&service, id).Error; err != nil {
			return nil, err
		}
		return service.Availability.Weekly(), nil
	}
}

func monthAvailability(c *fiber.Ctx, kind models.ResourceKind) error {
	id := c.Params("id")
	now := utils.NowBogota()

	monthStr := c.Query("month", now.Format("2006-01"))
	monthStart, err := time.ParseInLocation("2006-01", monthStr, utils.Bogota())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid month format, use YYYY-MM",
		})
	}

	cacheKey := fmt.Sprintf("availability:%s:%s:%s", kind, id, monthStr)
	if cached, err := redis.Client.Get(redis.Ctx, cacheKey).Result(); err == nil {
		var days map[string]availability.DayStatus
		if json.Unmarshal([]byte(cached), &days) == nil {
			return c.JSON(fiber.Map{"month": monthStr, "days": days})
		}
	}

	weekly, err := weeklyForResource(kind, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
			Error:   err.Error(),
		})
	}

	holidays := availability.HolidaysAround(now)
	days := availability.ClassifyMonth(weekly, holidays, now, monthStart.Year(), monthStart.Month(), nil)
	if kind == models.KindService {
		// Service browsing only distinguishes available vs occupied
		days = availability.Collapse(days)
	}

	if payload, err := json.Marshal(days); err == nil {
		redis.Client.Set(redis.Ctx, cacheKey, payload, availabilityCacheTTL)
	}

	return c.JSON(fiber.Map{"month": monthStr, "days": days})
}

// GetServiceAvailability classifies every day of a month for a service
func GetServiceAvailability(c *fiber.Ctx) error {
	return monthAvailability(c, models.KindService)
}

// GetFacilityAvailability classifies every day of a month for a facility
func GetFacilityAvailability(c *fiber.Ctx) error {
	return monthAvailability(c, models.KindFacility)
}

func daySlots(c *fiber.Ctx, kind models.ResourceKind) error {
	id := c.Params("id")
	dateStr := c.Query("date")

	date, err := time.ParseInLocation("2006-01-02", dateStr, utils.Bogota())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date format, use YYYY-MM-DD",
		})
	}

	weekly, err := weeklyForResource(kind, id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Listing not found",
			Error:   err.Error(),
		})
	}

	// Slot filtering must always use a fresh now so that slots elapsing
	// during a long-lived page view drop out; this endpoint is never cached.
	now := utils.NowBogota()
	holidays := availability.HolidaysAround(now)

	status := availability.ClassifyDay(weekly, holidays, now, date)
	slots := []string{}
	if status == availability.StatusAvailable || status == availability.StatusPartial {
		slots = availability.SlotsForDay(weekly, date, now)
	}

	return c.JSON(fiber.Map{
		"date":   dateStr,
		"status": status,
		"slots":  slots,
	})
}

// GetServiceSlots returns the remaining bookable start times for a service on a date
func GetServiceSlots(c *fiber.Ctx) error {
	return daySlots(c, models.KindService)
}

// GetFacilitySlots returns the remaining bookable start times for a facility on a date
func GetFacilitySlots(c *fiber.Ctx) error {
	return daySlots(c, models.KindFacility)
}
