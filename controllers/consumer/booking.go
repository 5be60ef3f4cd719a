package consumer

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/camiloreyes/servimarket-app/availability"
	"github.com/camiloreyes/servimarket-app/db"
	"github.com/camiloreyes/servimarket-app/models"
	"github.com/camiloreyes/servimarket-app/utils"
)

// PaymentInput carries the simulated payment form. No gateway is called;
// the fields are only validated for completeness.
type PaymentInput struct {
	Method            string `json:"method"` // "pse", "debit" or "credit"
	Bank              string `json:"bank,omitempty"`
	AccountHolderName string `json:"account_holder_name,omitempty"`
	DocumentType      string `json:"document_type,omitempty"`
	DocumentNumber    string `json:"document_number,omitempty"`
	CardNumber        string `json:"card_number,omitempty"`
	CardExpiry        string `json:"card_expiry,omitempty"`
	CardCvv           string `json:"card_cvv,omitempty"`
	CardHolderName    string `json:"card_holder_name,omitempty"`
}

func (p *PaymentInput) validate() error {
	switch p.Method {
	case "pse":
		if p.Bank == "" || p.AccountHolderName == "" || p.DocumentType == "" || p.DocumentNumber == "" {
			return fmt.Errorf("all PSE fields are required")
		}
	case "debit", "credit":
		if p.CardNumber == "" || p.CardExpiry == "" || p.CardCvv == "" || p.CardHolderName == "" {
			return fmt.Errorf("all card fields are required")
		}
	default:
		return fmt.Errorf("a payment method is required")
	}
	return nil
}

// CreateBookingInput is the pay-and-confirm request. Facilities book a
// start slot plus an hour count; services book a start/end range.
type CreateBookingInput struct {
	ResourceKind  models.ResourceKind `json:"resource_kind"`
	ResourceID    uint                `json:"resource_id"`
	StartDate     string              `json:"start_date"` // "YYYY-MM-DD"
	StartTime     string              `json:"start_time"` // "HH:MM"
	EndDate       string              `json:"end_date,omitempty"`
	EndTime       string              `json:"end_time,omitempty"`
	DurationHours int                 `json:"duration_hours,omitempty"`
	Payment       PaymentInput        `json:"payment"`
}

// resourceInfo flattens a service or facility into the common fields the
// calculator and the booking record need; kind-specific fields stay on
// the listing.
type resourceInfo struct {
	weekly            availability.Weekly
	title             string
	rate              float64
	isHourly          bool
	location          string
	phone             string
	professionalName  string
	professionalEmail string
	providerID        uint
}

func facilityInfo(f *models.Facility) resourceInfo {
	phone := f.Phone
	if phone == "" {
		phone = f.Whatsapp
	}
	return resourceInfo{
		weekly:   f.Availability.Weekly(),
		title:    f.Name,
		rate:     f.Rate,
		isHourly: true, // facilities always bill per hour
		location: f.Location,
		phone:    phone,
		// the counterpart identity on the record is the owner, not the venue
		professionalName:  f.Provider.Name,
		professionalEmail: f.Provider.Email,
		providerID:        f.ProviderID,
	}
}

func serviceInfo(s *models.Service) resourceInfo {
	phone := s.Phone
	if phone == "" {
		phone = s.Whatsapp
	}
	return resourceInfo{
		weekly:            s.Availability.Weekly(),
		title:             s.Title,
		rate:              s.Rate,
		isHourly:          s.IsHourly(),
		location:          s.Location,
		phone:             phone,
		professionalName:  s.Provider.Name,
		professionalEmail: s.Provider.Email,
		providerID:        s.ProviderID,
	}
}

// bookingStore is the slice of *gorm.DB the confirmation writes use.
type bookingStore interface {
	Create(value interface{}) *gorm.DB
}

// confirmBooking persists the booking and then derives and persists its
// invoice. The writes are sequential and unwrapped: a failed booking
// insert returns before any invoice write, and a failed invoice write
// keeps the booking in place for retry. A nil invoice alongside an error
// means the booking itself was never recorded.
func confirmBooking(store bookingStore, booking *models.Booking, kind models.ResourceKind, now time.Time) (*models.Invoice, error) {
	if err := store.Create(booking).Error; err != nil {
		return nil, err
	}

	invoice := booking.NewInvoice(utils.GenerateInvoiceNumber(kind, now), now)
	if err := store.Create(&invoice).Error; err != nil {
		return &invoice, err
	}
	return &invoice, nil
}

// CreateBooking confirms a reservation and generates its invoice.
// Payment is simulated as always succeeding once the fields are complete.
func CreateBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in to book",
		})
	}

	input := new(CreateBookingInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if input.StartDate == "" || input.StartTime == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please select a date and time for the booking",
		})
	}
	if err := input.Payment.validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Incomplete payment details",
			Error:   err.Error(),
		})
	}

	loc := utils.Bogota()
	startDate, err := time.ParseInLocation("2006-01-02", input.StartDate, loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start date, use YYYY-MM-DD",
		})
	}

	var info resourceInfo
	switch input.ResourceKind {
	case models.KindFacility:
		var facility models.Facility
		if err := db.DB.Preload("Provider").First(&facility, input.ResourceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Facility not found",
				Error:   err.Error(),
			})
		}
		info = facilityInfo(&facility)
	case models.KindService:
		var service models.Service
		if err := db.DB.Preload("Provider").First(&service, input.ResourceID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Service not found",
				Error:   err.Error(),
			})
		}
		info = serviceInfo(&service)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown resource kind",
		})
	}

	now := utils.NowBogota()
	holidays := availability.HolidaysAround(now)

	// The start slot must still be bookable at confirmation time
	if availability.ClassifyDay(info.weekly, holidays, now, startDate) != availability.StatusAvailable {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The selected day is not available for booking",
		})
	}
	slotOpen := false
	for _, slot := range availability.SlotsForDay(info.weekly, startDate, now) {
		if slot == input.StartTime {
			slotOpen = true
			break
		}
	}
	if !slotOpen {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "The selected time slot is no longer available",
		})
	}

	start, err := availability.ParseSlot(startDate, input.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid start time, use HH:MM",
		})
	}

	var end time.Time
	switch {
	case input.EndDate != "" && input.EndTime != "":
		endDate, err := time.ParseInLocation("2006-01-02", input.EndDate, loc)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid end date, use YYYY-MM-DD",
			})
		}
		end, err = availability.ParseSlot(endDate, input.EndTime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid end time, use HH:MM",
			})
		}
	case input.DurationHours > 0:
		end = start.Add(time.Duration(input.DurationHours) * time.Hour)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Please select an end time or a duration",
		})
	}

	duration := availability.DurationBetween(start, end)
	if duration == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "End time must be after start time",
		})
	}

	amount := availability.Price(info.rate, info.isHourly, duration)
	orderNumber := utils.GenerateOrderNumber(input.ResourceKind, now)

	booking := models.Booking{
		OrderNumber:       orderNumber,
		ResourceKind:      input.ResourceKind,
		ResourceID:        input.ResourceID,
		ResourceTitle:     info.title,
		ProfessionalName:  info.professionalName,
		ProfessionalEmail: info.professionalEmail,
		ProfessionalPhone: info.phone,
		Location:          info.location,
		StartTime:         start,
		EndTime:           end,
		DurationHours:     duration,
		Amount:            amount,
		Status:            models.BookingStatusAccepted,
		UserID:            userID,
		ProviderID:        info.providerID,
	}

	invoice, err := confirmBooking(db.DB, &booking, input.ResourceKind, now)
	if err != nil {
		if invoice == nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save the booking, please try again",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Booking was recorded but the invoice could not be generated",
			Error:   err.Error(),
		})
	}

	var customer models.User
	if err := db.DB.First(&customer, userID).Error; err == nil {
		sendConfirmationEmails(&booking, &customer)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"booking": booking,
		"invoice": invoice,
	})
}

func sendConfirmationEmails(booking *models.Booking, customer *models.User) {
	details := fmt.Sprintf(`
		<ul>
			<li><strong>Booking:</strong> %s</li>
			<li><strong>Order number:</strong> %s</li>
			<li><strong>Start:</strong> %s</li>
			<li><strong>End:</strong> %s</li>
			<li><strong>Amount:</strong> $%.0f COP</li>
		</ul>`,
		booking.ResourceTitle, booking.OrderNumber,
		booking.StartTime.Format("2006-01-02 15:04"),
		booking.EndTime.Format("2006-01-02 15:04"),
		booking.Amount)

	customerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been confirmed and your invoice generated.</p>
		<p><strong>Details:</strong></p>%s
		<p>Thank you for choosing our service!</p>
		<p>Best regards,</p>
		<p>The Servimarket Team</p>`, customer.Name, details)
	if err := utils.SendEmail(customer.Email, "Booking Confirmation", customerBody); err != nil {
		log.Printf("Failed to send confirmation email for %s: %v", booking.OrderNumber, err)
	}

	if booking.ProfessionalEmail == "" {
		return
	}
	providerBody := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>You have a new confirmed booking from %s.</p>
		<p><strong>Details:</strong></p>%s
		<p>Best regards,</p>
		<p>The Servimarket Team</p>`, booking.ProfessionalName, customer.Name, details)
	if err := utils.SendEmail(booking.ProfessionalEmail, "New Booking Received", providerBody); err != nil {
		log.Printf("Failed to send provider email for %s: %v", booking.OrderNumber, err)
	}
}

// GetMyBookings returns the current user's bookings, newest first
func GetMyBookings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	var bookings []models.Booking
	if err := db.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}
	return c.JSON(bookings)
}

// GetMyBooking returns one of the current user's bookings by id
func GetMyBooking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(utils.ErrorResponse{
			Message: "You must be logged in",
		})
	}

	id := c.Params("id")
	var booking models.Booking
	if err := db.DB.Where("id = ? AND user_id = ?", id, userID).First(&booking).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}
