package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "pending"
	BookingStatusAccepted BookingStatus = "accepted"
)

type ResourceKind string

const (
	KindService  ResourceKind = "service"
	KindFacility ResourceKind = "facility"
)

// Booking is the confirmed outcome of a reservation. Created on a
// successful pay-and-confirm and immutable thereafter; there is no
// modify or cancel flow.
type Booking struct {
	gorm.Model
	OrderNumber       string        `json:"order_number" gorm:"unique"`
	ResourceKind      ResourceKind  `json:"resource_kind"`
	ResourceID        uint          `json:"resource_id"`
	ResourceTitle     string        `json:"resource_title"`
	ProfessionalName  string        `json:"professional_name"`
	ProfessionalEmail string        `json:"professional_email"`
	ProfessionalPhone string        `json:"professional_phone"`
	Location          string        `json:"location"`
	StartTime         time.Time     `json:"start_time"`
	EndTime           time.Time     `json:"end_time"`
	DurationHours     int           `json:"duration_hours"`
	Amount            float64       `json:"amount"`
	Status            BookingStatus `json:"status"`
	UserID            uint          `json:"user_id"`
	User              User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ProviderID        uint          `json:"provider_id"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	return nil
}

// Description renders the human-readable time range used on the paired
// invoice and in confirmation mail.
func (b *Booking) Description() string {
	plural := ""
	if b.DurationHours != 1 {
		plural = "s"
	}
	return fmt.Sprintf("Booking of %s for %s from %s to %s (%d hour%s)",
		b.ResourceTitle,
		b.StartTime.Format("2006-01-02"),
		b.StartTime.Format("15:04"),
		b.EndTime.Format("15:04"),
		b.DurationHours, plural)
}

// NewInvoice derives the invoice record for a confirmed booking. Payment
// is simulated as always succeeding, so invoices are born paid.
func (b *Booking) NewInvoice(invoiceNumber string, issuedAt time.Time) Invoice {
	return Invoice{
		InvoiceNumber: invoiceNumber,
		Date:          issuedAt.Format("2006-01-02"),
		Description:   b.Description(),
		Amount:        b.Amount,
		Status:        InvoiceStatusPaid,
		OrderNumber:   b.OrderNumber,
		BookingID:     b.ID,
		UserID:        b.UserID,
	}
}
