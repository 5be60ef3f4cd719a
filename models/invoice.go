package models

import (
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoiceStatusPaid     InvoiceStatus = "paid"
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusRejected InvoiceStatus = "rejected"
)

// Invoice is derived 1:1 from a Booking at confirmation time and never
// mutated afterwards.
type Invoice struct {
	gorm.Model
	InvoiceNumber string        `json:"invoice_number" gorm:"unique"`
	Date          string        `json:"date"` // issue date, "YYYY-MM-DD"
	Description   string        `json:"description"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	OrderNumber   string        `json:"order_number"`
	BookingID     uint          `json:"booking_id"`
	Booking       Booking       `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	UserID        uint          `json:"user_id"`
}
