package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Description(t *testing.T) {
	b := Booking{
		ResourceTitle: "Cancha Sintética El Golazo",
		StartTime:     time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, time.June, 10, 11, 0, 0, 0, time.UTC),
		DurationHours: 2,
	}
	assert.Equal(t,
		"Booking of Cancha Sintética El Golazo for 2025-06-10 from 09:00 to 11:00 (2 hours)",
		b.Description())

	b.EndTime = time.Date(2025, time.June, 10, 10, 0, 0, 0, time.UTC)
	b.DurationHours = 1
	assert.Contains(t, b.Description(), "(1 hour)")
}

func TestBooking_NewInvoicePairsWithBooking(t *testing.T) {
	b := Booking{
		OrderNumber:   "ORD-FAC-1749550000000",
		ResourceTitle: "Gimnasio Cuerpo Activo",
		StartTime:     time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
		DurationHours: 3,
		Amount:        45000,
		Status:        BookingStatusAccepted,
		UserID:        7,
	}

	inv := b.NewInvoice("FACT-FAC-1749550000000", time.Date(2025, time.June, 10, 12, 30, 0, 0, time.UTC))

	// The invoice must point back at the exact booking it was derived from
	// and carry its time range in the description.
	assert.Equal(t, b.OrderNumber, inv.OrderNumber)
	assert.Equal(t, b.UserID, inv.UserID)
	assert.Equal(t, b.Amount, inv.Amount)
	assert.Equal(t, InvoiceStatusPaid, inv.Status)
	assert.Equal(t, "2025-06-10", inv.Date)
	assert.Contains(t, inv.Description, "Gimnasio Cuerpo Activo")
	assert.Contains(t, inv.Description, "from 09:00 to 12:00")
	assert.Contains(t, inv.Description, "2025-06-10")
}

func TestService_IsHourly(t *testing.T) {
	hourly := Service{Category: "Entrenador Personal"}
	flat := Service{Category: "Tecnología"}
	assert.True(t, hourly.IsHourly())
	assert.False(t, flat.IsHourly())
}

func TestPayoutMethod_Validate(t *testing.T) {
	ok := PayoutMethod{Type: PayoutNequi, AccountNumber: "3001234567", AccountHolderName: "Ana Pérez"}
	assert.NoError(t, ok.Validate())

	missing := PayoutMethod{Type: PayoutBancolombia, AccountNumber: "123"}
	assert.Error(t, missing.Validate())

	paypal := PayoutMethod{Type: PayoutPaypal, PaypalEmail: "ana@example.com"}
	assert.NoError(t, paypal.Validate())

	unknown := PayoutMethod{Type: "cash"}
	assert.Error(t, unknown.Validate())
}
