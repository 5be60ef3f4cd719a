package consumer

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/camiloreyes/servimarket-app/models"
)

// stubStore records every Create attempt and fails the ones it is told to.
type stubStore struct {
	failBooking bool
	failInvoice bool
	attempts    []interface{}
}

func (s *stubStore) Create(value interface{}) *gorm.DB {
	s.attempts = append(s.attempts, value)

	tx := &gorm.DB{}
	switch value.(type) {
	case *models.Booking:
		if s.failBooking {
			tx.Error = errors.New("booking insert failed")
		}
	case *models.Invoice:
		if s.failInvoice {
			tx.Error = errors.New("invoice insert failed")
		}
	}
	return tx
}

func sampleBooking() models.Booking {
	return models.Booking{
		OrderNumber:   "ORD-FAC-1741617000000",
		ResourceKind:  models.KindFacility,
		ResourceTitle: "Cancha Sintética El Golazo",
		StartTime:     time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2025, time.June, 10, 11, 0, 0, 0, time.UTC),
		DurationHours: 2,
		Amount:        160000,
		Status:        models.BookingStatusAccepted,
		UserID:        7,
	}
}

// A failed booking insert must return before any invoice write happens.
func TestConfirmBooking_FailedBookingWritesNoInvoice(t *testing.T) {
	store := &stubStore{failBooking: true}
	booking := sampleBooking()

	invoice, err := confirmBooking(store, &booking, models.KindFacility, time.Now())

	require.Error(t, err)
	assert.Nil(t, invoice)
	require.Len(t, store.attempts, 1)
	assert.IsType(t, &models.Booking{}, store.attempts[0])
}

// An invoice failure surfaces the error but keeps the booking; the
// returned invoice marks that the booking write already went through.
func TestConfirmBooking_InvoiceFailureKeepsBooking(t *testing.T) {
	store := &stubStore{failInvoice: true}
	booking := sampleBooking()

	invoice, err := confirmBooking(store, &booking, models.KindFacility, time.Now())

	require.Error(t, err)
	require.NotNil(t, invoice)
	require.Len(t, store.attempts, 2)
	assert.IsType(t, &models.Booking{}, store.attempts[0])
	assert.IsType(t, &models.Invoice{}, store.attempts[1])
}

func TestConfirmBooking_PairsInvoiceWithBooking(t *testing.T) {
	store := &stubStore{}
	booking := sampleBooking()
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	invoice, err := confirmBooking(store, &booking, models.KindFacility, now)

	require.NoError(t, err)
	require.NotNil(t, invoice)
	assert.Equal(t, "FACT-FAC-1741617000000", invoice.InvoiceNumber)
	assert.Equal(t, booking.OrderNumber, invoice.OrderNumber)
	assert.Equal(t, models.InvoiceStatusPaid, invoice.Status)
}

func TestFacilityInfo_UsesProviderIdentity(t *testing.T) {
	facility := models.Facility{
		Name:       "Cancha Sintética El Golazo",
		Rate:       80000,
		Location:   "Chapinero, Bogotá",
		Whatsapp:   "3001234567",
		ProviderID: 3,
		Provider:   models.User{Name: "Carlos Ruiz", Email: "carlos@example.com"},
	}

	info := facilityInfo(&facility)

	assert.Equal(t, "Cancha Sintética El Golazo", info.title)
	assert.Equal(t, "Carlos Ruiz", info.professionalName)
	assert.Equal(t, "carlos@example.com", info.professionalEmail)
	assert.Equal(t, "3001234567", info.phone) // whatsapp fallback
	assert.True(t, info.isHourly)
	assert.Equal(t, uint(3), info.providerID)
}

func TestServiceInfo_HourlyFollowsCategory(t *testing.T) {
	provider := models.User{Name: "Ana Pérez", Email: "ana@example.com"}

	hourly := models.Service{Title: "Entrenamiento funcional", Category: "Entrenador Personal", Phone: "3017654321", Provider: provider}
	flat := models.Service{Title: "Reparación de computadores", Category: "Tecnología", Provider: provider}

	assert.True(t, serviceInfo(&hourly).isHourly)
	assert.False(t, serviceInfo(&flat).isHourly)
	assert.Equal(t, "Ana Pérez", serviceInfo(&hourly).professionalName)
	assert.Equal(t, "3017654321", serviceInfo(&hourly).phone)
}
