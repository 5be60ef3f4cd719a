package utils

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/camiloreyes/servimarket-app/models"
)

func kindTag(kind models.ResourceKind) string {
	if kind == models.KindFacility {
		return "FAC"
	}
	return "SVC"
}

// GenerateOrderNumber builds the unique order token for one confirmed
// booking/invoice pair. Timestamp-based; uniqueness only needs to hold
// within one user's booking stream.
func GenerateOrderNumber(kind models.ResourceKind, now time.Time) string {
	return fmt.Sprintf("ORD-%s-%d", kindTag(kind), now.UnixMilli())
}

// GenerateInvoiceNumber builds the invoice number paired with an order.
func GenerateInvoiceNumber(kind models.ResourceKind, now time.Time) string {
	return fmt.Sprintf("FACT-%s-%d", kindTag(kind), now.UnixMilli())
}

// GenerateUUID returns a random id for internal records.
func GenerateUUID() string {
	return uuid.NewString()
}
