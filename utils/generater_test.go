package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/camiloreyes/servimarket-app/models"
)

func TestGenerateOrderNumber(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "ORD-FAC-1741617000000", GenerateOrderNumber(models.KindFacility, now))
	assert.Equal(t, "ORD-SVC-1741617000000", GenerateOrderNumber(models.KindService, now))
}

func TestGenerateInvoiceNumber(t *testing.T) {
	now := time.Date(2025, time.March, 10, 14, 30, 0, 0, time.UTC)

	assert.Equal(t, "FACT-FAC-1741617000000", GenerateInvoiceNumber(models.KindFacility, now))
	assert.Equal(t, "FACT-SVC-1741617000000", GenerateInvoiceNumber(models.KindService, now))
}
