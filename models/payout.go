package models

import (
	"fmt"

	"gorm.io/gorm"
)

type PayoutMethodType string

const (
	PayoutBancolombia PayoutMethodType = "bancolombia"
	PayoutNequi       PayoutMethodType = "nequi"
	PayoutPaypal      PayoutMethodType = "paypal"
)

// PayoutMethod is a saved destination for provider withdrawals. Colombian
// methods carry an account number, PayPal carries an email.
type PayoutMethod struct {
	gorm.Model
	Type              PayoutMethodType `json:"type"`
	AccountNumber     string           `json:"account_number,omitempty"`
	AccountHolderName string           `json:"account_holder_name,omitempty"`
	PaypalEmail       string           `json:"paypal_email,omitempty"`
	UserID            uint             `json:"user_id"`
}

// Validate checks the fields required by the method type.
func (p *PayoutMethod) Validate() error {
	switch p.Type {
	case PayoutBancolombia, PayoutNequi:
		if p.AccountNumber == "" || p.AccountHolderName == "" {
			return fmt.Errorf("account number and holder name are required for %s", p.Type)
		}
	case PayoutPaypal:
		if p.PaypalEmail == "" {
			return fmt.Errorf("paypal email is required")
		}
	default:
		return fmt.Errorf("unknown payout method type: %s", p.Type)
	}
	return nil
}
