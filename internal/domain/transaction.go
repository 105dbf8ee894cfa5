package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one bank or card movement tied to a charge.
//
// DebitDate and BusinessID are nullable in storage but required by the
// ledger engine; ValidateForLedger rejects records missing either.
type Transaction struct {
	ID          string
	ChargeID    string
	Amount      decimal.Decimal
	Currency    string
	EventDate   time.Time
	DebitDate   *time.Time
	BusinessID  *string
	AccountID   string
	Description string
	Reference   string
}

// ValidateForLedger checks the fields the engine cannot default.
func (t *Transaction) ValidateForLedger() error {
	if t.DebitDate == nil {
		return &MissingFieldError{Kind: "transaction", ID: t.ID, Field: "debit_date"}
	}

	if t.BusinessID == nil || *t.BusinessID == "" {
		return &MissingFieldError{Kind: "transaction", ID: t.ID, Field: "business_id"}
	}

	return nil
}
