package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType classifies a commercial document.
type DocumentType string

const (
	DocumentTypeInvoice        DocumentType = "invoice"
	DocumentTypeReceipt        DocumentType = "receipt"
	DocumentTypeInvoiceReceipt DocumentType = "invoice_receipt"
	DocumentTypeCreditInvoice  DocumentType = "credit_invoice"
)

// Document is one commercial document (invoice/receipt) tied to a charge.
//
// TotalAmount is always a positive magnitude; direction is derived from
// whether the charge owner is the debtor or the creditor.
type Document struct {
	ID          string
	ChargeID    string
	Type        DocumentType
	Date        *time.Time
	DebtorID    *string
	CreditorID  *string
	TotalAmount *decimal.Decimal
	Currency    string
	VATAmount   *decimal.Decimal
	Serial      string
}

// ValidateForLedger checks the fields the engine cannot default. The
// storage layer allows nulls on most of these; the engine does not.
func (d *Document) ValidateForLedger(ownerID string) error {
	if d.Date == nil {
		return &MissingFieldError{Kind: "document", ID: d.ID, Field: "date"}
	}

	if d.DebtorID == nil || *d.DebtorID == "" {
		return &MissingFieldError{Kind: "document", ID: d.ID, Field: "debtor_id"}
	}

	if d.CreditorID == nil || *d.CreditorID == "" {
		return &MissingFieldError{Kind: "document", ID: d.ID, Field: "creditor_id"}
	}

	if d.TotalAmount == nil {
		return &MissingFieldError{Kind: "document", ID: d.ID, Field: "total_amount"}
	}

	if d.Currency == "" {
		return &MissingFieldError{Kind: "document", ID: d.ID, Field: "currency"}
	}

	if *d.DebtorID == *d.CreditorID {
		return &DocumentPartyError{DocumentID: d.ID, Reason: "debtor and creditor are the same entity"}
	}

	if *d.DebtorID != ownerID && *d.CreditorID != ownerID {
		return &DocumentPartyError{DocumentID: d.ID, Reason: "neither debtor nor creditor is the charge owner"}
	}

	return nil
}

// VATMagnitude returns the absolute VAT amount, zero when none is set.
func (d *Document) VATMagnitude() decimal.Decimal {
	if d.VATAmount == nil {
		return decimal.Zero
	}

	return d.VATAmount.Abs()
}
