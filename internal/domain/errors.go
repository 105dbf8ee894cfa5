package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors. The typed errors below unwrap to these so callers
// can branch with errors.Is without inspecting concrete types.
var (
	ErrChargeNotFound = errors.New("charge not found")

	ErrMissingField         = errors.New("required field is missing")
	ErrMissingMapping       = errors.New("no tax category configured")
	ErrMissingRate          = errors.New("no exchange rate for date")
	ErrUnbalancedConversion = errors.New("conversion charge does not self-balance")
	ErrUnbalanceable        = errors.New("charge residual has no exchange-rate justification")
	ErrMalformedEntry       = errors.New("malformed ledger entry")
	ErrInvalidDocument      = errors.New("invalid document parties")
)

// MissingFieldError reports a null required attribute on a transaction
// or document. Always fatal for the charge; never defaulted.
type MissingFieldError struct {
	Kind  string
	ID    string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s %s: required field %q is missing", e.Kind, e.ID, e.Field)
}

func (e *MissingFieldError) Unwrap() error { return ErrMissingField }

// MissingMappingError reports an account/currency pair, a charge, or a
// well-known category kind with no configured tax category.
type MissingMappingError struct {
	AccountID string
	Currency  string
	ChargeID  string
	Kind      string
}

func (e *MissingMappingError) Error() string {
	if e.ChargeID != "" {
		return fmt.Sprintf("charge %s: no tax category configured", e.ChargeID)
	}

	if e.Kind != "" {
		return fmt.Sprintf("no %s tax category configured", e.Kind)
	}

	return fmt.Sprintf("account %s (%s): no tax category configured", e.AccountID, e.Currency)
}

func (e *MissingMappingError) Unwrap() error { return ErrMissingMapping }

// MissingRateError reports an absent exchange-rate snapshot. There is
// no interpolation fallback; generation fails until a rate is loaded.
type MissingRateError struct {
	Currency string
	Date     time.Time
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no %s exchange rate for %s", e.Currency, e.Date.Format("2006-01-02"))
}

func (e *MissingRateError) Unwrap() error { return ErrMissingRate }

// UnbalancedConversionError signals corrupt input: a conversion charge
// whose accumulated balance did not return to zero.
type UnbalancedConversionError struct {
	ChargeID string
	Residual decimal.Decimal
}

func (e *UnbalancedConversionError) Error() string {
	return fmt.Sprintf("conversion charge %s does not self-balance, residual %s", e.ChargeID, e.Residual)
}

func (e *UnbalancedConversionError) Unwrap() error { return ErrUnbalancedConversion }

// UnbalanceableChargeError reports a residual the engine refuses to
// force-balance because no timing/FX cause could justify it. Carries
// the residual for manual review.
type UnbalanceableChargeError struct {
	ChargeID string
	Residual decimal.Decimal
}

func (e *UnbalanceableChargeError) Error() string {
	return fmt.Sprintf("charge %s cannot be balanced, residual %s", e.ChargeID, e.Residual)
}

func (e *UnbalanceableChargeError) Unwrap() error { return ErrUnbalanceable }

// DocumentPartyError reports a document whose debtor/creditor pair is
// structurally invalid relative to the charge owner.
type DocumentPartyError struct {
	DocumentID string
	Reason     string
}

func (e *DocumentPartyError) Error() string {
	return fmt.Sprintf("document %s: %s", e.DocumentID, e.Reason)
}

func (e *DocumentPartyError) Unwrap() error { return ErrInvalidDocument }

// MalformedEntryError reports a persisted entry the validator cannot
// process, e.g. a leg carrying an amount without an account.
type MalformedEntryError struct {
	EntryID string
	Reason  string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("ledger entry %s: %s", e.EntryID, e.Reason)
}

func (e *MalformedEntryError) Unwrap() error { return ErrMalformedEntry }
