package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntrySource tags an entry with its provenance, so its balancing role
// is explicit rather than inferred from which fields happen to be set.
type EntrySource string

const (
	EntrySourceDocument       EntrySource = "document"
	EntrySourceTransaction    EntrySource = "transaction"
	EntrySourceReconciliation EntrySource = "reconciliation"
)

// Leg is one (account, foreign amount, local amount) component of an
// entry. Foreign is nil when the leg is denominated in local currency.
type Leg struct {
	AccountID string
	Foreign   *decimal.Decimal
	Local     decimal.Decimal
}

// LedgerEntry is one double-entry bookkeeping row: up to two credit
// legs and up to two debit legs. Secondary legs carry VAT splits and
// stay nil unless actually used.
type LedgerEntry struct {
	ID             string
	ChargeID       string
	OwnerID        string
	Source         EntrySource
	InvoiceDate    time.Time
	ValueDate      time.Time
	Currency       string
	Debit1         Leg
	Debit2         *Leg
	Credit1        Leg
	Credit2        *Leg
	CounterpartyID string
	Description    string
	Reference      string
	CreatedAt      time.Time
}

// DebitLegs returns the populated debit legs in order.
func (e *LedgerEntry) DebitLegs() []Leg {
	legs := []Leg{e.Debit1}
	if e.Debit2 != nil {
		legs = append(legs, *e.Debit2)
	}

	return legs
}

// CreditLegs returns the populated credit legs in order.
func (e *LedgerEntry) CreditLegs() []Leg {
	legs := []Leg{e.Credit1}
	if e.Credit2 != nil {
		legs = append(legs, *e.Credit2)
	}

	return legs
}

// LocalDebitTotal sums the local amounts of all debit legs.
func (e *LedgerEntry) LocalDebitTotal() decimal.Decimal {
	total := e.Debit1.Local
	if e.Debit2 != nil {
		total = total.Add(e.Debit2.Local)
	}

	return total
}

// LocalCreditTotal sums the local amounts of all credit legs.
func (e *LedgerEntry) LocalCreditTotal() decimal.Decimal {
	total := e.Credit1.Local
	if e.Credit2 != nil {
		total = total.Add(e.Credit2.Local)
	}

	return total
}

// Validate checks the entry's structural invariants: internal balance
// within EntryTolerance, no leg amount without an account, and no
// zero-amount ghost legs on the secondary slots.
func (e *LedgerEntry) Validate() error {
	if err := validateLeg(e.ID, e.Debit1); err != nil {
		return err
	}

	if err := validateLeg(e.ID, e.Credit1); err != nil {
		return err
	}

	for _, leg := range []*Leg{e.Debit2, e.Credit2} {
		if leg == nil {
			continue
		}

		if err := validateLeg(e.ID, *leg); err != nil {
			return err
		}

		if leg.Local.IsZero() {
			return &MalformedEntryError{EntryID: e.ID, Reason: "secondary leg with zero amount"}
		}
	}

	diff := e.LocalDebitTotal().Sub(e.LocalCreditTotal()).Abs()
	if diff.GreaterThan(EntryTolerance) {
		return &MalformedEntryError{EntryID: e.ID, Reason: "local debits do not equal local credits"}
	}

	return nil
}

func validateLeg(entryID string, leg Leg) error {
	if leg.AccountID == "" && !leg.Local.IsZero() {
		return &MalformedEntryError{EntryID: entryID, Reason: "leg amount without account"}
	}

	if leg.AccountID != "" && leg.Local.IsZero() && leg.Foreign == nil {
		return &MalformedEntryError{EntryID: entryID, Reason: "leg account without amount"}
	}

	return nil
}
