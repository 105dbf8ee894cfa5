package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// Balancer synthesizes reconciling entries when a charge's accumulated
// balance does not close to zero, which happens whenever transactions
// and documents convert at different dates' rates. It never forces
// balance without an FX/timing justification.
type Balancer struct {
	resolver  *EntityResolver
	policy    ChargeExemptionPolicy
	idGen     IDGenerator
	tolerance decimal.Decimal
}

// NewBalancer creates a balancer with the default residual tolerance.
// policy may be nil when no exemption rules apply.
func NewBalancer(resolver *EntityResolver, policy ChargeExemptionPolicy, idGen IDGenerator) *Balancer {
	return &Balancer{
		resolver:  resolver,
		policy:    policy,
		idGen:     idGen,
		tolerance: domain.BalanceTolerance,
	}
}

// WithTolerance overrides the zero-residual threshold.
func (b *Balancer) WithTolerance(tolerance decimal.Decimal) *Balancer {
	b.tolerance = tolerance
	return b
}

// Balance applies the decision policy, in order:
//
//  1. residual within tolerance: nothing to do;
//  2. conversion charge with residual: corrupt input;
//  3. transaction-only charge whose counterparty needs no invoices:
//     accepted as-is;
//  4. residual attributable to multiple dates and multiple currencies:
//     synthesize reconciling entries against the exchange-difference
//     category;
//  5. otherwise: the charge is unbalanceable.
func (b *Balancer) Balance(ctx context.Context, charge *domain.Charge, cb *ChargeBalance, hasDocumentEntries bool) ([]*domain.LedgerEntry, error) {
	residual := cb.CounterpartyResidual()

	if residual.Abs().LessThanOrEqual(b.tolerance) {
		return nil, nil
	}

	if charge.IsConversion {
		return nil, &domain.UnbalancedConversionError{ChargeID: charge.ID, Residual: residual}
	}

	if !hasDocumentEntries {
		exempt, err := b.allCounterpartiesExempt(ctx, cb)
		if err != nil {
			return nil, err
		}

		if exempt {
			return nil, nil
		}
	}

	// Every entry carries local-currency amounts, so any foreign
	// currency among the source records already makes the currency set
	// plural. Local on its own never justifies reconciliation.
	multipleDates := len(cb.Dates) > 1
	multipleCurrencies := len(cb.ForeignCurrencies) > 0

	if !multipleDates || !multipleCurrencies {
		return nil, &domain.UnbalanceableChargeError{ChargeID: charge.ID, Residual: residual}
	}

	exchDiffID, err := b.resolver.ExchangeDifferenceTaxCategory(ctx)
	if err != nil {
		return nil, err
	}

	if len(cb.ForeignCurrencies) > 1 {
		return b.balanceMultiCurrency(charge, cb, exchDiffID), nil
	}

	return b.balanceSingle(charge, cb, exchDiffID, residual), nil
}

func (b *Balancer) allCounterpartiesExempt(ctx context.Context, cb *ChargeBalance) (bool, error) {
	if b.policy == nil {
		return false, nil
	}

	for _, id := range cb.SortedCounterparties() {
		eb, ok := cb.Entities[id]
		if !ok || eb.Local.Abs().LessThanOrEqual(b.tolerance) {
			continue
		}

		exempt, err := b.policy.NoInvoicesRequired(ctx, id)
		if err != nil {
			return false, err
		}

		if !exempt {
			return false, nil
		}
	}

	return true, nil
}

// balanceSingle emits exactly one local-currency reconciling entry,
// dated at the latest transaction value-date, sized to the absolute
// residual and directed so the counterparty's net returns to zero.
func (b *Balancer) balanceSingle(charge *domain.Charge, cb *ChargeBalance, exchDiffID string, residual decimal.Decimal) []*domain.LedgerEntry {
	counterpartyID := b.reconcilingCounterparty(cb)
	date := b.reconcilingValueDate(cb)

	amount := residual.Abs().Round(domain.AmountScale)

	entry := &domain.LedgerEntry{
		ID:             b.idGen.Generate(),
		ChargeID:       charge.ID,
		OwnerID:        charge.OwnerID,
		Source:         domain.EntrySourceReconciliation,
		InvoiceDate:    date,
		ValueDate:      date,
		CounterpartyID: counterpartyID,
		Description:    ExchangeDifferenceDescription,
	}

	counterpartyLeg := domain.Leg{AccountID: counterpartyID, Local: amount}
	exchLeg := domain.Leg{AccountID: exchDiffID, Local: amount}

	if residual.IsNegative() {
		entry.Credit1 = counterpartyLeg
		entry.Debit1 = exchLeg
	} else {
		entry.Debit1 = counterpartyLeg
		entry.Credit1 = exchLeg
	}

	return []*domain.LedgerEntry{entry}
}

// balanceMultiCurrency emits one reconciling entry per foreign currency
// whose position does not close, dominant currency first. Each entry
// zeroes that currency's (foreign, local) position on the counterparty,
// dated (latest transaction value-date, earliest document invoice-date).
// When a currency's foreign side nets out but rate timing leaves a
// local residual, the entry carries the local residual alone.
func (b *Balancer) balanceMultiCurrency(charge *domain.Charge, cb *ChargeBalance, exchDiffID string) []*domain.LedgerEntry {
	valueDate := b.reconcilingValueDate(cb)

	invoiceDate := cb.EarliestDocumentInvoiceDate
	if invoiceDate.IsZero() {
		invoiceDate = valueDate
	}

	var entries []*domain.LedgerEntry

	for _, currency := range cb.SortedForeignCurrencies() {
		for _, counterpartyID := range cb.SortedCounterparties() {
			eb, ok := cb.Entities[counterpartyID]
			if !ok {
				continue
			}

			curBal, ok := eb.ByCurrency[currency]
			if !ok {
				continue
			}

			foreignNegligible := curBal.Foreign.Abs().LessThanOrEqual(b.tolerance)
			if foreignNegligible && curBal.Local.Abs().LessThanOrEqual(b.tolerance) {
				continue
			}

			local := curBal.Local.Abs().Round(domain.AmountScale)

			entry := &domain.LedgerEntry{
				ID:             b.idGen.Generate(),
				ChargeID:       charge.ID,
				OwnerID:        charge.OwnerID,
				Source:         domain.EntrySourceReconciliation,
				InvoiceDate:    invoiceDate,
				ValueDate:      valueDate,
				Currency:       currency,
				CounterpartyID: counterpartyID,
				Description:    ExchangeDifferenceDescription,
			}

			counterpartyLeg := domain.Leg{AccountID: counterpartyID, Local: local}
			exchLeg := domain.Leg{AccountID: exchDiffID, Local: local}

			if !foreignNegligible {
				foreign := curBal.Foreign.Abs().Round(domain.AmountScale)
				counterpartyLeg.Foreign = &foreign
				exchLeg.Foreign = &foreign
			}

			if curBal.Local.IsNegative() || (curBal.Local.IsZero() && curBal.Foreign.IsNegative()) {
				entry.Credit1 = counterpartyLeg
				entry.Debit1 = exchLeg
			} else {
				entry.Debit1 = counterpartyLeg
				entry.Credit1 = exchLeg
			}

			entries = append(entries, entry)
		}
	}

	return entries
}

func (b *Balancer) reconcilingCounterparty(cb *ChargeBalance) string {
	ids := cb.SortedCounterparties()
	if len(ids) == 0 {
		return ""
	}

	return ids[0]
}

func (b *Balancer) reconcilingValueDate(cb *ChargeBalance) time.Time {
	if !cb.LatestTransactionValueDate.IsZero() {
		return cb.LatestTransactionValueDate
	}

	// Document-only charge: fall back to the latest date seen at all.
	var latest time.Time
	for d := range cb.Dates {
		if d.After(latest) {
			latest = d
		}
	}

	return latest
}
