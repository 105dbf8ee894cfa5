package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// EntryBuilder turns validated transactions and documents into
// candidate ledger entries, including VAT decomposition for documents.
// Output is two ordered lists, document-origin first, never merged at
// this stage: the balancer needs to know which side each entry came
// from.
type EntryBuilder struct {
	resolver   *EntityResolver
	normalizer *AmountNormalizer
	idGen      IDGenerator
}

// NewEntryBuilder creates an EntryBuilder.
func NewEntryBuilder(resolver *EntityResolver, normalizer *AmountNormalizer, idGen IDGenerator) *EntryBuilder {
	return &EntryBuilder{
		resolver:   resolver,
		normalizer: normalizer,
		idGen:      idGen,
	}
}

// BuildForCharge builds candidate entries for every document and
// transaction of a charge. Any failure aborts the whole charge.
func (b *EntryBuilder) BuildForCharge(
	ctx context.Context,
	charge *domain.Charge,
	documents []*domain.Document,
	transactions []*domain.Transaction,
) (docEntries, txnEntries []*domain.LedgerEntry, err error) {
	for _, doc := range documents {
		entry, err := b.BuildDocumentEntry(ctx, charge, doc)
		if err != nil {
			return nil, nil, err
		}

		docEntries = append(docEntries, entry)
	}

	for _, txn := range transactions {
		entry, err := b.BuildTransactionEntry(ctx, charge, txn)
		if err != nil {
			return nil, nil, err
		}

		txnEntries = append(txnEntries, entry)
	}

	return docEntries, txnEntries, nil
}

// BuildDocumentEntry builds one entry from a commercial document. The
// counterparty leg carries the full total; the tax-category side
// carries total minus VAT, with the VAT remainder on a second leg
// against the dedicated VAT category. All three amounts normalize
// independently at the document date so a foreign-currency VAT
// fraction converts at the same rate as its parent total.
func (b *EntryBuilder) BuildDocumentEntry(ctx context.Context, charge *domain.Charge, doc *domain.Document) (*domain.LedgerEntry, error) {
	if err := doc.ValidateForLedger(charge.OwnerID); err != nil {
		return nil, err
	}

	// Owner as debtor means the counterparty sits on the credit side.
	// Credit invoices reverse the document's direction.
	isCreditorCounterparty := *doc.DebtorID == charge.OwnerID
	if doc.Type == domain.DocumentTypeCreditInvoice {
		isCreditorCounterparty = !isCreditorCounterparty
	}

	counterpartyID := *doc.DebtorID
	if *doc.DebtorID == charge.OwnerID {
		counterpartyID = *doc.CreditorID
	}

	taxCategoryID, err := b.resolver.ResolveForCharge(ctx, charge.ID)
	if err != nil {
		return nil, err
	}

	total := doc.TotalAmount.Abs()
	vat := doc.VATMagnitude()
	net := total.Sub(vat)

	totalNorm, err := b.normalizer.Normalize(ctx, total, doc.Currency, *doc.Date)
	if err != nil {
		return nil, err
	}

	netNorm, err := b.normalizer.Normalize(ctx, net, doc.Currency, *doc.Date)
	if err != nil {
		return nil, err
	}

	counterpartyLeg := legFromNormalized(counterpartyID, totalNorm)
	categoryLeg := legFromNormalized(taxCategoryID, netNorm)

	var vatLeg *domain.Leg
	if !vat.IsZero() {
		vatCategoryID, err := b.resolver.VATTaxCategory(ctx)
		if err != nil {
			return nil, err
		}

		vatNorm, err := b.normalizer.Normalize(ctx, vat, doc.Currency, *doc.Date)
		if err != nil {
			return nil, err
		}

		leg := legFromNormalized(vatCategoryID, vatNorm)
		vatLeg = &leg
	}

	entry := &domain.LedgerEntry{
		ID:             b.idGen.Generate(),
		ChargeID:       charge.ID,
		OwnerID:        charge.OwnerID,
		Source:         domain.EntrySourceDocument,
		InvoiceDate:    *doc.Date,
		ValueDate:      *doc.Date,
		Currency:       doc.Currency,
		CounterpartyID: counterpartyID,
		Reference:      doc.Serial,
		Description:    string(doc.Type),
	}

	if isCreditorCounterparty {
		entry.Credit1 = counterpartyLeg
		entry.Debit1 = categoryLeg
		entry.Debit2 = vatLeg
	} else {
		entry.Debit1 = counterpartyLeg
		entry.Credit1 = categoryLeg
		entry.Credit2 = vatLeg
	}

	return entry, nil
}

// BuildTransactionEntry builds one entry from a bank transaction. The
// non-counterparty side resolves via the account+currency tax-category
// mapping; the sign of the amount decides which side the counterparty
// takes.
func (b *EntryBuilder) BuildTransactionEntry(ctx context.Context, charge *domain.Charge, txn *domain.Transaction) (*domain.LedgerEntry, error) {
	if err := txn.ValidateForLedger(); err != nil {
		return nil, err
	}

	taxCategoryID, err := b.resolver.ResolveForAccount(ctx, txn.AccountID, txn.Currency)
	if err != nil {
		return nil, err
	}

	// The debit (value) date fixes the exchange rate, not the event date.
	norm, err := b.normalizer.Normalize(ctx, txn.Amount, txn.Currency, *txn.DebitDate)
	if err != nil {
		return nil, err
	}

	isCreditorCounterparty := txn.Amount.GreaterThan(decimal.Zero)

	counterpartyLeg := legFromNormalized(*txn.BusinessID, absNormalized(norm))
	categoryLeg := legFromNormalized(taxCategoryID, absNormalized(norm))

	entry := &domain.LedgerEntry{
		ID:             b.idGen.Generate(),
		ChargeID:       charge.ID,
		OwnerID:        charge.OwnerID,
		Source:         domain.EntrySourceTransaction,
		InvoiceDate:    txn.EventDate,
		ValueDate:      *txn.DebitDate,
		Currency:       txn.Currency,
		CounterpartyID: *txn.BusinessID,
		Description:    txn.Description,
		Reference:      txn.Reference,
	}

	if isCreditorCounterparty {
		entry.Credit1 = counterpartyLeg
		entry.Debit1 = categoryLeg
	} else {
		entry.Debit1 = counterpartyLeg
		entry.Credit1 = categoryLeg
	}

	return entry, nil
}

func legFromNormalized(accountID string, n NormalizedAmount) domain.Leg {
	leg := domain.Leg{AccountID: accountID, Local: n.Local}
	if n.Foreign != nil {
		f := *n.Foreign
		leg.Foreign = &f
	}

	return leg
}

func absNormalized(n NormalizedAmount) NormalizedAmount {
	out := NormalizedAmount{Local: n.Local.Abs()}
	if n.Foreign != nil {
		f := n.Foreign.Abs()
		out.Foreign = &f
	}

	return out
}

// dateOnly truncates a timestamp to its calendar date in UTC so that
// distinct-date tracking ignores time-of-day noise.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
