package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
)

// LedgerRepository implements usecase.LedgerRepository over the
// ledger_records table. One row per entry, legs flattened into
// debit/credit column pairs.
type LedgerRepository struct {
	queries *generated.Queries
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{queries: generated.New(pool)}
}

// ListByCharge retrieves all persisted ledger entries for a charge.
func (r *LedgerRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.LedgerEntry, error) {
	rows, err := r.queries.ListLedgerRecordsByCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToLedgerEntry(row))
	}

	return entries, nil
}

// InsertTx inserts entries within an existing transaction.
func (r *LedgerRepository) InsertTx(ctx context.Context, tx usecase.Transaction, entries []*domain.LedgerEntry) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	for _, entry := range entries {
		if err := queries.InsertLedgerRecord(ctx, ledgerEntryToParams(entry)); err != nil {
			return err
		}
	}

	return nil
}

// DeleteByChargeTx removes a charge's entries within an existing
// transaction.
func (r *LedgerRepository) DeleteByChargeTx(ctx context.Context, tx usecase.Transaction, chargeID string) error {
	queries := generated.New(tx.(*Tx).PgxTx())

	return queries.DeleteLedgerRecordsByCharge(ctx, chargeID)
}

func ledgerEntryToParams(entry *domain.LedgerEntry) generated.InsertLedgerRecordParams {
	params := generated.InsertLedgerRecordParams{
		ID:                   entry.ID,
		ChargeID:             entry.ChargeID,
		OwnerID:              entry.OwnerID,
		Source:               string(entry.Source),
		InvoiceDate:          timeToPgTimestamptz(entry.InvoiceDate),
		ValueDate:            timeToPgTimestamptz(entry.ValueDate),
		Currency:             entry.Currency,
		DebitEntity1:         strToText(entry.Debit1.AccountID),
		DebitForeignAmount1:  decimalPtrToNumeric(entry.Debit1.Foreign),
		DebitLocalAmount1:    decimalToNumeric(entry.Debit1.Local),
		CreditEntity1:        strToText(entry.Credit1.AccountID),
		CreditForeignAmount1: decimalPtrToNumeric(entry.Credit1.Foreign),
		CreditLocalAmount1:   decimalToNumeric(entry.Credit1.Local),
		CounterpartyID:       strToText(entry.CounterpartyID),
		Description:          entry.Description,
		Reference:            entry.Reference,
		CreatedAt:            timeToPgTimestamptz(entry.CreatedAt),
	}

	if entry.Debit2 != nil {
		params.DebitEntity2 = strToText(entry.Debit2.AccountID)
		params.DebitForeignAmount2 = decimalPtrToNumeric(entry.Debit2.Foreign)
		params.DebitLocalAmount2 = decimalToNumeric(entry.Debit2.Local)
	}

	if entry.Credit2 != nil {
		params.CreditEntity2 = strToText(entry.Credit2.AccountID)
		params.CreditForeignAmount2 = decimalPtrToNumeric(entry.Credit2.Foreign)
		params.CreditLocalAmount2 = decimalToNumeric(entry.Credit2.Local)
	}

	return params
}

func rowToLedgerEntry(row generated.LedgerRecord) *domain.LedgerEntry {
	entry := &domain.LedgerEntry{
		ID:             row.ID,
		ChargeID:       row.ChargeID,
		OwnerID:        row.OwnerID,
		Source:         domain.EntrySource(row.Source),
		InvoiceDate:    row.InvoiceDate.Time,
		ValueDate:      row.ValueDate.Time,
		Currency:       row.Currency,
		CounterpartyID: textToStr(row.CounterpartyID),
		Description:    row.Description,
		Reference:      row.Reference,
		CreatedAt:      row.CreatedAt.Time,
		Debit1: domain.Leg{
			AccountID: textToStr(row.DebitEntity1),
			Foreign:   numericToDecimalPtr(row.DebitForeignAmount1),
			Local:     numericToDecimal(row.DebitLocalAmount1),
		},
		Credit1: domain.Leg{
			AccountID: textToStr(row.CreditEntity1),
			Foreign:   numericToDecimalPtr(row.CreditForeignAmount1),
			Local:     numericToDecimal(row.CreditLocalAmount1),
		},
	}

	if row.DebitEntity2.Valid {
		entry.Debit2 = &domain.Leg{
			AccountID: row.DebitEntity2.String,
			Foreign:   numericToDecimalPtr(row.DebitForeignAmount2),
			Local:     numericToDecimal(row.DebitLocalAmount2),
		}
	}

	if row.CreditEntity2.Valid {
		entry.Credit2 = &domain.Leg{
			AccountID: row.CreditEntity2.String,
			Foreign:   numericToDecimalPtr(row.CreditForeignAmount2),
			Local:     numericToDecimal(row.CreditLocalAmount2),
		}
	}

	return entry
}
