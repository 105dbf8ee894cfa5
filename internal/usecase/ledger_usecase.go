package usecase

import (
	"context"
	"time"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// LedgerUseCase orchestrates ledger generation for a charge: build →
// accumulate → balance, then persist atomically. It owns the lifetime
// of the candidate entry lists and the balance map for one run;
// nothing is shared across concurrent charge runs.
type LedgerUseCase struct {
	txManager    TransactionManager
	chargeRepo   ChargeRepository
	txnRepo      TransactionRepository
	documentRepo DocumentRepository
	ledgerRepo   LedgerRepository
	builder      *EntryBuilder
	accumulator  *BalanceAccumulator
	balancer     *Balancer
	validator    *ValidationUseCase
	retrier      Retrier
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	txManager TransactionManager,
	chargeRepo ChargeRepository,
	txnRepo TransactionRepository,
	documentRepo DocumentRepository,
	ledgerRepo LedgerRepository,
	builder *EntryBuilder,
	accumulator *BalanceAccumulator,
	balancer *Balancer,
	validator *ValidationUseCase,
) *LedgerUseCase {
	return &LedgerUseCase{
		txManager:    txManager,
		chargeRepo:   chargeRepo,
		txnRepo:      txnRepo,
		documentRepo: documentRepo,
		ledgerRepo:   ledgerRepo,
		builder:      builder,
		accumulator:  accumulator,
		balancer:     balancer,
		validator:    validator,
	}
}

// WithRetrier retries the persistence step on transient storage
// failures, e.g. deadlocks between concurrent regenerations of the
// same charge.
func (uc *LedgerUseCase) WithRetrier(retrier Retrier) *LedgerUseCase {
	uc.retrier = retrier
	return uc
}

// GenerateLedgerInput represents input for one generation run.
type GenerateLedgerInput struct {
	ChargeID string
	// InsertIfNotExists keeps existing balanced records untouched and
	// returns them instead of regenerating. When false, existing
	// records are replaced atomically.
	InsertIfNotExists bool
}

// GenerateResult is the outcome of a generation run.
type GenerateResult struct {
	Entries []*domain.LedgerEntry
	// Reused is true when existing balanced records satisfied an
	// insert-if-not-exists request.
	Reused bool
}

// GenerateLedger produces a balanced set of ledger entries for one
// charge. Any component failure aborts the run before persistence, so
// previously stored state stays untouched.
func (uc *LedgerUseCase) GenerateLedger(ctx context.Context, input GenerateLedgerInput) (*GenerateResult, error) {
	charge, err := uc.chargeRepo.GetByID(ctx, input.ChargeID)
	if err != nil {
		return nil, err
	}

	if input.InsertIfNotExists {
		existing, err := uc.ledgerRepo.ListByCharge(ctx, input.ChargeID)
		if err != nil {
			return nil, err
		}

		if len(existing) > 0 {
			report, err := uc.validator.ValidateEntries(input.ChargeID, existing)
			if err == nil && report.IsBalanced {
				return &GenerateResult{Entries: existing, Reused: true}, nil
			}
			// Unbalanced or malformed leftovers: fall through and
			// regenerate in place.
		}
	}

	documents, err := uc.documentRepo.ListByCharge(ctx, input.ChargeID)
	if err != nil {
		return nil, err
	}

	transactions, err := uc.txnRepo.ListByCharge(ctx, input.ChargeID)
	if err != nil {
		return nil, err
	}

	docEntries, txnEntries, err := uc.builder.BuildForCharge(ctx, charge, documents, transactions)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.LedgerEntry, 0, len(docEntries)+len(txnEntries)+1)
	entries = append(entries, docEntries...)
	entries = append(entries, txnEntries...)

	balance := uc.accumulator.Accumulate(entries)

	reconciling, err := uc.balancer.Balance(ctx, charge, balance, len(docEntries) > 0)
	if err != nil {
		return nil, err
	}

	entries = append(entries, reconciling...)

	now := time.Now().UTC()
	for _, entry := range entries {
		entry.CreatedAt = now
	}

	if err := uc.replaceEntries(ctx, input.ChargeID, entries); err != nil {
		return nil, err
	}

	return &GenerateResult{Entries: entries}, nil
}

// replaceEntries swaps the charge's persisted records for the new set
// in one transaction. Delete-then-insert, never append beside stale
// rows.
func (uc *LedgerUseCase) replaceEntries(ctx context.Context, chargeID string, entries []*domain.LedgerEntry) error {
	if uc.retrier != nil {
		return uc.retrier.Retry(ctx, func() error {
			return uc.replaceEntriesOnce(ctx, chargeID, entries)
		})
	}

	return uc.replaceEntriesOnce(ctx, chargeID, entries)
}

func (uc *LedgerUseCase) replaceEntriesOnce(ctx context.Context, chargeID string, entries []*domain.LedgerEntry) error {
	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := uc.ledgerRepo.DeleteByChargeTx(ctx, tx, chargeID); err != nil {
		return err
	}

	if err := uc.ledgerRepo.InsertTx(ctx, tx, entries); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GetLedger returns the persisted entries for a charge.
func (uc *LedgerUseCase) GetLedger(ctx context.Context, chargeID string) ([]*domain.LedgerEntry, error) {
	return uc.ledgerRepo.ListByCharge(ctx, chargeID)
}

// ChargeGeneration is the per-charge outcome of a batch run.
type ChargeGeneration struct {
	ChargeID string
	Result   *GenerateResult
	Err      error
}

// GenerateMany generates ledgers for several charges, continuing past
// per-charge failures so one bad charge does not sink the batch.
func (uc *LedgerUseCase) GenerateMany(ctx context.Context, chargeIDs []string, insertIfNotExists bool) []ChargeGeneration {
	results := make([]ChargeGeneration, 0, len(chargeIDs))

	for _, id := range chargeIDs {
		result, err := uc.GenerateLedger(ctx, GenerateLedgerInput{
			ChargeID:          id,
			InsertIfNotExists: insertIfNotExists,
		})

		results = append(results, ChargeGeneration{ChargeID: id, Result: result, Err: err})

		if ctx.Err() != nil {
			break
		}
	}

	return results
}

// ownerPageSize bounds one charge-id page during owner-wide runs.
const ownerPageSize = 100

// GenerateForOwner regenerates the ledger of every charge an owner
// has, paging through charge ids so the whole set never loads at once.
func (uc *LedgerUseCase) GenerateForOwner(ctx context.Context, ownerID string, insertIfNotExists bool) ([]ChargeGeneration, error) {
	var results []ChargeGeneration

	for offset := 0; ; offset += ownerPageSize {
		ids, err := uc.chargeRepo.ListIDsByOwner(ctx, ownerID, ownerPageSize, offset)
		if err != nil {
			return results, err
		}

		if len(ids) == 0 {
			return results, nil
		}

		results = append(results, uc.GenerateMany(ctx, ids, insertIfNotExists)...)

		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		if len(ids) < ownerPageSize {
			return results, nil
		}
	}
}
