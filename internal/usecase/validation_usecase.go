package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// EntityResidual is one unbalanced entity with its signed residual.
type EntityResidual struct {
	AccountID string
	Residual  decimal.Decimal
}

// ValidationReport is the structured outcome of re-verifying a
// persisted ledger. An unbalanced charge is data, not an error.
type ValidationReport struct {
	ChargeID           string
	IsBalanced         bool
	UnbalancedEntities []EntityResidual
	GlobalResidual     decimal.Decimal
	CheckedAt          time.Time
}

// ValidationUseCase independently recomputes balances for a charge's
// persisted entries, ignoring whatever process produced them. Errors
// are reserved for structurally invalid input; imbalance is reported,
// never thrown.
type ValidationUseCase struct {
	ledgerRepo LedgerRepository
	tolerance  decimal.Decimal
}

// NewValidationUseCase creates a validator with the default tolerance.
func NewValidationUseCase(ledgerRepo LedgerRepository) *ValidationUseCase {
	return &ValidationUseCase{
		ledgerRepo: ledgerRepo,
		tolerance:  domain.BalanceTolerance,
	}
}

// WithTolerance overrides the zero-residual threshold.
func (uc *ValidationUseCase) WithTolerance(tolerance decimal.Decimal) *ValidationUseCase {
	uc.tolerance = tolerance
	return uc
}

// ValidateLedger loads and re-verifies the persisted entries of a
// charge.
func (uc *ValidationUseCase) ValidateLedger(ctx context.Context, chargeID string) (*ValidationReport, error) {
	entries, err := uc.ledgerRepo.ListByCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	return uc.ValidateEntries(chargeID, entries)
}

// ValidateEntries recomputes per-entity and global local-currency
// balances over the given entries. Counterparty entities must close to
// zero; tax-category accounts carry the charge's P&L and are exempt
// from the closure requirement.
func (uc *ValidationUseCase) ValidateEntries(chargeID string, entries []*domain.LedgerEntry) (*ValidationReport, error) {
	balances := make(map[string]decimal.Decimal)
	counterparties := make(map[string]struct{})

	for _, entry := range entries {
		if err := entry.Validate(); err != nil {
			return nil, err
		}

		if entry.CounterpartyID != "" {
			counterparties[entry.CounterpartyID] = struct{}{}
		}

		for _, leg := range entry.CreditLegs() {
			balances[leg.AccountID] = balances[leg.AccountID].Add(leg.Local)
		}

		for _, leg := range entry.DebitLegs() {
			balances[leg.AccountID] = balances[leg.AccountID].Sub(leg.Local)
		}
	}

	report := &ValidationReport{
		ChargeID:       chargeID,
		IsBalanced:     true,
		GlobalResidual: decimal.Zero,
		CheckedAt:      time.Now().UTC(),
	}

	ids := make([]string, 0, len(counterparties))
	for id := range counterparties {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		residual := balances[id]
		report.GlobalResidual = report.GlobalResidual.Add(residual)

		if residual.Abs().GreaterThan(uc.tolerance) {
			report.IsBalanced = false
			report.UnbalancedEntities = append(report.UnbalancedEntities, EntityResidual{
				AccountID: id,
				Residual:  residual,
			})
		}
	}

	return report, nil
}
