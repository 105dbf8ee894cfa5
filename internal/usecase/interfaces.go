package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// ChargeRepository defines read access to charges.
type ChargeRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Charge, error)
	// ListIDsByOwner pages through an owner's charge ids, newest
	// first, for owner-wide regeneration.
	ListIDsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]string, error)
}

// TransactionRepository defines read access to bank transactions.
type TransactionRepository interface {
	ListByCharge(ctx context.Context, chargeID string) ([]*domain.Transaction, error)
}

// DocumentRepository defines read access to commercial documents.
type DocumentRepository interface {
	ListByCharge(ctx context.Context, chargeID string) ([]*domain.Document, error)
}

// TaxCategoryRepository resolves internal chart-of-accounts buckets.
// Implementations return a *domain.MissingMappingError when no mapping
// is configured; the engine never substitutes a default.
type TaxCategoryRepository interface {
	GetByAccountAndCurrency(ctx context.Context, accountID, currency string) (string, error)
	GetByCharge(ctx context.Context, chargeID string) (string, error)
	GetVAT(ctx context.Context) (string, error)
	GetExchangeDifference(ctx context.Context) (string, error)
}

// RateProvider supplies the foreign-to-local exchange rate effective
// at a date. A missing rate surfaces as a *domain.MissingRateError.
type RateProvider interface {
	GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error)
}

// LedgerRepository defines data access for generated ledger entries.
// Insert and delete run inside a caller-owned transaction so that
// regeneration replaces existing records atomically.
type LedgerRepository interface {
	ListByCharge(ctx context.Context, chargeID string) ([]*domain.LedgerEntry, error)
	InsertTx(ctx context.Context, tx Transaction, entries []*domain.LedgerEntry) error
	DeleteByChargeTx(ctx context.Context, tx Transaction, chargeID string) error
}

// ChargeExemptionPolicy answers entity-level exemption questions,
// queried once per charge by the balancer. New exemption rules are
// additive here instead of inline branches in the balancing code.
type ChargeExemptionPolicy interface {
	// NoInvoicesRequired reports whether the business is exempt from
	// invoicing, allowing transaction-only charges to stand without a
	// reconciling entry.
	NoInvoicesRequired(ctx context.Context, businessID string) (bool, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier retries an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// Cache defines caching operations for the resolver's read-through
// tax-category cache.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
