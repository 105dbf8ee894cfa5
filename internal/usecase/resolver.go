package usecase

import (
	"context"
	"fmt"
	"time"
)

// EntityResolver maps transactions and documents to the ledger account
// used on the non-counterparty side of an entry: a currency-specific
// tax category for a financial account, or the charge-level tax
// category for documents.
//
// Lookups go through an explicit read-through cache keyed by account
// and charge, with invalidation hooks, instead of process-wide maps.
// Cache failures degrade to repository lookups; they never fail a
// generation run.
type EntityResolver struct {
	taxCategories TaxCategoryRepository
	cache         Cache
	ttl           time.Duration
}

// NewEntityResolver creates a resolver. cache may be nil, in which case
// every lookup hits the repository.
func NewEntityResolver(taxCategories TaxCategoryRepository, cache Cache, ttl time.Duration) *EntityResolver {
	if ttl <= 0 {
		ttl = DefaultTaxCategoryTTL
	}

	return &EntityResolver{
		taxCategories: taxCategories,
		cache:         cache,
		ttl:           ttl,
	}
}

func accountKey(accountID, currency string) string {
	return fmt.Sprintf("taxcat:account:%s:%s", accountID, currency)
}

func chargeKey(chargeID string) string {
	return fmt.Sprintf("taxcat:charge:%s", chargeID)
}

const (
	vatKey      = "taxcat:vat"
	exchDiffKey = "taxcat:exchange_difference"
)

// ResolveForAccount returns the tax category bound to a financial
// account in a specific currency. The same account resolves to
// different categories per currency.
func (r *EntityResolver) ResolveForAccount(ctx context.Context, accountID, currency string) (string, error) {
	return r.lookup(ctx, accountKey(accountID, currency), func(ctx context.Context) (string, error) {
		return r.taxCategories.GetByAccountAndCurrency(ctx, accountID, currency)
	})
}

// ResolveForCharge returns the tax category used opposite the
// counterparty on document entries of a charge.
func (r *EntityResolver) ResolveForCharge(ctx context.Context, chargeID string) (string, error) {
	return r.lookup(ctx, chargeKey(chargeID), func(ctx context.Context) (string, error) {
		return r.taxCategories.GetByCharge(ctx, chargeID)
	})
}

// VATTaxCategory returns the dedicated VAT bucket.
func (r *EntityResolver) VATTaxCategory(ctx context.Context) (string, error) {
	return r.lookup(ctx, vatKey, r.taxCategories.GetVAT)
}

// ExchangeDifferenceTaxCategory returns the bucket that absorbs
// exchange-rate residuals.
func (r *EntityResolver) ExchangeDifferenceTaxCategory(ctx context.Context) (string, error) {
	return r.lookup(ctx, exchDiffKey, r.taxCategories.GetExchangeDifference)
}

// InvalidateAccount drops the cached mapping for an account/currency.
func (r *EntityResolver) InvalidateAccount(ctx context.Context, accountID, currency string) error {
	if r.cache == nil {
		return nil
	}

	return r.cache.Delete(ctx, accountKey(accountID, currency))
}

// InvalidateCharge drops the cached charge-level mapping. Document
// reassignments invalidate through their charge.
func (r *EntityResolver) InvalidateCharge(ctx context.Context, chargeID string) error {
	if r.cache == nil {
		return nil
	}

	return r.cache.Delete(ctx, chargeKey(chargeID))
}

func (r *EntityResolver) lookup(ctx context.Context, key string, fetch func(context.Context) (string, error)) (string, error) {
	if r.cache != nil {
		if cached, err := r.cache.Get(ctx, key); err == nil && cached != "" {
			return cached, nil
		}
	}

	id, err := fetch(ctx)
	if err != nil {
		return "", err
	}

	if r.cache != nil {
		_ = r.cache.Set(ctx, key, id, r.ttl)
	}

	return id, nil
}
