package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// Well-known tax category kinds seeded by the migrations.
const (
	taxCategoryKindVAT                = "vat"
	taxCategoryKindExchangeDifference = "exchange_rates"
)

// TaxCategoryRepository implements usecase.TaxCategoryRepository.
// Absent mappings surface as *domain.MissingMappingError so generation
// fails with an actionable reason instead of a bare no-rows error.
type TaxCategoryRepository struct {
	queries *generated.Queries
}

// NewTaxCategoryRepository creates a new TaxCategoryRepository.
func NewTaxCategoryRepository(pool *pgxpool.Pool) *TaxCategoryRepository {
	return &TaxCategoryRepository{queries: generated.New(pool)}
}

// GetByAccountAndCurrency resolves the tax category mapped to a
// financial account in a given currency.
func (r *TaxCategoryRepository) GetByAccountAndCurrency(ctx context.Context, accountID, currency string) (string, error) {
	id, err := r.queries.GetTaxCategoryByAccountAndCurrency(ctx, generated.GetTaxCategoryByAccountAndCurrencyParams{
		AccountID: accountID,
		Currency:  currency,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &domain.MissingMappingError{AccountID: accountID, Currency: currency}
		}

		return "", err
	}

	return id, nil
}

// GetByCharge resolves the tax category assigned to a charge.
func (r *TaxCategoryRepository) GetByCharge(ctx context.Context, chargeID string) (string, error) {
	id, err := r.queries.GetChargeTaxCategory(ctx, chargeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &domain.MissingMappingError{ChargeID: chargeID}
		}

		return "", err
	}

	return id.String, nil
}

// GetVAT returns the dedicated VAT tax category.
func (r *TaxCategoryRepository) GetVAT(ctx context.Context) (string, error) {
	return r.getByKind(ctx, taxCategoryKindVAT)
}

// GetExchangeDifference returns the exchange-rate-difference tax
// category used by reconciling entries.
func (r *TaxCategoryRepository) GetExchangeDifference(ctx context.Context) (string, error) {
	return r.getByKind(ctx, taxCategoryKindExchangeDifference)
}

func (r *TaxCategoryRepository) getByKind(ctx context.Context, kind string) (string, error) {
	id, err := r.queries.GetTaxCategoryByKind(ctx, kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", &domain.MissingMappingError{Kind: kind}
		}

		return "", err
	}

	return id, nil
}
