package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// RateRepository implements usecase.RateProvider over the
// exchange_rates table. Lookups are date-exact: an absent snapshot for
// the requested date is a MissingRateError, never a nearby substitute.
type RateRepository struct {
	queries *generated.Queries
}

// NewRateRepository creates a new RateRepository.
func NewRateRepository(pool *pgxpool.Pool) *RateRepository {
	return &RateRepository{queries: generated.New(pool)}
}

// GetRate returns the conversion rate from currency to the local
// currency effective at the given date.
func (r *RateRepository) GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	rate, err := r.queries.GetExchangeRate(ctx, generated.GetExchangeRateParams{
		Currency: currency,
		RateDate: timeToPgDate(date),
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, &domain.MissingRateError{Currency: currency, Date: date}
		}

		return decimal.Zero, err
	}

	return numericToDecimal(rate), nil
}
