package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// BusinessRepository implements usecase.ChargeExemptionPolicy from the
// businesses table. An unknown business is simply not exempt.
type BusinessRepository struct {
	queries *generated.Queries
}

// NewBusinessRepository creates a new BusinessRepository.
func NewBusinessRepository(pool *pgxpool.Pool) *BusinessRepository {
	return &BusinessRepository{queries: generated.New(pool)}
}

// NoInvoicesRequired reports whether the business settles charges on
// bank movements alone, with no documents expected.
func (r *BusinessRepository) NoInvoicesRequired(ctx context.Context, businessID string) (bool, error) {
	exempt, err := r.queries.GetBusinessNoInvoicesRequired(ctx, businessID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}

		return false, err
	}

	return exempt, nil
}
