package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// ChargeRepository implements usecase.ChargeRepository.
type ChargeRepository struct {
	queries *generated.Queries
}

// NewChargeRepository creates a new ChargeRepository.
func NewChargeRepository(pool *pgxpool.Pool) *ChargeRepository {
	return &ChargeRepository{queries: generated.New(pool)}
}

// GetByID retrieves a charge by ID.
func (r *ChargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	row, err := r.queries.GetChargeByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrChargeNotFound
		}

		return nil, err
	}

	return &domain.Charge{
		ID:               row.ID,
		OwnerID:          row.OwnerID,
		TaxCategoryID:    textToStr(row.TaxCategoryID),
		TransactionCount: int(row.TransactionCount),
		DocumentCount:    int(row.DocumentCount),
		IsConversion:     row.IsConversion,
	}, nil
}

// ListIDsByOwner lists charge IDs for an owner with pagination.
func (r *ChargeRepository) ListIDsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]string, error) {
	return r.queries.ListChargeIDsByOwner(ctx, generated.ListChargeIDsByOwnerParams{
		OwnerID: ownerID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
}
