package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// TransactionRepository implements usecase.TransactionRepository.
type TransactionRepository struct {
	queries *generated.Queries
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{queries: generated.New(pool)}
}

// ListByCharge retrieves all transactions tied to a charge, ordered by
// event date.
func (r *TransactionRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.Transaction, error) {
	rows, err := r.queries.ListTransactionsByCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, rowToTransaction(row))
	}

	return transactions, nil
}

func rowToTransaction(row generated.Transaction) *domain.Transaction {
	return &domain.Transaction{
		ID:          row.ID,
		ChargeID:    row.ChargeID,
		Amount:      numericToDecimal(row.Amount),
		Currency:    row.Currency,
		EventDate:   row.EventDate.Time,
		DebitDate:   pgTimestamptzToTimePtr(row.DebitDate),
		BusinessID:  textToStrPtr(row.BusinessID),
		AccountID:   row.AccountID,
		Description: row.Description,
		Reference:   row.Reference,
	}
}
