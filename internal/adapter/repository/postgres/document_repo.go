package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/postgres/generated"
)

// DocumentRepository implements usecase.DocumentRepository.
type DocumentRepository struct {
	queries *generated.Queries
}

// NewDocumentRepository creates a new DocumentRepository.
func NewDocumentRepository(pool *pgxpool.Pool) *DocumentRepository {
	return &DocumentRepository{queries: generated.New(pool)}
}

// ListByCharge retrieves all documents tied to a charge, ordered by
// document date.
func (r *DocumentRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.Document, error) {
	rows, err := r.queries.ListDocumentsByCharge(ctx, chargeID)
	if err != nil {
		return nil, err
	}

	documents := make([]*domain.Document, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, rowToDocument(row))
	}

	return documents, nil
}

func rowToDocument(row generated.Document) *domain.Document {
	return &domain.Document{
		ID:          row.ID,
		ChargeID:    row.ChargeID,
		Type:        domain.DocumentType(row.Type),
		Date:        pgTimestamptzToTimePtr(row.Date),
		DebtorID:    textToStrPtr(row.DebtorID),
		CreditorID:  textToStrPtr(row.CreditorID),
		TotalAmount: numericToDecimalPtr(row.TotalAmount),
		VATAmount:   numericToDecimalPtr(row.VatAmount),
		Currency:    row.Currency,
		Serial:      row.Serial,
	}
}
