package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
)

// ErrEmptyBatch rejects batch requests naming no charges.
var ErrEmptyBatch = errors.New("charge_ids must not be empty")

// LegResponse is one debit or credit leg of a ledger entry.
type LegResponse struct {
	AccountID     string           `json:"account_id"`
	ForeignAmount *decimal.Decimal `json:"foreign_amount,omitempty"`
	LocalAmount   decimal.Decimal  `json:"local_amount"`
}

// LedgerEntryResponse represents a ledger entry in API responses.
type LedgerEntryResponse struct {
	ID             string       `json:"id"`
	ChargeID       string       `json:"charge_id"`
	OwnerID        string       `json:"owner_id"`
	Source         string       `json:"source"`
	InvoiceDate    time.Time    `json:"invoice_date"`
	ValueDate      time.Time    `json:"value_date"`
	Currency       string       `json:"currency,omitempty"`
	Debit1         *LegResponse `json:"debit1,omitempty"`
	Debit2         *LegResponse `json:"debit2,omitempty"`
	Credit1        *LegResponse `json:"credit1,omitempty"`
	Credit2        *LegResponse `json:"credit2,omitempty"`
	CounterpartyID string       `json:"counterparty_id,omitempty"`
	Description    string       `json:"description,omitempty"`
	Reference      string       `json:"reference,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}

// GenerateLedgerResponse is the outcome of one generation run.
type GenerateLedgerResponse struct {
	ChargeID string                 `json:"charge_id"`
	Reused   bool                   `json:"reused"`
	Entries  []*LedgerEntryResponse `json:"entries"`
}

// EntityResidualResponse is one unbalanced entity in a validation
// report.
type EntityResidualResponse struct {
	AccountID string          `json:"account_id"`
	Residual  decimal.Decimal `json:"residual"`
}

// ValidationReportResponse represents a validation report.
type ValidationReportResponse struct {
	ChargeID           string                   `json:"charge_id"`
	IsBalanced         bool                     `json:"is_balanced"`
	UnbalancedEntities []EntityResidualResponse `json:"unbalanced_entities,omitempty"`
	GlobalResidual     decimal.Decimal          `json:"global_residual"`
	CheckedAt          time.Time                `json:"checked_at"`
}

// BatchItemResponse is the per-charge outcome of a batch run.
type BatchItemResponse struct {
	ChargeID string                  `json:"charge_id"`
	Result   *GenerateLedgerResponse `json:"result,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

// BatchGenerateResponse is the outcome of a batch run.
type BatchGenerateResponse struct {
	Results   []BatchItemResponse `json:"results"`
	Succeeded int                 `json:"succeeded"`
	Failed    int                 `json:"failed"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LedgerEntryFromDomain converts a domain entry to a response.
func LedgerEntryFromDomain(e *domain.LedgerEntry) *LedgerEntryResponse {
	resp := &LedgerEntryResponse{
		ID:             e.ID,
		ChargeID:       e.ChargeID,
		OwnerID:        e.OwnerID,
		Source:         string(e.Source),
		InvoiceDate:    e.InvoiceDate,
		ValueDate:      e.ValueDate,
		Currency:       e.Currency,
		CounterpartyID: e.CounterpartyID,
		Description:    e.Description,
		Reference:      e.Reference,
		CreatedAt:      e.CreatedAt,
	}

	if e.Debit1.AccountID != "" {
		resp.Debit1 = legFromDomain(e.Debit1)
	}

	if e.Credit1.AccountID != "" {
		resp.Credit1 = legFromDomain(e.Credit1)
	}

	if e.Debit2 != nil {
		resp.Debit2 = legFromDomain(*e.Debit2)
	}

	if e.Credit2 != nil {
		resp.Credit2 = legFromDomain(*e.Credit2)
	}

	return resp
}

// LedgerEntriesFromDomain converts domain entries to responses.
func LedgerEntriesFromDomain(entries []*domain.LedgerEntry) []*LedgerEntryResponse {
	result := make([]*LedgerEntryResponse, len(entries))
	for i, e := range entries {
		result[i] = LedgerEntryFromDomain(e)
	}
	return result
}

// GenerateResultFromDomain converts a generation result to a response.
func GenerateResultFromDomain(chargeID string, result *usecase.GenerateResult) *GenerateLedgerResponse {
	return &GenerateLedgerResponse{
		ChargeID: chargeID,
		Reused:   result.Reused,
		Entries:  LedgerEntriesFromDomain(result.Entries),
	}
}

// ValidationReportFromDomain converts a validation report to a
// response.
func ValidationReportFromDomain(report *usecase.ValidationReport) *ValidationReportResponse {
	resp := &ValidationReportResponse{
		ChargeID:       report.ChargeID,
		IsBalanced:     report.IsBalanced,
		GlobalResidual: report.GlobalResidual,
		CheckedAt:      report.CheckedAt,
	}

	for _, e := range report.UnbalancedEntities {
		resp.UnbalancedEntities = append(resp.UnbalancedEntities, EntityResidualResponse{
			AccountID: e.AccountID,
			Residual:  e.Residual,
		})
	}

	return resp
}

func legFromDomain(leg domain.Leg) *LegResponse {
	return &LegResponse{
		AccountID:     leg.AccountID,
		ForeignAmount: leg.Foreign,
		LocalAmount:   leg.Local,
	}
}
