package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/dto"
	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase/mocks"
)

type handlerFixture struct {
	handler   *LedgerHandler
	charges   *mocks.MockChargeRepository
	txns      *mocks.MockTransactionRepository
	documents *mocks.MockDocumentRepository
	taxRepo   *mocks.MockTaxCategoryRepository
	rates     *mocks.MockRateProvider
}

func newHandlerFixture() *handlerFixture {
	charges := mocks.NewMockChargeRepository()
	txns := mocks.NewMockTransactionRepository()
	documents := mocks.NewMockDocumentRepository()
	ledger := mocks.NewMockLedgerRepository()
	taxRepo := mocks.NewMockTaxCategoryRepository()
	rates := mocks.NewMockRateProvider()

	resolver := usecase.NewEntityResolver(taxRepo, nil, 0)
	normalizer := usecase.NewAmountNormalizer(rates, "ILS")
	builder := usecase.NewEntryBuilder(resolver, normalizer, mocks.NewMockIDGenerator("entry"))
	accumulator := usecase.NewBalanceAccumulator("ILS")
	balancer := usecase.NewBalancer(resolver, nil, mocks.NewMockIDGenerator("rec"))
	validation := usecase.NewValidationUseCase(ledger)

	uc := usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(), charges, txns, documents, ledger,
		builder, accumulator, balancer, validation,
	)

	return &handlerFixture{
		handler:   NewLedgerHandler(uc, validation, nil),
		charges:   charges,
		txns:      txns,
		documents: documents,
		taxRepo:   taxRepo,
		rates:     rates,
	}
}

// seedCharge wires a local-currency charge whose invoice and payment
// match exactly, so generation yields two balanced entries.
func (f *handlerFixture) seedCharge() {
	d := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	supplier := "supplier-1"
	owner := "owner-1"
	total := decimal.RequireFromString("500")

	f.charges.Add(&domain.Charge{ID: "charge-1", OwnerID: owner, TransactionCount: 1, DocumentCount: 1})
	f.taxRepo.MapCharge("charge-1", "tc-office")
	f.taxRepo.MapAccount("acc-bank", "ILS", "tc-bank")

	f.documents.Add(&domain.Document{
		ID:          "doc-1",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		Date:        &d,
		DebtorID:    &owner,
		CreditorID:  &supplier,
		TotalAmount: &total,
		Currency:    "ILS",
	})

	f.txns.Add(&domain.Transaction{
		ID:         "txn-1",
		ChargeID:   "charge-1",
		Amount:     decimal.RequireFromString("-500"),
		Currency:   "ILS",
		EventDate:  d,
		DebitDate:  &d,
		BusinessID: &supplier,
		AccountID:  "acc-bank",
	})
}

// chargeRequest builds a request carrying the charge id the way chi's
// router would after matching /charges/{id}.
func chargeRequest(method, path, chargeID, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", chargeID)

	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestLedgerHandler_Generate(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	req := chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "{}")
	rr := httptest.NewRecorder()

	f.handler.Generate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rr.Code, rr.Body.String())
	}

	var resp dto.GenerateLedgerResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Reused {
		t.Error("fresh generation should not be marked reused")
	}

	if len(resp.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(resp.Entries))
	}
}

func TestLedgerHandler_GenerateEmptyBody(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	req := chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "")
	rr := httptest.NewRecorder()

	f.handler.Generate(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("empty body should be accepted, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestLedgerHandler_GenerateReuse(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	first := httptest.NewRecorder()
	f.handler.Generate(first, chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "{}"))

	second := httptest.NewRecorder()
	f.handler.Generate(second, chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1",
		`{"insert_if_not_exists":true}`))

	if second.Code != http.StatusOK {
		t.Fatalf("reused generation status = %d, want 200: %s", second.Code, second.Body.String())
	}

	var resp dto.GenerateLedgerResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if !resp.Reused {
		t.Error("second run with insert_if_not_exists should reuse existing records")
	}
}

func TestLedgerHandler_GenerateChargeNotFound(t *testing.T) {
	f := newHandlerFixture()

	req := chargeRequest(http.MethodPost, "/api/v1/charges/missing/ledger", "missing", "{}")
	rr := httptest.NewRecorder()

	f.handler.Generate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Error == "" || resp.Message == "" {
		t.Errorf("error response should carry both error and message: %+v", resp)
	}
}

func TestLedgerHandler_GenerateMissingMappingIsUnprocessable(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	// Drop the bank account mapping so the transaction side cannot resolve.
	f.taxRepo.GetByAccountAndCurrencyFunc = func(ctx context.Context, accountID, currency string) (string, error) {
		return "", &domain.MissingMappingError{AccountID: accountID, Currency: currency}
	}

	req := chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "{}")
	rr := httptest.NewRecorder()

	f.handler.Generate(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422: %s", rr.Code, rr.Body.String())
	}
}

func TestLedgerHandler_Get(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	gen := httptest.NewRecorder()
	f.handler.Generate(gen, chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "{}"))

	req := chargeRequest(http.MethodGet, "/api/v1/charges/charge-1/ledger", "charge-1", "")
	rr := httptest.NewRecorder()

	f.handler.Get(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var entries []dto.LedgerEntryResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &entries); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("expected 2 persisted entries, got %d", len(entries))
	}
}

func TestLedgerHandler_Validate(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	gen := httptest.NewRecorder()
	f.handler.Generate(gen, chargeRequest(http.MethodPost, "/api/v1/charges/charge-1/ledger", "charge-1", "{}"))

	req := chargeRequest(http.MethodGet, "/api/v1/charges/charge-1/ledger/validation", "charge-1", "")
	rr := httptest.NewRecorder()

	f.handler.Validate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var report dto.ValidationReportResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &report); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if !report.IsBalanced {
		t.Errorf("expected balanced report: %+v", report)
	}
}

func TestLedgerHandler_GenerateForOwner(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	req := chargeRequest(http.MethodPost, "/api/v1/owners/owner-1/ledger", "owner-1", "{}")
	rr := httptest.NewRecorder()

	f.handler.GenerateForOwner(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BatchGenerateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Succeeded != 1 || resp.Failed != 0 {
		t.Errorf("succeeded=%d failed=%d, want 1/0", resp.Succeeded, resp.Failed)
	}
}

func TestLedgerHandler_BatchRejectsEmpty(t *testing.T) {
	f := newHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/batch", strings.NewReader(`{"charge_ids":[]}`))
	rr := httptest.NewRecorder()

	f.handler.GenerateBatch(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestLedgerHandler_BatchMixedOutcomes(t *testing.T) {
	f := newHandlerFixture()
	f.seedCharge()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ledger/batch",
		strings.NewReader(`{"charge_ids":["charge-1","missing"]}`))
	rr := httptest.NewRecorder()

	f.handler.GenerateBatch(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rr.Code, rr.Body.String())
	}

	var resp dto.BatchGenerateResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}

	if resp.Succeeded != 1 || resp.Failed != 1 {
		t.Errorf("succeeded=%d failed=%d, want 1/1", resp.Succeeded, resp.Failed)
	}

	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 batch results, got %d", len(resp.Results))
	}

	if resp.Results[1].Error == "" {
		t.Error("failed batch item should carry an error message")
	}
}
