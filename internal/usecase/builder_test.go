package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase/mocks"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

type builderFixture struct {
	taxRepo *mocks.MockTaxCategoryRepository
	rates   *mocks.MockRateProvider
	builder *usecase.EntryBuilder
}

func newBuilderFixture() *builderFixture {
	taxRepo := mocks.NewMockTaxCategoryRepository()
	rates := mocks.NewMockRateProvider()

	resolver := usecase.NewEntityResolver(taxRepo, nil, 0)
	normalizer := usecase.NewAmountNormalizer(rates, "ILS")
	builder := usecase.NewEntryBuilder(resolver, normalizer, mocks.NewMockIDGenerator("entry"))

	return &builderFixture{taxRepo: taxRepo, rates: rates, builder: builder}
}

func testCharge() *domain.Charge {
	return &domain.Charge{ID: "charge-1", OwnerID: "owner-1"}
}

func TestEntryBuilder_DocumentVATSplit(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-office")

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	doc := &domain.Document{
		ID:          "doc-1",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		Date:        &date,
		DebtorID:    strPtr("owner-1"),
		CreditorID:  strPtr("supplier-1"),
		TotalAmount: decPtr("1170"),
		VATAmount:   decPtr("170"),
		Currency:    "ILS",
		Serial:      "INV-7",
	}

	entry, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Owner is debtor: the counterparty takes the full total on credit.
	if entry.Credit1.AccountID != "supplier-1" || !entry.Credit1.Local.Equal(dec("1170")) {
		t.Errorf("credit1 = %s %s, want supplier-1 1170", entry.Credit1.AccountID, entry.Credit1.Local)
	}

	if entry.Debit1.AccountID != "tc-office" || !entry.Debit1.Local.Equal(dec("1000")) {
		t.Errorf("debit1 = %s %s, want tc-office 1000", entry.Debit1.AccountID, entry.Debit1.Local)
	}

	if entry.Debit2 == nil || entry.Debit2.AccountID != "tc-vat" || !entry.Debit2.Local.Equal(dec("170")) {
		t.Errorf("debit2 = %+v, want tc-vat 170", entry.Debit2)
	}

	if entry.Credit2 != nil {
		t.Errorf("credit2 should be nil, got %+v", entry.Credit2)
	}

	if entry.Source != domain.EntrySourceDocument {
		t.Errorf("source = %s, want document", entry.Source)
	}

	if entry.CounterpartyID != "supplier-1" {
		t.Errorf("counterparty = %s, want supplier-1", entry.CounterpartyID)
	}

	if err := entry.Validate(); err != nil {
		t.Errorf("entry should balance internally: %v", err)
	}
}

func TestEntryBuilder_DocumentNoVAT(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-office")

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	doc := &domain.Document{
		ID:          "doc-1",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		Date:        &date,
		DebtorID:    strPtr("owner-1"),
		CreditorID:  strPtr("supplier-1"),
		TotalAmount: decPtr("500"),
		Currency:    "ILS",
	}

	entry, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Debit2 != nil || entry.Credit2 != nil {
		t.Errorf("no VAT split expected, got debit2=%+v credit2=%+v", entry.Debit2, entry.Credit2)
	}

	if !entry.Debit1.Local.Equal(dec("500")) {
		t.Errorf("debit1 = %s, want 500", entry.Debit1.Local)
	}
}

func TestEntryBuilder_DocumentIncomeDirection(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-income")

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Owner is creditor: client owes the owner.
	doc := &domain.Document{
		ID:          "doc-2",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		Date:        &date,
		DebtorID:    strPtr("client-1"),
		CreditorID:  strPtr("owner-1"),
		TotalAmount: decPtr("1170"),
		VATAmount:   decPtr("170"),
		Currency:    "ILS",
	}

	entry, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Debit1.AccountID != "client-1" || !entry.Debit1.Local.Equal(dec("1170")) {
		t.Errorf("debit1 = %s %s, want client-1 1170", entry.Debit1.AccountID, entry.Debit1.Local)
	}

	if entry.Credit1.AccountID != "tc-income" || !entry.Credit1.Local.Equal(dec("1000")) {
		t.Errorf("credit1 = %s %s, want tc-income 1000", entry.Credit1.AccountID, entry.Credit1.Local)
	}

	if entry.Credit2 == nil || !entry.Credit2.Local.Equal(dec("170")) {
		t.Errorf("credit2 = %+v, want VAT 170", entry.Credit2)
	}
}

func TestEntryBuilder_CreditInvoiceFlipsDirection(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-office")

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	doc := &domain.Document{
		ID:          "doc-3",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeCreditInvoice,
		Date:        &date,
		DebtorID:    strPtr("owner-1"),
		CreditorID:  strPtr("supplier-1"),
		TotalAmount: decPtr("500"),
		Currency:    "ILS",
	}

	entry, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// A credit invoice reverses the regular owner-as-debtor direction.
	if entry.Debit1.AccountID != "supplier-1" {
		t.Errorf("debit1 = %s, want supplier-1", entry.Debit1.AccountID)
	}

	if entry.Credit1.AccountID != "tc-office" {
		t.Errorf("credit1 = %s, want tc-office", entry.Credit1.AccountID)
	}
}

func TestEntryBuilder_ForeignDocumentVATConvertsAtDocumentDate(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-office")

	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	f.rates.SetRate("USD", date, dec("3.5"))

	doc := &domain.Document{
		ID:          "doc-4",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		Date:        &date,
		DebtorID:    strPtr("owner-1"),
		CreditorID:  strPtr("supplier-1"),
		TotalAmount: decPtr("117"),
		VATAmount:   decPtr("17"),
		Currency:    "USD",
	}

	entry, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Credit1.Foreign == nil || !entry.Credit1.Foreign.Equal(dec("117")) {
		t.Errorf("credit1 foreign = %v, want 117", entry.Credit1.Foreign)
	}

	if !entry.Credit1.Local.Equal(dec("409.5")) {
		t.Errorf("credit1 local = %s, want 409.5", entry.Credit1.Local)
	}

	if entry.Debit2 == nil || !entry.Debit2.Local.Equal(dec("59.5")) {
		t.Errorf("VAT leg local = %+v, want 59.5 (17 at the document rate)", entry.Debit2)
	}

	if err := entry.Validate(); err != nil {
		t.Errorf("entry should balance internally: %v", err)
	}
}

func TestEntryBuilder_DocumentMissingField(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapCharge("charge-1", "tc-office")

	doc := &domain.Document{
		ID:          "doc-5",
		ChargeID:    "charge-1",
		Type:        domain.DocumentTypeInvoice,
		DebtorID:    strPtr("owner-1"),
		CreditorID:  strPtr("supplier-1"),
		TotalAmount: decPtr("500"),
		Currency:    "ILS",
	}

	_, err := f.builder.BuildDocumentEntry(context.Background(), testCharge(), doc)
	if !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestEntryBuilder_TransactionDirections(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapAccount("acc-1", "ILS", "tc-bank")

	debitDate := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	outgoing := &domain.Transaction{
		ID:         "txn-1",
		ChargeID:   "charge-1",
		Amount:     dec("-1170"),
		Currency:   "ILS",
		EventDate:  debitDate,
		DebitDate:  &debitDate,
		BusinessID: strPtr("supplier-1"),
		AccountID:  "acc-1",
	}

	entry, err := f.builder.BuildTransactionEntry(context.Background(), testCharge(), outgoing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Negative amount: money left the account, counterparty is debited.
	if entry.Debit1.AccountID != "supplier-1" || !entry.Debit1.Local.Equal(dec("1170")) {
		t.Errorf("debit1 = %s %s, want supplier-1 1170", entry.Debit1.AccountID, entry.Debit1.Local)
	}

	if entry.Credit1.AccountID != "tc-bank" {
		t.Errorf("credit1 = %s, want tc-bank", entry.Credit1.AccountID)
	}

	incoming := &domain.Transaction{
		ID:         "txn-2",
		ChargeID:   "charge-1",
		Amount:     dec("900"),
		Currency:   "ILS",
		EventDate:  debitDate,
		DebitDate:  &debitDate,
		BusinessID: strPtr("client-1"),
		AccountID:  "acc-1",
	}

	entry, err = f.builder.BuildTransactionEntry(context.Background(), testCharge(), incoming)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.Credit1.AccountID != "client-1" || !entry.Credit1.Local.Equal(dec("900")) {
		t.Errorf("credit1 = %s %s, want client-1 900", entry.Credit1.AccountID, entry.Credit1.Local)
	}
}

func TestEntryBuilder_TransactionUsesDebitDateRate(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapAccount("acc-1", "USD", "tc-bank-usd")

	eventDate := time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)
	debitDate := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	f.rates.SetRate("USD", debitDate, dec("3.6"))
	// No rate for the event date on purpose.

	txn := &domain.Transaction{
		ID:         "txn-3",
		ChargeID:   "charge-1",
		Amount:     dec("-200"),
		Currency:   "USD",
		EventDate:  eventDate,
		DebitDate:  &debitDate,
		BusinessID: strPtr("supplier-1"),
		AccountID:  "acc-1",
	}

	entry, err := f.builder.BuildTransactionEntry(context.Background(), testCharge(), txn)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !entry.Debit1.Local.Equal(dec("720")) {
		t.Errorf("local = %s, want 720 (200 at the debit-date rate)", entry.Debit1.Local)
	}

	if !entry.ValueDate.Equal(debitDate) || !entry.InvoiceDate.Equal(eventDate) {
		t.Errorf("dates = (%s, %s), want (value=debit date, invoice=event date)", entry.ValueDate, entry.InvoiceDate)
	}
}

func TestEntryBuilder_TransactionMissingData(t *testing.T) {
	f := newBuilderFixture()
	f.taxRepo.MapAccount("acc-1", "ILS", "tc-bank")

	debitDate := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

	noDebitDate := &domain.Transaction{
		ID:         "txn-4",
		ChargeID:   "charge-1",
		Amount:     dec("100"),
		Currency:   "ILS",
		BusinessID: strPtr("client-1"),
		AccountID:  "acc-1",
	}

	if _, err := f.builder.BuildTransactionEntry(context.Background(), testCharge(), noDebitDate); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for debit date, got %v", err)
	}

	unmappedAccount := &domain.Transaction{
		ID:         "txn-5",
		ChargeID:   "charge-1",
		Amount:     dec("100"),
		Currency:   "EUR",
		DebitDate:  &debitDate,
		BusinessID: strPtr("client-1"),
		AccountID:  "acc-1",
	}

	if _, err := f.builder.BuildTransactionEntry(context.Background(), testCharge(), unmappedAccount); !errors.Is(err, domain.ErrMissingMapping) {
		t.Fatalf("expected ErrMissingMapping, got %v", err)
	}
}
