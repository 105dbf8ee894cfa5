package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
)

// MockChargeRepository is a mock implementation of ChargeRepository.
type MockChargeRepository struct {
	mu      sync.RWMutex
	charges map[string]*domain.Charge

	GetByIDFunc        func(ctx context.Context, id string) (*domain.Charge, error)
	ListIDsByOwnerFunc func(ctx context.Context, ownerID string, limit, offset int) ([]string, error)
}

func NewMockChargeRepository() *MockChargeRepository {
	return &MockChargeRepository{charges: make(map[string]*domain.Charge)}
}

func (m *MockChargeRepository) Add(charge *domain.Charge) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.charges[charge.ID] = charge
}

func (m *MockChargeRepository) GetByID(ctx context.Context, id string) (*domain.Charge, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.charges[id]; ok {
		return c, nil
	}
	return nil, domain.ErrChargeNotFound
}

func (m *MockChargeRepository) ListIDsByOwner(ctx context.Context, ownerID string, limit, offset int) ([]string, error) {
	if m.ListIDsByOwnerFunc != nil {
		return m.ListIDsByOwnerFunc(ctx, ownerID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, c := range m.charges {
		if c.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if offset >= len(ids) {
		return nil, nil
	}
	ids = ids[offset:]
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

// MockTransactionRepository is a mock implementation of TransactionRepository.
type MockTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string][]*domain.Transaction

	ListByChargeFunc func(ctx context.Context, chargeID string) ([]*domain.Transaction, error)
}

func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{transactions: make(map[string][]*domain.Transaction)}
}

func (m *MockTransactionRepository) Add(txn *domain.Transaction) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transactions[txn.ChargeID] = append(m.transactions[txn.ChargeID], txn)
}

func (m *MockTransactionRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.Transaction, error) {
	if m.ListByChargeFunc != nil {
		return m.ListByChargeFunc(ctx, chargeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.transactions[chargeID], nil
}

// MockDocumentRepository is a mock implementation of DocumentRepository.
type MockDocumentRepository struct {
	mu        sync.RWMutex
	documents map[string][]*domain.Document

	ListByChargeFunc func(ctx context.Context, chargeID string) ([]*domain.Document, error)
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{documents: make(map[string][]*domain.Document)}
}

func (m *MockDocumentRepository) Add(doc *domain.Document) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.documents[doc.ChargeID] = append(m.documents[doc.ChargeID], doc)
}

func (m *MockDocumentRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.Document, error) {
	if m.ListByChargeFunc != nil {
		return m.ListByChargeFunc(ctx, chargeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.documents[chargeID], nil
}

// MockTaxCategoryRepository is a mock implementation of TaxCategoryRepository.
// Mappings not present return a *domain.MissingMappingError, matching
// the postgres adapter's contract.
type MockTaxCategoryRepository struct {
	mu         sync.RWMutex
	byAccount  map[string]string // key: accountID + "/" + currency
	byCharge   map[string]string
	vatID      string
	exchDiffID string

	GetByAccountAndCurrencyFunc func(ctx context.Context, accountID, currency string) (string, error)
	GetByChargeFunc             func(ctx context.Context, chargeID string) (string, error)
}

func NewMockTaxCategoryRepository() *MockTaxCategoryRepository {
	return &MockTaxCategoryRepository{
		byAccount:  make(map[string]string),
		byCharge:   make(map[string]string),
		vatID:      "tc-vat",
		exchDiffID: "tc-exchange-diff",
	}
}

func (m *MockTaxCategoryRepository) MapAccount(accountID, currency, taxCategoryID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byAccount[accountID+"/"+currency] = taxCategoryID
}

func (m *MockTaxCategoryRepository) MapCharge(chargeID, taxCategoryID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byCharge[chargeID] = taxCategoryID
}

func (m *MockTaxCategoryRepository) GetByAccountAndCurrency(ctx context.Context, accountID, currency string) (string, error) {
	if m.GetByAccountAndCurrencyFunc != nil {
		return m.GetByAccountAndCurrencyFunc(ctx, accountID, currency)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.byAccount[accountID+"/"+currency]; ok {
		return id, nil
	}
	return "", &domain.MissingMappingError{AccountID: accountID, Currency: currency}
}

func (m *MockTaxCategoryRepository) GetByCharge(ctx context.Context, chargeID string) (string, error) {
	if m.GetByChargeFunc != nil {
		return m.GetByChargeFunc(ctx, chargeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id, ok := m.byCharge[chargeID]; ok {
		return id, nil
	}
	return "", &domain.MissingMappingError{ChargeID: chargeID}
}

func (m *MockTaxCategoryRepository) GetVAT(ctx context.Context) (string, error) {
	return m.vatID, nil
}

func (m *MockTaxCategoryRepository) GetExchangeDifference(ctx context.Context) (string, error) {
	return m.exchDiffID, nil
}

// MockRateProvider is a mock implementation of RateProvider keyed by
// currency and calendar date. Absent snapshots return a
// *domain.MissingRateError, matching the postgres adapter's contract.
type MockRateProvider struct {
	mu    sync.RWMutex
	rates map[string]decimal.Decimal

	GetRateFunc func(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error)
}

func NewMockRateProvider() *MockRateProvider {
	return &MockRateProvider{rates: make(map[string]decimal.Decimal)}
}

func rateKey(currency string, date time.Time) string {
	return currency + "@" + date.Format("2006-01-02")
}

func (m *MockRateProvider) SetRate(currency string, date time.Time, rate decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rates[rateKey(currency, date)] = rate
}

func (m *MockRateProvider) GetRate(ctx context.Context, currency string, date time.Time) (decimal.Decimal, error) {
	if m.GetRateFunc != nil {
		return m.GetRateFunc(ctx, currency, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if rate, ok := m.rates[rateKey(currency, date)]; ok {
		return rate, nil
	}
	return decimal.Zero, &domain.MissingRateError{Currency: currency, Date: date}
}

// MockLedgerRepository is an in-memory mock of LedgerRepository with
// working delete/insert semantics, enough to exercise idempotency and
// atomic replace in the orchestrator.
type MockLedgerRepository struct {
	mu      sync.RWMutex
	entries map[string][]*domain.LedgerEntry

	ListByChargeFunc     func(ctx context.Context, chargeID string) ([]*domain.LedgerEntry, error)
	InsertTxFunc         func(ctx context.Context, tx usecase.Transaction, entries []*domain.LedgerEntry) error
	DeleteByChargeTxFunc func(ctx context.Context, tx usecase.Transaction, chargeID string) error
}

func NewMockLedgerRepository() *MockLedgerRepository {
	return &MockLedgerRepository{entries: make(map[string][]*domain.LedgerEntry)}
}

func (m *MockLedgerRepository) ListByCharge(ctx context.Context, chargeID string) ([]*domain.LedgerEntry, error) {
	if m.ListByChargeFunc != nil {
		return m.ListByChargeFunc(ctx, chargeID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.LedgerEntry(nil), m.entries[chargeID]...), nil
}

func (m *MockLedgerRepository) InsertTx(ctx context.Context, tx usecase.Transaction, entries []*domain.LedgerEntry) error {
	if m.InsertTxFunc != nil {
		return m.InsertTxFunc(ctx, tx, entries)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range entries {
		m.entries[e.ChargeID] = append(m.entries[e.ChargeID], e)
	}
	return nil
}

func (m *MockLedgerRepository) DeleteByChargeTx(ctx context.Context, tx usecase.Transaction, chargeID string) error {
	if m.DeleteByChargeTxFunc != nil {
		return m.DeleteByChargeTxFunc(ctx, tx, chargeID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, chargeID)
	return nil
}

// MockTransaction is a no-op usecase.Transaction recording outcome.
type MockTransaction struct {
	Committed  bool
	RolledBack bool
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTransactionManager hands out MockTransactions.
type MockTransactionManager struct {
	mu           sync.Mutex
	Transactions []*MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	tx := &MockTransaction{}
	m.Transactions = append(m.Transactions, tx)
	return tx, nil
}

// MockIDGenerator yields deterministic sequential ids.
type MockIDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

func NewMockIDGenerator(prefix string) *MockIDGenerator {
	return &MockIDGenerator{prefix: prefix}
}

func (g *MockIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return g.prefix + "-" + itoa(g.next)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// MockCache is an in-memory usecase.Cache.
type MockCache struct {
	mu    sync.RWMutex
	items map[string]string

	Gets    int
	Sets    int
	Deletes int
}

func NewMockCache() *MockCache {
	return &MockCache{items: make(map[string]string)}
}

func (c *MockCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	if v, ok := c.items[key]; ok {
		return v, nil
	}
	return "", errCacheMiss
}

func (c *MockCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	c.items[key] = value
	return nil
}

func (c *MockCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Deletes++
	delete(c.items, key)
	return nil
}

type cacheMissError struct{}

func (cacheMissError) Error() string { return "cache miss" }

var errCacheMiss = cacheMissError{}
