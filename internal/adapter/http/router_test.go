package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/handler"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase/mocks"
)

func newTestRouter() http.Handler {
	charges := mocks.NewMockChargeRepository()
	ledger := mocks.NewMockLedgerRepository()
	taxRepo := mocks.NewMockTaxCategoryRepository()

	resolver := usecase.NewEntityResolver(taxRepo, nil, 0)
	normalizer := usecase.NewAmountNormalizer(mocks.NewMockRateProvider(), "ILS")
	builder := usecase.NewEntryBuilder(resolver, normalizer, mocks.NewMockIDGenerator("entry"))
	accumulator := usecase.NewBalanceAccumulator("ILS")
	balancer := usecase.NewBalancer(resolver, nil, mocks.NewMockIDGenerator("rec"))
	validation := usecase.NewValidationUseCase(ledger)

	uc := usecase.NewLedgerUseCase(
		mocks.NewMockTransactionManager(), charges,
		mocks.NewMockTransactionRepository(), mocks.NewMockDocumentRepository(), ledger,
		builder, accumulator, balancer, validation,
	)

	return NewRouter(RouterConfig{
		LedgerHandler: handler.NewLedgerHandler(uc, validation, nil),
		HealthHandler: handler.NewHealthHandler(nil, nil),
	})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter()

	testCases := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{
			name:       "liveness",
			method:     http.MethodGet,
			path:       "/health",
			wantStatus: http.StatusOK,
		},
		{
			name:       "metrics scrape",
			method:     http.MethodGet,
			path:       "/metrics",
			wantStatus: http.StatusOK,
		},
		{
			name:       "generate unknown charge",
			method:     http.MethodPost,
			path:       "/api/v1/charges/missing/ledger",
			body:       "{}",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "validate unknown charge is empty but valid",
			method:     http.MethodGet,
			path:       "/api/v1/charges/missing/ledger/validation",
			wantStatus: http.StatusOK,
		},
		{
			name:       "batch rejects empty id list",
			method:     http.MethodPost,
			path:       "/api/v1/ledger/batch",
			body:       `{"charge_ids":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "owner run with no charges",
			method:     http.MethodPost,
			path:       "/api/v1/owners/owner-1/ledger",
			body:       "{}",
			wantStatus: http.StatusOK,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/api/v1/unknown",
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Fatalf("%s %s = %d, want %d: %s", tc.method, tc.path, rr.Code, tc.wantStatus, rr.Body.String())
			}
		})
	}
}
