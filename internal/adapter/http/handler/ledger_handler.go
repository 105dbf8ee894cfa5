package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Urigo/accounter-fullstack-sub008/internal/adapter/http/dto"
	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
	"github.com/Urigo/accounter-fullstack-sub008/internal/infrastructure/metrics"
	"github.com/Urigo/accounter-fullstack-sub008/internal/usecase"
)

// LedgerHandler handles ledger generation and retrieval requests.
type LedgerHandler struct {
	ledgerUC     *usecase.LedgerUseCase
	validationUC *usecase.ValidationUseCase
	metrics      *metrics.Metrics
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledgerUC *usecase.LedgerUseCase, validationUC *usecase.ValidationUseCase, m *metrics.Metrics) *LedgerHandler {
	return &LedgerHandler{
		ledgerUC:     ledgerUC,
		validationUC: validationUC,
		metrics:      m,
	}
}

// Generate handles POST /api/v1/charges/{id}/ledger.
func (h *LedgerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "id")

	var req dto.GenerateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()

	result, err := h.ledgerUC.GenerateLedger(r.Context(), usecase.GenerateLedgerInput{
		ChargeID:          chargeID,
		InsertIfNotExists: req.InsertIfNotExists,
	})

	h.observeGeneration(result, err, time.Since(start))

	if err != nil {
		writeError(w, mapDomainError(err), "ledger generation failed", err.Error())
		return
	}

	status := http.StatusCreated
	if result.Reused {
		status = http.StatusOK
	}

	writeJSON(w, status, dto.GenerateResultFromDomain(chargeID, result))
}

// Get handles GET /api/v1/charges/{id}/ledger.
func (h *LedgerHandler) Get(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "id")

	entries, err := h.ledgerUC.GetLedger(r.Context(), chargeID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to load ledger", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LedgerEntriesFromDomain(entries))
}

// Validate handles GET /api/v1/charges/{id}/ledger/validation.
// An unbalanced charge is a 200 with is_balanced=false; only
// structurally broken records are errors.
func (h *LedgerHandler) Validate(w http.ResponseWriter, r *http.Request) {
	chargeID := chi.URLParam(r, "id")

	report, err := h.validationUC.ValidateLedger(r.Context(), chargeID)

	if h.metrics != nil {
		h.metrics.ValidationsTotal.Inc()
		if err == nil {
			h.metrics.UnbalancedEntities.Observe(float64(len(report.UnbalancedEntities)))
			if !report.IsBalanced {
				h.metrics.ValidationFailures.Inc()
			}
		}
	}

	if err != nil {
		writeError(w, mapDomainError(err), "ledger validation failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ValidationReportFromDomain(report))
}

// GenerateBatch handles POST /api/v1/ledger/batch.
func (h *LedgerHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req dto.BatchGenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return
	}

	start := time.Now()
	outcomes := h.ledgerUC.GenerateMany(r.Context(), req.ChargeIDs, req.InsertIfNotExists)

	resp := dto.BatchGenerateResponse{Results: make([]dto.BatchItemResponse, 0, len(outcomes))}

	for _, outcome := range outcomes {
		item := dto.BatchItemResponse{ChargeID: outcome.ChargeID}

		if outcome.Err != nil {
			item.Error = outcome.Err.Error()
			resp.Failed++
		} else {
			item.Result = dto.GenerateResultFromDomain(outcome.ChargeID, outcome.Result)
			resp.Succeeded++
		}

		h.observeGeneration(outcome.Result, outcome.Err, 0)

		resp.Results = append(resp.Results, item)
	}

	if h.metrics != nil {
		h.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusOK, resp)
}

// GenerateForOwner handles POST /api/v1/owners/{id}/ledger. It runs
// the batch flow over every charge the owner has.
func (h *LedgerHandler) GenerateForOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "id")

	var req dto.GenerateLedgerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	start := time.Now()

	outcomes, err := h.ledgerUC.GenerateForOwner(r.Context(), ownerID, req.InsertIfNotExists)
	if err != nil {
		writeError(w, mapDomainError(err), "owner generation failed", err.Error())
		return
	}

	resp := dto.BatchGenerateResponse{Results: make([]dto.BatchItemResponse, 0, len(outcomes))}

	for _, outcome := range outcomes {
		item := dto.BatchItemResponse{ChargeID: outcome.ChargeID}

		if outcome.Err != nil {
			item.Error = outcome.Err.Error()
			resp.Failed++
		} else {
			item.Result = dto.GenerateResultFromDomain(outcome.ChargeID, outcome.Result)
			resp.Succeeded++
		}

		h.observeGeneration(outcome.Result, outcome.Err, 0)

		resp.Results = append(resp.Results, item)
	}

	if h.metrics != nil {
		h.metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) observeGeneration(result *usecase.GenerateResult, err error, elapsed time.Duration) {
	if h.metrics == nil {
		return
	}

	if elapsed > 0 {
		h.metrics.GenerationDuration.Observe(elapsed.Seconds())
	}

	if err != nil {
		h.metrics.GenerationsTotal.WithLabelValues("error").Inc()
		h.metrics.GenerationErrors.WithLabelValues(errorType(err)).Inc()
		return
	}

	if result.Reused {
		h.metrics.GenerationsTotal.WithLabelValues("reused").Inc()
		h.metrics.GenerationsReused.Inc()
		return
	}

	h.metrics.GenerationsTotal.WithLabelValues("generated").Inc()
	h.metrics.EntriesGenerated.Add(float64(len(result.Entries)))

	for _, entry := range result.Entries {
		if entry.Source == domain.EntrySourceReconciliation {
			h.metrics.ReconcilingEntries.Inc()
		}
	}
}

func errorType(err error) string {
	switch {
	case errors.Is(err, domain.ErrChargeNotFound):
		return "charge_not_found"
	case errors.Is(err, domain.ErrMissingField):
		return "missing_field"
	case errors.Is(err, domain.ErrMissingMapping):
		return "missing_mapping"
	case errors.Is(err, domain.ErrMissingRate):
		return "missing_rate"
	case errors.Is(err, domain.ErrInvalidDocument):
		return "invalid_document"
	case errors.Is(err, domain.ErrUnbalancedConversion):
		return "unbalanced_conversion"
	case errors.Is(err, domain.ErrUnbalanceable):
		return "unbalanceable"
	default:
		return "internal"
	}
}
