package dto

// GenerateLedgerRequest represents a single-charge generation request.
type GenerateLedgerRequest struct {
	// InsertIfNotExists keeps existing balanced records untouched.
	// When false the charge's records are regenerated and replaced.
	InsertIfNotExists bool `json:"insert_if_not_exists"`
}

// BatchGenerateRequest represents a batch generation request.
type BatchGenerateRequest struct {
	ChargeIDs         []string `json:"charge_ids"`
	InsertIfNotExists bool     `json:"insert_if_not_exists"`
}

// Validate checks batch request invariants.
func (r *BatchGenerateRequest) Validate() error {
	if len(r.ChargeIDs) == 0 {
		return ErrEmptyBatch
	}

	return nil
}
