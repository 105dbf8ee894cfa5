package domain

// Charge is the unit of work for ledger generation: one business event
// composed of bank transactions and/or commercial documents.
type Charge struct {
	ID               string
	OwnerID          string
	TaxCategoryID    string
	TransactionCount int
	DocumentCount    int
	// IsConversion marks a pure currency-conversion charge. Conversions
	// are self-balancing by construction; a non-zero residual on one is
	// corrupt input, never something to reconcile away.
	IsConversion bool
}
