package usecase

import "time"

const (
	// DefaultTaxCategoryTTL is how long resolved tax-category mappings
	// stay cached. Mappings change rarely; explicit invalidation hooks
	// cover the cases where they do.
	DefaultTaxCategoryTTL = time.Hour

	// ExchangeDifferenceDescription labels synthesized reconciling
	// entries in the ledger.
	ExchangeDifferenceDescription = "exchange rate difference"
)
