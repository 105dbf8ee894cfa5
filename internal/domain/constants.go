package domain

import "github.com/shopspring/decimal"

const (
	// DefaultLocalCurrency is the home-book currency unless configured
	// otherwise. All entries ultimately balance in local currency.
	DefaultLocalCurrency = "ILS"

	// AmountScale is the rounding scale for leg amounts (cents).
	AmountScale = 2
)

// Tolerances are package vars because decimal values cannot be consts.
// Comparison sites take them from here rather than re-deriving them.
var (
	// BalanceTolerance is the threshold under which a charge residual
	// counts as zero. Inputs are money rounded to cents, so anything
	// below half a cent is rounding noise.
	BalanceTolerance = decimal.RequireFromString("0.005")

	// EntryTolerance bounds the permitted debit/credit drift inside a
	// single entry after independent per-leg rounding.
	EntryTolerance = decimal.RequireFromString("0.01")
)
