package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// NormalizedAmount is a raw amount expressed in local-currency terms.
// Foreign is nil when the input was already local.
type NormalizedAmount struct {
	Local   decimal.Decimal
	Foreign *decimal.Decimal
}

// AmountNormalizer converts signed foreign-currency amounts into local
// currency using a point-in-time exchange rate, preserving the foreign
// figure alongside the local one.
type AmountNormalizer struct {
	rates         RateProvider
	localCurrency string
}

// NewAmountNormalizer creates a normalizer for the given local currency.
func NewAmountNormalizer(rates RateProvider, localCurrency string) *AmountNormalizer {
	if localCurrency == "" {
		localCurrency = domain.DefaultLocalCurrency
	}

	return &AmountNormalizer{rates: rates, localCurrency: localCurrency}
}

// LocalCurrency returns the home-book currency.
func (n *AmountNormalizer) LocalCurrency() string {
	return n.localCurrency
}

// Normalize converts amount at the date-exact rate for the reference
// date. Rate lookups do not interpolate; an absent rate is fatal for
// the transaction or document being normalized.
func (n *AmountNormalizer) Normalize(ctx context.Context, amount decimal.Decimal, currency string, date time.Time) (NormalizedAmount, error) {
	if currency == "" || currency == n.localCurrency {
		return NormalizedAmount{Local: amount.Round(domain.AmountScale)}, nil
	}

	rate, err := n.rates.GetRate(ctx, currency, date)
	if err != nil {
		return NormalizedAmount{}, err
	}

	foreign := amount

	return NormalizedAmount{
		Local:   amount.Mul(rate).Round(domain.AmountScale),
		Foreign: &foreign,
	}, nil
}
