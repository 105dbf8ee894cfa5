package domain

import "github.com/shopspring/decimal"

// CurrencyBalance is a (foreign, local) sub-total for one currency
// under one entity.
type CurrencyBalance struct {
	Foreign decimal.Decimal
	Local   decimal.Decimal
}

// EntityBalance is the running net position of one ledger account over
// a single charge. Credit legs add, debit legs subtract. Built fresh
// per generation run and discarded once the balancer has consumed it.
type EntityBalance struct {
	AccountID  string
	Local      decimal.Decimal
	ByCurrency map[string]*CurrencyBalance
}

// NewEntityBalance creates an empty balance for an account.
func NewEntityBalance(accountID string) *EntityBalance {
	return &EntityBalance{
		AccountID:  accountID,
		Local:      decimal.Zero,
		ByCurrency: make(map[string]*CurrencyBalance),
	}
}

// Apply folds one leg into the balance. Sign is +1 for credit legs and
// -1 for debit legs. Foreign amounts accumulate under currency, which
// is ignored when the leg carries no foreign amount.
func (b *EntityBalance) Apply(leg Leg, currency string, sign int64) {
	signed := decimal.NewFromInt(sign)

	b.Local = b.Local.Add(leg.Local.Mul(signed))

	if leg.Foreign == nil {
		return
	}

	cb, ok := b.ByCurrency[currency]
	if !ok {
		cb = &CurrencyBalance{}
		b.ByCurrency[currency] = cb
	}

	cb.Foreign = cb.Foreign.Add(leg.Foreign.Mul(signed))
	cb.Local = cb.Local.Add(leg.Local.Mul(signed))
}
