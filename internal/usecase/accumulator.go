package usecase

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Urigo/accounter-fullstack-sub008/internal/domain"
)

// ChargeBalance is the accumulated position of one charge: per-entity
// balances plus the date/currency facts the balancer's decision policy
// needs. Local-currency membership is tracked apart from the foreign
// set because local legs must not count toward the FX justification.
type ChargeBalance struct {
	Entities          map[string]*domain.EntityBalance
	Counterparties    map[string]struct{}
	Dates             map[time.Time]struct{}
	ForeignCurrencies map[string]struct{}
	LocalSeen         bool

	LatestTransactionValueDate  time.Time
	EarliestDocumentInvoiceDate time.Time
}

// BalanceAccumulator folds candidate entries into a ChargeBalance.
// Pure accounting: credit legs add, debit legs subtract, nothing else.
type BalanceAccumulator struct {
	localCurrency string
}

// NewBalanceAccumulator creates an accumulator for the local currency.
func NewBalanceAccumulator(localCurrency string) *BalanceAccumulator {
	if localCurrency == "" {
		localCurrency = domain.DefaultLocalCurrency
	}

	return &BalanceAccumulator{localCurrency: localCurrency}
}

// Accumulate folds every leg of every entry into a fresh ChargeBalance.
func (a *BalanceAccumulator) Accumulate(entries []*domain.LedgerEntry) *ChargeBalance {
	cb := &ChargeBalance{
		Entities:          make(map[string]*domain.EntityBalance),
		Counterparties:    make(map[string]struct{}),
		Dates:             make(map[time.Time]struct{}),
		ForeignCurrencies: make(map[string]struct{}),
	}

	for _, entry := range entries {
		// Only the date that fixed the entry's conversion rate counts
		// toward the multiple-dates test: the document date, or the
		// transaction debit date. A transaction's event date never
		// influences its rate.
		rateDate := entry.ValueDate
		if entry.Source == domain.EntrySourceDocument {
			rateDate = entry.InvoiceDate
		}
		cb.Dates[dateOnly(rateDate)] = struct{}{}

		if entry.Currency == a.localCurrency || entry.Currency == "" {
			cb.LocalSeen = true
		} else {
			cb.ForeignCurrencies[entry.Currency] = struct{}{}
		}

		if entry.CounterpartyID != "" {
			cb.Counterparties[entry.CounterpartyID] = struct{}{}
		}

		if entry.Source == domain.EntrySourceTransaction && entry.ValueDate.After(cb.LatestTransactionValueDate) {
			cb.LatestTransactionValueDate = entry.ValueDate
		}

		if entry.Source == domain.EntrySourceDocument &&
			(cb.EarliestDocumentInvoiceDate.IsZero() || entry.InvoiceDate.Before(cb.EarliestDocumentInvoiceDate)) {
			cb.EarliestDocumentInvoiceDate = entry.InvoiceDate
		}

		for _, leg := range entry.CreditLegs() {
			a.apply(cb, leg, entry.Currency, 1)
		}

		for _, leg := range entry.DebitLegs() {
			a.apply(cb, leg, entry.Currency, -1)
		}
	}

	return cb
}

func (a *BalanceAccumulator) apply(cb *ChargeBalance, leg domain.Leg, currency string, sign int64) {
	if leg.AccountID == "" {
		return
	}

	eb, ok := cb.Entities[leg.AccountID]
	if !ok {
		eb = domain.NewEntityBalance(leg.AccountID)
		cb.Entities[leg.AccountID] = eb
	}

	eb.Apply(leg, currency, sign)
}

// CounterpartyResidual sums the local-currency positions of the
// counterparty entities. Tax-category accounts deliberately stay out:
// their balances are the retained P&L of the charge, not an error.
func (cb *ChargeBalance) CounterpartyResidual() decimal.Decimal {
	residual := decimal.Zero
	for id := range cb.Counterparties {
		if eb, ok := cb.Entities[id]; ok {
			residual = residual.Add(eb.Local)
		}
	}

	return residual
}

// DistinctCurrencyCount counts currencies seen across the charge,
// local included when present.
func (cb *ChargeBalance) DistinctCurrencyCount() int {
	n := len(cb.ForeignCurrencies)
	if cb.LocalSeen {
		n++
	}

	return n
}

// SortedCounterparties returns counterparty ids ordered by descending
// absolute local balance, ties broken lexicographically, so the
// balancer's choice of reconciling counterparty is deterministic.
func (cb *ChargeBalance) SortedCounterparties() []string {
	ids := make([]string, 0, len(cb.Counterparties))
	for id := range cb.Counterparties {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		bi, bj := decimal.Zero, decimal.Zero
		if eb, ok := cb.Entities[ids[i]]; ok {
			bi = eb.Local.Abs()
		}
		if eb, ok := cb.Entities[ids[j]]; ok {
			bj = eb.Local.Abs()
		}

		if !bi.Equal(bj) {
			return bi.GreaterThan(bj)
		}

		return ids[i] < ids[j]
	})

	return ids
}

// SortedForeignCurrencies returns the foreign currencies ordered with
// the dominant one (largest local-equivalent magnitude across
// counterparty balances) first, remaining ties lexicographic. The
// lexicographic tie-break is a documented policy choice, not an
// accident of map iteration.
func (cb *ChargeBalance) SortedForeignCurrencies() []string {
	currencies := make([]string, 0, len(cb.ForeignCurrencies))
	for c := range cb.ForeignCurrencies {
		currencies = append(currencies, c)
	}

	magnitude := func(currency string) decimal.Decimal {
		total := decimal.Zero
		for id := range cb.Counterparties {
			eb, ok := cb.Entities[id]
			if !ok {
				continue
			}

			if curBal, ok := eb.ByCurrency[currency]; ok {
				total = total.Add(curBal.Local.Abs())
			}
		}

		return total
	}

	sort.Slice(currencies, func(i, j int) bool {
		mi, mj := magnitude(currencies[i]), magnitude(currencies[j])
		if !mi.Equal(mj) {
			return mi.GreaterThan(mj)
		}

		return currencies[i] < currencies[j]
	})

	return currencies
}
