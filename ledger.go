package fondo

import (
	"iter"
	"maps"
	"slices"
	"sort"

	"github.com/etnz/fondo/date"
)

// TradeLedger is the append-only record of trading results.
//
// In a TradeLedger trades are always in chronological order; trades on the
// same day keep their insertion order.
type TradeLedger struct {
	trades []Trade
}

// NewTradeLedger creates an empty trade ledger.
func NewTradeLedger() *TradeLedger { return &TradeLedger{trades: make([]Trade, 0)} }

// Append appends trades to this ledger and maintains the chronological order.
func (l *TradeLedger) Append(ts ...Trade) {
	l.trades = append(l.trades, ts...)
	l.stableSort()
}

// stableSort sorts the ledger by trade date. The sort is stable, so trades on
// the same day maintain their original relative order.
func (l *TradeLedger) stableSort() {
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].Date.Before(l.trades[j].Date)
	})
}

// Len returns the number of trades recorded.
func (l *TradeLedger) Len() int { return len(l.trades) }

// Trades returns an iterator that yields each trade in chronological order.
func (l *TradeLedger) Trades() iter.Seq2[int, Trade] {
	return func(yield func(int, Trade) bool) {
		for i, t := range l.trades {
			if !yield(i, t) {
				return
			}
		}
	}
}

// OldestDate returns the date of the earliest trade, or the zero date when
// the ledger is empty.
func (l *TradeLedger) OldestDate() date.Date {
	if len(l.trades) == 0 {
		return date.Date{}
	}
	return l.trades[0].Date
}

// NewestDate returns the date of the latest trade, or the zero date when the
// ledger is empty.
func (l *TradeLedger) NewestDate() date.Date {
	if len(l.trades) == 0 {
		return date.Date{}
	}
	return l.trades[len(l.trades)-1].Date
}

// MonthProfit sums the profit of trades falling in the calendar month of the
// given date. Trades with an invalid (zero) date never match a month bucket.
func (l *TradeLedger) MonthProfit(month date.Date) Money {
	total := M(0, USD)
	for _, t := range l.trades {
		if t.Date.IsZero() {
			continue
		}
		if t.Date.SameMonth(month) {
			total = total.Add(t.Profit)
		}
	}
	return total
}

// CapitalLedger is the append-only record of investor capital movements.
//
// Movements are always in chronological order; rows with an invalid (zero)
// date sort first and are skipped by all computations.
type CapitalLedger struct {
	movements []Movement
}

// NewCapitalLedger creates an empty capital ledger.
func NewCapitalLedger() *CapitalLedger { return &CapitalLedger{movements: make([]Movement, 0)} }

// Append appends movements to this ledger and maintains the chronological order.
func (l *CapitalLedger) Append(ms ...Movement) {
	l.movements = append(l.movements, ms...)
	sort.SliceStable(l.movements, func(i, j int) bool {
		return l.movements[i].Date.Before(l.movements[j].Date)
	})
}

// Len returns the number of movements recorded.
func (l *CapitalLedger) Len() int { return len(l.movements) }

// Movements returns an iterator that yields each movement in chronological order.
func (l *CapitalLedger) Movements() iter.Seq2[int, Movement] {
	return func(yield func(int, Movement) bool) {
		for i, m := range l.movements {
			if !yield(i, m) {
				return
			}
		}
	}
}

// OldestDate returns the earliest valid movement date, or the zero date.
func (l *CapitalLedger) OldestDate() date.Date {
	for _, m := range l.movements {
		if !m.Date.IsZero() {
			return m.Date
		}
	}
	return date.Date{}
}

// NewestDate returns the latest movement date, or the zero date when the
// ledger is empty.
func (l *CapitalLedger) NewestDate() date.Date {
	if len(l.movements) == 0 {
		return date.Date{}
	}
	return l.movements[len(l.movements)-1].Date
}

// ByInvestor returns a predicate that filters movements of a single investor
// (exact name match).
func ByInvestor(investor Investor) func(Movement) bool {
	return func(m Movement) bool { return m.Investor == investor }
}

// Investors iterates over all distinct investor names appearing in the ledger,
// sorted by name for deterministic output.
func (l *CapitalLedger) Investors() iter.Seq[Investor] {
	return func(yield func(Investor) bool) {
		visited := make(map[string]Investor)
		for _, m := range l.movements {
			visited[m.Investor.String()] = m.Investor
		}
		names := slices.Collect(maps.Keys(visited))
		slices.Sort(names)
		for _, name := range names {
			if !yield(visited[name]) {
				return
			}
		}
	}
}
