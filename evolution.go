package fondo

import (
	"errors"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/etnz/fondo/date"
	"github.com/shopspring/decimal"
)

// EvolutionPoint is one investor's running position after all events of one
// ledger date: capital actually contributed so far, and the profit allocated
// to them by trades up to and including that date.
type EvolutionPoint struct {
	Date     date.Date
	Investor Investor
	Capital  Money
	Profit   Money
}

// Total is the investor's position value: contributed capital plus
// accumulated allocated profit.
func (p EvolutionPoint) Total() Money { return p.Capital.Add(p.Profit) }

// CombinedEvolution replays both ledgers in chronological order and yields,
// for every event date, the position of every investor seen so far.
//
// On a given date capital movements settle before trades, so a same-day
// deposit takes part in that day's allocation. Each trade's profit is split
// by the capital state as of that trade and never recomputed retroactively;
// when the pool is not positive at a trade date that profit stays
// unallocated. Rows without a parseable date are skipped.
//
// The sequence is restartable: every range over it replays from the ledgers.
func CombinedEvolution(trades *TradeLedger, capital *CapitalLedger) iter.Seq[EvolutionPoint] {
	return func(yield func(EvolutionPoint) bool) {
		type position struct {
			capital decimal.Decimal
			profit  decimal.Decimal
		}
		state := make(map[Investor]position)

		days := eventDays(trades, capital)
		for _, day := range days {
			// movements first
			for _, m := range capital.Movements() {
				if m.Date != day || m.Investor.IsZero() {
					continue
				}
				pos := state[m.Investor]
				switch m.Kind {
				case Deposit:
					pos.capital = pos.capital.Add(m.Amount.Decimal())
				case Withdrawal:
					pos.capital = pos.capital.Sub(m.Amount.Decimal())
				default:
					continue
				}
				state[m.Investor] = pos
			}
			// then trades, allocated against the pool as it stands
			for _, t := range trades.Trades() {
				if t.Date != day {
					continue
				}
				pool := decimal.Zero
				for _, pos := range state {
					pool = pool.Add(pos.capital)
				}
				if !pool.IsPositive() {
					continue
				}
				for inv, pos := range state {
					share := pos.capital.Div(pool)
					pos.profit = pos.profit.Add(t.Profit.Decimal().Mul(share))
					state[inv] = pos
				}
			}
			// snapshot every known investor at this date
			for _, inv := range sortedInvestors(state) {
				pos := state[inv]
				pt := EvolutionPoint{
					Date:     day,
					Investor: inv,
					Capital:  M(pos.capital, USD),
					Profit:   M(pos.profit, USD),
				}
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// eventDays returns the distinct valid dates appearing in either ledger,
// in chronological order.
func eventDays(trades *TradeLedger, capital *CapitalLedger) []date.Date {
	set := make(map[date.Date]struct{})
	for _, t := range trades.Trades() {
		if !t.Date.IsZero() {
			set[t.Date] = struct{}{}
		}
	}
	for _, m := range capital.Movements() {
		if !m.Date.IsZero() {
			set[m.Date] = struct{}{}
		}
	}
	days := slices.Collect(maps.Keys(set))
	slices.SortFunc(days, func(a, b date.Date) int {
		if a.Before(b) {
			return -1
		}
		if a.After(b) {
			return 1
		}
		return 0
	})
	return days
}

func sortedInvestors[T any](state map[Investor]T) []Investor {
	invs := slices.Collect(maps.Keys(state))
	slices.SortFunc(invs, func(a, b Investor) int {
		return strings.Compare(a.String(), b.String())
	})
	return invs
}

// PeriodRow is one bucket of an investor's historical evolution. Profit and
// ROI are cumulative: each row states the full position at the end of its
// bucket, so Total is always Capital plus Profit.
type PeriodRow struct {
	Range   date.Range
	Capital Money   // contributed capital at the end of the bucket
	Profit  Money   // profit allocated up to the end of the bucket
	Total   Money   // capital plus profit
	ROI     Percent // cumulative profit over end-of-bucket capital
}

// EvolutionRows is the boundary form of CombinedEvolution: it normalizes raw
// spreadsheet rows first and never fails loudly. On bad input it returns a
// sequence that yields nothing together with a Diagnostic describing what
// was observed.
func EvolutionRows(tradeRows, capitalRows []RawRow) (iter.Seq[EvolutionPoint], *Diagnostic) {
	trades, terr := NormalizeTrades(tradeRows)
	capital, cerr := NormalizeCapital(capitalRows)
	if terr != nil || cerr != nil {
		empty := func(yield func(EvolutionPoint) bool) {}
		err := &ComputationError{Op: "evolution", Err: errors.Join(terr, cerr)}
		return empty, newDiagnostic(err, tradeRows, capitalRows)
	}
	return CombinedEvolution(trades, capital), nil
}

// HistoricalEvolution buckets one investor's evolution by period and returns
// one row per day, month or year between their first and last event,
// including buckets with no activity.
func HistoricalEvolution(trades *TradeLedger, capital *CapitalLedger, inv Investor, period date.Period) []PeriodRow {
	var hist date.History[EvolutionPoint]
	for pt := range CombinedEvolution(trades, capital) {
		if pt.Investor == inv {
			hist.Append(pt.Date, pt)
		}
	}
	if hist.Len() == 0 {
		return nil
	}
	var from, to date.Date
	for on := range hist.Values() {
		if from.IsZero() {
			from = on
		}
		to = on
	}

	var rows []PeriodRow
	for start := from.StartOf(period); !start.After(to); start = start.EndOf(period).Add(1) {
		r := date.NewRange(start, period)
		pt, ok := hist.ValueAsOf(r.To)
		if !ok {
			rows = append(rows, PeriodRow{Range: r})
			continue
		}
		rows = append(rows, PeriodRow{
			Range:   r,
			Capital: pt.Capital,
			Profit:  pt.Profit,
			Total:   pt.Total(),
			ROI:     Ratio(pt.Profit.Decimal(), pt.Capital.Decimal()),
		})
	}
	return rows
}
