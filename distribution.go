package fondo

import (
	"errors"
	"slices"
	"strings"

	"github.com/etnz/fondo/date"
	"github.com/shopspring/decimal"
)

// FeeTier maps a monthly return floor to a performance fee percentage.
// Floor is compared against the month's return: the tier applies when the
// return is above the floor, or at-or-above it when Inclusive is set.
type FeeTier struct {
	Floor     decimal.Decimal
	Inclusive bool
	Pct       decimal.Decimal
}

// Matches reports whether this tier applies to the given monthly return.
func (t FeeTier) Matches(ret Percent) bool {
	if t.Inclusive {
		return ret.Decimal().GreaterThanOrEqual(t.Floor)
	}
	return ret.Decimal().GreaterThan(t.Floor)
}

// Config carries the distribution rules: who collects the performance fee
// and the fee schedule, ordered from highest floor to lowest. The first
// matching tier wins.
type Config struct {
	Recipient Investor
	Tiers     []FeeTier
}

// DefaultConfig returns the fund's standing fee schedule.
//
// The third tier charges 100% on returns between 0% and 10% exclusive. That
// is what the fund has been applying since inception: small positive months
// are kept entirely by the manager.
// TODO(bruno): confirm the 0-10% tier is intentional before the fund takes
// outside money; a 25% floor there would match the published schedule.
func DefaultConfig() Config {
	return Config{
		Recipient: NewInvestor("Bruno"),
		Tiers: []FeeTier{
			{Floor: decimal.NewFromInt(30), Pct: decimal.NewFromInt(35)},
			{Floor: decimal.NewFromInt(10), Inclusive: true, Pct: decimal.NewFromInt(25)},
			{Floor: decimal.Zero, Pct: decimal.NewFromInt(100)},
		},
	}
}

// FeePct resolves the fee percentage for a monthly return. A non-positive
// return, or a return below every tier, is fee free.
func (c Config) FeePct(ret Percent) Percent {
	for _, t := range c.Tiers {
		if t.Matches(ret) {
			return P(t.Pct)
		}
	}
	return Percent{}
}

// DistributionLine is one investor's slice of a monthly distribution.
type DistributionLine struct {
	Investor       Investor
	Deposits       Money
	Withdrawals    Money
	NetCapital     Money
	Share          Percent
	Profit         Money
	CurrentCapital Money
	ROI            Percent
}

// DistributionSnapshot is the result of distributing one month's profit
// across the capital pool.
type DistributionSnapshot struct {
	On          date.Date
	MonthProfit Money
	Pool        Money
	Return      Percent
	FeePct      Percent
	Fee         Money
	Recipient   Investor
	Lines       []DistributionLine
}

// Line returns the line for the given investor, matched case-insensitively,
// or false when the investor took no part in the distribution.
func (s *DistributionSnapshot) Line(inv Investor) (DistributionLine, bool) {
	for _, l := range s.Lines {
		if l.Investor.Matches(inv) {
			return l, true
		}
	}
	return DistributionLine{}, false
}

// Distribute computes the profit distribution for the month containing 'on',
// over the capital contributed up to 'on'. A deposit recorded later in the
// month does not count yet; pass the month's last day to settle the whole
// month.
//
// The month's profit is taxed by the fee schedule on the pool's return, the
// remainder is split by each investor's share of net capital, and the fee is
// credited to the recipient's own line. All divisions are guarded: a
// non-positive pool yields zero shares and a non-positive net capital yields
// a zero ROI, never an error.
func Distribute(trades *TradeLedger, capital *CapitalLedger, on date.Date, cfg Config) *DistributionSnapshot {
	profit := trades.MonthProfit(on)
	accounts := NetCapital(capital, on)
	pool := Pool(accounts)

	ret := Ratio(profit.Decimal(), pool)
	feePct := cfg.FeePct(ret)
	fee := profit.Scale(feePct.Decimal().Div(decimal.NewFromInt(100)))
	if fee.IsNegative() {
		fee = M(0, profit.Currency())
	}
	distributable := profit.Sub(fee)

	snap := &DistributionSnapshot{
		On:          on,
		MonthProfit: profit,
		Pool:        M(pool, USD),
		Return:      ret,
		FeePct:      feePct,
		Fee:         fee,
		Recipient:   cfg.Recipient,
	}

	var credited bool
	for inv, acc := range accounts {
		net := acc.Net()
		share := Ratio(net.Decimal(), pool)
		gain := distributable.Scale(share.Decimal().Div(decimal.NewFromInt(100)))
		if inv.Matches(cfg.Recipient) {
			gain = gain.Add(fee)
			credited = true
		}
		snap.Lines = append(snap.Lines, DistributionLine{
			Investor:       inv,
			Deposits:       acc.Deposits,
			Withdrawals:    acc.Withdrawals,
			NetCapital:     net,
			Share:          share,
			Profit:         gain,
			CurrentCapital: net.Add(gain),
			ROI:            Ratio(gain.Decimal(), net.Decimal()),
		})
	}
	// The recipient collects the fee even without capital in the pool.
	if !credited && !fee.IsZero() {
		snap.Lines = append(snap.Lines, DistributionLine{
			Investor:       cfg.Recipient,
			Profit:         fee,
			CurrentCapital: fee,
		})
	}
	slices.SortFunc(snap.Lines, func(a, b DistributionLine) int {
		return strings.Compare(strings.ToLower(a.Investor.String()), strings.ToLower(b.Investor.String()))
	})
	return snap
}

// DistributeRows is the boundary form of Distribute: it normalizes raw
// spreadsheet rows first and never fails loudly. On bad input it returns an
// empty snapshot for the month together with a Diagnostic describing what
// was observed; callers can render the empty result and surface the
// diagnostic separately.
func DistributeRows(tradeRows, capitalRows []RawRow, on date.Date, cfg Config) (*DistributionSnapshot, *Diagnostic) {
	trades, terr := NormalizeTrades(tradeRows)
	capital, cerr := NormalizeCapital(capitalRows)
	if terr != nil || cerr != nil {
		empty := &DistributionSnapshot{
			On:        on,
			Recipient: cfg.Recipient,
		}
		err := &ComputationError{Op: "distribute", Err: errors.Join(terr, cerr)}
		return empty, newDiagnostic(err, tradeRows, capitalRows)
	}
	return Distribute(trades, capital, on, cfg), nil
}
