package fondo

import (
	"fmt"
	"slices"

	"github.com/etnz/fondo/date"
)

// lastTradesCount is how many recent trades an investor report shows.
const lastTradesCount = 10

// InvestorReport gathers everything the per-investor statement shows: the
// capital position, the movement history, the fund's recent trades and the
// current month's allocation.
type InvestorReport struct {
	Investor   Investor
	On         date.Date
	Account    Account
	Share      Percent    // of the current pool
	Movements  []Movement // newest first
	LastTrades []Trade    // newest first, at most lastTradesCount
	Allocation DistributionLine
	Month      *DistributionSnapshot
}

// NewInvestorReport builds the statement for one investor as of 'on'. The
// investor is matched case-insensitively against the capital ledger; an
// investor with no movement at all is an error.
func NewInvestorReport(trades *TradeLedger, capital *CapitalLedger, inv Investor, on date.Date, cfg Config) (*InvestorReport, error) {
	// resolve the canonical casing from the ledger
	var resolved Investor
	for registered := range capital.Investors() {
		if registered.Matches(inv) {
			resolved = registered
			break
		}
	}
	if resolved.IsZero() {
		return nil, fmt.Errorf("investor %q has no capital movements", inv)
	}

	var movements []Movement
	byInv := ByInvestor(resolved)
	for _, m := range capital.Movements() {
		if byInv(m) {
			movements = append(movements, m)
		}
	}
	slices.Reverse(movements)

	var last []Trade
	for _, t := range trades.Trades() {
		last = append(last, t)
	}
	if len(last) > lastTradesCount {
		last = last[len(last)-lastTradesCount:]
	}
	slices.Reverse(last)

	snap := Distribute(trades, capital, on, cfg)
	line, _ := snap.Line(resolved)

	accounts := NetCapital(capital, on)
	return &InvestorReport{
		Investor:   resolved,
		On:         on,
		Account:    accounts[resolved],
		Share:      line.Share,
		Movements:  movements,
		LastTrades: last,
		Allocation: line,
		Month:      snap,
	}, nil
}
