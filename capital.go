package fondo

import (
	"github.com/etnz/fondo/date"
	"github.com/shopspring/decimal"
)

// Account is the per-investor capital position at a given date.
type Account struct {
	Deposits    Money
	Withdrawals Money
}

// Net returns deposits minus withdrawals. It can be negative when an
// investor withdrew more than the ledger records as deposited.
func (a Account) Net() Money { return a.Deposits.Sub(a.Withdrawals) }

// NetCapital replays the capital ledger and returns each investor's account
// as of the given date.
//
// Deposits count when their date is valid and not after asOf. Withdrawals
// count whenever their date is valid, even past asOf, so that money already
// out of the fund never earns a share. Rows with an unparseable date or an
// unknown movement kind are ignored.
func NetCapital(l *CapitalLedger, asOf date.Date) map[Investor]Account {
	accounts := make(map[Investor]Account)
	for _, m := range l.Movements() {
		if m.Investor.IsZero() || m.Date.IsZero() {
			continue
		}
		acc := accounts[m.Investor]
		switch m.Kind {
		case Deposit:
			if !m.Date.After(asOf) {
				acc.Deposits = acc.Deposits.Add(m.Amount)
			}
		case Withdrawal:
			acc.Withdrawals = acc.Withdrawals.Add(m.Amount)
		default:
			continue
		}
		accounts[m.Investor] = acc
	}
	return accounts
}

// Pool sums the positive and negative nets of all accounts. Investors with a
// non-positive net still weigh in: the pool is the plain sum of nets.
func Pool(accounts map[Investor]Account) decimal.Decimal {
	total := decimal.Zero
	for _, acc := range accounts {
		total = total.Add(acc.Net().Decimal())
	}
	return total
}
