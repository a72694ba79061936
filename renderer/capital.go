package renderer

import (
	"bytes"
	"slices"
	"strings"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/date"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

// CapitalMarkdown renders the net capital position of every investor as of a
// date, investors sorted by name.
func CapitalMarkdown(on date.Date, accounts map[fondo.Investor]fondo.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Net Capital")
	doc.PlainTextf("As of %s", on)
	doc.LF()

	invs := make([]fondo.Investor, 0, len(accounts))
	for inv := range accounts {
		invs = append(invs, inv)
	}
	slices.SortFunc(invs, func(a, b fondo.Investor) int {
		return strings.Compare(a.String(), b.String())
	})

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Investor", "Deposits", "Withdrawals", "Net"},
		Rows:   [][]string{},
	}
	pool := decimal.Zero
	for _, inv := range invs {
		acc := accounts[inv]
		pool = pool.Add(acc.Net().Decimal())
		table.Rows = append(table.Rows, []string{
			inv.String(),
			acc.Deposits.String(),
			acc.Withdrawals.String(),
			acc.Net().String(),
		})
	}
	doc.Table(table)
	doc.PlainTextf("Pool: %s", fondo.M(pool, fondo.USD))

	return doc.String()
}
