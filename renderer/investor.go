package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// InvestorMarkdown renders the per-investor statement: capital summary,
// movement history, recent trades and the current month's allocation.
func InvestorMarkdown(r *fondo.InvestorReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Statement for %s", r.Investor))
	doc.PlainTextf("As of %s", r.On)
	doc.LF()

	doc.H2("Capital")
	doc.BulletList(
		fmt.Sprintf("Deposits: %s", r.Account.Deposits),
		fmt.Sprintf("Withdrawals: %s", r.Account.Withdrawals),
		fmt.Sprintf("Net capital: %s", r.Account.Net()),
		fmt.Sprintf("Share of pool: %s", r.Share),
	)
	doc.LF()

	if len(r.Movements) > 0 {
		doc.H2("Movements")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignLeft},
			Header:    []string{"Date", "Type", "Amount", "Memo"},
			Rows:      [][]string{},
		}
		for _, m := range r.Movements {
			table.Rows = append(table.Rows, []string{
				m.Date.String(),
				m.Kind.String(),
				m.Amount.String(),
				m.Memo,
			})
		}
		doc.Table(table)
	}

	if len(r.LastTrades) > 0 {
		doc.H2(fmt.Sprintf("Last %d trades", len(r.LastTrades)))
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
			Header:    []string{"Date", "Currency", "Exchange", "Profit"},
			Rows:      [][]string{},
		}
		for _, t := range r.LastTrades {
			table.Rows = append(table.Rows, []string{
				t.Date.String(),
				t.Currency,
				t.Exchange,
				t.Profit.SignedString(),
			})
		}
		doc.Table(table)
	}

	doc.H2("Current month")
	doc.BulletList(
		fmt.Sprintf("Month profit: %s", r.Month.MonthProfit),
		fmt.Sprintf("Allocated: %s", r.Allocation.Profit.SignedString()),
		fmt.Sprintf("Current capital: %s", r.Allocation.CurrentCapital),
		fmt.Sprintf("ROI: %s", r.Allocation.ROI.SignedString()),
	)

	return doc.String()
}
