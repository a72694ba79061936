// Package renderer turns fondo reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// DistributionMarkdown renders one month's distribution snapshot as a
// markdown document with the summary figures and a per-investor table.
func DistributionMarkdown(s *fondo.DistributionSnapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Distribution %s", s.On.Format("01/2006")))
	doc.PlainTextf("As of %s", s.On)
	doc.LF()
	doc.BulletList(
		fmt.Sprintf("Month profit: %s", s.MonthProfit),
		fmt.Sprintf("Capital pool: %s", s.Pool),
		fmt.Sprintf("Return: %s", s.Return),
		fmt.Sprintf("Performance fee: %s of profit, %s to %s", s.FeePct, s.Fee, s.Recipient),
	)
	doc.LF()

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Investor", "Net Capital", "Share", "Profit", "Current Capital", "ROI", "Withdrawals"},
		Rows:   [][]string{},
	}
	for _, l := range s.Lines {
		table.Rows = append(table.Rows, []string{
			l.Investor.String(),
			l.NetCapital.String(),
			l.Share.String(),
			l.Profit.SignedString(),
			l.CurrentCapital.String(),
			l.ROI.SignedString(),
			l.Withdrawals.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// DiagnosticMarkdown renders a boundary failure so a dashboard can show the
// empty result and what went wrong side by side.
func DiagnosticMarkdown(d *fondo.Diagnostic) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Computation failed")
	doc.PlainText(d.Message)
	doc.LF()
	doc.BulletList(
		fmt.Sprintf("Trade columns observed: %v", d.TradeColumns),
		fmt.Sprintf("Capital columns observed: %v", d.CapitalColumns),
		fmt.Sprintf("Evaluated: %s", d.On.Format("02/01/2006 15:04:05")),
	)

	return doc.String()
}
