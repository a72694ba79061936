package renderer

import (
	"bytes"
	"iter"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the full replay of both ledgers: one row per
// investor per event date, in chronological order.
func HistoryMarkdown(points iter.Seq[fondo.EvolutionPoint]) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Fund History")

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Investor", "Capital", "Profit", "Total"},
		Rows:   [][]string{},
	}
	for pt := range points {
		table.Rows = append(table.Rows, []string{
			pt.Date.String(),
			pt.Investor.String(),
			pt.Capital.String(),
			pt.Profit.SignedString(),
			pt.Total().String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
