package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fondo"
	md "github.com/nao1215/markdown"
)

// EvolutionMarkdown renders an investor's bucketed evolution as a markdown
// table, one row per period.
func EvolutionMarkdown(investor fondo.Investor, rows []fondo.PeriodRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Evolution for %s", investor))
	if len(rows) == 0 {
		doc.PlainText("No activity recorded.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Period", "Capital", "Profit", "Total", "ROI"},
		Rows:   [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Range.Identifier(),
			r.Capital.String(),
			r.Profit.SignedString(),
			r.Total.String(),
			r.ROI.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
