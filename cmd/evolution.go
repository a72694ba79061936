package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/date"
	"github.com/etnz/fondo/renderer"
	"github.com/google/subcommands"
)

type evolutionCmd struct {
	investor string
	period   string
}

func (*evolutionCmd) Name() string     { return "evolution" }
func (*evolutionCmd) Synopsis() string { return "display an investor's capital evolution over time" }
func (*evolutionCmd) Usage() string {
	return `fdo evolution -investor <name> [-period <day|month|year>]

  Displays an investor's capital and allocated profit bucketed by period,
  from their first movement to the last recorded event.

Usage Examples:
# Monthly evolution for Ana.
$ fdo evolution -investor Ana

# Daily detail.
$ fdo evolution -investor Ana -period day

`
}

func (c *evolutionCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investor, "investor", "", "Investor name (required)")
	f.StringVar(&c.period, "period", "month", "Bucket size: day, month or year")
}

func (c *evolutionCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.investor == "" {
		return fail(fmt.Errorf("missing -investor"))
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return fail(err)
	}
	trades, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}
	inv := fondo.NewInvestor(c.investor)
	rows := fondo.HistoricalEvolution(trades, capital, inv, period)
	printMarkdown(renderer.EvolutionMarkdown(inv, rows))
	return subcommands.ExitSuccess
}
