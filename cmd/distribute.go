package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/renderer"
	"github.com/google/subcommands"
)

type distributeCmd struct {
	month     string
	recipient string
}

func (*distributeCmd) Name() string     { return "distribute" }
func (*distributeCmd) Synopsis() string { return "display the monthly profit distribution" }
func (*distributeCmd) Usage() string {
	return `fdo distribute [-month <MM/YYYY>] [-recipient <name>]

  Computes the distribution of the month's trading profit across investors:
  the performance fee on the monthly return, and each investor's share,
  profit, current capital and ROI.

Usage Examples:
# Distribution for the current month.
$ fdo distribute

# Distribution for February 2025.
$ fdo distribute -month 02/2025

`
}

func (c *distributeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.month, "month", "", "Month to distribute (MM/YYYY, defaults to the current month)")
	f.StringVar(&c.recipient, "recipient", "", "Performance fee recipient (defaults to the standing configuration)")
}

func (c *distributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseMonth(c.month)
	if err != nil {
		return fail(err)
	}
	trades, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}
	cfg := fondo.DefaultConfig()
	if c.recipient != "" {
		cfg.Recipient = fondo.NewInvestor(c.recipient)
	}
	snap := fondo.Distribute(trades, capital, on, cfg)
	printMarkdown(renderer.DistributionMarkdown(snap))
	return subcommands.ExitSuccess
}
