package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	investor string
	date     string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display an investor's statement" }
func (*reportCmd) Usage() string {
	return `fdo report -investor <name> [-d <date>]

  Displays one investor's statement: capital summary, movement history, the
  fund's recent trades and the current month's allocation.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investor, "investor", "", "Investor name (required, case-insensitive)")
	f.StringVar(&c.date, "d", "", "Statement date (DD/MM/YYYY, defaults to today)")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.investor == "" {
		return fail(fmt.Errorf("missing -investor"))
	}
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	trades, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}
	report, err := fondo.NewInvestorReport(trades, capital, fondo.NewInvestor(c.investor), on, fondo.DefaultConfig())
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.InvestorMarkdown(report))
	return subcommands.ExitSuccess
}
