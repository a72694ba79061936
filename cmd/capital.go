package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/renderer"
	"github.com/google/subcommands"
)

type capitalCmd struct {
	date string
}

func (*capitalCmd) Name() string     { return "capital" }
func (*capitalCmd) Synopsis() string { return "display each investor's net capital" }
func (*capitalCmd) Usage() string {
	return `fdo capital [-d <date>]

  Displays every investor's deposits, withdrawals and net capital as of a
  date, along with the resulting pool.
`
}

func (c *capitalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "As-of date (DD/MM/YYYY, defaults to today)")
}

func (c *capitalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	_, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}
	accounts := fondo.NetCapital(capital, on)
	printMarkdown(renderer.CapitalMarkdown(on, accounts))
	return subcommands.ExitSuccess
}
