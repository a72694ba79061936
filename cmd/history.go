package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/renderer"
	"github.com/google/subcommands"
)

type historyCmd struct{}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the chronological replay of both ledgers" }
func (*historyCmd) Usage() string {
	return `fdo history

  Replays every capital movement and trade in order and displays each
  investor's position after every event date.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}
	printMarkdown(renderer.HistoryMarkdown(fondo.CombinedEvolution(trades, capital)))
	return subcommands.ExitSuccess
}
