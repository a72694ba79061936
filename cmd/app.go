// Package cmd implements the CLI application to manage the fund.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/fondo"
	"github.com/etnz/fondo/date"
	"github.com/google/subcommands"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&distributeCmd{},
	&capitalCmd{},
	&evolutionCmd{},
	&historyCmd{},
	&reportCmd{},
	&addTradeCmd{},
	&depositCmd{},
	&withdrawCmd{},
	&fetchCmd{},
	&exportCmd{},
	&importCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var tradesFile = flag.String("trades-file", fondo.DefaultTradesFile, "Path to the trades ledger file (JSONL format)")
var capitalFile = flag.String("capital-file", fondo.DefaultCapitalFile, "Path to the capital ledger file (JSONL format)")

// loadLedgers is the central function to open both ledgers. Missing files
// yield empty ledgers.
func loadLedgers() (*fondo.TradeLedger, *fondo.CapitalLedger, error) {
	trades, err := fondo.LoadTrades(*tradesFile)
	if err != nil {
		return nil, nil, err
	}
	capital, err := fondo.LoadCapital(*capitalFile)
	if err != nil {
		return nil, nil, err
	}
	return trades, capital, nil
}

// parseMonth reads a -month flag value as MM/YYYY, or a full DD/MM/YYYY
// date. Empty defaults to today. A bare month settles at its last day so
// every deposit of that month counts.
func parseMonth(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	if d, err := date.Parse(s); err == nil {
		return d, nil
	}
	d, err := date.Parse("01/" + s)
	if err != nil {
		return date.Date{}, fmt.Errorf("invalid month %q, want MM/YYYY", s)
	}
	return d.EndOf(date.Monthly), nil
}

// parseDateFlag reads a -d flag value, defaulting to today.
func parseDateFlag(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// printMarkdown renders a markdown document on the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}
