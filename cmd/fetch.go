package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/sheetstore"
	"github.com/google/subcommands"
)

type fetchCmd struct{}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "mirror both ledgers from the Google Sheet" }
func (*fetchCmd) Usage() string {
	return `fdo fetch

  Fetches the trades and capital tables from the Google Sheet, normalizes
  them, and overwrites the local ledger files. Requires the GOOGLE_*
  environment variables, see 'fdo topic ledgers'.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := sheetstore.NewFromEnv(ctx)
	if err != nil {
		return fail(err)
	}

	tradeRows, err := store.Trades(ctx)
	if err != nil {
		return fail(err)
	}
	capitalRows, err := store.Capital(ctx)
	if err != nil {
		return fail(err)
	}

	trades, err := fondo.NormalizeTrades(tradeRows)
	if err != nil {
		return fail(err)
	}
	capital, err := fondo.NormalizeCapital(capitalRows)
	if err != nil {
		return fail(err)
	}

	// rows with an unrecognized 'tipo' have no JSONL form: drop them here,
	// they would not count in any computation anyway
	kept := fondo.NewCapitalLedger()
	for _, m := range capital.Movements() {
		if m.Kind == fondo.KindUnknown {
			log.Printf("warning, dropping movement of %s with unrecognized tipo", m.Investor)
			continue
		}
		kept.Append(m)
	}
	capital = kept

	if err := fondo.SaveTrades(*tradesFile, trades); err != nil {
		return fail(err)
	}
	if err := fondo.SaveCapital(*capitalFile, capital); err != nil {
		return fail(err)
	}
	fmt.Printf("Fetched %d trades into %s and %d movements into %s\n",
		trades.Len(), *tradesFile, capital.Len(), *capitalFile)
	return subcommands.ExitSuccess
}
