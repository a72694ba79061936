package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fondo"
	"github.com/google/subcommands"
)

type addTradeCmd struct {
	date     string
	currency string
	exchange string
	profit   float64
	exposed  float64
	memo     string
	sheet    bool
}

func (*addTradeCmd) Name() string     { return "add-trade" }
func (*addTradeCmd) Synopsis() string { return "record a trade result" }
func (*addTradeCmd) Usage() string {
	return `fdo add-trade -currency <symbol> -exchange <name> -profit <amount> [-d <date>] [-exposed <amount>] [-memo <text>] [-sheet]

  Validates and appends a trade result to the local ledger. With -sheet the
  trade is also appended to the Google Sheet.

Usage Examples:
# A winning BTC trade today.
$ fdo add-trade -currency BTC -exchange Binance -profit 12.3456

`
}

func (c *addTradeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Trade date (DD/MM/YYYY, defaults to today)")
	f.StringVar(&c.currency, "currency", "", "Traded symbol (required)")
	f.StringVar(&c.exchange, "exchange", "", "Exchange name (required)")
	f.Float64Var(&c.profit, "profit", 0, "Realized profit, negative for a loss")
	f.Float64Var(&c.exposed, "exposed", 0, "Capital exposed on the trade")
	f.StringVar(&c.memo, "memo", "", "Free-form comment")
	f.BoolVar(&c.sheet, "sheet", false, "Also append to the Google Sheet")
}

func (c *addTradeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	trade := fondo.NewTrade(on, c.currency, c.exchange, c.profit, c.exposed, c.memo)
	if err := trade.Validate(); err != nil {
		return fail(err)
	}

	ledger, err := fondo.LoadTrades(*tradesFile)
	if err != nil {
		return fail(err)
	}
	ledger.Append(trade)
	if err := fondo.SaveTrades(*tradesFile, ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Successfully appended trade to %s\n", *tradesFile)

	if c.sheet {
		if err := appendTradeToSheet(ctx, trade); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sheet append failed: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Successfully appended trade to the sheet")
	}
	return subcommands.ExitSuccess
}
