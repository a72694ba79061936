package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fondo"
	"github.com/google/subcommands"
)

type importCmd struct {
	file    string
	mapping fondo.TradeMapping
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import trades from an exchange's JSON export" }
func (*importCmd) Usage() string {
	return `fdo import -file <export.json> [-rows <jsonpath>] [-date <jsonpath>] [-currency <jsonpath>] [-exchange <jsonpath|literal>] [-profit <jsonpath>] [-exposed <jsonpath>] [-memo <jsonpath>]

  Reads an exchange's JSON export, maps its fields onto trades with jsonpath
  expressions, and merges the result into the local trade ledger. A mapping
  flag that does not start with '$' is taken as a literal value.

Usage Examples:
# A Binance closed-positions export.
$ fdo import -file closed.json -rows '$.trades[*]' -date '$.closedAt' \
    -currency '$.symbol' -exchange Binance -profit '$.pnl'

`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "JSON export to import (required)")
	f.StringVar(&c.mapping.Rows, "rows", "$[*]", "jsonpath selecting the list of records")
	f.StringVar(&c.mapping.Date, "date", "$.date", "jsonpath of the trade date (DD/MM/YYYY)")
	f.StringVar(&c.mapping.Currency, "currency", "$.currency", "jsonpath of the traded symbol")
	f.StringVar(&c.mapping.Exchange, "exchange", "$.exchange", "jsonpath or literal exchange name")
	f.StringVar(&c.mapping.Profit, "profit", "$.profit", "jsonpath of the realized profit")
	f.StringVar(&c.mapping.Exposed, "exposed", "", "jsonpath of the exposed capital (optional)")
	f.StringVar(&c.mapping.Memo, "memo", "", "jsonpath of the comment (optional)")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" {
		return fail(fmt.Errorf("missing -file"))
	}
	in, err := os.Open(c.file)
	if err != nil {
		return fail(err)
	}
	defer in.Close()

	imported, err := fondo.ImportTrades(in, c.mapping)
	if err != nil {
		return fail(err)
	}

	ledger, err := fondo.LoadTrades(*tradesFile)
	if err != nil {
		return fail(err)
	}
	for _, t := range imported.Trades() {
		ledger.Append(t)
	}
	if err := fondo.SaveTrades(*tradesFile, ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Imported %d trades into %s\n", imported.Len(), *tradesFile)
	return subcommands.ExitSuccess
}
