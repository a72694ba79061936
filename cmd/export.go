package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/etnz/fondo"
	"github.com/google/subcommands"
)

type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export both ledgers as CSV files" }
func (*exportCmd) Usage() string {
	return `fdo export [-o <dir>]

  Writes trades.csv and capital.csv with the spreadsheet's column layout,
  ready for accounting or re-import into the sheet.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", ".", "Output directory")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	trades, capital, err := loadLedgers()
	if err != nil {
		return fail(err)
	}

	tradesPath := filepath.Join(c.out, "trades.csv")
	if err := exportFile(tradesPath, func(w *os.File) error {
		return fondo.ExportTradesCSV(w, trades)
	}); err != nil {
		return fail(err)
	}

	capitalPath := filepath.Join(c.out, "capital.csv")
	if err := exportFile(capitalPath, func(w *os.File) error {
		return fondo.ExportCapitalCSV(w, capital)
	}); err != nil {
		return fail(err)
	}

	fmt.Printf("Exported %s and %s\n", tradesPath, capitalPath)
	return subcommands.ExitSuccess
}

func exportFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return write(f)
}
