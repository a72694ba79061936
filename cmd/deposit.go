package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fondo"
	"github.com/google/subcommands"
)

type depositCmd struct {
	investor string
	amount   float64
	date     string
	memo     string
	sheet    bool
}

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a capital deposit" }
func (*depositCmd) Usage() string {
	return `fdo deposit -investor <name> -amount <amount> [-d <date>] [-memo <text>] [-sheet]

  Validates and appends a capital deposit to the local ledger. With -sheet
  the movement is also appended to the Google Sheet.
`
}

func (c *depositCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investor, "investor", "", "Investor name (required)")
	f.Float64Var(&c.amount, "amount", 0, "Deposited amount, must be positive")
	f.StringVar(&c.date, "d", "", "Movement date (DD/MM/YYYY, defaults to today)")
	f.StringVar(&c.memo, "memo", "", "Free-form comment")
	f.BoolVar(&c.sheet, "sheet", false, "Also append to the Google Sheet")
}

func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	m := fondo.NewDeposit(fondo.NewInvestor(c.investor), c.amount, on, c.memo)
	return appendMovement(ctx, m, c.sheet)
}

// appendMovement validates and persists a movement, shared with withdraw.
func appendMovement(ctx context.Context, m fondo.Movement, sheet bool) subcommands.ExitStatus {
	if err := m.Validate(); err != nil {
		return fail(err)
	}
	ledger, err := fondo.LoadCapital(*capitalFile)
	if err != nil {
		return fail(err)
	}
	ledger.Append(m)
	if err := fondo.SaveCapital(*capitalFile, ledger); err != nil {
		return fail(err)
	}
	fmt.Printf("Successfully appended %s to %s\n", m.Kind, *capitalFile)

	if sheet {
		if err := appendMovementToSheet(ctx, m); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: sheet append failed: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Println("Successfully appended movement to the sheet")
	}
	return subcommands.ExitSuccess
}
