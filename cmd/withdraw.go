package cmd

import (
	"context"
	"flag"

	"github.com/etnz/fondo"
	"github.com/google/subcommands"
)

type withdrawCmd struct {
	investor string
	amount   float64
	date     string
	memo     string
	sheet    bool
}

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a capital withdrawal" }
func (*withdrawCmd) Usage() string {
	return `fdo withdraw -investor <name> -amount <amount> [-d <date>] [-memo <text>] [-sheet]

  Validates and appends a capital withdrawal to the local ledger. Withdrawals
  reduce the investor's net capital immediately, whatever their date. With
  -sheet the movement is also appended to the Google Sheet.
`
}

func (c *withdrawCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.investor, "investor", "", "Investor name (required)")
	f.Float64Var(&c.amount, "amount", 0, "Withdrawn amount, must be positive")
	f.StringVar(&c.date, "d", "", "Movement date (DD/MM/YYYY, defaults to today)")
	f.StringVar(&c.memo, "memo", "", "Free-form comment")
	f.BoolVar(&c.sheet, "sheet", false, "Also append to the Google Sheet")
}

func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := parseDateFlag(c.date)
	if err != nil {
		return fail(err)
	}
	m := fondo.NewWithdrawal(fondo.NewInvestor(c.investor), c.amount, on, c.memo)
	return appendMovement(ctx, m, c.sheet)
}
