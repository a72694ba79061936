package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/fondo"
	"github.com/etnz/fondo/date"
)

func testLedgers() (*fondo.TradeLedger, *fondo.CapitalLedger) {
	trades := fondo.NewTradeLedger()
	trades.Append(
		fondo.NewTrade(date.New(2025, 2, 10), "BTC", "Binance", 200, 0, ""),
		fondo.NewTrade(date.New(2025, 2, 20), "ETH", "Binance", 100, 0, ""),
	)
	capital := fondo.NewCapitalLedger()
	capital.Append(
		fondo.NewDeposit(fondo.NewInvestor("Ana"), 1000, date.New(2025, 1, 1), ""),
		fondo.NewDeposit(fondo.NewInvestor("Ben"), 1000, date.New(2025, 1, 1), ""),
	)
	return trades, capital
}

func TestDistributionMarkdown(t *testing.T) {
	trades, capital := testLedgers()
	snap := fondo.Distribute(trades, capital, date.New(2025, 2, 1), fondo.DefaultConfig())

	got := DistributionMarkdown(snap)
	for _, want := range []string{
		"# Distribution 02/2025",
		"Ana", "Ben", "Bruno",
		"| Investor |",
		"15.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered distribution misses %q:\n%s", want, got)
		}
	}
}

func TestEvolutionMarkdown(t *testing.T) {
	trades, capital := testLedgers()
	rows := fondo.HistoricalEvolution(trades, capital, fondo.NewInvestor("Ana"), date.Monthly)

	got := EvolutionMarkdown(fondo.NewInvestor("Ana"), rows)
	for _, want := range []string{"# Evolution for Ana", "01/2025", "02/2025", "| Period |"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered evolution misses %q:\n%s", want, got)
		}
	}

	empty := EvolutionMarkdown(fondo.NewInvestor("Zoe"), nil)
	if !strings.Contains(empty, "No activity recorded.") {
		t.Errorf("empty evolution not handled:\n%s", empty)
	}
}

func TestInvestorMarkdown(t *testing.T) {
	trades, capital := testLedgers()
	report, err := fondo.NewInvestorReport(trades, capital, fondo.NewInvestor("ana"), date.New(2025, 2, 1), fondo.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	got := InvestorMarkdown(report)
	for _, want := range []string{
		"# Statement for Ana",
		"## Capital",
		"## Movements",
		"## Current month",
		"| Date |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered statement misses %q:\n%s", want, got)
		}
	}
}

func TestDiagnosticMarkdown(t *testing.T) {
	_, diag := fondo.DistributeRows(
		[]fondo.RawRow{{"fecha": "01/01/2025"}},
		[]fondo.RawRow{{"nombre": "Ana", "capital_inicial": 1.0, "fecha_ingreso": "01/01/2025"}},
		date.New(2025, 1, 1), fondo.DefaultConfig())
	if diag == nil {
		t.Fatal("want a diagnostic")
	}
	got := DiagnosticMarkdown(diag)
	for _, want := range []string{"# Computation failed", "missing required columns", "fecha"} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered diagnostic misses %q:\n%s", want, got)
		}
	}
}
