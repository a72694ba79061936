package fondo

import (
	"strings"
	"testing"

	"github.com/etnz/fondo/date"
)

// evolutionLedgers builds the allocation scenario: Ana funds alone, earns a
// trade, Ben joins, the next trade is split.
func evolutionLedgers() (*TradeLedger, *CapitalLedger) {
	trades := NewTradeLedger()
	trades.Append(
		NewTrade(date.New(2025, 1, 10), "BTC", "Binance", 100, 0, ""),
		NewTrade(date.New(2025, 1, 20), "ETH", "Binance", 200, 0, ""),
	)
	capital := NewCapitalLedger()
	capital.Append(
		NewDeposit(NewInvestor("Ana"), 1000, date.New(2025, 1, 1), ""),
		NewDeposit(NewInvestor("Ben"), 1000, date.New(2025, 1, 15), ""),
	)
	return trades, capital
}

func collectPoints(trades *TradeLedger, capital *CapitalLedger) map[date.Date]map[string]EvolutionPoint {
	out := make(map[date.Date]map[string]EvolutionPoint)
	for pt := range CombinedEvolution(trades, capital) {
		day := out[pt.Date]
		if day == nil {
			day = make(map[string]EvolutionPoint)
			out[pt.Date] = day
		}
		day[pt.Investor.String()] = pt
	}
	return out
}

func TestCombinedEvolution(t *testing.T) {
	trades, capital := evolutionLedgers()
	points := collectPoints(trades, capital)

	// 10/01: Ana alone, full allocation
	assertMoney(t, "Ana profit at 10/01", points[date.New(2025, 1, 10)]["Ana"].Profit, 100)

	// 15/01: Ben joins, no trade yet
	assertMoney(t, "Ben capital at 15/01", points[date.New(2025, 1, 15)]["Ben"].Capital, 1000)
	assertMoney(t, "Ben profit at 15/01", points[date.New(2025, 1, 15)]["Ben"].Profit, 0)

	// 20/01: the 200 is split 50/50 on contributed capital, the earlier
	// trade is never reallocated
	assertMoney(t, "Ana profit at 20/01", points[date.New(2025, 1, 20)]["Ana"].Profit, 200)
	assertMoney(t, "Ben profit at 20/01", points[date.New(2025, 1, 20)]["Ben"].Profit, 100)
	assertMoney(t, "Ana total at 20/01", points[date.New(2025, 1, 20)]["Ana"].Total(), 1200)
}

func TestCombinedEvolutionSameDay(t *testing.T) {
	// a deposit dated the same day as a trade takes part in its allocation
	trades := NewTradeLedger()
	trades.Append(NewTrade(date.New(2025, 1, 10), "BTC", "Binance", 100, 0, ""))
	capital := NewCapitalLedger()
	capital.Append(
		NewDeposit(NewInvestor("Ana"), 1000, date.New(2025, 1, 1), ""),
		NewDeposit(NewInvestor("Ben"), 1000, date.New(2025, 1, 10), ""),
	)
	points := collectPoints(trades, capital)
	assertMoney(t, "Ana profit", points[date.New(2025, 1, 10)]["Ana"].Profit, 50)
	assertMoney(t, "Ben profit", points[date.New(2025, 1, 10)]["Ben"].Profit, 50)
}

func TestCombinedEvolutionUnallocated(t *testing.T) {
	// a trade landing on a non-positive pool stays unallocated
	trades := NewTradeLedger()
	trades.Append(NewTrade(date.New(2025, 1, 10), "BTC", "Binance", 100, 0, ""))
	capital := NewCapitalLedger()
	capital.Append(NewWithdrawal(NewInvestor("Ana"), 500, date.New(2025, 1, 5), ""))

	points := collectPoints(trades, capital)
	assertMoney(t, "Ana profit", points[date.New(2025, 1, 10)]["Ana"].Profit, 0)
	assertMoney(t, "Ana capital", points[date.New(2025, 1, 10)]["Ana"].Capital, -500)
}

func TestCombinedEvolutionRestartable(t *testing.T) {
	trades, capital := evolutionLedgers()
	seq := CombinedEvolution(trades, capital)
	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first == 0 || first != second {
		t.Errorf("sequence not restartable: %d then %d points", first, second)
	}
}

func TestHistoricalEvolution(t *testing.T) {
	trades := NewTradeLedger()
	trades.Append(
		NewTrade(date.New(2025, 1, 10), "BTC", "Binance", 100, 0, ""),
		NewTrade(date.New(2025, 3, 10), "BTC", "Binance", 50, 0, ""),
	)
	capital := NewCapitalLedger()
	capital.Append(NewDeposit(NewInvestor("Ana"), 1000, date.New(2025, 1, 1), ""))

	rows := HistoricalEvolution(trades, capital, NewInvestor("Ana"), date.Monthly)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3 (jan, feb, mar)", len(rows))
	}
	jan, feb, mar := rows[0], rows[1], rows[2]

	if jan.Range.Identifier() != "01/2025" {
		t.Errorf("first bucket = %s, want 01/2025", jan.Range.Identifier())
	}
	assertMoney(t, "jan capital", jan.Capital, 1000)
	assertMoney(t, "jan profit", jan.Profit, 100)
	assertMoney(t, "jan total", jan.Total, 1100)
	assertPct(t, "jan ROI", jan.ROI, 10)

	// february has no activity but still gets a row carrying the state
	assertMoney(t, "feb profit", feb.Profit, 100)
	assertMoney(t, "feb total", feb.Total, 1100)
	assertPct(t, "feb ROI", feb.ROI, 10)

	// profit and ROI accumulate across buckets
	assertMoney(t, "mar profit", mar.Profit, 150)
	assertMoney(t, "mar total", mar.Total, 1150)
	assertPct(t, "mar ROI", mar.ROI, 15)

	for _, r := range rows {
		if !r.Total.Equal(r.Capital.Add(r.Profit)) {
			t.Errorf("%s: Total = %s, want Capital+Profit = %s",
				r.Range.Identifier(), r.Total, r.Capital.Add(r.Profit))
		}
	}
}

func TestHistoricalEvolutionUnknownInvestor(t *testing.T) {
	trades, capital := evolutionLedgers()
	if rows := HistoricalEvolution(trades, capital, NewInvestor("Zoe"), date.Monthly); rows != nil {
		t.Errorf("got %d rows for an unknown investor, want none", len(rows))
	}
}

func TestEvolutionRows(t *testing.T) {
	tradeRows := []RawRow{
		{"fecha": "10/02/2025", "moneda": "BTC", "exchange": "Binance", "ganancia": 100.0},
	}
	capitalRows := []RawRow{
		{"nombre": "Ana", "capital_inicial": 1000.0, "fecha_ingreso": "01/01/2025"},
	}
	seq, diag := EvolutionRows(tradeRows, capitalRows)
	if diag != nil {
		t.Fatalf("unexpected diagnostic: %v", diag)
	}
	var points []EvolutionPoint
	for pt := range seq {
		points = append(points, pt)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	last := points[len(points)-1]
	assertMoney(t, "final capital", last.Capital, 1000)
	assertMoney(t, "final profit", last.Profit, 100)
}

func TestEvolutionRowsBadSchema(t *testing.T) {
	capitalRows := []RawRow{{"nombre": "Ana", "fecha_ingreso": "01/01/2025"}}

	seq, diag := EvolutionRows(nil, capitalRows)
	if diag == nil {
		t.Fatal("want a diagnostic for a missing required column")
	}
	for range seq {
		t.Fatal("want no points alongside the diagnostic")
	}
	if len(diag.CapitalColumns) != 2 {
		t.Errorf("CapitalColumns = %v, want the observed columns", diag.CapitalColumns)
	}
	if !strings.HasPrefix(diag.Message, "evolution: ") {
		t.Errorf("Message = %q, want the failing operation named", diag.Message)
	}
}
