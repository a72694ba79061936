package fondo

import (
	"errors"
	"slices"
	"testing"

	"github.com/etnz/fondo/date"
)

func TestNormalizeTrades(t *testing.T) {
	rows := []RawRow{
		{"Fecha": "14/02/2025", "Moneda": "btc", "Exchange": "Binance", "Ganancia": 12.3456, "Capital_Expuesto": "1000,50", "Comentarios": "scalp"},
		{"fecha": "5/1/2025", "moneda": "ETH", "exchange": "Bybit", "ganancia": "-3,25"},
		{"fecha": "not a date", "moneda": "SOL", "exchange": "Bybit", "ganancia": "oops"},
	}
	ledger, err := NormalizeTrades(rows)
	if err != nil {
		t.Fatalf("NormalizeTrades: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("got %d trades, want 3", ledger.Len())
	}
	var trades []Trade
	for _, tr := range ledger.Trades() {
		trades = append(trades, tr)
	}
	// sorted: zero date first, then 05/01, then 14/02
	if !trades[0].Date.IsZero() {
		t.Errorf("unparseable date should yield the zero sentinel, got %s", trades[0].Date)
	}
	assertMoney(t, "unparseable ganancia", trades[0].Profit, 0)
	if trades[1].Date != date.New(2025, 1, 5) {
		t.Errorf("single-digit date parsed as %s, want 05/01/2025", trades[1].Date)
	}
	assertMoney(t, "comma-decimal ganancia", trades[1].Profit, -3.25)
	if trades[2].Currency != "BTC" {
		t.Errorf("currency not uppercased: %q", trades[2].Currency)
	}
	assertMoney(t, "capital_expuesto", trades[2].Exposed, 1000.50)
	if trades[2].Memo != "scalp" {
		t.Errorf("comentarios lost: %q", trades[2].Memo)
	}
}

func TestNormalizeTradesSchema(t *testing.T) {
	rows := []RawRow{{"fecha": "01/01/2025", "comentarios": "x"}}
	_, err := NormalizeTrades(rows)
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	if serr.Ledger != "trades" {
		t.Errorf("Ledger = %q, want trades", serr.Ledger)
	}
	want := []string{"exchange", "ganancia", "moneda"}
	got := slices.Clone(serr.Missing)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("Missing = %v, want %v", serr.Missing, want)
	}
}

func TestNormalizeTradesEmpty(t *testing.T) {
	ledger, err := NormalizeTrades(nil)
	if err != nil {
		t.Fatalf("empty input should not fail: %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("got %d trades, want 0", ledger.Len())
	}
}

func TestNormalizeCapital(t *testing.T) {
	rows := []RawRow{
		{"Nombre": " Ana ", "Capital_Inicial": 1500.0, "Fecha_Ingreso": "10/01/2025"},
		{"nombre": "Ben", "capital_inicial": "800,25", "fecha_ingreso": "01/02/2025", "tipo": "Retiro", "comentarios": "parcial"},
		{"nombre": "Carla", "capital_inicial": 100, "fecha_ingreso": "02/02/2025", "tipo": "transferencia"},
	}
	ledger, err := NormalizeCapital(rows)
	if err != nil {
		t.Fatalf("NormalizeCapital: %v", err)
	}
	if ledger.Len() != 3 {
		t.Fatalf("got %d movements, want 3", ledger.Len())
	}
	var ms []Movement
	for _, m := range ledger.Movements() {
		ms = append(ms, m)
	}
	if ms[0].Investor.String() != "Ana" {
		t.Errorf("nombre not trimmed: %q", ms[0].Investor)
	}
	if ms[0].Kind != Deposit {
		t.Errorf("missing tipo should default to Deposit, got %v", ms[0].Kind)
	}
	if ms[1].Kind != Withdrawal {
		t.Errorf("tipo retiro parsed as %v", ms[1].Kind)
	}
	assertMoney(t, "comma-decimal capital", ms[1].Amount, 800.25)
	if ms[2].Kind != KindUnknown {
		t.Errorf("unrecognized tipo should be KindUnknown, got %v", ms[2].Kind)
	}
}

func TestNormalizeCapitalSchema(t *testing.T) {
	rows := []RawRow{{"nombre": "Ana"}}
	_, err := NormalizeCapital(rows)
	var serr *SchemaError
	if !errors.As(err, &serr) {
		t.Fatalf("want *SchemaError, got %v", err)
	}
	want := []string{"capital_inicial", "fecha_ingreso"}
	got := slices.Clone(serr.Missing)
	slices.Sort(got)
	if !slices.Equal(got, want) {
		t.Errorf("Missing = %v, want %v", serr.Missing, want)
	}
}

func TestObservedColumns(t *testing.T) {
	rows := []RawRow{
		{"Fecha": "x", "Moneda": "y"},
		{"fecha": "z", "Exchange": "w"},
	}
	got := observedColumns(rows)
	want := []string{"exchange", "fecha", "moneda"}
	if !slices.Equal(got, want) {
		t.Errorf("observedColumns = %v, want %v", got, want)
	}
}
