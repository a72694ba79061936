package sheetstore

import "testing"

func TestRowsFromValues(t *testing.T) {
	values := [][]any{
		{"fecha", "moneda", "exchange", "ganancia", "", "comentarios"},
		{"14/02/2025", "BTC", "Binance", 12.34},
		{"", "", "", ""},
		{"15/02/2025", "ETH", "Bybit", "-3,25", "ignored", "swing"},
	}
	rows := rowsFromValues(values)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (empty row skipped)", len(rows))
	}

	first := rows[0]
	if first["fecha"] != "14/02/2025" || first["ganancia"] != 12.34 {
		t.Errorf("first row = %v", first)
	}
	if _, ok := first["comentarios"]; ok {
		t.Error("short row should miss the trailing keys")
	}

	second := rows[1]
	if _, ok := second[""]; ok {
		t.Error("cells under an empty header must be dropped")
	}
	if second["comentarios"] != "swing" {
		t.Errorf("second row = %v", second)
	}
}

func TestRowsFromValuesHeaderOnly(t *testing.T) {
	if rows := rowsFromValues([][]any{{"fecha"}}); rows != nil {
		t.Errorf("header-only table yielded %v", rows)
	}
	if rows := rowsFromValues(nil); rows != nil {
		t.Errorf("nil table yielded %v", rows)
	}
}
