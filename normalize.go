package fondo

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/fondo/date"
	"github.com/shopspring/decimal"
)

// RawRow is one spreadsheet row, keyed by column header. Values arrive as
// whatever the sheet API produced (string, float64, int, bool...).
type RawRow map[string]any

// column names after canonicalization (trimmed, lowercased).
const (
	colFecha    = "fecha"
	colMoneda   = "moneda"
	colExchange = "exchange"
	colGanancia = "ganancia"
	colExpuesto = "capital_expuesto"
	colNombre   = "nombre"
	colCapital  = "capital_inicial"
	colIngreso  = "fecha_ingreso"
	colTipo     = "tipo"
	colMemo     = "comentarios"
)

var (
	requiredTradeColumns   = []string{colFecha, colMoneda, colExchange, colGanancia}
	requiredCapitalColumns = []string{colNombre, colCapital, colIngreso}
)

// canon returns the canonical form of a column header: trimmed and lowercased.
func canon(column string) string { return strings.ToLower(strings.TrimSpace(column)) }

// canonRow rewrites a raw row with canonical column names. On duplicate
// canonical names the last cell wins.
func canonRow(row RawRow) RawRow {
	out := make(RawRow, len(row))
	for k, v := range row {
		out[canon(k)] = v
	}
	return out
}

// observedColumns collects the union of canonical column names across rows,
// sorted, for error reports.
func observedColumns(rows []RawRow) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		for k := range row {
			set[canon(k)] = struct{}{}
		}
	}
	cols := slices.Collect(maps.Keys(set))
	slices.Sort(cols)
	return cols
}

// checkSchema verifies that every required column appears in at least one row.
func checkSchema(ledger string, rows []RawRow, required []string) error {
	present := make(map[string]struct{})
	for _, c := range observedColumns(rows) {
		present[c] = struct{}{}
	}
	var missing []string
	for _, c := range required {
		if _, ok := present[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Ledger: ledger, Missing: missing}
	}
	return nil
}

// NormalizeTrades turns raw trade rows into a typed ledger.
//
// It is a pure transform: no logging, no partial silent results. An empty
// input yields an empty ledger and no error; a non-empty input missing a
// required column yields a *SchemaError naming every missing column.
// Cell-level problems never fail the whole table: unparseable numbers become
// 0 and unparseable dates become the zero-date sentinel.
func NormalizeTrades(rows []RawRow) (*TradeLedger, error) {
	ledger := NewTradeLedger()
	if len(rows) == 0 {
		return ledger, nil
	}
	if err := checkSchema("trades", rows, requiredTradeColumns); err != nil {
		return nil, err
	}
	for _, raw := range rows {
		row := canonRow(raw)
		ledger.Append(Trade{
			Date:     cellDate(row[colFecha]),
			Currency: strings.ToUpper(cellString(row[colMoneda])),
			Exchange: cellString(row[colExchange]),
			Profit:   M(cellNumber(row[colGanancia]), USD),
			Exposed:  M(cellNumber(row[colExpuesto]), USD),
			Memo:     cellString(row[colMemo]),
		})
	}
	return ledger, nil
}

// NormalizeCapital turns raw capital-movement rows into a typed ledger.
//
// A missing 'tipo' column (or an empty cell) defaults the movement to a
// deposit; an unrecognized value yields KindUnknown so the row is preserved
// without being counted.
func NormalizeCapital(rows []RawRow) (*CapitalLedger, error) {
	ledger := NewCapitalLedger()
	if len(rows) == 0 {
		return ledger, nil
	}
	if err := checkSchema("capital", rows, requiredCapitalColumns); err != nil {
		return nil, err
	}
	for _, raw := range rows {
		row := canonRow(raw)
		ledger.Append(Movement{
			Investor: NewInvestor(cellString(row[colNombre])),
			Amount:   M(cellNumber(row[colCapital]), USD),
			Date:     cellDate(row[colIngreso]),
			Kind:     ParseMovementKind(cellString(row[colTipo])),
			Memo:     cellString(row[colMemo]),
		})
	}
	return ledger, nil
}

// cellString coerces a cell to a trimmed string.
func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case int:
		return strconv.Itoa(s)
	case bool:
		return strconv.FormatBool(s)
	default:
		return strings.TrimSpace(fmt.Sprint(s))
	}
}

// cellNumber coerces a cell to an exact decimal, defaulting to 0 on anything
// unparseable. A decimal comma is accepted.
func cellNumber(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(n)
	case int:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return decimal.Zero
		}
		// Sheets in es-AR locales write "1234,56".
		s = strings.ReplaceAll(s, ",", ".")
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero
		}
		return d
	default:
		return decimal.Zero
	}
}

// cellDate coerces a cell to a Date, yielding the zero sentinel on anything
// unparseable rather than an error.
func cellDate(v any) date.Date {
	s := cellString(v)
	if s == "" {
		return date.Date{}
	}
	d, err := date.Parse(s)
	if err != nil {
		return date.Date{}
	}
	return d
}
