package fondo

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/fondo/date"
)

// CSV headers match the spreadsheet columns, so an exported file can be
// pasted straight back into the sheet.
var (
	tradeCSVHeader   = []string{"fecha", "moneda", "exchange", "ganancia", "capital_expuesto", "comentarios"}
	capitalCSVHeader = []string{"nombre", "capital_inicial", "fecha_ingreso", "tipo", "comentarios"}
)

// ExportTradesCSV writes the trade ledger as CSV with the sheet's column
// layout, oldest trade first.
func ExportTradesCSV(w io.Writer, l *TradeLedger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tradeCSVHeader); err != nil {
		return err
	}
	for _, t := range l.Trades() {
		rec := []string{
			t.Date.String(),
			t.Currency,
			t.Exchange,
			t.Profit.Decimal().Round(4).String(),
			t.Exposed.Decimal().Round(2).String(),
			t.Memo,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportCapitalCSV writes the capital ledger as CSV with the sheet's column
// layout, oldest movement first.
func ExportCapitalCSV(w io.Writer, l *CapitalLedger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(capitalCSVHeader); err != nil {
		return err
	}
	for _, m := range l.Movements() {
		rec := []string{
			m.Investor.String(),
			m.Amount.Decimal().Round(2).String(),
			m.Date.String(),
			m.Kind.String(),
			m.Memo,
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// TradeMapping maps fields of an exchange's JSON export onto trade columns
// using jsonpath expressions. Rows selects the list of records; the other
// paths are evaluated relative to each record.
type TradeMapping struct {
	Rows     string // e.g. "$.trades[*]" or "$[*]"
	Date     string // e.g. "$.closedAt"; value parsed as DD/MM/YYYY
	Currency string
	Exchange string // a jsonpath, or a literal when it does not start with "$"
	Profit   string
	Exposed  string // optional
	Memo     string // optional
}

// ImportTrades reads an exchange's JSON export and converts each record into
// a Trade using the mapping. Imported trades are appended to a new ledger;
// merging with an existing ledger is the caller's business.
func ImportTrades(r io.Reader, mapping TradeMapping) (*TradeLedger, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("parsing trade export: %w", err)
	}

	jrows, err := jsonpath.Get(mapping.Rows, jobj)
	if err != nil {
		return nil, fmt.Errorf("selecting rows with %q: %w", mapping.Rows, err)
	}
	rows, ok := jrows.([]any)
	if !ok {
		// a single record is acceptable
		rows = []any{jrows}
	}

	ledger := NewTradeLedger()
	for i, row := range rows {
		t, err := mapTrade(row, mapping)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		ledger.Append(t)
	}
	return ledger, nil
}

func mapTrade(row any, mapping TradeMapping) (Trade, error) {
	dateStr, err := pathString(row, mapping.Date)
	if err != nil {
		return Trade{}, err
	}
	on, err := date.Parse(dateStr)
	if err != nil {
		return Trade{}, &DateParseError{Value: dateStr}
	}
	currency, err := pathString(row, mapping.Currency)
	if err != nil {
		return Trade{}, err
	}
	exchange, err := pathString(row, mapping.Exchange)
	if err != nil {
		return Trade{}, err
	}
	profit, err := pathNumber(row, mapping.Profit)
	if err != nil {
		return Trade{}, err
	}
	var exposed float64
	if mapping.Exposed != "" {
		if exposed, err = pathNumber(row, mapping.Exposed); err != nil {
			return Trade{}, err
		}
	}
	var memo string
	if mapping.Memo != "" {
		if memo, err = pathString(row, mapping.Memo); err != nil {
			return Trade{}, err
		}
	}
	return NewTrade(on, currency, exchange, profit, exposed, memo), nil
}

// pathString evaluates a jsonpath against a record and coerces the result to
// a string. A path not starting with "$" is taken as a literal value.
func pathString(row any, path string) (string, error) {
	if !strings.HasPrefix(path, "$") {
		return path, nil
	}
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return "", fmt.Errorf("evaluating %q: %w", path, err)
	}
	// jsonpath may return a list of one answer, keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case string:
		return v, nil
	case float64:
		return fmt.Sprintf("%g", v), nil
	default:
		return "", fmt.Errorf("path %q: not a string: %v", path, jval)
	}
}

// pathNumber evaluates a jsonpath against a record and coerces the result to
// a float. Numbers quoted as strings are accepted.
func pathNumber(row any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, row)
	if err != nil {
		return 0, fmt.Errorf("evaluating %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	switch v := jval.(type) {
	case float64:
		return v, nil
	case string:
		var f float64
		if _, err := fmt.Sscanf(strings.ReplaceAll(v, ",", "."), "%g", &f); err != nil {
			return 0, fmt.Errorf("path %q: not a number: %q", path, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("path %q: not a number: %v", path, jval)
	}
}
