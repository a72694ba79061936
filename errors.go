package fondo

import (
	"fmt"
	"strings"
	"time"
)

// SchemaError reports the required columns missing from a raw ledger table.
type SchemaError struct {
	Ledger  string   // "trades" or "capital"
	Missing []string // canonical column names
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s ledger: missing required columns: %s", e.Ledger, strings.Join(e.Missing, ", "))
}

// DateParseError reports a date cell that could not be parsed.
type DateParseError struct {
	Value string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("unparseable date %q, want DD/MM/YYYY", e.Value)
}

// ComputationError wraps a failure inside a derivation (distribution,
// evolution) with the operation that was running.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }
func (e *ComputationError) Unwrap() error { return e.Err }

// Diagnostic is the payload returned by boundary operations when a
// computation over raw rows fails. It carries enough context for a dashboard
// to display the failure while still rendering an empty result: the message,
// the column sets actually observed on both tables, and the evaluation time.
type Diagnostic struct {
	Message        string
	TradeColumns   []string
	CapitalColumns []string
	On             time.Time
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s (trade columns: %v, capital columns: %v, evaluated %s)",
		d.Message, d.TradeColumns, d.CapitalColumns, d.On.Format(time.RFC3339))
}

// newDiagnostic captures the failure context from both raw tables.
func newDiagnostic(err error, tradeRows, capitalRows []RawRow) *Diagnostic {
	return &Diagnostic{
		Message:        err.Error(),
		TradeColumns:   observedColumns(tradeRows),
		CapitalColumns: observedColumns(capitalRows),
		On:             time.Now(),
	}
}
