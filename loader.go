package fondo

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Default locations of the local JSONL ledgers.
const (
	DefaultTradesFile  = "trades.jsonl"
	DefaultCapitalFile = "capital.jsonl"
)

// LoadTrades reads the trade ledger from a JSONL file. A missing file is not
// an error: it yields an empty ledger.
func LoadTrades(path string) (*TradeLedger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewTradeLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading trade ledger %q: %w", path, err)
	}
	ledger, err := DecodeTrades(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing trade ledger %q: %w", path, err)
	}
	return ledger, nil
}

// SaveTrades writes the trade ledger to a JSONL file, replacing it.
func SaveTrades(path string, l *TradeLedger) error {
	var buf bytes.Buffer
	if err := EncodeTrades(&buf, l); err != nil {
		return fmt.Errorf("encoding trade ledger: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing trade ledger %q: %w", path, err)
	}
	return nil
}

// LoadCapital reads the capital ledger from a JSONL file. A missing file is
// not an error: it yields an empty ledger.
func LoadCapital(path string) (*CapitalLedger, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewCapitalLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading capital ledger %q: %w", path, err)
	}
	ledger, err := DecodeCapital(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing capital ledger %q: %w", path, err)
	}
	return ledger, nil
}

// SaveCapital writes the capital ledger to a JSONL file, replacing it.
func SaveCapital(path string, l *CapitalLedger) error {
	var buf bytes.Buffer
	if err := EncodeCapital(&buf, l); err != nil {
		return fmt.Errorf("encoding capital ledger: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing capital ledger %q: %w", path, err)
	}
	return nil
}
