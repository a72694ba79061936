package fondo

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/fondo/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Command discriminators for the JSONL ledger files.
const (
	cmdTrade    = "trade"
	cmdDeposit  = "deposit"
	cmdWithdraw = "withdraw"
)

// EncodeTrades writes the trade ledger as JSONL, one trade per line, oldest
// first. Profit is rounded to 4 decimals and exposed capital to 2, matching
// the sheet formats.
func EncodeTrades(w io.Writer, l *TradeLedger) error {
	for i, t := range l.Trades() {
		line, err := encodeTrade(t)
		if err != nil {
			return fmt.Errorf("encoding trade %d: %w", i, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func encodeTrade(t Trade) ([]byte, error) {
	var w jsonObjectWriter
	w.Append("command", cmdTrade).
		Append("date", t.Date).
		Append("currency", t.Currency).
		Append("exchange", t.Exchange).
		Append("profit", t.Profit.Decimal().Round(4))
	// a zero decimal is not reflect-zero, Optional cannot elide it
	if !t.Exposed.IsZero() {
		w.Append("exposed", t.Exposed.Decimal().Round(2))
	}
	w.Optional("memo", t.Memo)
	return w.MarshalJSON()
}

// EncodeCapital writes the capital ledger as JSONL, one movement per line,
// oldest first. Movements of an unknown kind are not encodable.
func EncodeCapital(w io.Writer, l *CapitalLedger) error {
	for i, m := range l.Movements() {
		line, err := encodeMovement(m)
		if err != nil {
			return fmt.Errorf("encoding movement %d: %w", i, err)
		}
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}

func encodeMovement(m Movement) ([]byte, error) {
	var cmd string
	switch m.Kind {
	case Deposit:
		cmd = cmdDeposit
	case Withdrawal:
		cmd = cmdWithdraw
	default:
		return nil, fmt.Errorf("movement kind %q has no command", m.Kind)
	}
	var w jsonObjectWriter
	w.Append("command", cmd).
		Append("date", m.Date).
		Append("investor", m.Investor).
		Append("amount", m.Amount.Decimal().Round(2)).
		Optional("memo", m.Memo)
	return w.MarshalJSON()
}

// tradeCmd is a specialized struct for decoding a trade line.
type tradeCmd struct {
	Date     date.Date       `json:"date"`
	Currency string          `json:"currency"`
	Exchange string          `json:"exchange"`
	Profit   decimal.Decimal `json:"profit"`
	Exposed  decimal.Decimal `json:"exposed"`
	Memo     string          `json:"memo"`
}

// movementCmd is a specialized struct for decoding a deposit or withdraw line.
type movementCmd struct {
	Date     date.Date       `json:"date"`
	Investor Investor        `json:"investor"`
	Amount   decimal.Decimal `json:"amount"`
	Memo     string          `json:"memo"`
}

// DecodeTrades decodes a JSONL stream of trade lines into a sorted ledger.
func DecodeTrades(r io.Reader) (*TradeLedger, error) {
	ledger := NewTradeLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cmd, err := commandOf(line)
		if err != nil {
			return nil, err
		}
		if cmd != cmdTrade {
			return nil, fmt.Errorf("unexpected command %q in trade ledger", cmd)
		}
		var t tradeCmd
		if err := json.Unmarshal(line, &t); err != nil {
			return nil, fmt.Errorf("decoding trade line %q: %w", string(line), err)
		}
		ledger.Append(Trade{
			Date:     t.Date,
			Currency: t.Currency,
			Exchange: t.Exchange,
			Profit:   M(t.Profit, USD),
			Exposed:  M(t.Exposed, USD),
			Memo:     t.Memo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// DecodeCapital decodes a JSONL stream of deposit and withdraw lines into a
// sorted ledger.
func DecodeCapital(r io.Reader) (*CapitalLedger, error) {
	ledger := NewCapitalLedger()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		cmd, err := commandOf(line)
		if err != nil {
			return nil, err
		}
		var kind MovementKind
		switch cmd {
		case cmdDeposit:
			kind = Deposit
		case cmdWithdraw:
			kind = Withdrawal
		default:
			return nil, fmt.Errorf("unexpected command %q in capital ledger", cmd)
		}
		var m movementCmd
		if err := json.Unmarshal(line, &m); err != nil {
			return nil, fmt.Errorf("decoding movement line %q: %w", string(line), err)
		}
		ledger.Append(Movement{
			Investor: m.Investor,
			Amount:   M(m.Amount, USD),
			Date:     m.Date,
			Kind:     kind,
			Memo:     m.Memo,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

func commandOf(line []byte) (string, error) {
	var identifier struct {
		Command string `json:"command"`
	}
	if err := json.Unmarshal(line, &identifier); err != nil {
		return "", fmt.Errorf("could not identify command in line %q: %w", string(line), err)
	}
	return identifier.Command, nil
}
