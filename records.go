package fondo

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/fondo/date"
)

// MovementKind is the direction of a capital movement.
type MovementKind int

const (
	// Deposit brings capital into the pool. It is the default kind when a
	// ledger row carries no 'tipo' column.
	Deposit MovementKind = iota
	// Withdrawal takes capital out of the pool, effective immediately and
	// permanently, whatever its date.
	Withdrawal
	// KindUnknown marks a row whose 'tipo' cell is neither "ingreso" nor
	// "retiro". Such rows are kept but counted by neither side.
	KindUnknown
)

func (k MovementKind) String() string {
	switch k {
	case Deposit:
		return "ingreso"
	case Withdrawal:
		return "retiro"
	default:
		return "unknown"
	}
}

// ParseMovementKind parses the 'tipo' cell of a capital row.
// The empty string defaults to Deposit.
func ParseMovementKind(s string) MovementKind {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ingreso":
		return Deposit
	case "retiro":
		return Withdrawal
	default:
		return KindUnknown
	}
}

// Trade is one day's trading result on one exchange, immutable once appended.
type Trade struct {
	Date     date.Date // zero when the source cell was unparseable
	Currency string    // traded symbol, e.g. "BTC"
	Exchange string
	Profit   Money // signed, recorded with 4 decimals
	Exposed  Money // capital at risk for the trade, recorded with 2 decimals
	Memo     string
}

// NewTrade builds a trade result record.
func NewTrade(on date.Date, currency, exchange string, profit, exposed float64, memo string) Trade {
	return Trade{
		Date:     on,
		Currency: strings.ToUpper(strings.TrimSpace(currency)),
		Exchange: strings.TrimSpace(exchange),
		Profit:   M(profit, USD),
		Exposed:  M(exposed, USD),
		Memo:     memo,
	}
}

// Validate checks a trade before it is appended to a ledger or a sheet.
// Records produced by normalization are looser: a zero date only marks the
// row invalid there, while appends must be fully formed.
func (t Trade) Validate() error {
	var errs error
	if t.Date.IsZero() {
		errs = errors.Join(errs, errors.New("la fecha es obligatoria"))
	}
	if t.Currency == "" {
		errs = errors.Join(errs, errors.New("la moneda es obligatoria"))
	} else if len(t.Currency) > 10 {
		errs = errors.Join(errs, errors.New("la moneda no puede tener más de 10 caracteres"))
	}
	if t.Exchange == "" {
		errs = errors.Join(errs, errors.New("el exchange es obligatorio"))
	}
	return errs
}

// Movement is one capital movement of one investor, immutable once appended.
type Movement struct {
	Investor Investor
	Amount   Money // always positive, recorded with 2 decimals
	Date     date.Date
	Kind     MovementKind
	Memo     string
}

// NewDeposit builds a capital ingress for the given investor.
func NewDeposit(investor Investor, amount float64, on date.Date, memo string) Movement {
	return Movement{Investor: investor, Amount: M(amount, USD), Date: on, Kind: Deposit, Memo: memo}
}

// NewWithdrawal builds a capital egress for the given investor.
func NewWithdrawal(investor Investor, amount float64, on date.Date, memo string) Movement {
	return Movement{Investor: investor, Amount: M(amount, USD), Date: on, Kind: Withdrawal, Memo: memo}
}

// Validate checks a movement before it is appended to a ledger or a sheet.
func (m Movement) Validate() error {
	var errs error
	if m.Investor.IsZero() {
		errs = errors.Join(errs, errors.New("el nombre es obligatorio"))
	} else if len(m.Investor.String()) > 50 {
		errs = errors.Join(errs, errors.New("el nombre no puede tener más de 50 caracteres"))
	}
	if !m.Amount.IsPositive() {
		errs = errors.Join(errs, errors.New("el monto debe ser mayor a cero"))
	}
	if m.Date.IsZero() {
		errs = errors.Join(errs, errors.New("la fecha es obligatoria"))
	}
	if m.Kind != Deposit && m.Kind != Withdrawal {
		errs = errors.Join(errs, fmt.Errorf("tipo de movimiento no válido: %s", m.Kind))
	}
	return errs
}
