package fondo

import "github.com/shopspring/decimal"

// Percent is an exact percentage value (15 means 15%).
type Percent struct{ value decimal.Decimal }

// P returns a Percent from a bare decimal of percentage points.
func P(value decimal.Decimal) Percent { return Percent{value: value} }

// Ratio returns part/total expressed as a Percent, or zero when total is not
// strictly positive. It is the single division guard for every ROI and
// return figure.
func Ratio(part, total decimal.Decimal) Percent {
	if !total.IsPositive() {
		return Percent{}
	}
	return Percent{value: part.Div(total).Mul(decimal.NewFromInt(100))}
}

// Decimal returns the percentage points as a bare decimal.
func (p Percent) Decimal() decimal.Decimal { return p.value }

func (p Percent) IsZero() bool         { return p.value.IsZero() }
func (p Percent) Equal(q Percent) bool { return p.value.Equal(q.value) }

func (p Percent) String() string { return p.value.StringFixed(2) + "%" }

// SignedString returns the percentage with an explicit sign, or "-" for zero.
func (p Percent) SignedString() string {
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
