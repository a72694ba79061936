package fondo

import (
	"testing"

	"github.com/shopspring/decimal"
)

// dec is a test shorthand for decimal literals.
func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

// assertMoney fails the test when a money value differs from the expected
// amount.
func assertMoney(t *testing.T, what string, got Money, want float64) {
	t.Helper()
	if !got.Decimal().Equal(dec(want)) {
		t.Errorf("%s = %s, want %v", what, got.Decimal(), want)
	}
}

// assertPct fails the test when a percentage differs from the expected value.
func assertPct(t *testing.T, what string, got Percent, want float64) {
	t.Helper()
	if !got.Decimal().Equal(dec(want)) {
		t.Errorf("%s = %s, want %v%%", what, got.Decimal(), want)
	}
}
