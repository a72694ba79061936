package fondo

import (
	"encoding/json"
	"strings"
)

// Investor identifies a pool member by name.
//
// Identity is the exact name as recorded in the capital ledger (trimmed,
// case-sensitive), so an Investor is a valid map key. Only the managing
// partner match is case-insensitive, via Matches.
type Investor struct {
	name string
}

// NewInvestor returns an Investor for the given display name, trimmed.
func NewInvestor(name string) Investor {
	return Investor{name: strings.TrimSpace(name)}
}

// String returns the name with its original casing, for display.
func (i Investor) String() string { return i.name }

// IsZero reports whether the investor has no name.
func (i Investor) IsZero() bool { return i.name == "" }

// Matches reports whether o is the same investor under case folding.
// This is the rule used to single out the fee recipient.
func (i Investor) Matches(o Investor) bool { return strings.EqualFold(i.name, o.name) }

func (i Investor) MarshalJSON() ([]byte, error) { return json.Marshal(i.name) }

func (i *Investor) UnmarshalJSON(bytes []byte) error {
	var name string
	if err := json.Unmarshal(bytes, &name); err != nil {
		return err
	}
	*i = NewInvestor(name)
	return nil
}
