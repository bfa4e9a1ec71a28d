// Package factors holds the CBAM emission factor reference table.
//
// A Table is built once from loaded records and is read-only afterwards, so it can
// be shared by any number of concurrent lookups without locking. Loaders for CSV and
// XLSX sources live alongside it.
package factors

import "strings"

// FactorType identifies which emission figure a record carries.
type FactorType string

const (
	// TypeDirect is the emission factor of the production process itself.
	TypeDirect FactorType = "Direct"
	// TypeIndirect is the emission factor of the electricity consumed in production.
	TypeIndirect FactorType = "Indirect"
	// TypeTotal is the independently tabulated total factor. It is not required to
	// equal Direct + Indirect.
	TypeTotal FactorType = "Total"
)

// FactorTypes lists the known factor types in display order.
//
//nolint:gochecknoglobals // Read-only lookup list.
var FactorTypes = []FactorType{TypeDirect, TypeIndirect, TypeTotal}

// Matches reports whether raw names this factor type, ignoring case and
// surrounding whitespace.
func (t FactorType) Matches(raw string) bool {
	return strings.EqualFold(strings.TrimSpace(raw), string(t))
}

// ParseFactorType maps a raw type string onto a known FactorType.
func ParseFactorType(raw string) (FactorType, bool) {
	for _, t := range FactorTypes {
		if t.Matches(raw) {
			return t, true
		}
	}
	return "", false
}

// Record is one row of the reference table.
type Record struct {
	CNCode      string  `json:"cn_code"`
	Description string  `json:"description,omitempty"`
	Country     string  `json:"country"`
	Type        string  `json:"type"` // raw spelling from the source, e.g. "TOTAL"
	Value       float64 `json:"value"`
}

// IsType reports whether the record's raw type matches t case-insensitively.
func (r Record) IsType(t FactorType) bool {
	return t.Matches(r.Type)
}
