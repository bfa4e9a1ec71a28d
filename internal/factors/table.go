package factors

import (
	"sort"
	"strings"
)

// DescriptionNotAvailable is reported when a CN code has no description in the table.
const DescriptionNotAvailable = "Not available"

// Table is an immutable, ordered collection of emission factor records.
// Record order is preserved from the source and is used for tie-breaking.
type Table struct {
	records []Record
}

// NewTable builds a Table from records. The slice is copied so later changes
// by the caller do not leak into the table.
func NewTable(records []Record) *Table {
	cp := make([]Record, len(records))
	copy(cp, records)
	return &Table{records: cp}
}

// Len returns the number of records.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.records)
}

// Records returns a copy of all records in table order.
func (t *Table) Records() []Record {
	if t == nil {
		return nil
	}
	cp := make([]Record, len(t.records))
	copy(cp, t.records)
	return cp
}

// Each calls fn for every record in table order until fn returns false.
// It avoids the copy made by Records on hot lookup paths.
func (t *Table) Each(fn func(Record) bool) {
	if t == nil {
		return
	}
	for _, r := range t.records {
		if !fn(r) {
			return
		}
	}
}

// ForCountry returns the records for a (code, country) pair in table order.
func (t *Table) ForCountry(code, country string) []Record {
	var out []Record
	t.Each(func(r Record) bool {
		if r.CNCode == code && r.Country == country {
			out = append(out, r)
		}
		return true
	})
	return out
}

// HasData reports whether at least one record exists for (code, country).
func (t *Table) HasData(code, country string) bool {
	found := false
	t.Each(func(r Record) bool {
		if r.CNCode == code && r.Country == country {
			found = true
			return false
		}
		return true
	})
	return found
}

// HasCode reports whether any record carries the CN code.
func (t *Table) HasCode(code string) bool {
	found := false
	t.Each(func(r Record) bool {
		if r.CNCode == code {
			found = true
			return false
		}
		return true
	})
	return found
}

// Codes returns the distinct CN codes, sorted.
func (t *Table) Codes() []string {
	return t.distinct(func(r Record) string { return r.CNCode })
}

// Countries returns the distinct countries, sorted.
func (t *Table) Countries() []string {
	return t.distinct(func(r Record) string { return r.Country })
}

// CountriesFor returns the distinct countries with data for a CN code, sorted.
func (t *Table) CountriesFor(code string) []string {
	return t.distinct(func(r Record) string {
		if r.CNCode != code {
			return ""
		}
		return r.Country
	})
}

// Description returns the first non-empty description for code in table order,
// or DescriptionNotAvailable.
func (t *Table) Description(code string) string {
	desc := ""
	t.Each(func(r Record) bool {
		if r.CNCode == code && strings.TrimSpace(r.Description) != "" {
			desc = r.Description
			return false
		}
		return true
	})
	if desc == "" {
		return DescriptionNotAvailable
	}
	return desc
}

func (t *Table) distinct(key func(Record) string) []string {
	seen := make(map[string]struct{})
	var out []string
	t.Each(func(r Record) bool {
		k := key(r)
		if k == "" {
			return true
		}
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			out = append(out, k)
		}
		return true
	})
	sort.Strings(out)
	return out
}
