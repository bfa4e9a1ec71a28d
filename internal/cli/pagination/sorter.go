package pagination

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rshade/cbamcalc/internal/engine"
)

// Sort fields accepted by SupplierSorter.
const (
	SortFieldRank    = "rank"
	SortFieldTotal   = "total"
	SortFieldCountry = "country"
)

// Sorter defines the interface for sorting supplier rankings.
type Sorter interface {
	// Sort returns a sorted copy of suppliers.
	Sort(suppliers []engine.Supplier, field, order string) []engine.Supplier
	// IsValidField checks if the given field name is valid for sorting.
	IsValidField(field string) bool
	// GetValidFields returns the valid field names in a stable order.
	GetValidFields() []string
}

// SupplierSorter implements Sorter for engine.Supplier.
type SupplierSorter struct {
	validFields map[string]bool
}

// NewSupplierSorter creates a SupplierSorter.
func NewSupplierSorter() *SupplierSorter {
	return &SupplierSorter{
		validFields: map[string]bool{
			SortFieldRank:    true,
			SortFieldTotal:   true,
			SortFieldCountry: true,
		},
	}
}

// IsValidField checks if the field is valid for sorting.
func (s *SupplierSorter) IsValidField(field string) bool {
	return s.validFields[field]
}

// GetValidFields returns all valid sort fields.
func (s *SupplierSorter) GetValidFields() []string {
	fields := make([]string, 0, len(s.validFields))
	for field := range s.validFields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// Validate returns ErrInvalidSortField when field is set but unknown.
func (s *SupplierSorter) Validate(field string) error {
	if field == "" || s.IsValidField(field) {
		return nil
	}
	return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSortField, field,
		strings.Join(s.GetValidFields(), ", "))
}

// Sort returns a copy of suppliers ordered by field. Ties keep their ranking
// order. An invalid field returns the input unchanged. Ranks are not
// renumbered: they always reflect the Total ordering.
func (s *SupplierSorter) Sort(suppliers []engine.Supplier, field, order string) []engine.Supplier {
	if !s.IsValidField(field) {
		return suppliers
	}

	sorted := make([]engine.Supplier, len(suppliers))
	copy(sorted, suppliers)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == SortOrderDesc {
			i, j = j, i
		}
		switch field {
		case SortFieldRank:
			return sorted[i].Rank < sorted[j].Rank
		case SortFieldTotal:
			return sorted[i].TotalFactor < sorted[j].TotalFactor
		case SortFieldCountry:
			return strings.ToLower(sorted[i].Country) < strings.ToLower(sorted[j].Country)
		default:
			return false
		}
	})
	return sorted
}
