package pagination

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamcalc/internal/engine"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{name: "zero value", params: Params{}},
		{name: "offset mode", params: Params{Limit: 10, Offset: 20}},
		{name: "page mode", params: Params{Page: 2, PageSize: 10}},
		{name: "negative limit", params: Params{Limit: -1}, wantErr: ErrInvalidLimit},
		{name: "limit too large", params: Params{Limit: MaxLimit + 1}, wantErr: ErrInvalidLimit},
		{name: "negative offset", params: Params{Offset: -1}, wantErr: ErrInvalidOffset},
		{name: "negative page", params: Params{Page: -1}, wantErr: ErrInvalidPage},
		{name: "mixed modes", params: Params{Page: 1, PageSize: 5, Offset: 10}, wantErr: ErrMixedPaginationModes},
		{name: "page size alone", params: Params{PageSize: 5}, wantErr: ErrPageSizeWithoutPage},
		{name: "page without size", params: Params{Page: 1}, wantErr: ErrInvalidPageSize},
		{name: "last representable page", params: Params{Page: math.MaxInt/MaxPageSize + 1, PageSize: MaxPageSize}},
		{
			name:    "page offset overflows",
			params:  Params{Page: math.MaxInt/MaxPageSize + 2, PageSize: MaxPageSize},
			wantErr: ErrPageTooLarge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestApply(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	tests := []struct {
		name   string
		params Params
		want   []int
	}{
		{"no limit", Params{}, []int{1, 2, 3, 4, 5}},
		{"limit", Params{Limit: 2}, []int{1, 2}},
		{"offset and limit", Params{Offset: 3, Limit: 5}, []int{4, 5}},
		{"offset past end", Params{Offset: 9}, []int{}},
		{"second page", Params{Page: 2, PageSize: 2}, []int{3, 4}},
		{"last partial page", Params{Page: 3, PageSize: 2}, []int{5}},
		{"page far past end", Params{Page: math.MaxInt/MaxPageSize + 2, PageSize: MaxPageSize}, []int{}},
		{"negative offset", Params{Offset: -3}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Apply(tt.params, items))
		})
	}
}

func TestNewMeta(t *testing.T) {
	m := NewMeta(Params{Page: 2, PageSize: 2}, 5)
	assert.Equal(t, Meta{CurrentPage: 2, PageSize: 2, TotalPages: 3, TotalItems: 5, HasPrevious: true, HasNext: true}, m)

	m = NewMeta(Params{}, 4)
	assert.Equal(t, 1, m.TotalPages)
	assert.False(t, m.HasNext)

	m = NewMeta(Params{}, 0)
	assert.Equal(t, 0, m.TotalPages)
	assert.Equal(t, 1, m.CurrentPage)
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in        string
		wantField string
		wantOrder string
		wantErr   error
	}{
		{"", "", SortOrderAsc, nil},
		{"total", "total", SortOrderAsc, nil},
		{"country:DESC", "country", SortOrderDesc, nil},
		{":asc", "", "", ErrEmptySortField},
		{"total:up", "", "", ErrInvalidSortOrder},
		{"a:b:c", "", "", ErrInvalidSortFormat},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			field, order, err := ParseSort(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestSupplierSorter(t *testing.T) {
	suppliers := []engine.Supplier{
		{Rank: 1, Country: "brazil", TotalFactor: 1.2},
		{Rank: 2, Country: "Canada", TotalFactor: 1.2},
		{Rank: 3, Country: "Australia", TotalFactor: 2.5},
	}
	s := NewSupplierSorter()

	countries := func(in []engine.Supplier) []string {
		out := make([]string, len(in))
		for i, x := range in {
			out[i] = x.Country
		}
		return out
	}

	assert.Equal(t, []string{"Australia", "brazil", "Canada"}, countries(s.Sort(suppliers, SortFieldCountry, SortOrderAsc)))
	assert.Equal(t, []string{"Australia", "brazil", "Canada"}, countries(s.Sort(suppliers, SortFieldTotal, SortOrderDesc)))
	assert.Equal(t, []string{"brazil", "Canada", "Australia"}, countries(s.Sort(suppliers, "bogus", SortOrderAsc)))
	assert.Equal(t, 1, suppliers[0].Rank, "input must not be reordered")

	assert.Equal(t, []string{"country", "rank", "total"}, s.GetValidFields())
	require.NoError(t, s.Validate(""))
	require.ErrorIs(t, s.Validate("price"), ErrInvalidSortField)
}
