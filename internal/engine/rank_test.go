package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/cbamcalc/internal/engine"
	"github.com/rshade/cbamcalc/internal/factors"
)

func supplierTable() *factors.Table {
	return factors.NewTable([]factors.Record{
		{CNCode: "7201", Country: "India", Type: "Total", Value: 2.0},
		{CNCode: "7201", Country: "Brazil", Type: "Total", Value: 1.2},
		{CNCode: "7201", Country: "Chile", Type: "Total", Value: 0},
		{CNCode: "7201", Country: "Canada", Type: "total", Value: 1.2},
		{CNCode: "7201", Country: "Norway", Type: "Direct", Value: 0.5},
		{CNCode: "7201", Country: "Ukraine", Type: "Total", Value: 3.1},
		{CNCode: "7208", Country: "Japan", Type: "Total", Value: 1.9},
	})
}

func TestRankSuppliers(t *testing.T) {
	got := engine.RankSuppliers(supplierTable(), "7201")

	want := []engine.Supplier{
		{Rank: 1, Country: "Brazil", TotalFactor: 1.2},
		{Rank: 2, Country: "Canada", TotalFactor: 1.2},
		{Rank: 3, Country: "India", TotalFactor: 2.0},
		{Rank: 4, Country: "Ukraine", TotalFactor: 3.1},
	}
	assert.Equal(t, want, got)
}

func TestRankSuppliers_FirstIsBestAlternative(t *testing.T) {
	table := supplierTable()
	for _, excluded := range [][]string{nil, {"Brazil"}, {"Brazil", "Canada"}, {"India", "Ukraine"}} {
		ranked := engine.RankSuppliers(table, "7201", excluded...)
		best, ok := engine.FindBestAlternative(table, "7201", excluded...)
		require.True(t, ok)
		require.NotEmpty(t, ranked)
		assert.Equal(t, best, ranked[0].Country, "excluded=%v", excluded)
	}
}

func TestRankSuppliers_Empty(t *testing.T) {
	assert.Empty(t, engine.RankSuppliers(supplierTable(), "9999"))
	assert.Empty(t, engine.New(supplierTable()).Rank("7208", "Japan"))
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, engine.SupplierStats{}, engine.Summarize(nil))
	})

	t.Run("single supplier has no spread", func(t *testing.T) {
		st := engine.Summarize([]engine.Supplier{{Country: "Japan", TotalFactor: 1.9}})
		assert.Equal(t, 1, st.Count)
		assert.InDelta(t, 1.9, st.Mean, floatDelta)
		assert.InDelta(t, 1.9, st.Median, floatDelta)
		assert.InDelta(t, 0.0, st.StdDev, floatDelta)
	})

	t.Run("ranked suppliers", func(t *testing.T) {
		ranked := engine.RankSuppliers(supplierTable(), "7201", "Ukraine")
		st := engine.Summarize(ranked)
		assert.Equal(t, 3, st.Count)
		assert.InDelta(t, 1.2, st.Min, floatDelta)
		assert.InDelta(t, 2.0, st.Max, floatDelta)
		assert.InDelta(t, 4.4/3, st.Mean, floatDelta)
		assert.InDelta(t, 1.2, st.Median, floatDelta)
		assert.Greater(t, st.StdDev, 0.0)
	})
}
