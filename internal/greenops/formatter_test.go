package greenops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{123, "123"},
		{1234, "1,234"},
		{22653, "22,653"},
		{-1234, "-1,234"},
		{1234567890, "1,234,567,890"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.n))
		})
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		name      string
		f         float64
		precision int
		want      string
	}{
		{"round to integer", 16989.75, 0, "16,990"},
		{"one decimal", 16989.75, 1, "16,989.8"},
		{"two decimals", 13591.8, 2, "13,591.80"},
		{"small value", 0.3, 2, "0.30"},
		{"negative value", -1234.5, 1, "-1,234.5"},
		{"negative zero collapses", -0.0001, 2, "0.00"},
		{"negative precision treated as zero", 45.4, -1, "45"},
		{"beyond int64 range", 1e20, 0, "100,000,000,000,000,000,000"},
		{"beyond int64 range with decimals", 1e20, 1, "100,000,000,000,000,000,000.0"},
		{"large negative", -1e19, 0, "-10,000,000,000,000,000,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.f, tt.precision))
		})
	}
}

func TestFormatLarge(t *testing.T) {
	assert.Equal(t, "999,999", FormatLarge(999_999))
	assert.Equal(t, "~1.5 million", FormatLarge(1_500_000))
	assert.Equal(t, "~2.0 billion", FormatLarge(2_000_000_000))
}

func TestFormatEmissions(t *testing.T) {
	assert.Equal(t, "300 Tonne CO2E", FormatEmissions(300, 0))
	assert.Equal(t, "1,234.5 Tonne CO2E", FormatEmissions(1234.5, 1))
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		want     string
	}{
		{"euro symbol", 22653, "EUR", "€22,653"},
		{"lower-case code", 22653, "eur", "€22,653"},
		{"negative dollars", -42, "USD", "-$42"},
		{"unknown code suffix", 1000, "CHF", "1,000 CHF"},
		{"no currency", 1000, "", "1,000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.amount, tt.currency, 0))
		})
	}
}
