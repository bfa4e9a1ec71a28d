package greenops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKg(t *testing.T) {
	tests := []struct {
		name    string
		in      Emission
		wantKg  float64
		wantErr error
	}{
		{"tonnes", Tonnes(0.15), 150, nil},
		{"kg identity", Emission{Value: 150, Unit: "kg"}, 150, nil},
		{"case-insensitive tonnes", Emission{Value: 2, Unit: "TCO2E"}, 2000, nil},
		{"unknown unit", Emission{Value: 1, Unit: "stone"}, 0, ErrInvalidUnit},
		{"bare suffix", Emission{Value: 1, Unit: "CO2e"}, 0, ErrInvalidUnit},
		{"negative", Emission{Value: -1, Unit: "t"}, 0, ErrNegativeValue},
		{"NaN", Emission{Value: math.NaN(), Unit: "t"}, 0, ErrCalculationOverflow},
		{"overflow", Emission{Value: math.MaxFloat64 / 100, Unit: "t"}, 0, ErrCalculationOverflow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kg, err := ToKg(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.wantKg, kg, 1e-9)
		})
	}
}

func TestCalculate(t *testing.T) {
	out, err := Calculate(Tonnes(0.15))
	require.NoError(t, err)
	require.False(t, out.IsEmpty)
	require.Len(t, out.Results, 3)

	assert.InDelta(t, 150, out.InputKg, 1e-9)
	assert.InDelta(t, 781.25, out.Results[0].Value, 0.01)
	assert.Equal(t, "781", out.Results[0].FormattedValue)
	assert.InDelta(t, 18248.18, out.Results[1].Value, 0.01)
	assert.Equal(t, "18,248", out.Results[1].FormattedValue)
	assert.Equal(t, EquivalencyHomeDays, out.Results[2].Type)
	assert.Equal(t, "Equivalent to driving ~781 miles or powering a home for ~8 days", out.DisplayText)
}

func TestCalculate_BelowThreshold(t *testing.T) {
	out, err := Calculate(Emission{Value: 0.5, Unit: "kg"})
	require.NoError(t, err)
	assert.True(t, out.IsEmpty)
	assert.Empty(t, out.Results)
}

func TestForTonnes(t *testing.T) {
	out := ForTonnes(300)
	require.False(t, out.IsEmpty)
	assert.Equal(t, "~1.6 million", out.Results[0].FormattedValue) // 300000 / 0.192

	assert.True(t, ForTonnes(-1).IsEmpty)
	assert.True(t, ForTonnes(0).IsEmpty)
}

func TestEquivalencyType_String(t *testing.T) {
	assert.Equal(t, "MilesDriven", EquivalencyMilesDriven.String())
	assert.Equal(t, "EquivalencyType(9)", EquivalencyType(9).String())
}
