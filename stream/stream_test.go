package stream_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarao1006/pyheatintegration/stream"
)

// TestNew_ResolvesAuto checks Auto inference from the temperature order.
func TestNew_ResolvesAuto(t *testing.T) {
	cold, err := stream.New(40, 90, 150)
	require.NoError(t, err)
	assert.Equal(t, stream.Cold, cold.Type())
	assert.True(t, cold.IsCold())
	assert.True(t, cold.IsInternal())

	hot, err := stream.New(125, 80, 180)
	require.NoError(t, err)
	assert.Equal(t, stream.Hot, hot.Type())
	assert.True(t, hot.IsHot())
	assert.Equal(t, 80.0, hot.Range().Start)
	assert.Equal(t, 125.0, hot.Range().Finish)
}

// TestNew_GeneratesID verifies that a missing ID is replaced by a UUID.
func TestNew_GeneratesID(t *testing.T) {
	s, err := stream.New(0, 10, 1)
	require.NoError(t, err)
	_, perr := uuid.Parse(s.ID())
	assert.NoError(t, perr, "generated ID must be a UUID")

	named, err := stream.New(0, 10, 1, stream.WithID("c1"))
	require.NoError(t, err)
	assert.Equal(t, "c1", named.ID())
}

// TestNew_Rejects covers every construction error.
func TestNew_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		in, out float64
		load    float64
		opts    []stream.Option
		want    error
	}{
		{"NaN", math.NaN(), 10, 1, nil, stream.ErrNonFinite},
		{"InfLoad", 0, 10, math.Inf(1), nil, stream.ErrNonFinite},
		{"Negative", 0, 10, -1, nil, stream.ErrNegativeHeatLoad},
		{"AmbiguousAuto", 50, 50, 10, nil, stream.ErrAmbiguousType},
		{"ColdDescending", 50, 40, 10, []stream.Option{stream.WithType(stream.Cold)}, stream.ErrTemperatureOrder},
		{"HotAscending", 40, 50, 10, []stream.Option{stream.WithType(stream.Hot)}, stream.ErrTemperatureOrder},
		{"ExternalHotAscending", 40, 50, 0, []stream.Option{stream.WithType(stream.ExternalHot)}, stream.ErrTemperatureOrder},
		{"ZeroProcessLoad", 0, 10, 0, nil, stream.ErrZeroHeatLoad},
		{"ExternalWithLoad", 30, 40, 5, []stream.Option{stream.WithType(stream.ExternalCold)}, stream.ErrExternalHeatLoad},
		{"CostOnProcess", 0, 10, 1, []stream.Option{stream.WithCost(3)}, stream.ErrInvalidCost},
		{"NegativeCost", 30, 40, 0, []stream.Option{stream.WithType(stream.ExternalCold), stream.WithCost(-1)}, stream.ErrInvalidCost},
		{"HotEvaporating", 90, 80, 1, []stream.Option{stream.WithState(stream.LiquidEvaporation)}, stream.ErrStateMismatch},
		{"ColdCondensing", 80, 90, 1, []stream.Option{stream.WithState(stream.GasCondensation)}, stream.ErrStateMismatch},
		{"BadType", 0, 10, 1, []stream.Option{stream.WithType(stream.Type(9))}, stream.ErrUnknownType},
		{"BadState", 0, 10, 1, []stream.Option{stream.WithState(stream.State(-1))}, stream.ErrUnknownState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := stream.New(tc.in, tc.out, tc.load, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}
}

// TestNew_IsothermalExplicit accepts an isothermal stream with a stated type.
func TestNew_IsothermalExplicit(t *testing.T) {
	s, err := stream.New(100, 100, 50, stream.WithType(stream.Cold), stream.WithState(stream.LiquidEvaporation))
	require.NoError(t, err)
	assert.True(t, s.IsIsothermal())
	assert.Equal(t, stream.LiquidEvaporation, s.State())
}

// TestWithHeatLoad ensures the original stream is left untouched.
func TestWithHeatLoad(t *testing.T) {
	steam, err := stream.HPSteam(stream.WithCost(2))
	require.NoError(t, err)
	resolved := steam.WithHeatLoad(30)

	assert.Equal(t, 0.0, steam.HeatLoad())
	assert.Equal(t, 30.0, resolved.HeatLoad())
	assert.Equal(t, steam.ID(), resolved.ID())
	assert.Equal(t, 2.0, resolved.Cost())
}

func TestUtilities(t *testing.T) {
	cases := []struct {
		name    string
		ctor    func(...stream.Option) (*stream.Stream, error)
		in, out float64
		typ     stream.Type
	}{
		{"HPSteam", stream.HPSteam, 254, 254, stream.ExternalHot},
		{"MPSteam", stream.MPSteam, 186, 186, stream.ExternalHot},
		{"LPSteam", stream.LPSteam, 160, 160, stream.ExternalHot},
		{"CoolingWater", stream.CoolingWater, 30, 40, stream.ExternalCold},
		{"RefrigerantMinus33", stream.RefrigerantMinus33, -33, -33, stream.ExternalCold},
		{"RefrigerantMinus18", stream.RefrigerantMinus18, -18, -18, stream.ExternalCold},
		{"Refrigerant0", stream.Refrigerant0, 0, 0, stream.ExternalCold},
		{"Refrigerant18", stream.Refrigerant18, 21, 21, stream.ExternalCold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.ctor()
			require.NoError(t, err)
			assert.Equal(t, tc.name, s.ID())
			assert.Equal(t, tc.in, s.InputTemperature())
			assert.Equal(t, tc.out, s.OutputTemperature())
			assert.Equal(t, tc.typ, s.Type())
			assert.True(t, s.IsExternal())
		})
	}
}

func TestParseType(t *testing.T) {
	cases := map[string]stream.Type{
		"":              stream.Auto,
		"hot":           stream.Hot,
		"Cold":          stream.Cold,
		"external_hot":  stream.ExternalHot,
		"external-cold": stream.ExternalCold,
		"ExternalCold":  stream.ExternalCold,
		"2":             stream.Hot,
		"4":             stream.ExternalHot,
	}
	for in, want := range cases {
		got, err := stream.ParseType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := stream.ParseType("lukewarm")
	assert.ErrorIs(t, err, stream.ErrUnknownType)
	_, err = stream.ParseType("7")
	assert.ErrorIs(t, err, stream.ErrUnknownType)
}

func TestParseState(t *testing.T) {
	got, err := stream.ParseState("gas_condensation")
	require.NoError(t, err)
	assert.Equal(t, stream.GasCondensation, got)

	got, err = stream.ParseState("2")
	require.NoError(t, err)
	assert.Equal(t, stream.Liquid, got)

	_, err = stream.ParseState("plasma")
	assert.ErrorIs(t, err, stream.ErrUnknownState)
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "external_hot", stream.ExternalHot.String())
	assert.Equal(t, "Type(12)", stream.Type(12).String())
	assert.Equal(t, "liquid", stream.Liquid.String())
}
