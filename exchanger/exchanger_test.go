package exchanger_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarao1006/pyheatintegration/exchanger"
	"github.com/tarao1006/pyheatintegration/line"
	"github.com/tarao1006/pyheatintegration/stream"
	"github.com/tarao1006/pyheatintegration/tq"
)

func piece(id string, st stream.State, q1, t1, q2, t2 float64) tq.Segment {
	return tq.Segment{
		Line: line.Segment{
			From: line.Point{Heat: q1, Temperature: t1},
			To:   line.Point{Heat: q2, Temperature: t2},
		},
		StreamID: id,
		State:    st,
	}
}

func TestOverallCoefficient(t *testing.T) {
	cases := []struct {
		hot, cold stream.State
		want      float64
	}{
		{stream.Liquid, stream.Liquid, 300},
		{stream.Liquid, stream.Gas, 200},
		{stream.Liquid, stream.LiquidEvaporation, 1000},
		{stream.Gas, stream.Liquid, 200},
		{stream.Gas, stream.Gas, 150},
		{stream.Gas, stream.LiquidEvaporation, 500},
		{stream.GasCondensation, stream.Liquid, 1000},
		{stream.GasCondensation, stream.Gas, 500},
		{stream.GasCondensation, stream.LiquidEvaporation, 1500},
	}
	for _, tc := range cases {
		got, err := exchanger.OverallCoefficient(tc.hot, tc.cold)
		require.NoError(t, err, "%s/%s", tc.hot, tc.cold)
		assert.Equal(t, tc.want, got, "%s/%s", tc.hot, tc.cold)
	}

	for _, bad := range [][2]stream.State{
		{stream.Unknown, stream.Liquid},
		{stream.Liquid, stream.Unknown},
		{stream.LiquidEvaporation, stream.Liquid},
		{stream.Liquid, stream.GasCondensation},
	} {
		_, err := exchanger.OverallCoefficient(bad[0], bad[1])
		assert.ErrorIs(t, err, exchanger.ErrUndeterminedHeatTransferCoefficient)
	}
}

func TestLMTD(t *testing.T) {
	got, err := exchanger.LMTD(10, 30)
	require.NoError(t, err)
	assert.InDelta(t, 20/math.Log(3), got, 1e-12)

	got, err = exchanger.LMTD(30, 10)
	require.NoError(t, err)
	assert.InDelta(t, 20/math.Log(3), got, 1e-12, "symmetric in its arguments")

	got, err = exchanger.LMTD(15, 15)
	require.NoError(t, err)
	assert.Equal(t, 15.0, got)

	_, err = exchanger.LMTD(0, 10)
	assert.ErrorIs(t, err, exchanger.ErrNonPositiveApproach)
	_, err = exchanger.LMTD(10, -1)
	assert.ErrorIs(t, err, exchanger.ErrNonPositiveApproach)
}

func TestCost(t *testing.T) {
	assert.InDelta(t, 1_500_000.0, exchanger.Cost(1, false), 1e-6)
	assert.InDelta(t, 3_000_000.0, exchanger.Cost(1, true), 1e-6)
	assert.InDelta(t, 1_500_000*math.Pow(10, 0.65), exchanger.Cost(10, false), 1e-6)
}

// TestNew_Sizes sizes the first match of the two-hot two-cold problem.
func TestNew_Sizes(t *testing.T) {
	hot := piece("H2", stream.Liquid, 40, 70, 160, 90)
	cold := piece("C1", stream.Liquid, 40, 40, 160, 80)

	ex, err := exchanger.New(hot, cold)
	require.NoError(t, err)
	lmtd := 20 / math.Log(3)
	assert.True(t, ex.Known)
	assert.InDelta(t, 120.0, ex.Duty, 1e-9)
	assert.Equal(t, 300.0, ex.U)
	assert.InDelta(t, lmtd, ex.LMTD, 1e-12)
	assert.InDelta(t, 120/(300*lmtd), ex.Area, 1e-12)
	assert.InDelta(t, exchanger.Cost(ex.Area, false), ex.Cost, 1e-6)
}

func TestNew_ReboilerDoublesCost(t *testing.T) {
	hot := piece("H", stream.GasCondensation, 0, 150, 10, 150)
	cold := piece("C", stream.LiquidEvaporation, 0, 100, 10, 100)
	cold.ReboilerOrReactor = true

	ex, err := exchanger.New(hot, cold)
	require.NoError(t, err)
	assert.Equal(t, 50.0, ex.LMTD)
	assert.InDelta(t, 2*exchanger.Cost(ex.Area, false), ex.Cost, 1e-6)
}

func TestNew_CoCurrent(t *testing.T) {
	hot := piece("H", stream.Liquid, 0, 60, 10, 100)
	cold := piece("C", stream.Liquid, 0, 20, 10, 40)

	ex, err := exchanger.New(hot, cold, exchanger.WithFlow(exchanger.CoCurrent))
	require.NoError(t, err)
	want, _ := exchanger.LMTD(80, 20)
	assert.InDelta(t, want, ex.LMTD, 1e-12)

	// outlet temperatures cross in co-current flow
	cold = piece("C", stream.Liquid, 0, 20, 10, 70)
	ex, err = exchanger.New(hot, cold, exchanger.WithFlow(exchanger.CoCurrent))
	require.NoError(t, err)
	assert.False(t, ex.Feasible)
	assert.True(t, ex.Known)
	assert.Zero(t, ex.Area)

	_, err = exchanger.TotalCost([]exchanger.Exchanger{ex}, true)
	assert.ErrorIs(t, err, exchanger.ErrNonPositiveApproach)
}

func TestNew_Errors(t *testing.T) {
	_, err := exchanger.New(piece("H", stream.Liquid, 0, 60, 10, 100), piece("C", stream.Liquid, 0, 20, 5, 40))
	assert.ErrorIs(t, err, exchanger.ErrDutyMismatch)

	ex, err := exchanger.New(piece("H", stream.Liquid, 0, 60, 10, 100), piece("C", stream.Liquid, 0, 20, 10, 100))
	require.NoError(t, err)
	assert.False(t, ex.Feasible)
}

// TestTotalCost covers the ignoreUnknown switch.
func TestTotalCost(t *testing.T) {
	known, err := exchanger.New(piece("H", stream.Liquid, 0, 60, 10, 100), piece("C", stream.Liquid, 0, 20, 10, 40))
	require.NoError(t, err)
	unknown, err := exchanger.New(piece("H", stream.Unknown, 10, 100, 20, 110), piece("C", stream.Liquid, 10, 40, 20, 50))
	require.NoError(t, err)
	assert.False(t, unknown.Known)
	assert.Zero(t, unknown.Cost)

	total, err := exchanger.TotalCost([]exchanger.Exchanger{known, unknown}, true)
	require.NoError(t, err)
	assert.InDelta(t, known.Cost, total, 1e-6)

	_, err = exchanger.TotalCost([]exchanger.Exchanger{known, unknown}, false)
	assert.ErrorIs(t, err, exchanger.ErrUndeterminedHeatTransferCoefficient)
}

func TestFromMatches(t *testing.T) {
	matches := []tq.Match{
		{Hot: piece("H", stream.Liquid, 0, 60, 10, 100), Cold: piece("C", stream.Liquid, 0, 20, 10, 40)},
		{Hot: piece("H", stream.Gas, 10, 100, 20, 110), Cold: piece("C", stream.Gas, 10, 40, 20, 50)},
	}
	exs, err := exchanger.FromMatches(matches)
	require.NoError(t, err)
	require.Len(t, exs, 2)
	assert.Equal(t, 150.0, exs[1].U)

	matches[1].Cold = piece("C", stream.Gas, 10, 40, 20, 120)
	exs, err = exchanger.FromMatches(matches)
	require.NoError(t, err)
	assert.True(t, exs[0].Feasible)
	assert.False(t, exs[1].Feasible)

	matches[1].Cold = piece("C", stream.Gas, 10, 40, 30, 50)
	_, err = exchanger.FromMatches(matches)
	assert.ErrorIs(t, err, exchanger.ErrDutyMismatch)
}
