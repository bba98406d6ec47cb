package line_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tarao1006/pyheatintegration/line"
)

func seg(x1, y1, x2, y2 float64) line.Segment {
	return line.Segment{
		From: line.Point{Heat: x1, Temperature: y1},
		To:   line.Point{Heat: x2, Temperature: y2},
	}
}

func TestNewSegment_OrdersByHeat(t *testing.T) {
	s := line.NewSegment(line.Point{Heat: 5, Temperature: 1}, line.Point{Heat: 1, Temperature: 9})
	assert.Equal(t, seg(1, 9, 5, 1), s)
	assert.Equal(t, 4.0, s.Duty())
}

func TestSegment_TemperatureAt(t *testing.T) {
	s := seg(0, 10, 10, 30)
	assert.InDelta(t, 10.0, s.TemperatureAt(0), 1e-12)
	assert.InDelta(t, 20.0, s.TemperatureAt(5), 1e-12)
	assert.InDelta(t, 30.0, s.TemperatureAt(10), 1e-12)

	// vertical segment
	assert.Equal(t, 10.0, seg(3, 10, 3, 40).TemperatureAt(3))
}

func TestExtractX(t *testing.T) {
	lines := []line.Segment{seg(0, 0, 1, 1), seg(1, 1, 2, 2), seg(2, 2, 3, 5), seg(3, 3, 5, 8)}
	assert.Equal(t, []float64{0, 1, 2, 3, 5}, line.ExtractX(lines))
	assert.Empty(t, line.ExtractX(nil))
}

func TestYRange(t *testing.T) {
	lines := []line.Segment{seg(0, 0, 1, 1), seg(1, 1, 2, 2), seg(2, 2, 3, 5), seg(3, 3, 5, 8)}
	lo, hi, err := line.YRange(lines)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 8.0, hi)

	_, _, err = line.YRange(nil)
	assert.ErrorIs(t, err, line.ErrNoLines)
}

func TestToExcelData(t *testing.T) {
	cases := []struct {
		name   string
		lines  []line.Segment
		wantXs []float64
		wantYs []float64
	}{
		{
			name:   "Continuous",
			lines:  []line.Segment{seg(0, 0, 1, 2), seg(1, 2, 3, 3), seg(3, 3, 4, 5)},
			wantXs: []float64{0, 1, 3, 4},
			wantYs: []float64{0, 2, 3, 5},
		},
		{
			name:   "Broken",
			lines:  []line.Segment{seg(0, 0, 1, 2), seg(1, 0, 2, 2)},
			wantXs: []float64{0, 1, 1, 2},
			wantYs: []float64{0, 2, 0, 2},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			xs, ys := line.ToExcelData(tc.lines)
			assert.Equal(t, tc.wantXs, xs)
			assert.Equal(t, tc.wantYs, ys)
		})
	}
}
