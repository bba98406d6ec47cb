package interval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarao1006/pyheatintegration/interval"
)

func TestNew_Normalises(t *testing.T) {
	r := interval.New(10, 0)
	assert.Equal(t, interval.Range{Start: 0, Finish: 10}, r)
	assert.Equal(t, 10.0, r.Delta())
	assert.False(t, r.IsPoint())
	assert.True(t, interval.New(5, 5).IsPoint())
}

func TestRange_Contains(t *testing.T) {
	r := interval.New(0, 10)
	cases := []struct {
		v    float64
		want bool
	}{
		{-1, false},
		{0, true},
		{5, true},
		{10, true},
		{10 + 1e-12, true},
		{10.1, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, r.Contains(tc.v), "Contains(%v)", tc.v)
	}
}

func TestRange_Shift(t *testing.T) {
	assert.Equal(t, interval.New(-10, 0), interval.New(0, 10).Shift(-10))
}

func TestRange_Overlap(t *testing.T) {
	cases := []struct {
		name   string
		a, b   interval.Range
		want   interval.Range
		wantOK bool
	}{
		{"Inside", interval.New(0, 10), interval.New(2, 4), interval.New(2, 4), true},
		{"Partial", interval.New(0, 10), interval.New(5, 15), interval.New(5, 10), true},
		{"Touching", interval.New(0, 10), interval.New(10, 20), interval.New(10, 10), true},
		{"Disjoint", interval.New(0, 10), interval.New(11, 20), interval.Range{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.a.Overlap(tc.b)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRange_Mergeable(t *testing.T) {
	assert.True(t, interval.New(0, 10).Mergeable(interval.New(10, 20)))
	assert.True(t, interval.New(10, 20).Mergeable(interval.New(0, 10+1e-12)))
	assert.False(t, interval.New(0, 10).Mergeable(interval.New(11, 20)))
	assert.False(t, interval.New(0, 10).Mergeable(interval.New(5, 15)))
}

func TestFromPoints(t *testing.T) {
	got := interval.FromPoints([]float64{20, 0, 10})
	assert.Equal(t, []interval.Range{interval.New(0, 10), interval.New(10, 20)}, got)
	assert.Nil(t, interval.FromPoints([]float64{1}))
}

func TestFlatten(t *testing.T) {
	got := interval.Flatten([]interval.Range{
		interval.New(0, 10),
		interval.New(5, 15),
		interval.New(15, 40),
		interval.New(10, 10 + 1e-12),
	})
	assert.Equal(t, []float64{0, 5, 10, 15, 40}, got)
}
