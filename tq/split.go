package tq

import (
	"math"

	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/line"
)

// Split cuts every hot and cold piece at each grid point strictly inside it,
// the grid being the union of all endpoint heats of both families. Shapes
// are unchanged; only colinear vertices are added.
func Split(hot, cold []Segment) (hotOut, coldOut []Segment) {
	grid := grid(hot, cold)

	return splitOn(hot, grid), splitOn(cold, grid)
}

func grid(families ...[]Segment) []float64 {
	var all []line.Segment
	for _, f := range families {
		all = append(all, Lines(f)...)
	}

	return line.ExtractX(all)
}

func splitOn(segs []Segment, grid []float64) []Segment {
	out := make([]Segment, 0, len(segs))
	for _, s := range segs {
		from := s.Line.From
		for _, g := range grid {
			if g <= from.Heat || interval.ApproxEqual(g, from.Heat) {
				continue
			}
			if g >= s.Line.To.Heat || interval.ApproxEqual(g, s.Line.To.Heat) {
				break
			}
			to := line.Point{Heat: g, Temperature: s.Line.TemperatureAt(g)}
			out = append(out, s.withLine(line.Segment{From: from, To: to}))
			from = to
		}
		out = append(out, s.withLine(line.Segment{From: from, To: s.Line.To}))
	}

	return out
}

func (s Segment) withLine(l line.Segment) Segment {
	s.Line = l

	return s
}

// Breakpoints evaluates both envelopes at every grid point covered by both
// families. Where a curve jumps in temperature at constant heat the point is
// evaluated once from the left (pieces ending at it) and once from the
// right (pieces starting at it), and the tighter side is reported. On one
// side the lowest hot and the highest cold temperature count, so Gap is the
// tightest approach.
func Breakpoints(hot, cold []Segment, dtMin float64) []Breakpoint {
	var out []Breakpoint
	for _, q := range grid(hot, cold) {
		var (
			best  Breakpoint
			found bool
		)
		for _, left := range []bool{true, false} {
			th, okh := envelope(hot, q, left, math.Min)
			tc, okc := envelope(cold, q, left, math.Max)
			if !okh || !okc {
				continue
			}
			if gap := th - tc; !found || gap < best.Gap {
				best = Breakpoint{Heat: q, HotTemperature: th, ColdTemperature: tc, Gap: gap}
				found = true
			}
		}
		if !found {
			continue
		}
		best.Pinch = interval.ApproxEqual(best.Gap, dtMin)
		out = append(out, best)
	}

	return out
}

// envelope combines the temperatures at q of the pieces reaching q from the
// left (left set) or leaving q to the right.
func envelope(segs []Segment, q float64, left bool, pick func(a, b float64) float64) (float64, bool) {
	var (
		t  float64
		ok bool
	)
	for _, s := range segs {
		from, to := s.Line.From.Heat, s.Line.To.Heat
		var covers bool
		if left {
			covers = from < q && !interval.ApproxEqual(from, q) && (to > q || interval.ApproxEqual(to, q))
		} else {
			covers = (from < q || interval.ApproxEqual(from, q)) && to > q && !interval.ApproxEqual(to, q)
		}
		if !covers {
			continue
		}
		v := s.Line.TemperatureAt(q)
		if !ok {
			t, ok = v, true
			continue
		}
		t = pick(t, v)
	}

	return t, ok
}
