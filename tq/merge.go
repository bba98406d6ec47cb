package tq

import (
	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/line"
)

// cell is one grid step with the hot and cold piece covering it, if any.
type cell struct {
	hot, cold *Segment
}

// run is a maximal sequence of mergeable cells.
type run struct {
	first, last cell
}

// Merge splits hot and cold on a shared grid and joins consecutive cells
// into runs. A cell extends the current run when
//
//   - it carries the same hot and cold stream (or the same absence),
//   - both pieces continue the run without a jump,
//   - the approach at the joint is strictly above ΔTmin, and
//   - the approach at both ends of the extended run is at least ΔTmin.
//
// Each run yields one hot and one cold segment from its first start to its
// last end; runs with both sides form a Match.
func Merge(hot, cold []Segment, dtMin float64) Merged {
	hs, cs := Split(hot, cold)
	cells := cells(hs, cs)

	var (
		runs []run
		cur  *run
	)
	for _, c := range cells {
		if c.hot == nil && c.cold == nil {
			cur = nil
			continue
		}
		if cur != nil && extends(*cur, c, dtMin) {
			cur.last = c
			continue
		}
		runs = append(runs, run{first: c, last: c})
		cur = &runs[len(runs)-1]
	}

	var m Merged
	for _, r := range runs {
		var h, c Segment
		if r.first.hot != nil {
			h = r.first.hot.withLine(line.Segment{From: r.first.hot.Line.From, To: r.last.hot.Line.To})
			m.Hot = append(m.Hot, h)
		}
		if r.first.cold != nil {
			c = r.first.cold.withLine(line.Segment{From: r.first.cold.Line.From, To: r.last.cold.Line.To})
			m.Cold = append(m.Cold, c)
		}
		if r.first.hot != nil && r.first.cold != nil {
			m.Matches = append(m.Matches, Match{Hot: h, Cold: c})
		}
	}

	return m
}

func cells(hot, cold []Segment) []cell {
	g := grid(hot, cold)
	out := make([]cell, 0, len(g))
	for i := 0; i+1 < len(g); i++ {
		out = append(out, cell{hot: covering(hot, g[i], g[i+1]), cold: covering(cold, g[i], g[i+1])})
	}

	return out
}

// covering returns the split piece spanning exactly [lo, hi].
func covering(segs []Segment, lo, hi float64) *Segment {
	for i := range segs {
		l := segs[i].Line
		if interval.ApproxEqual(l.From.Heat, lo) && interval.ApproxEqual(l.To.Heat, hi) {
			return &segs[i]
		}
	}

	return nil
}

func extends(r run, c cell, dtMin float64) bool {
	if !sameSide(r.last.hot, c.hot) || !sameSide(r.last.cold, c.cold) {
		return false
	}
	if c.hot == nil || c.cold == nil {
		return true
	}
	joint := c.hot.Line.From.Temperature - c.cold.Line.From.Temperature
	if joint <= dtMin || interval.ApproxEqual(joint, dtMin) {
		return false
	}
	start := r.first.hot.Line.From.Temperature - r.first.cold.Line.From.Temperature
	end := c.hot.Line.To.Temperature - c.cold.Line.To.Temperature

	return atLeast(start, dtMin) && atLeast(end, dtMin)
}

// sameSide reports whether b continues a: same stream, no jump.
func sameSide(a, b *Segment) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.StreamID == b.StreamID &&
		a.Line.HeatSpan().Mergeable(b.Line.HeatSpan()) &&
		interval.ApproxEqual(a.Line.To.Temperature, b.Line.From.Temperature)
}

func atLeast(v, bound float64) bool {
	return v >= bound || interval.ApproxEqual(v, bound)
}
