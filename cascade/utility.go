package cascade

import (
	"fmt"
	"slices"

	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/stream"
)

// placement is a utility load already fixed at a cold-scale level.
type placement struct {
	level float64
	load  float64
	hot   bool
}

// probe is a point of the cascade at which feasibility is checked. A
// temperature carrying an isothermal duty appears twice on the grid;
// lowerCopy and upperCopy tell the two sides apart.
type probe struct {
	t         float64
	heat      float64
	lowerCopy bool
	upperCopy bool
}

// AssignUtilities distributes the utility targets of r over the external
// streams and returns a copy of streams in which every external stream is
// replaced by a resolved copy. Process streams are returned as they are.
//
// Within a class, external streams are served in ascending cost order (ties
// keep input order). Each takes the largest load that keeps the corrected
// cascade non-negative given its level and the loads already placed:
//
//	hot utility level  = output − ΔTmin
//	cold utility level = output
//
// With all placements fixed the cascade at every temperature T must satisfy
//
//	heat(T) − Σ{hot level ≤ T} − Σ{cold level ≥ T} ≥ 0
//
// A class without external streams is left unassigned. A class whose
// external streams cannot take the whole target fails with
// ErrMissingUtilityStream.
func AssignUtilities(r Result, streams []*stream.Stream) ([]*stream.Stream, error) {
	out := slices.Clone(streams)

	var hotIdx, coldIdx []int
	for i, s := range streams {
		if s == nil || s.IsInternal() {
			continue
		}
		if s.IsHot() {
			hotIdx = append(hotIdx, i)
		} else {
			coldIdx = append(coldIdx, i)
		}
	}
	byCost := func(a, b int) int {
		switch ca, cb := streams[a].Cost(), streams[b].Cost(); {
		case ca < cb:
			return -1
		case ca > cb:
			return 1
		}

		return 0
	}
	slices.SortStableFunc(hotIdx, byCost)
	slices.SortStableFunc(coldIdx, byCost)

	var placed []placement
	classes := []struct {
		hot    bool
		idx    []int
		target float64
	}{
		{true, hotIdx, r.HotUtility},
		{false, coldIdx, r.ColdUtility},
	}
	for _, c := range classes {
		if len(c.idx) == 0 {
			continue
		}
		remaining := c.target
		for _, i := range c.idx {
			s := streams[i]
			level := s.OutputTemperature()
			if c.hot {
				level -= r.DeltaTMin
			}
			q := min(max(r.headroom(level, c.hot, placed), 0), remaining)
			if q <= r.tol {
				q = 0
			}
			remaining -= q
			placed = append(placed, placement{level: level, load: q, hot: c.hot})
			out[i] = s.WithHeatLoad(q)
		}
		if remaining > r.tol {
			kind := "cold"
			if c.hot {
				kind = "hot"
			}

			return nil, fmt.Errorf("%w: %g W of %s utility left unplaced", ErrMissingUtilityStream, remaining, kind)
		}
	}

	return out, nil
}

// headroom returns the largest load a new utility at level may take.
func (r Result) headroom(level float64, hot bool, placed []placement) float64 {
	room := r.room(r.probeAt(level, hot), placed)
	for _, p := range r.probes() {
		if counts(placement{level: level, hot: hot}, p) {
			room = min(room, r.room(p, placed))
		}
	}

	return room
}

func (r Result) room(p probe, placed []placement) float64 {
	v := p.heat
	for _, pl := range placed {
		if counts(pl, p) {
			v -= pl.load
		}
	}

	return v
}

// counts reports whether a utility placed at pl.level removes headroom at p.
func counts(pl placement, p probe) bool {
	if interval.ApproxEqual(pl.level, p.t) {
		if pl.hot {
			return !p.lowerCopy
		}

		return !p.upperCopy
	}
	if pl.hot {
		return pl.level < p.t
	}

	return pl.level > p.t
}

func (r Result) probes() []probe {
	n := len(r.Temperatures)
	out := make([]probe, n)
	for i, t := range r.Temperatures {
		out[i] = probe{
			t:         t,
			heat:      r.Heats[i],
			lowerCopy: i+1 < n && interval.ApproxEqual(t, r.Temperatures[i+1]),
			upperCopy: i > 0 && interval.ApproxEqual(t, r.Temperatures[i-1]),
		}
	}

	return out
}

// probeAt returns the cascade point at level. Above the grid the cascade
// equals the hot utility, below it the cold utility. On a duplicated
// temperature a hot utility sees the upper copy and a cold one the lower.
func (r Result) probeAt(level float64, hot bool) probe {
	ps := r.probes()
	first, last := ps[0], ps[len(ps)-1]
	switch {
	case level > last.t && !interval.ApproxEqual(level, last.t):
		return probe{t: level, heat: r.HotUtility}
	case level < first.t && !interval.ApproxEqual(level, first.t):
		return probe{t: level, heat: r.ColdUtility}
	}

	for i, p := range ps {
		if !interval.ApproxEqual(p.t, level) {
			continue
		}
		if hot && p.lowerCopy {
			return ps[i+1]
		}

		return p
	}
	for i := 0; i+1 < len(ps); i++ {
		lo, hi := ps[i], ps[i+1]
		if level > lo.t && level < hi.t {
			f := (level - lo.t) / (hi.t - lo.t)

			return probe{t: level, heat: lo.heat + f*(hi.heat-lo.heat)}
		}
	}

	return probe{t: level, heat: last.heat}
}
