package tq

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/tarao1006/pyheatintegration/cascade"
	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/line"
	"github.com/tarao1006/pyheatintegration/stream"
)

// Build draws the composite and separated curves of every stream with a
// positive heat load. pinch is the cold-scale pinch temperature returned by
// cascade.Solve; the cold family is shifted by Hh(pinch+ΔTmin) − Hc(pinch),
// where H(T) is the heat a composite has accumulated below T.
func Build(streams []*stream.Stream, dtMin, pinch float64) (Curves, error) {
	var hot, cold []*stream.Stream
	for _, s := range streams {
		if s == nil || s.HeatLoad() <= 0 {
			continue
		}
		if s.IsHot() {
			hot = append(hot, s)
		} else {
			cold = append(cold, s)
		}
	}
	if len(hot) == 0 || len(cold) == 0 {
		return Curves{}, fmt.Errorf("%w: %d hot, %d cold", ErrEmptyClass, len(hot), len(cold))
	}

	hotComp, hotSep := composite(hot, func(s *stream.Stream) float64 { return s.OutputTemperature() })
	coldComp, coldSep := composite(cold, func(s *stream.Stream) float64 { return s.InputTemperature() })

	shift := heatBelow(hotComp, pinch+dtMin, true) - heatBelow(coldComp, pinch, false)
	for _, segs := range [][]Segment{coldComp, coldSep} {
		for i := range segs {
			segs[i].Line.From.Heat += shift
			segs[i].Line.To.Heat += shift
		}
	}

	return Curves{
		Hot:           hotComp,
		Cold:          coldComp,
		HotSeparated:  hotSep,
		ColdSeparated: coldSep,
		Shift:         shift,
	}, nil
}

// composite partitions one class on actual temperatures and accumulates
// heat from the lowest temperature. Intervals without duty are skipped,
// which leaves a vertical jump in temperature at constant heat. Pieces
// inside an interval are ordered by key, ties keeping input order.
func composite(streams []*stream.Stream, key func(*stream.Stream) float64) (comp, sep []Segment) {
	byID := make(map[string]*stream.Stream, len(streams))
	loads := make([]cascade.Load, len(streams))
	var total float64
	for i, s := range streams {
		byID[s.ID()] = s
		loads[i] = cascade.Load{ID: s.ID(), Range: s.Range(), Heat: s.HeatLoad(), Hot: s.IsHot()}
		total += s.HeatLoad()
	}
	tol := interval.Epsilon * max(1, total)

	var q float64
	for _, iv := range cascade.Partition(loads) {
		h := iv.Heat()
		if h <= tol {
			continue
		}
		seg := line.Segment{
			From: line.Point{Heat: q, Temperature: iv.Range.Start},
			To:   line.Point{Heat: q + h, Temperature: iv.Range.Finish},
		}
		comp = append(comp, Segment{Line: seg})

		parts := slices.Clone(iv.Contributions)
		slices.SortStableFunc(parts, func(a, b cascade.Contribution) int {
			return cmp.Compare(key(byID[a.ID]), key(byID[b.ID]))
		})
		at := q
		for _, c := range parts {
			if c.Heat <= tol {
				continue
			}
			s := byID[c.ID]
			sep = append(sep, Segment{
				Line: line.Segment{
					From: line.Point{Heat: at, Temperature: seg.TemperatureAt(at)},
					To:   line.Point{Heat: at + c.Heat, Temperature: seg.TemperatureAt(at + c.Heat)},
				},
				StreamID:          s.ID(),
				State:             s.State(),
				ReboilerOrReactor: s.ReboilerOrReactor(),
			})
			at += c.Heat
		}
		q += h
	}

	return comp, sep
}

// heatBelow returns the heat coordinate at which the composite reaches t.
// A horizontal segment lying exactly at t is included when right is set and
// excluded otherwise.
func heatBelow(comp []Segment, t float64, right bool) float64 {
	best := math.NaN()
	pick := func(v float64) {
		if math.IsNaN(best) || (right && v > best) || (!right && v < best) {
			best = v
		}
	}
	for _, s := range comp {
		r := s.Line.TemperatureSpan()
		if !r.Contains(t) {
			continue
		}
		if r.IsPoint() {
			pick(s.Line.From.Heat)
			pick(s.Line.To.Heat)
			continue
		}
		f := (t - s.Line.From.Temperature) / (s.Line.To.Temperature - s.Line.From.Temperature)
		pick(s.Line.From.Heat + f*s.Line.Duty())
	}
	if !math.IsNaN(best) {
		return best
	}
	for _, s := range comp {
		if s.Line.From.Temperature > t {
			return s.Line.From.Heat
		}
	}

	return comp[len(comp)-1].Line.To.Heat
}
