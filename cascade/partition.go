package cascade

import (
	"slices"

	"github.com/tarao1006/pyheatintegration/interval"
)

// Partition splits the temperature axis spanned by loads into ascending
// intervals and distributes every load over them.
//
// Non-isothermal loads are spread in proportion to the overlap width. An
// isothermal load lands in full in the zero-width interval at its
// temperature; such an interval never receives a share of a
// non-isothermal load.
func Partition(loads []Load) []Interval {
	var ramps, levels []float64
	for _, l := range loads {
		if l.Range.IsPoint() {
			levels = append(levels, l.Range.Start)
			continue
		}
		ramps = append(ramps, l.Range.Start, l.Range.Finish)
	}

	points := interval.Unique(ramps)
	for _, lv := range interval.Unique(levels) {
		idx := slices.IndexFunc(points, func(p float64) bool { return interval.ApproxEqual(p, lv) })
		if idx >= 0 {
			points = append(points, points[idx])
			continue
		}
		points = append(points, lv, lv)
	}

	ranges := interval.FromPoints(points)
	out := make([]Interval, 0, len(ranges))
	for _, r := range ranges {
		iv := Interval{Range: r}
		zero := r.IsPoint()
		for _, l := range loads {
			iso := l.Range.IsPoint()
			switch {
			case zero && iso && interval.ApproxEqual(l.Range.Start, r.Start):
				iv.Contributions = append(iv.Contributions, Contribution{ID: l.ID, Hot: l.Hot, Heat: l.Heat})
			case !zero && !iso:
				ov, ok := r.Overlap(l.Range)
				if !ok || ov.IsPoint() {
					continue
				}
				iv.Contributions = append(iv.Contributions, Contribution{
					ID:   l.ID,
					Hot:  l.Hot,
					Heat: l.Heat * ov.Delta() / l.Range.Delta(),
				})
			}
		}
		out = append(out, iv)
	}

	return out
}
