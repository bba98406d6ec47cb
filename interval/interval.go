package interval

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats/scalar"
)

// Epsilon is the absolute-or-relative tolerance used for coordinate equality.
const Epsilon = 1e-9

// Range is a closed interval [Start, Finish] with Start ≤ Finish.
type Range struct {
	Start  float64
	Finish float64
}

// New returns the range spanned by a and b, in either order.
func New(a, b float64) Range {
	if a > b {
		return Range{Start: b, Finish: a}
	}

	return Range{Start: a, Finish: b}
}

// ApproxEqual reports whether a and b are equal within Epsilon.
func ApproxEqual(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, Epsilon, Epsilon)
}

// Delta returns the width of r.
func (r Range) Delta() float64 { return r.Finish - r.Start }

// IsPoint reports whether r has zero width.
func (r Range) IsPoint() bool { return ApproxEqual(r.Start, r.Finish) }

// Contains reports whether v lies in the closed range, allowing Epsilon at
// both ends.
func (r Range) Contains(v float64) bool {
	return (v >= r.Start || ApproxEqual(v, r.Start)) &&
		(v <= r.Finish || ApproxEqual(v, r.Finish))
}

// Shift returns r moved by delta.
func (r Range) Shift(delta float64) Range {
	return Range{Start: r.Start + delta, Finish: r.Finish + delta}
}

// Overlap returns the intersection of r and o. ok is false when they are
// disjoint; touching ranges yield a zero-width overlap with ok true.
func (r Range) Overlap(o Range) (Range, bool) {
	lo := max(r.Start, o.Start)
	hi := min(r.Finish, o.Finish)
	if hi < lo {
		if ApproxEqual(hi, lo) {
			return Range{Start: lo, Finish: lo}, true
		}

		return Range{}, false
	}

	return Range{Start: lo, Finish: hi}, true
}

// Mergeable reports whether r and o touch end to start.
func (r Range) Mergeable(o Range) bool {
	return ApproxEqual(r.Start, o.Finish) || ApproxEqual(r.Finish, o.Start)
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("%g->%g", r.Start, r.Finish)
}

// FromPoints sorts points and returns the ranges between consecutive values.
// Duplicated points produce zero-width ranges.
func FromPoints(points []float64) []Range {
	if len(points) < 2 {
		return nil
	}
	sorted := slices.Clone(points)
	slices.Sort(sorted)

	out := make([]Range, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		out = append(out, Range{Start: sorted[i], Finish: sorted[i+1]})
	}

	return out
}

// Flatten returns the sorted endpoints of ranges with near-equal values
// collapsed into one.
func Flatten(ranges []Range) []float64 {
	points := make([]float64, 0, 2*len(ranges))
	for _, r := range ranges {
		points = append(points, r.Start, r.Finish)
	}

	return Unique(points)
}

// Unique sorts values and collapses runs that are equal within Epsilon,
// keeping the first value of each run.
func Unique(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := slices.Clone(values)
	slices.Sort(sorted)

	out := sorted[:1]
	for _, v := range sorted[1:] {
		if !ApproxEqual(v, out[len(out)-1]) {
			out = append(out, v)
		}
	}

	return out
}
