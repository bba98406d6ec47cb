package line

import (
	"math"

	"github.com/tarao1006/pyheatintegration/interval"
)

// ExtractX returns the sorted unique heat coordinates of all endpoints.
func ExtractX(lines []Segment) []float64 {
	spans := make([]interval.Range, len(lines))
	for i, l := range lines {
		spans[i] = l.HeatSpan()
	}

	return interval.Flatten(spans)
}

// YRange returns the lowest and highest temperature over all endpoints.
func YRange(lines []Segment) (lo, hi float64, err error) {
	if len(lines) == 0 {
		return 0, 0, ErrNoLines
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, l := range lines {
		lo = min(lo, l.From.Temperature, l.To.Temperature)
		hi = max(hi, l.From.Temperature, l.To.Temperature)
	}

	return lo, hi, nil
}

// ToExcelData flattens lines into parallel x and y arrays. When a segment
// starts where the previous one ended the shared vertex is written once, so
// a continuous polyline yields n+1 points and a break yields both ends.
func ToExcelData(lines []Segment) (xs, ys []float64) {
	xs = make([]float64, 0, 2*len(lines))
	ys = make([]float64, 0, 2*len(lines))
	for i, l := range lines {
		if i == 0 || !samePoint(lines[i-1].To, l.From) {
			xs = append(xs, l.From.Heat)
			ys = append(ys, l.From.Temperature)
		}
		xs = append(xs, l.To.Heat)
		ys = append(ys, l.To.Temperature)
	}

	return xs, ys
}

func samePoint(a, b Point) bool {
	return interval.ApproxEqual(a.Heat, b.Heat) && interval.ApproxEqual(a.Temperature, b.Temperature)
}
