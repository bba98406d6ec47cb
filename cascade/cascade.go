package cascade

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/stream"
)

// Solve runs the problem table over the process streams. External streams
// are ignored; use AssignUtilities to resolve them against the result.
func Solve(streams []*stream.Stream, dtMin float64) (Result, error) {
	if math.IsNaN(dtMin) || math.IsInf(dtMin, 0) || dtMin < 0 {
		return Result{}, fmt.Errorf("%w: %g", ErrInvalidApproach, dtMin)
	}

	loads := ShiftedLoads(streams, dtMin)
	if len(loads) == 0 {
		return Result{}, ErrNoStreams
	}

	var scale float64
	for _, l := range loads {
		scale += math.Abs(l.Heat)
	}
	tol := interval.Epsilon * max(1, scale)

	intervals := Partition(loads)
	n := len(intervals)

	// running[i] is the cascade value at boundary i (ascending), built top-down.
	temps := make([]float64, n+1)
	running := make([]float64, n+1)
	temps[0] = intervals[0].Range.Start
	for i, iv := range intervals {
		temps[i+1] = iv.Range.Finish
	}
	for i := n - 1; i >= 0; i-- {
		running[i] = running[i+1] - intervals[i].Balance()
	}

	hot := clamp(max(0, -floats.Min(running)), tol)
	heats := make([]float64, n+1)
	var pinches []float64
	for i, v := range running {
		heats[i] = clamp(v+hot, tol)
		if heats[i] == 0 {
			pinches = append(pinches, temps[i])
		}
	}

	return Result{
		Intervals:         intervals,
		Temperatures:      temps,
		Heats:             heats,
		HotUtility:        hot,
		ColdUtility:       heats[0],
		PinchTemperatures: interval.Unique(pinches),
		DeltaTMin:         dtMin,
		tol:               tol,
	}, nil
}

// ShiftedLoads converts the process streams to cold-scale loads.
func ShiftedLoads(streams []*stream.Stream, dtMin float64) []Load {
	loads := make([]Load, 0, len(streams))
	for _, s := range streams {
		if s == nil || s.IsExternal() {
			continue
		}
		r := s.Range()
		if s.IsHot() {
			r = r.Shift(-dtMin)
		}
		loads = append(loads, Load{ID: s.ID(), Range: r, Heat: s.HeatLoad(), Hot: s.IsHot()})
	}

	return loads
}

func clamp(v, tol float64) float64 {
	if math.Abs(v) <= tol {
		return 0
	}

	return v
}
