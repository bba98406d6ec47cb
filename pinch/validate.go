package pinch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/stream"
)

// Validate checks a stream list and ΔTmin before any computation.
//
// Stages:
//  1. no nil entries
//  2. unique IDs
//  3. at least one hot-class and one cold-class stream
//  4. hot temperatures lie above cold ones at both ends (skipped with ignoreMaximum)
//  5. 0 < dtMin ≤ bound
func Validate(streams []*stream.Stream, dtMin float64, ignoreMaximum bool) error {
	// Stage 1–3: structure.
	hot, cold, err := classRanges(streams)
	if err != nil {
		return err
	}

	// Stage 4: thermodynamic range.
	if !ignoreMaximum && (hot.Finish < cold.Finish || hot.Start < cold.Start) {
		return fmt.Errorf("%w: %w: hot %v, cold %v", ErrValidation, ErrInfeasibleStreamRange, hot, cold)
	}

	// Stage 5: approach bound.
	bound := approachBound(hot, cold, ignoreMaximum)
	if math.IsNaN(dtMin) || dtMin <= 0 || dtMin > bound {
		return fmt.Errorf("%w: %w: %g not in (0, %g]", ErrValidation, ErrInvalidApproachTemperature, dtMin, bound)
	}

	return nil
}

// ApproachBounds returns the admissible ΔTmin range (0, bound] for streams.
// A bound of zero or less means no ΔTmin is admissible.
func ApproachBounds(streams []*stream.Stream, ignoreMaximum bool) (interval.Range, error) {
	hot, cold, err := classRanges(streams)
	if err != nil {
		return interval.Range{}, err
	}

	return interval.Range{Start: 0, Finish: approachBound(hot, cold, ignoreMaximum)}, nil
}

func approachBound(hot, cold interval.Range, ignoreMaximum bool) float64 {
	if ignoreMaximum {
		return hot.Finish - cold.Start
	}

	return min(hot.Finish-cold.Finish, hot.Start-cold.Start)
}

// classRanges returns the temperature span of each class after the
// structural checks.
func classRanges(streams []*stream.Stream) (hot, cold interval.Range, err error) {
	seen := make(map[string]struct{}, len(streams))
	var hotTemps, coldTemps []float64
	for i, s := range streams {
		if s == nil {
			return hot, cold, fmt.Errorf("%w: %w: index %d", ErrValidation, ErrNilStream, i)
		}
		if _, dup := seen[s.ID()]; dup {
			return hot, cold, fmt.Errorf("%w: %w: %q", ErrValidation, ErrDuplicateStreamID, s.ID())
		}
		seen[s.ID()] = struct{}{}

		if s.IsHot() {
			hotTemps = append(hotTemps, s.InputTemperature(), s.OutputTemperature())
		} else {
			coldTemps = append(coldTemps, s.InputTemperature(), s.OutputTemperature())
		}
	}
	if len(hotTemps) == 0 || len(coldTemps) == 0 {
		return hot, cold, fmt.Errorf("%w: %w: %d hot, %d cold",
			ErrValidation, ErrMissingStreamClass, len(hotTemps)/2, len(coldTemps)/2)
	}

	return span(hotTemps), span(coldTemps), nil
}

func span(values []float64) interval.Range {
	return interval.Range{Start: floats.Min(values), Finish: floats.Max(values)}
}
