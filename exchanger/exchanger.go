package exchanger

import (
	"errors"
	"fmt"
	"math"

	"github.com/tarao1006/pyheatintegration/interval"
	"github.com/tarao1006/pyheatintegration/stream"
	"github.com/tarao1006/pyheatintegration/tq"
)

// OverallCoefficient returns U in W/m²K for a hot and a cold state.
func OverallCoefficient(hot, cold stream.State) (float64, error) {
	switch hot {
	case stream.Liquid:
		switch cold {
		case stream.Liquid:
			return 300, nil
		case stream.Gas:
			return 200, nil
		case stream.LiquidEvaporation:
			return 1000, nil
		}
	case stream.Gas:
		switch cold {
		case stream.Liquid:
			return 200, nil
		case stream.Gas:
			return 150, nil
		case stream.LiquidEvaporation:
			return 500, nil
		}
	case stream.GasCondensation:
		switch cold {
		case stream.Liquid:
			return 1000, nil
		case stream.Gas:
			return 500, nil
		case stream.LiquidEvaporation:
			return 1500, nil
		}
	}

	return 0, fmt.Errorf("%w: hot %s, cold %s", ErrUndeterminedHeatTransferCoefficient, hot, cold)
}

// LMTD returns the log-mean of two end approaches. Equal approaches yield
// dt1 itself.
func LMTD(dt1, dt2 float64) (float64, error) {
	if dt1 <= 0 || dt2 <= 0 {
		return 0, fmt.Errorf("%w: %g, %g", ErrNonPositiveApproach, dt1, dt2)
	}
	if interval.ApproxEqual(dt1, dt2) {
		return dt1, nil
	}

	return (dt1 - dt2) / math.Log(dt1/dt2), nil
}

// Cost prices an exchanger of the given area.
func Cost(area float64, reboilerOrReactor bool) float64 {
	k := 1.0
	if reboilerOrReactor {
		k = ReboilerFactor
	}

	return CostCoefficient * math.Pow(area, CostExponent) * k
}

// New sizes the exchanger between a hot and a cold piece of equal duty.
// An undefined U or a temperature cross is not an error here; the result
// has Known or Feasible set to false and TotalCost reports it.
func New(hot, cold tq.Segment, opts ...Option) (Exchanger, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	duty := hot.Line.Duty()
	if !interval.ApproxEqual(duty, cold.Line.Duty()) {
		return Exchanger{}, fmt.Errorf("%w: %g vs %g", ErrDutyMismatch, duty, cold.Line.Duty())
	}

	hotLo, hotHi := hot.Line.TemperatureSpan().Start, hot.Line.TemperatureSpan().Finish
	coldLo, coldHi := cold.Line.TemperatureSpan().Start, cold.Line.TemperatureSpan().Finish
	dt1, dt2 := hotHi-coldHi, hotLo-coldLo
	if o.Flow == CoCurrent {
		dt1, dt2 = hotHi-coldLo, hotLo-coldHi
	}
	ex := Exchanger{Hot: hot, Cold: cold, Duty: duty}
	u, err := OverallCoefficient(hot.State, cold.State)
	if err == nil {
		ex.U, ex.Known = u, true
	}
	lmtd, err := LMTD(dt1, dt2)
	if errors.Is(err, ErrNonPositiveApproach) {
		return ex, nil
	}
	ex.LMTD, ex.Feasible = lmtd, true
	if !ex.Known {
		return ex, nil
	}
	ex.Area = duty / (u * lmtd)
	ex.Cost = Cost(ex.Area, hot.ReboilerOrReactor || cold.ReboilerOrReactor)

	return ex, nil
}

// FromMatches sizes one exchanger per match.
func FromMatches(matches []tq.Match, opts ...Option) ([]Exchanger, error) {
	out := make([]Exchanger, 0, len(matches))
	for _, m := range matches {
		ex, err := New(m.Hot, m.Cold, opts...)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}

	return out, nil
}

// TotalCost sums the exchanger costs. Exchangers without a U value are
// skipped when ignoreUnknown is set and fail the sum otherwise. An
// infeasible exchanger always fails the sum with ErrNonPositiveApproach.
func TotalCost(exchangers []Exchanger, ignoreUnknown bool) (float64, error) {
	var total float64
	for _, ex := range exchangers {
		if !ex.Feasible {
			return 0, fmt.Errorf("%w: hot %s, cold %s", ErrNonPositiveApproach, ex.Hot.StreamID, ex.Cold.StreamID)
		}
		if !ex.Known {
			if ignoreUnknown {
				continue
			}

			return 0, fmt.Errorf("%w: hot %s (%s), cold %s (%s)",
				ErrUndeterminedHeatTransferCoefficient,
				ex.Hot.StreamID, ex.Hot.State, ex.Cold.StreamID, ex.Cold.State)
		}
		total += ex.Cost
	}

	return total, nil
}
