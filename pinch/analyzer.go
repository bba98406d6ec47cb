package pinch

import (
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/tarao1006/pyheatintegration/cascade"
	"github.com/tarao1006/pyheatintegration/exchanger"
	"github.com/tarao1006/pyheatintegration/line"
	"github.com/tarao1006/pyheatintegration/stream"
	"github.com/tarao1006/pyheatintegration/tq"
)

// Analyzer holds the frozen result of one pinch analysis.
type Analyzer struct {
	dtMin      float64
	streams    []*stream.Stream
	result     cascade.Result
	curves     tq.Curves
	splitHot   []tq.Segment
	splitCold  []tq.Segment
	merged     tq.Merged
	exchangers []exchanger.Exchanger
}

// New validates streams and runs the full analysis. See the package
// documentation for the steps and the error contract.
func New(streams []*stream.Stream, dtMin float64, opts ...Option) (*Analyzer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := Validate(streams, dtMin, o.IgnoreMaximum); err != nil {
		return nil, err
	}

	res, err := cascade.Solve(streams, dtMin)
	if err != nil {
		return nil, fmt.Errorf("pinch: cascade: %w", err)
	}
	resolved, err := cascade.AssignUtilities(res, streams)
	if err != nil {
		return nil, fmt.Errorf("pinch: utilities: %w", err)
	}

	curves, err := tq.Build(resolved, dtMin, res.PinchTemperature())
	if err != nil {
		return nil, fmt.Errorf("pinch: curves: %w", err)
	}
	splitHot, splitCold := tq.Split(curves.HotSeparated, curves.ColdSeparated)
	merged := tq.Merge(curves.HotSeparated, curves.ColdSeparated, dtMin)

	exs, err := exchanger.FromMatches(merged.Matches, exchanger.WithFlow(o.Flow))
	if err != nil {
		return nil, fmt.Errorf("pinch: exchangers: %w", err)
	}

	a := &Analyzer{
		dtMin:      dtMin,
		streams:    resolved,
		result:     res,
		curves:     curves,
		splitHot:   splitHot,
		splitCold:  splitCold,
		merged:     merged,
		exchangers: exs,
	}

	o.Logger.Debug("pinch analysis complete",
		zap.Int("streams", len(streams)),
		zap.Float64("dt_min", dtMin),
		zap.Float64("pinch_temperature", res.PinchTemperature()),
		zap.Float64("hot_utility", res.HotUtility),
		zap.Float64("cold_utility", res.ColdUtility),
		zap.Int("intervals", len(res.Intervals)),
		zap.Int("exchangers", len(exs)),
	)

	return a, nil
}

// GrandCompositeCurve returns the corrected cascade heats and the matching
// cold-scale temperatures, both ascending in temperature.
func (a *Analyzer) GrandCompositeCurve() (heats, temperatures []float64) {
	return a.result.GrandCompositeCurve()
}

// TQ returns the hot and cold composite curves.
func (a *Analyzer) TQ() (hot, cold []line.Segment) {
	return tq.Lines(a.curves.Hot), tq.Lines(a.curves.Cold)
}

// TQSeparated returns one polyline piece per stream and interval.
func (a *Analyzer) TQSeparated() (hot, cold []line.Segment) {
	return tq.Lines(a.curves.HotSeparated), tq.Lines(a.curves.ColdSeparated)
}

// TQSplit returns the separated pieces cut on a shared heat grid.
func (a *Analyzer) TQSplit() (hot, cold []line.Segment) {
	return tq.Lines(a.splitHot), tq.Lines(a.splitCold)
}

// TQMerged returns the split pieces with compatible neighbours joined.
func (a *Analyzer) TQMerged() (hot, cold []line.Segment) {
	return tq.Lines(a.merged.Hot), tq.Lines(a.merged.Cold)
}

// Breakpoints returns the approach at every point of the split grid.
func (a *Analyzer) Breakpoints() []tq.Breakpoint {
	return tq.Breakpoints(a.splitHot, a.splitCold, a.dtMin)
}

// HeatExchangers returns the sized exchangers of the merged matches.
func (a *Analyzer) HeatExchangers() []exchanger.Exchanger {
	return slices.Clone(a.exchangers)
}

// HeatExchangerCost returns the total exchanger cost. With ignoreUnknown
// exchangers lacking a U value cost nothing; otherwise they fail the call
// with exchanger.ErrUndeterminedHeatTransferCoefficient.
func (a *Analyzer) HeatExchangerCost(ignoreUnknown bool) (float64, error) {
	return exchanger.TotalCost(a.exchangers, ignoreUnknown)
}

// PinchTemperature returns the highest pinch temperature on the cold scale.
func (a *Analyzer) PinchTemperature() float64 { return a.result.PinchTemperature() }

// PinchTemperatures returns every pinch temperature on the cold scale.
func (a *Analyzer) PinchTemperatures() []float64 {
	return slices.Clone(a.result.PinchTemperatures)
}

// HotUtility returns the minimum hot utility load.
func (a *Analyzer) HotUtility() float64 { return a.result.HotUtility }

// ColdUtility returns the minimum cold utility load.
func (a *Analyzer) ColdUtility() float64 { return a.result.ColdUtility }

// DeltaTMin returns the minimum approach temperature difference.
func (a *Analyzer) DeltaTMin() float64 { return a.dtMin }

// Streams returns all streams with the external ones resolved.
func (a *Analyzer) Streams() []*stream.Stream { return slices.Clone(a.streams) }

// Utilities returns the resolved external streams.
func (a *Analyzer) Utilities() []*stream.Stream {
	var out []*stream.Stream
	for _, s := range a.streams {
		if s.IsExternal() {
			out = append(out, s)
		}
	}

	return out
}

// UtilityCost returns Σ cost × load over the resolved utilities.
func (a *Analyzer) UtilityCost() float64 {
	var total float64
	for _, s := range a.Utilities() {
		total += s.Cost() * s.HeatLoad()
	}

	return total
}
