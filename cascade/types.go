package cascade

import (
	"errors"
	"slices"

	"github.com/tarao1006/pyheatintegration/interval"
)

// Sentinel errors.
var (
	// ErrNoStreams indicates that no process stream was supplied.
	ErrNoStreams = errors.New("cascade: no process streams")

	// ErrInvalidApproach indicates a negative or non-finite ΔTmin.
	ErrInvalidApproach = errors.New("cascade: invalid minimum approach temperature difference")

	// ErrMissingUtilityStream indicates that the external streams of one
	// class cannot absorb or supply the whole utility target.
	ErrMissingUtilityStream = errors.New("cascade: utility target cannot be placed on external streams")
)

// Load is one duty placed on the temperature axis.
type Load struct {
	ID    string
	Range interval.Range
	Heat  float64
	Hot   bool
}

// Contribution is the part of a Load falling into one Interval.
type Contribution struct {
	ID   string
	Hot  bool
	Heat float64
}

// Interval is one band of the partition with the duties that fall into it.
type Interval struct {
	Range         interval.Range
	Contributions []Contribution
}

// HotHeat returns the heat released in the interval.
func (iv Interval) HotHeat() float64 {
	var sum float64
	for _, c := range iv.Contributions {
		if c.Hot {
			sum += c.Heat
		}
	}

	return sum
}

// ColdHeat returns the heat absorbed in the interval.
func (iv Interval) ColdHeat() float64 {
	var sum float64
	for _, c := range iv.Contributions {
		if !c.Hot {
			sum += c.Heat
		}
	}

	return sum
}

// Balance returns ColdHeat − HotHeat; positive means a deficit.
func (iv Interval) Balance() float64 { return iv.ColdHeat() - iv.HotHeat() }

// Heat returns the total duty of the interval regardless of class.
func (iv Interval) Heat() float64 { return iv.ColdHeat() + iv.HotHeat() }

// Result is the outcome of Solve. Temperatures are cold-scale boundaries in
// ascending order and Heats is the corrected cascade at each of them.
type Result struct {
	Intervals         []Interval
	Temperatures      []float64
	Heats             []float64
	HotUtility        float64
	ColdUtility       float64
	PinchTemperatures []float64
	DeltaTMin         float64

	tol float64
}

// PinchTemperature returns the highest pinch temperature on the cold scale.
func (r Result) PinchTemperature() float64 {
	return r.PinchTemperatures[len(r.PinchTemperatures)-1]
}

// MinimumPinchTemperature returns the lowest pinch temperature on the cold scale.
func (r Result) MinimumPinchTemperature() float64 {
	return r.PinchTemperatures[0]
}

// GrandCompositeCurve returns copies of the cascade heats and temperatures.
func (r Result) GrandCompositeCurve() (heats, temperatures []float64) {
	return slices.Clone(r.Heats), slices.Clone(r.Temperatures)
}

// Tolerance returns the absolute heat tolerance used for this result.
func (r Result) Tolerance() float64 { return r.tol }
