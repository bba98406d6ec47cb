package exchanger

import (
	"errors"

	"github.com/tarao1006/pyheatintegration/tq"
)

// Sentinel errors.
var (
	// ErrUndeterminedHeatTransferCoefficient indicates a state pair without a U value.
	ErrUndeterminedHeatTransferCoefficient = errors.New("exchanger: undetermined overall heat transfer coefficient")

	// ErrNonPositiveApproach indicates a temperature cross or zero approach at an end.
	ErrNonPositiveApproach = errors.New("exchanger: non-positive approach temperature")

	// ErrDutyMismatch indicates hot and cold pieces with different heat spans.
	ErrDutyMismatch = errors.New("exchanger: hot and cold duties differ")
)

// Cost correlation constants.
const (
	CostCoefficient = 1_500_000.0
	CostExponent    = 0.65
	ReboilerFactor  = 2.0
)

// Flow is the flow arrangement used for the LMTD.
type Flow int

const (
	// CounterCurrent pairs the hot inlet with the cold outlet.
	CounterCurrent Flow = iota
	// CoCurrent pairs the hot inlet with the cold inlet.
	CoCurrent
)

// Exchanger is one sized and priced match.
type Exchanger struct {
	Hot  tq.Segment
	Cold tq.Segment

	Duty float64
	U    float64
	LMTD float64
	Area float64
	Cost float64

	// Known is false when U is undefined for the state pair.
	Known bool

	// Feasible is false when an end approach is zero or negative under the
	// chosen flow arrangement. LMTD, Area and Cost are then zero.
	Feasible bool
}

// Options configures New.
type Options struct {
	Flow Flow
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns counter-current flow.
func DefaultOptions() Options { return Options{Flow: CounterCurrent} }

// WithFlow selects the flow arrangement.
func WithFlow(f Flow) Option {
	return func(o *Options) { o.Flow = f }
}
