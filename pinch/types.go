package pinch

import (
	"errors"

	"go.uber.org/zap"

	"github.com/tarao1006/pyheatintegration/exchanger"
)

// Sentinel errors.
var (
	// ErrValidation is wrapped by every input validation failure.
	ErrValidation = errors.New("pinch: validation failed")

	// ErrNilStream indicates a nil entry in the stream list.
	ErrNilStream = errors.New("pinch: nil stream")

	// ErrDuplicateStreamID indicates two streams sharing one ID.
	ErrDuplicateStreamID = errors.New("pinch: duplicate stream id")

	// ErrMissingStreamClass indicates that there is no hot or no cold stream.
	ErrMissingStreamClass = errors.New("pinch: missing hot or cold stream")

	// ErrInfeasibleStreamRange indicates hot temperatures that cannot cover
	// the cold ones at either end.
	ErrInfeasibleStreamRange = errors.New("pinch: infeasible stream temperature range")

	// ErrInvalidApproachTemperature indicates ΔTmin outside (0, bound].
	ErrInvalidApproachTemperature = errors.New("pinch: invalid minimum approach temperature difference")
)

// Options configures New.
type Options struct {
	// IgnoreMaximum skips the temperature range check and widens the ΔTmin bound.
	IgnoreMaximum bool

	// Flow is the flow arrangement used to size exchangers.
	Flow exchanger.Flow

	// Logger receives a debug summary of the analysis. Nil means no logging.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns strict range checks, counter-current exchangers
// and a no-op logger.
func DefaultOptions() Options {
	return Options{Flow: exchanger.CounterCurrent, Logger: zap.NewNop()}
}

// WithIgnoreMaximum relaxes the stream temperature range check.
func WithIgnoreMaximum() Option {
	return func(o *Options) { o.IgnoreMaximum = true }
}

// WithFlow sets the exchanger flow arrangement.
func WithFlow(f exchanger.Flow) Option {
	return func(o *Options) { o.Flow = f }
}

// WithLogger sets the logger used for the construction summary.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
