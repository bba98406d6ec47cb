package stream

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tarao1006/pyheatintegration/interval"
)

// Stream is an immutable process or utility stream.
type Stream struct {
	id                string
	input             float64
	output            float64
	heatLoad          float64
	typ               Type
	state             State
	cost              float64
	reboilerOrReactor bool
}

// New validates the arguments and returns a Stream with its type resolved.
//
// Validation order:
//  1. finiteness of temperatures, load and cost
//  2. known Type and State values
//  3. Auto resolution (ErrAmbiguousType on equal temperatures)
//  4. temperature order against the class
//  5. heat load rules (positive for process, zero for external)
//  6. cost rules and state/class compatibility
func New(input, output, heatLoad float64, opts ...Option) (*Stream, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	for _, v := range []float64{input, output, heatLoad, o.Cost} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinite
		}
	}
	if o.Type < Auto || o.Type > ExternalHot {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, int(o.Type))
	}
	if o.State < Unknown || o.State > LiquidEvaporation {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(o.State))
	}

	typ := o.Type
	if typ == Auto {
		switch {
		case input < output:
			typ = Cold
		case input > output:
			typ = Hot
		default:
			return nil, fmt.Errorf("%w: input and output are both %g", ErrAmbiguousType, input)
		}
	}

	s := &Stream{
		id:                o.ID,
		input:             input,
		output:            output,
		heatLoad:          heatLoad,
		typ:               typ,
		state:             o.State,
		cost:              o.Cost,
		reboilerOrReactor: o.ReboilerOrReactor,
	}

	if s.IsCold() && input > output {
		return nil, fmt.Errorf("%w: %s stream from %g to %g", ErrTemperatureOrder, typ, input, output)
	}
	if s.IsHot() && input < output {
		return nil, fmt.Errorf("%w: %s stream from %g to %g", ErrTemperatureOrder, typ, input, output)
	}
	if heatLoad < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeHeatLoad, heatLoad)
	}
	if s.IsInternal() && heatLoad == 0 {
		return nil, ErrZeroHeatLoad
	}
	if s.IsExternal() && heatLoad != 0 {
		return nil, fmt.Errorf("%w: got %g", ErrExternalHeatLoad, heatLoad)
	}
	if o.Cost < 0 || (s.IsInternal() && o.Cost != 0) {
		return nil, fmt.Errorf("%w: %g on %s stream", ErrInvalidCost, o.Cost, typ)
	}
	if (s.IsHot() && o.State == LiquidEvaporation) || (s.IsCold() && o.State == GasCondensation) {
		return nil, fmt.Errorf("%w: %s stream cannot be %s", ErrStateMismatch, typ, o.State)
	}

	if s.id == "" {
		s.id = uuid.NewString()
	}

	return s, nil
}

// ID returns the stream identifier.
func (s *Stream) ID() string { return s.id }

// InputTemperature returns the inlet temperature in °C.
func (s *Stream) InputTemperature() float64 { return s.input }

// OutputTemperature returns the outlet temperature in °C.
func (s *Stream) OutputTemperature() float64 { return s.output }

// HeatLoad returns the duty in W. Zero for an unresolved external stream.
func (s *Stream) HeatLoad() float64 { return s.heatLoad }

// Type returns the resolved class; never Auto.
func (s *Stream) Type() Type { return s.typ }

// State returns the phase behaviour.
func (s *Stream) State() State { return s.state }

// Cost returns the utility cost per unit of heat.
func (s *Stream) Cost() float64 { return s.cost }

// ReboilerOrReactor reports whether the stream is a reboiler or reactor duty.
func (s *Stream) ReboilerOrReactor() bool { return s.reboilerOrReactor }

// IsHot reports whether the stream releases heat.
func (s *Stream) IsHot() bool { return s.typ == Hot || s.typ == ExternalHot }

// IsCold reports whether the stream absorbs heat.
func (s *Stream) IsCold() bool { return !s.IsHot() }

// IsExternal reports whether the stream is a utility.
func (s *Stream) IsExternal() bool { return s.typ == ExternalHot || s.typ == ExternalCold }

// IsInternal reports whether the stream is a process stream.
func (s *Stream) IsInternal() bool { return !s.IsExternal() }

// IsIsothermal reports whether input and output temperatures coincide.
func (s *Stream) IsIsothermal() bool { return interval.ApproxEqual(s.input, s.output) }

// Range returns the actual temperature range of the stream.
func (s *Stream) Range() interval.Range { return interval.New(s.input, s.output) }

// WithHeatLoad returns a copy of s carrying load q. The receiver is unchanged.
func (s *Stream) WithHeatLoad(q float64) *Stream {
	cp := *s
	cp.heatLoad = q

	return &cp
}

// String implements fmt.Stringer.
func (s *Stream) String() string {
	return fmt.Sprintf("%s %s: %g -> %g °C, %g W", s.typ, s.id, s.input, s.output, s.heatLoad)
}
