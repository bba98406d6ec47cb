package stream

import (
	"errors"
	"fmt"
)

// Sentinel errors for stream construction.
var (
	// ErrNonFinite indicates a NaN or infinite temperature, heat load or cost.
	ErrNonFinite = errors.New("stream: non-finite value")

	// ErrNegativeHeatLoad indicates a heat load below zero.
	ErrNegativeHeatLoad = errors.New("stream: negative heat load")

	// ErrAmbiguousType indicates an Auto stream with equal input and output temperature.
	ErrAmbiguousType = errors.New("stream: cannot infer type of isothermal stream")

	// ErrTemperatureOrder indicates temperatures that contradict the stream class.
	ErrTemperatureOrder = errors.New("stream: temperatures contradict stream type")

	// ErrZeroHeatLoad indicates a process stream without duty.
	ErrZeroHeatLoad = errors.New("stream: process stream requires a positive heat load")

	// ErrExternalHeatLoad indicates an external stream declared with a load.
	ErrExternalHeatLoad = errors.New("stream: external stream heat load must be zero")

	// ErrInvalidCost indicates a negative cost or a cost on a process stream.
	ErrInvalidCost = errors.New("stream: invalid cost")

	// ErrStateMismatch indicates a phase change that contradicts the stream class.
	ErrStateMismatch = errors.New("stream: state contradicts stream type")

	// ErrUnknownType indicates a Type value outside the enumeration.
	ErrUnknownType = errors.New("stream: unknown type")

	// ErrUnknownState indicates a State value outside the enumeration.
	ErrUnknownState = errors.New("stream: unknown state")
)

// Type is the class of a stream.
type Type int

const (
	// Auto is resolved to Cold or Hot from the temperatures.
	Auto Type = iota
	// Cold is a process stream to be heated.
	Cold
	// Hot is a process stream to be cooled.
	Hot
	// ExternalCold is a cold utility.
	ExternalCold
	// ExternalHot is a hot utility.
	ExternalHot
)

var typeNames = [...]string{
	Auto:         "auto",
	Cold:         "cold",
	Hot:          "hot",
	ExternalCold: "external_cold",
	ExternalHot:  "external_hot",
}

// String implements fmt.Stringer.
func (t Type) String() string {
	if t < Auto || t > ExternalHot {
		return fmt.Sprintf("Type(%d)", int(t))
	}

	return typeNames[t]
}

// State describes the phase behaviour of a stream across the exchanger.
type State int

const (
	// Unknown leaves the heat transfer coefficient undetermined.
	Unknown State = iota
	// Gas is single-phase vapour.
	Gas
	// Liquid is single-phase liquid.
	Liquid
	// GasCondensation is condensing vapour; only valid on hot streams.
	GasCondensation
	// LiquidEvaporation is boiling liquid; only valid on cold streams.
	LiquidEvaporation
)

var stateNames = [...]string{
	Unknown:           "unknown",
	Gas:               "gas",
	Liquid:            "liquid",
	GasCondensation:   "gas_condensation",
	LiquidEvaporation: "liquid_evaporation",
}

// String implements fmt.Stringer.
func (s State) String() string {
	if s < Unknown || s > LiquidEvaporation {
		return fmt.Sprintf("State(%d)", int(s))
	}

	return stateNames[s]
}

// Options configures New.
type Options struct {
	ID                string
	Type              Type
	State             State
	Cost              float64
	ReboilerOrReactor bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Auto type, Unknown state, zero cost and no ID.
func DefaultOptions() Options {
	return Options{Type: Auto, State: Unknown}
}

// WithID sets the stream identifier.
func WithID(id string) Option {
	return func(o *Options) { o.ID = id }
}

// WithType sets the stream class.
func WithType(t Type) Option {
	return func(o *Options) { o.Type = t }
}

// WithState sets the phase behaviour.
func WithState(s State) Option {
	return func(o *Options) { o.State = s }
}

// WithCost sets the utility cost. Only external streams may carry one.
func WithCost(c float64) Option {
	return func(o *Options) { o.Cost = c }
}

// WithReboilerOrReactor marks the stream as a reboiler or reactor duty.
func WithReboilerOrReactor() Option {
	return func(o *Options) { o.ReboilerOrReactor = true }
}
