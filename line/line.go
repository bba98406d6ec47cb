package line

import (
	"errors"
	"fmt"

	"github.com/tarao1006/pyheatintegration/interval"
)

// ErrNoLines is returned by YRange for an empty input.
var ErrNoLines = errors.New("line: no line segments")

// Point is one (heat, temperature) coordinate.
type Point struct {
	Heat        float64
	Temperature float64
}

// Segment is a straight piece of a TQ or grand composite curve.
type Segment struct {
	From Point
	To   Point
}

// NewSegment returns the segment between a and b ordered by heat.
func NewSegment(a, b Point) Segment {
	if b.Heat < a.Heat {
		a, b = b, a
	}

	return Segment{From: a, To: b}
}

// HeatSpan returns the heat coordinate range covered by s.
func (s Segment) HeatSpan() interval.Range {
	return interval.New(s.From.Heat, s.To.Heat)
}

// TemperatureSpan returns the temperature range covered by s.
func (s Segment) TemperatureSpan() interval.Range {
	return interval.New(s.From.Temperature, s.To.Temperature)
}

// Duty returns the heat exchanged along s.
func (s Segment) Duty() float64 { return s.To.Heat - s.From.Heat }

// TemperatureAt linearly interpolates the temperature at heat q. For a
// vertical segment the From temperature is returned.
func (s Segment) TemperatureAt(q float64) float64 {
	dq := s.To.Heat - s.From.Heat
	if interval.ApproxEqual(dq, 0) {
		return s.From.Temperature
	}

	return s.From.Temperature + (s.To.Temperature-s.From.Temperature)*(q-s.From.Heat)/dq
}

// String implements fmt.Stringer.
func (s Segment) String() string {
	return fmt.Sprintf("(%g, %g)-(%g, %g)", s.From.Heat, s.From.Temperature, s.To.Heat, s.To.Temperature)
}
