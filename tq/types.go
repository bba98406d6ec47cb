package tq

import (
	"errors"

	"github.com/tarao1006/pyheatintegration/line"
	"github.com/tarao1006/pyheatintegration/stream"
)

// ErrEmptyClass indicates that the hot or cold family has nothing to draw.
var ErrEmptyClass = errors.New("tq: no stream with a heat load in one class")

// Segment is one piece of a TQ curve tagged with the stream it belongs to.
// Composite segments carry an empty StreamID.
type Segment struct {
	Line              line.Segment
	StreamID          string
	State             stream.State
	ReboilerOrReactor bool
}

// Curves is the output of Build.
type Curves struct {
	Hot           []Segment
	Cold          []Segment
	HotSeparated  []Segment
	ColdSeparated []Segment

	// Shift is the heat offset applied to the cold family.
	Shift float64
}

// Breakpoint reports the approach between the two envelopes at one grid point.
type Breakpoint struct {
	Heat            float64
	HotTemperature  float64
	ColdTemperature float64
	Gap             float64
	Pinch           bool
}

// Match pairs the hot and cold piece of one heat exchanger.
type Match struct {
	Hot  Segment
	Cold Segment
}

// Merged is the output of Merge.
type Merged struct {
	Hot     []Segment
	Cold    []Segment
	Matches []Match
}

// Lines strips the stream tags from segs.
func Lines(segs []Segment) []line.Segment {
	out := make([]line.Segment, len(segs))
	for i, s := range segs {
		out[i] = s.Line
	}

	return out
}
