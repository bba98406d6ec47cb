package pinch_test

import (
	"testing"

	"github.com/tarao1006/pyheatintegration/pinch"
	"github.com/tarao1006/pyheatintegration/stream"
)

// syntheticStreams builds n hot and n cold liquid streams on staggered
// temperature ranges so that every stream overlaps several others.
func syntheticStreams(b *testing.B, n int) []*stream.Stream {
	out := make([]*stream.Stream, 0, 2*n)
	for i := 0; i < n; i++ {
		f := float64(i)
		out = append(out,
			mustStream(b, 20+f, 120+f, 100+f, stream.WithState(stream.Liquid)),
			mustStream(b, 200+f, 60+f, 120+f, stream.WithState(stream.Liquid)),
		)
	}

	return out
}

func benchmarkNew(b *testing.B, n int) {
	streams := syntheticStreams(b, n)
	bounds, err := pinch.ApproachBounds(streams, false)
	if err != nil {
		b.Fatalf("bounds: %v", err)
	}
	dt := bounds.Finish / 2

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pinch.New(streams, dt); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_Small analyses 10 streams.
func BenchmarkNew_Small(b *testing.B) { benchmarkNew(b, 5) }

// BenchmarkNew_Medium analyses 100 streams.
func BenchmarkNew_Medium(b *testing.B) { benchmarkNew(b, 50) }
