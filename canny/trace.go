package canny

import (
	"fmt"

	"github.com/katalvlaran/lvimg/gridgraph"
	"github.com/katalvlaran/lvimg/raster"
)

// Classify labels each pixel of a suppressed plane:
// m ≥ high → Strong, low ≤ m < high → Weak, otherwise NonEdge.
// A magnitude of exactly 0 (suppressed or flat) is always NonEdge, so
// low = 0 does not promote background.
//
// Errors: ErrEmptyInput, ErrInvalidParameter (negative, non-finite, low > high).
func Classify(suppressed *raster.Plane, low, high float64) (*LabelMap, error) {
	if suppressed.Empty() {
		return nil, fmt.Errorf("canny.Classify: %w", ErrEmptyInput)
	}
	if err := validateThresholds(low, high); err != nil {
		return nil, fmt.Errorf("canny.Classify: %w", err)
	}

	labels := make([]Label, suppressed.Len())
	for i, m := range suppressed.Pix() {
		switch {
		case m <= 0:
		case m >= high:
			labels[i] = Strong
		case m >= low:
			labels[i] = Weak
		}
	}

	return &LabelMap{width: suppressed.Width(), height: suppressed.Height(), labels: labels}, nil
}

// Trace runs Classify and then hysteresis tracing; see LabelMap.Trace.
func Trace(suppressed *raster.Plane, low, high float64) (*EdgeMap, error) {
	labels, err := Classify(suppressed, low, high)
	if err != nil {
		return nil, fmt.Errorf("canny.Trace: %w", err)
	}

	return labels.Trace()
}

// Trace collapses labels into a binary map. Every Strong pixel is an edge;
// a Weak pixel is an edge iff an 8-connected chain of Weak pixels links it
// to some Strong pixel. The walk is a single multi-source BFS seeded with
// all Strong pixels at once, visiting each pixel at most once.
func (m *LabelMap) Trace() (*EdgeMap, error) {
	gg, err := gridgraph.NewGridGraph(m.width, m.height, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil, fmt.Errorf("canny.Trace: %w", ErrEmptyInput)
	}

	var seeds []int
	for i, l := range m.labels {
		if l == Strong {
			seeds = append(seeds, i)
		}
	}
	edges, err := gg.Flood(seeds, func(i int) bool { return m.labels[i] == Weak })
	if err != nil {
		return nil, fmt.Errorf("canny.Trace: %w", err)
	}

	return &EdgeMap{width: m.width, height: m.height, edges: edges}, nil
}
