package canny

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvimg/gridgraph"
	"github.com/katalvlaran/lvimg/raster"
)

// Sector is a gradient direction quantized to 45° steps in [0°, 180°).
type Sector uint8

const (
	Sector0   Sector = iota // horizontal gradient: compare left/right
	Sector45                // compare (x+1,y+1) and (x-1,y-1)
	Sector90                // vertical gradient: compare up/down
	Sector135               // compare (x-1,y+1) and (x+1,y-1)
)

// Degrees returns 0, 45, 90 or 135.
func (s Sector) Degrees() int { return int(s) * 45 }

// neighbours returns the two (dx,dy) offsets along the sector.
func (s Sector) neighbours() (dx1, dy1, dx2, dy2 int) {
	switch s {
	case Sector45:
		return 1, 1, -1, -1
	case Sector90:
		return 0, 1, 0, -1
	case Sector135:
		return -1, 1, 1, -1
	default:
		return 1, 0, -1, 0
	}
}

// Label is the hysteresis class of a pixel.
type Label uint8

const (
	NonEdge Label = iota
	Weak
	Strong
)

func (l Label) String() string {
	switch l {
	case Weak:
		return "weak"
	case Strong:
		return "strong"
	default:
		return "non-edge"
	}
}

// GradientField holds co-indexed gradient magnitude and quantized direction.
// Direction[i] belongs to Magnitude.Pix()[i].
type GradientField struct {
	Magnitude *raster.Plane
	Direction []Sector
}

// Width returns the field width.
func (g *GradientField) Width() int { return g.Magnitude.Width() }

// Height returns the field height.
func (g *GradientField) Height() int { return g.Magnitude.Height() }

// validate checks that g is usable by Suppress.
func (g *GradientField) validate() error {
	if g == nil || g.Magnitude.Empty() {
		return ErrEmptyInput
	}
	if len(g.Direction) != g.Magnitude.Len() {
		return fmt.Errorf("direction len %d, magnitude len %d: %w",
			len(g.Direction), g.Magnitude.Len(), ErrDimensionMismatch)
	}

	return nil
}

// LabelMap is the per-pixel output of Classify.
type LabelMap struct {
	width, height int
	labels        []Label
}

// Width returns the map width.
func (m *LabelMap) Width() int { return m.width }

// Height returns the map height.
func (m *LabelMap) Height() int { return m.height }

// At returns the label at (x,y); out-of-range coordinates read NonEdge.
func (m *LabelMap) At(x, y int) Label {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return NonEdge
	}
	return m.labels[y*m.width+x]
}

// Count returns how many pixels carry label l.
func (m *LabelMap) Count(l Label) int {
	n := 0
	for _, v := range m.labels {
		if v == l {
			n++
		}
	}
	return n
}

// EdgeMap is the binary detector output.
type EdgeMap struct {
	width, height int
	edges         []bool
}

// NewEdgeMap wraps a row-major []bool of width*height cells, copying it.
func NewEdgeMap(width, height int, edges []bool) (*EdgeMap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyInput
	}
	if len(edges) != width*height {
		return nil, fmt.Errorf("NewEdgeMap: len %d for %dx%d: %w", len(edges), width, height, ErrDimensionMismatch)
	}
	return &EdgeMap{width: width, height: height, edges: append([]bool(nil), edges...)}, nil
}

// Width returns the map width.
func (m *EdgeMap) Width() int { return m.width }

// Height returns the map height.
func (m *EdgeMap) Height() int { return m.height }

// At reports whether (x,y) is an edge pixel. Out-of-range reads false.
func (m *EdgeMap) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.edges[y*m.width+x]
}

// Pix returns the row-major edge flags (aliases the map).
func (m *EdgeMap) Pix() []bool { return m.edges }

// Count returns the number of edge pixels.
func (m *EdgeMap) Count() int {
	n := 0
	for _, e := range m.edges {
		if e {
			n++
		}
	}
	return n
}

// Equal reports whether both maps have the same size and edge pixels.
func (m *EdgeMap) Equal(o *EdgeMap) bool {
	if m == nil || o == nil || m.width != o.width || m.height != o.height {
		return false
	}
	for i, e := range m.edges {
		if o.edges[i] != e {
			return false
		}
	}
	return true
}

// Segments returns the 8-connected edge chains, each as row-major indices.
func (m *EdgeMap) Segments() [][]int {
	gg, err := gridgraph.NewGridGraph(m.width, m.height, gridgraph.GridOptions{Conn: gridgraph.Conn8})
	if err != nil {
		return nil
	}
	return gg.ConnectedComponents(func(i int) bool { return m.edges[i] })
}

// String renders edges as '#' and background as '.', one row per line.
func (m *EdgeMap) String() string {
	var sb strings.Builder
	for y := range m.height {
		for x := range m.width {
			if m.edges[y*m.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Options are the numeric parameters of the detector.
type Options struct {
	// Sigma is the Gaussian standard deviation; must be > 0.
	Sigma float64
	// Low and High are the hysteresis thresholds; 0 ≤ Low ≤ High.
	Low, High float64
}

// Defaults used by DefaultOptions.
const (
	DefaultSigma = 1.0
	DefaultLow   = 31
	DefaultHigh  = 91
)

// DefaultOptions returns Sigma=1, Low=31, High=91 (thresholds on the
// 0–255 intensity scale).
func DefaultOptions() Options {
	return Options{Sigma: DefaultSigma, Low: DefaultLow, High: DefaultHigh}
}

// Validate returns ErrInvalidParameter if any field is out of domain.
func (o Options) Validate() error {
	if err := validateSigma(o.Sigma); err != nil {
		return err
	}
	return validateThresholds(o.Low, o.High)
}

func validateSigma(sigma float64) error {
	if !finite(sigma) || sigma <= 0 {
		return fmt.Errorf("sigma=%v must be finite and > 0: %w", sigma, ErrInvalidParameter)
	}
	return nil
}

func validateThresholds(low, high float64) error {
	switch {
	case !finite(low) || !finite(high):
		return fmt.Errorf("thresholds (%v, %v) must be finite: %w", low, high, ErrInvalidParameter)
	case low < 0:
		return fmt.Errorf("low=%v must be ≥ 0: %w", low, ErrInvalidParameter)
	case low > high:
		return fmt.Errorf("low=%v > high=%v: %w", low, high, ErrInvalidParameter)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
