package graph

import "github.com/MeKo-Tech/noisegen/internal/noise"

// source wraps a lattice generator with a frequency multiplier. It bridges
// the graph's float64 coordinates to the generator's float32 lattice space.
type source struct {
	gen       noise.Generator
	frequency float64
	tag       string
}

func (s *source) Evaluate2D(seed int32, x, y float64) float64 {
	fx := float32(x * s.frequency)
	fy := float32(y * s.frequency)
	return float64(s.gen.Single2D(seed, fx, fy))
}

func (s *source) Evaluate3D(seed int32, x, y, z float64) float64 {
	fx := float32(x * s.frequency)
	fy := float32(y * s.frequency)
	fz := float32(z * s.frequency)
	return float64(s.gen.Single3D(seed, fx, fy, fz))
}

func (s *source) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	if !s.gen.Supports4D() {
		panic("graph: 4D evaluation not supported by " + s.tag + " node")
	}
	fx := float32(x * s.frequency)
	fy := float32(y * s.frequency)
	fz := float32(z * s.frequency)
	fw := float32(w * s.frequency)
	return float64(s.gen.Single4D(seed, fx, fy, fz, fw))
}

func (s *source) Supports4D() bool { return s.gen.Supports4D() }

func (s *source) Type() string { return s.tag }

func (s *source) Children() []Node { return nil }

// GetFrequency reports the coordinate multiplier applied before the wrapped
// generator is queried.
func (s *source) GetFrequency() float64 { return s.frequency }

// SimplexNode is a 2D/3D simplex noise source. The smooth variant trades
// sharpness for continuity of higher derivatives.
type SimplexNode struct {
	source
	smooth bool
}

// NewSimplex creates a simplex source at the given frequency.
func NewSimplex(smooth bool, frequency float64) *SimplexNode {
	tag := "Simplex"
	if smooth {
		tag = "SimplexSmooth"
	}
	return &SimplexNode{
		source: source{gen: noise.Simplex{Smooth: smooth}, frequency: frequency, tag: tag},
		smooth: smooth,
	}
}

// Smooth reports whether the smooth kernel variant is used.
func (n *SimplexNode) Smooth() bool { return n.smooth }

// Frequency returns a new node sampling at the given frequency.
func (n *SimplexNode) Frequency(frequency float64) *SimplexNode {
	return NewSimplex(n.smooth, frequency)
}

// PerlinNode is a classic gradient-noise source.
type PerlinNode struct {
	source
}

// NewPerlin creates a Perlin source at the given frequency.
func NewPerlin(frequency float64) *PerlinNode {
	return &PerlinNode{source: source{gen: noise.Perlin{}, frequency: frequency, tag: "Perlin"}}
}

// Frequency returns a new node sampling at the given frequency.
func (n *PerlinNode) Frequency(frequency float64) *PerlinNode {
	return NewPerlin(frequency)
}

// ValueNode is an interpolated lattice-value source.
type ValueNode struct {
	source
	cubic bool
}

// NewValue creates a value-noise source; cubic selects 4-point interpolation.
func NewValue(cubic bool, frequency float64) *ValueNode {
	tag := "Value"
	if cubic {
		tag = "ValueCubic"
	}
	return &ValueNode{
		source: source{gen: noise.Value{Cubic: cubic}, frequency: frequency, tag: tag},
		cubic:  cubic,
	}
}

// Cubic reports whether 4-point interpolation is used.
func (n *ValueNode) Cubic() bool { return n.cubic }

// Frequency returns a new node sampling at the given frequency.
func (n *ValueNode) Frequency(frequency float64) *ValueNode {
	return NewValue(n.cubic, frequency)
}

// CellularNode is a Worley/Voronoi noise source.
type CellularNode struct {
	source
	distanceFunc noise.DistanceFunc
	returnType   noise.ReturnType
	jitter       float64
}

// NewCellular creates a cellular source. A jitter of 1 places feature points
// with full displacement inside their cells; 0 locks them to the lattice.
func NewCellular(df noise.DistanceFunc, rt noise.ReturnType, jitter, frequency float64) *CellularNode {
	gen := noise.Cellular{DistanceFunc: df, ReturnType: rt, Jitter: float32(jitter)}
	return &CellularNode{
		source:       source{gen: gen, frequency: frequency, tag: "Cellular"},
		distanceFunc: df,
		returnType:   rt,
		jitter:       jitter,
	}
}

// DistanceFunc reports the configured distance metric.
func (n *CellularNode) DistanceFunc() noise.DistanceFunc { return n.distanceFunc }

// ReturnType reports the configured return measurement.
func (n *CellularNode) ReturnType() noise.ReturnType { return n.returnType }

// Jitter reports the feature-point displacement modifier.
func (n *CellularNode) Jitter() float64 { return n.jitter }

// Frequency returns a new node sampling at the given frequency.
func (n *CellularNode) Frequency(frequency float64) *CellularNode {
	return NewCellular(n.distanceFunc, n.returnType, n.jitter, frequency)
}

// WithDistanceFunc returns a new node using the given distance metric.
func (n *CellularNode) WithDistanceFunc(df noise.DistanceFunc) *CellularNode {
	return NewCellular(df, n.returnType, n.jitter, n.frequency)
}

// WithReturnType returns a new node emitting the given measurement.
func (n *CellularNode) WithReturnType(rt noise.ReturnType) *CellularNode {
	return NewCellular(n.distanceFunc, rt, n.jitter, n.frequency)
}

// WithJitter returns a new node with the given jitter modifier.
func (n *CellularNode) WithJitter(jitter float64) *CellularNode {
	return NewCellular(n.distanceFunc, n.returnType, jitter, n.frequency)
}

// Simplex4DNode is the only source with genuine 4D support.
type Simplex4DNode struct {
	source
}

// NewSimplex4D creates a 4D simplex source at the given frequency.
func NewSimplex4D(frequency float64) *Simplex4DNode {
	return &Simplex4DNode{source: source{gen: noise.Simplex4D{}, frequency: frequency, tag: "Simplex4D"}}
}

// Frequency returns a new node sampling at the given frequency.
func (n *Simplex4DNode) Frequency(frequency float64) *Simplex4DNode {
	return NewSimplex4D(frequency)
}
