package graph

import (
	"github.com/MeKo-Tech/noisegen/internal/noise"
	"github.com/MeKo-Tech/noisegen/internal/transform"
)

// DefaultSeed is used when a Graph is created without an explicit seed.
const DefaultSeed int32 = 1337

// Graph is a convenience factory for assembling noise graphs. It holds a
// default seed for evaluation helpers; the nodes it creates never store it.
type Graph struct {
	seed int32
}

// New creates a factory with the given default seed.
func New(seed int32) *Graph {
	return &Graph{seed: seed}
}

// NewDefault creates a factory with DefaultSeed.
func NewDefault() *Graph {
	return New(DefaultSeed)
}

// Seed reports the factory's default seed.
func (g *Graph) Seed() int32 { return g.seed }

// Evaluate2D evaluates node at (x, y) with the factory's default seed.
func (g *Graph) Evaluate2D(node Node, x, y float64) float64 {
	return node.Evaluate2D(g.seed, x, y)
}

// Evaluate3D evaluates node at (x, y, z) with the factory's default seed.
func (g *Graph) Evaluate3D(node Node, x, y, z float64) float64 {
	return node.Evaluate3D(g.seed, x, y, z)
}

// Evaluate4D evaluates node at (x, y, z, w) with the factory's default seed.
func (g *Graph) Evaluate4D(node Node, x, y, z, w float64) float64 {
	return node.Evaluate4D(g.seed, x, y, z, w)
}

// Constant creates a fixed-value node.
func (g *Graph) Constant(value float64) *ConstantNode { return NewConstant(value) }

// Simplex creates a simplex source at frequency 1.
func (g *Graph) Simplex() *SimplexNode { return NewSimplex(false, 1) }

// SimplexSmooth creates a smooth-variant simplex source at frequency 1.
func (g *Graph) SimplexSmooth() *SimplexNode { return NewSimplex(true, 1) }

// Perlin creates a Perlin source at frequency 1.
func (g *Graph) Perlin() *PerlinNode { return NewPerlin(1) }

// Value creates a value-noise source at frequency 1.
func (g *Graph) Value() *ValueNode { return NewValue(false, 1) }

// ValueCubic creates a cubic value-noise source at frequency 1.
func (g *Graph) ValueCubic() *ValueNode { return NewValue(true, 1) }

// Cellular creates a cellular source with euclidean-squared distance,
// distance return, and full jitter.
func (g *Graph) Cellular() *CellularNode {
	return NewCellular(noise.EuclideanSq, noise.Distance, 1, 1)
}

// CellularWith creates a cellular source with explicit settings.
func (g *Graph) CellularWith(df noise.DistanceFunc, rt noise.ReturnType, jitter float64) *CellularNode {
	return NewCellular(df, rt, jitter, 1)
}

// Simplex4D creates the 4D-capable simplex source at frequency 1.
func (g *Graph) Simplex4D() *Simplex4DNode { return NewSimplex4D(1) }

// FBm creates a fractional Brownian motion node with default lacunarity
// and gain.
func (g *Graph) FBm(child Node, octaves int) *FBmNode {
	return NewFBm(child, octaves, DefaultLacunarity, DefaultGain)
}

// FBmWith creates a fractional Brownian motion node with explicit parameters.
func (g *Graph) FBmWith(child Node, octaves int, lacunarity, gain float64) *FBmNode {
	return NewFBm(child, octaves, lacunarity, gain)
}

// Ridged creates a ridged multifractal node with default parameters.
func (g *Graph) Ridged(child Node, octaves int) *RidgedNode {
	return NewRidged(child, octaves, DefaultLacunarity, DefaultGain, 0)
}

// RidgedWith creates a ridged multifractal node with explicit parameters.
func (g *Graph) RidgedWith(child Node, octaves int, lacunarity, gain, weightedStrength float64) *RidgedNode {
	return NewRidged(child, octaves, lacunarity, gain, weightedStrength)
}

// Billow creates a billow fractal node with default parameters.
func (g *Graph) Billow(child Node, octaves int) *BillowNode {
	return NewBillow(child, octaves, DefaultLacunarity, DefaultGain, 0)
}

// BillowWith creates a billow fractal node with explicit parameters.
func (g *Graph) BillowWith(child Node, octaves int, lacunarity, gain, weightedStrength float64) *BillowNode {
	return NewBillow(child, octaves, lacunarity, gain, weightedStrength)
}

// HybridMulti creates a hybrid multifractal node with default parameters.
func (g *Graph) HybridMulti(child Node, octaves int) *HybridMultiNode {
	return NewHybridMulti(child, octaves, DefaultLacunarity, DefaultGain)
}

// HybridMultiWith creates a hybrid multifractal node with explicit parameters.
func (g *Graph) HybridMultiWith(child Node, octaves int, lacunarity, gain float64) *HybridMultiNode {
	return NewHybridMulti(child, octaves, lacunarity, gain)
}

// Add creates a node evaluating a + b.
func (g *Graph) Add(a, b Node) *CombinerNode { return NewAdd(a, b) }

// Subtract creates a node evaluating a - b.
func (g *Graph) Subtract(a, b Node) *CombinerNode { return NewSubtract(a, b) }

// Multiply creates a node evaluating a * b.
func (g *Graph) Multiply(a, b Node) *CombinerNode { return NewMultiply(a, b) }

// Min creates a node evaluating min(a, b).
func (g *Graph) Min(a, b Node) *CombinerNode { return NewMin(a, b) }

// Max creates a node evaluating max(a, b).
func (g *Graph) Max(a, b Node) *CombinerNode { return NewMax(a, b) }

// Blend creates a node interpolating between a and b with control's output.
func (g *Graph) Blend(a, b, control Node) *BlendNode { return NewBlend(a, b, control) }

// Scale creates a node sampling child at coordinates scaled by factor.
func (g *Graph) Scale(child Node, factor float64) *DomainScaleNode {
	return NewDomainScale(child, factor)
}

// Offset creates a node sampling child at shifted coordinates.
func (g *Graph) Offset(child Node, dx, dy, dz float64) *DomainOffsetNode {
	return NewDomainOffset(child, dx, dy, dz)
}

// Clamp creates a node bounding child output to [min, max].
func (g *Graph) Clamp(child Node, min, max float64) *ClampNode {
	return NewClamp(child, min, max)
}

// Abs creates a node evaluating |child|.
func (g *Graph) Abs(child Node) *AbsoluteNode { return NewAbsolute(child) }

// Invert creates a node evaluating -child.
func (g *Graph) Invert(child Node) *InvertNode { return NewInvert(child) }

// Transform creates a node piping child output through tr.
func (g *Graph) Transform(child Node, tr transform.Transform) *TransformNode {
	return NewTransform(child, tr)
}

// Warp creates a node sampling child at coordinates displaced by warp's
// output scaled by amplitude.
func (g *Graph) Warp(child, warp Node, amplitude float64) *DomainWarpNode {
	return NewDomainWarp(child, warp, amplitude)
}
