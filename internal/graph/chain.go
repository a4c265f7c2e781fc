package graph

import "github.com/MeKo-Tech/noisegen/internal/transform"

// Chain is a fluent wrapper for composing graphs. Every method constructs a
// fresh wrapping node and returns a new Chain; the wrapped node is never
// mutated and remains independently usable. Chain keeps the fluent surface
// out of the node types themselves so node kinds stay ignorant of their
// siblings.
type Chain struct {
	Node
}

// From starts a chain at the given node.
func From(node Node) Chain {
	mustChildren("Chain", node)
	return Chain{Node: node}
}

// Add sums this chain's node with other.
func (c Chain) Add(other Node) Chain { return Chain{Node: NewAdd(c.Node, other)} }

// Subtract subtracts other from this chain's node.
func (c Chain) Subtract(other Node) Chain { return Chain{Node: NewSubtract(c.Node, other)} }

// Multiply multiplies this chain's node with other.
func (c Chain) Multiply(other Node) Chain { return Chain{Node: NewMultiply(c.Node, other)} }

// MultiplyBy scales the output by a constant factor.
func (c Chain) MultiplyBy(factor float64) Chain {
	return Chain{Node: NewMultiply(c.Node, NewConstant(factor))}
}

// Min takes the pointwise minimum with other.
func (c Chain) Min(other Node) Chain { return Chain{Node: NewMin(c.Node, other)} }

// Max takes the pointwise maximum with other.
func (c Chain) Max(other Node) Chain { return Chain{Node: NewMax(c.Node, other)} }

// Blend interpolates toward other using control's output.
func (c Chain) Blend(other, control Node) Chain {
	return Chain{Node: NewBlend(c.Node, other, control)}
}

// Scale multiplies the input coordinates by factor.
func (c Chain) Scale(factor float64) Chain { return Chain{Node: NewDomainScale(c.Node, factor)} }

// Offset shifts the input coordinates.
func (c Chain) Offset(dx, dy, dz float64) Chain {
	return Chain{Node: NewDomainOffset(c.Node, dx, dy, dz)}
}

// Clamp bounds the output to [min, max].
func (c Chain) Clamp(min, max float64) Chain { return Chain{Node: NewClamp(c.Node, min, max)} }

// Abs takes the output's magnitude.
func (c Chain) Abs() Chain { return Chain{Node: NewAbsolute(c.Node)} }

// Invert negates the output.
func (c Chain) Invert() Chain { return Chain{Node: NewInvert(c.Node)} }

// Transform pipes the output through a value transform.
func (c Chain) Transform(tr transform.Transform) Chain {
	return Chain{Node: NewTransform(c.Node, tr)}
}

// Warp distorts the input coordinates with warp's output.
func (c Chain) Warp(warp Node, amplitude float64) Chain {
	return Chain{Node: NewDomainWarp(c.Node, warp, amplitude)}
}

// FBm wraps the node in a fractional Brownian motion fractal.
func (c Chain) FBm(octaves int) Chain {
	return Chain{Node: NewFBm(c.Node, octaves, DefaultLacunarity, DefaultGain)}
}

// Ridged wraps the node in a ridged multifractal.
func (c Chain) Ridged(octaves int) Chain {
	return Chain{Node: NewRidged(c.Node, octaves, DefaultLacunarity, DefaultGain, 0)}
}

// Billow wraps the node in a billow fractal.
func (c Chain) Billow(octaves int) Chain {
	return Chain{Node: NewBillow(c.Node, octaves, DefaultLacunarity, DefaultGain, 0)}
}

// HybridMulti wraps the node in a hybrid multifractal.
func (c Chain) HybridMulti(octaves int) Chain {
	return Chain{Node: NewHybridMulti(c.Node, octaves, DefaultLacunarity, DefaultGain)}
}
