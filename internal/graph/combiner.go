package graph

import "math"

// CombinerNode merges two child outputs with a binary operation.
type CombinerNode struct {
	a, b Node
	op   func(a, b float64) float64
	tag  string
}

func newCombiner(tag string, a, b Node, op func(a, b float64) float64) *CombinerNode {
	mustChildren(tag, a, b)
	return &CombinerNode{a: a, b: b, op: op, tag: tag}
}

// NewAdd creates a node evaluating a + b.
func NewAdd(a, b Node) *CombinerNode {
	return newCombiner("Add", a, b, func(a, b float64) float64 { return a + b })
}

// NewSubtract creates a node evaluating a - b.
func NewSubtract(a, b Node) *CombinerNode {
	return newCombiner("Subtract", a, b, func(a, b float64) float64 { return a - b })
}

// NewMultiply creates a node evaluating a * b.
func NewMultiply(a, b Node) *CombinerNode {
	return newCombiner("Multiply", a, b, func(a, b float64) float64 { return a * b })
}

// NewMin creates a node evaluating min(a, b).
func NewMin(a, b Node) *CombinerNode {
	return newCombiner("Min", a, b, math.Min)
}

// NewMax creates a node evaluating max(a, b).
func NewMax(a, b Node) *CombinerNode {
	return newCombiner("Max", a, b, math.Max)
}

func (n *CombinerNode) Evaluate2D(seed int32, x, y float64) float64 {
	return n.op(n.a.Evaluate2D(seed, x, y), n.b.Evaluate2D(seed, x, y))
}

func (n *CombinerNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return n.op(n.a.Evaluate3D(seed, x, y, z), n.b.Evaluate3D(seed, x, y, z))
}

func (n *CombinerNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return n.op(n.a.Evaluate4D(seed, x, y, z, w), n.b.Evaluate4D(seed, x, y, z, w))
}

func (n *CombinerNode) Supports4D() bool { return all4D(n.a, n.b) }

func (n *CombinerNode) Type() string { return n.tag }

func (n *CombinerNode) Children() []Node { return []Node{n.a, n.b} }

// BlendNode interpolates linearly between two children using a third node as
// the control signal: control 0 yields a, control 1 yields b, and values
// outside [0, 1] extrapolate past either endpoint.
type BlendNode struct {
	a, b    Node
	control Node
}

// NewBlend creates a node evaluating lerp(a, b, control).
func NewBlend(a, b, control Node) *BlendNode {
	mustChildren("Blend", a, b, control)
	return &BlendNode{a: a, b: b, control: control}
}

func (n *BlendNode) Evaluate2D(seed int32, x, y float64) float64 {
	return lerp(n.a.Evaluate2D(seed, x, y), n.b.Evaluate2D(seed, x, y), n.control.Evaluate2D(seed, x, y))
}

func (n *BlendNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return lerp(n.a.Evaluate3D(seed, x, y, z), n.b.Evaluate3D(seed, x, y, z), n.control.Evaluate3D(seed, x, y, z))
}

func (n *BlendNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return lerp(n.a.Evaluate4D(seed, x, y, z, w), n.b.Evaluate4D(seed, x, y, z, w), n.control.Evaluate4D(seed, x, y, z, w))
}

func (n *BlendNode) Supports4D() bool { return all4D(n.a, n.b, n.control) }

func (n *BlendNode) Type() string { return "Blend" }

func (n *BlendNode) Children() []Node { return []Node{n.a, n.b, n.control} }
