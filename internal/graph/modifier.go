package graph

import (
	"math"

	"github.com/MeKo-Tech/noisegen/internal/transform"
)

// DomainScaleNode multiplies every input coordinate by a factor before
// delegating, zooming the child's pattern in or out.
type DomainScaleNode struct {
	child Node
	scale float64
}

// NewDomainScale creates a node sampling child at coordinates scaled by scale.
func NewDomainScale(child Node, scale float64) *DomainScaleNode {
	mustChildren("DomainScale", child)
	return &DomainScaleNode{child: child, scale: scale}
}

// Scale reports the coordinate multiplier.
func (n *DomainScaleNode) Scale() float64 { return n.scale }

func (n *DomainScaleNode) Evaluate2D(seed int32, x, y float64) float64 {
	return n.child.Evaluate2D(seed, x*n.scale, y*n.scale)
}

func (n *DomainScaleNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return n.child.Evaluate3D(seed, x*n.scale, y*n.scale, z*n.scale)
}

func (n *DomainScaleNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return n.child.Evaluate4D(seed, x*n.scale, y*n.scale, z*n.scale, w*n.scale)
}

func (n *DomainScaleNode) Supports4D() bool { return n.child.Supports4D() }

func (n *DomainScaleNode) Type() string { return "DomainScale" }

func (n *DomainScaleNode) Children() []Node { return []Node{n.child} }

// DomainOffsetNode shifts the input coordinates by a fixed per-axis offset
// before delegating.
type DomainOffsetNode struct {
	child                              Node
	offsetX, offsetY, offsetZ, offsetW float64
}

// NewDomainOffset creates a node sampling child at shifted 2D/3D coordinates.
func NewDomainOffset(child Node, offsetX, offsetY, offsetZ float64) *DomainOffsetNode {
	return NewDomainOffset4D(child, offsetX, offsetY, offsetZ, 0)
}

// NewDomainOffset4D creates a node shifting all four coordinate axes.
func NewDomainOffset4D(child Node, offsetX, offsetY, offsetZ, offsetW float64) *DomainOffsetNode {
	mustChildren("DomainOffset", child)
	return &DomainOffsetNode{child: child, offsetX: offsetX, offsetY: offsetY, offsetZ: offsetZ, offsetW: offsetW}
}

func (n *DomainOffsetNode) Evaluate2D(seed int32, x, y float64) float64 {
	return n.child.Evaluate2D(seed, x+n.offsetX, y+n.offsetY)
}

func (n *DomainOffsetNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return n.child.Evaluate3D(seed, x+n.offsetX, y+n.offsetY, z+n.offsetZ)
}

func (n *DomainOffsetNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return n.child.Evaluate4D(seed, x+n.offsetX, y+n.offsetY, z+n.offsetZ, w+n.offsetW)
}

func (n *DomainOffsetNode) Supports4D() bool { return n.child.Supports4D() }

func (n *DomainOffsetNode) Type() string { return "DomainOffset" }

func (n *DomainOffsetNode) Children() []Node { return []Node{n.child} }

// ClampNode bounds the child's output to [min, max].
type ClampNode struct {
	child    Node
	min, max float64
}

// NewClamp creates a node clamping child output; panics when min > max.
func NewClamp(child Node, min, max float64) *ClampNode {
	mustChildren("Clamp", child)
	if min > max {
		panic("graph: Clamp node requires min <= max")
	}
	return &ClampNode{child: child, min: min, max: max}
}

// Min reports the lower bound.
func (n *ClampNode) Min() float64 { return n.min }

// Max reports the upper bound.
func (n *ClampNode) Max() float64 { return n.max }

func (n *ClampNode) clamp(v float64) float64 {
	if v < n.min {
		return n.min
	}
	if v > n.max {
		return n.max
	}
	return v
}

func (n *ClampNode) Evaluate2D(seed int32, x, y float64) float64 {
	return n.clamp(n.child.Evaluate2D(seed, x, y))
}

func (n *ClampNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return n.clamp(n.child.Evaluate3D(seed, x, y, z))
}

func (n *ClampNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return n.clamp(n.child.Evaluate4D(seed, x, y, z, w))
}

func (n *ClampNode) Supports4D() bool { return n.child.Supports4D() }

func (n *ClampNode) Type() string { return "Clamp" }

func (n *ClampNode) Children() []Node { return []Node{n.child} }

// AbsoluteNode returns the magnitude of the child's output.
type AbsoluteNode struct {
	child Node
}

// NewAbsolute creates a node evaluating |child|.
func NewAbsolute(child Node) *AbsoluteNode {
	mustChildren("Absolute", child)
	return &AbsoluteNode{child: child}
}

func (n *AbsoluteNode) Evaluate2D(seed int32, x, y float64) float64 {
	return math.Abs(n.child.Evaluate2D(seed, x, y))
}

func (n *AbsoluteNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return math.Abs(n.child.Evaluate3D(seed, x, y, z))
}

func (n *AbsoluteNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return math.Abs(n.child.Evaluate4D(seed, x, y, z, w))
}

func (n *AbsoluteNode) Supports4D() bool { return n.child.Supports4D() }

func (n *AbsoluteNode) Type() string { return "Absolute" }

func (n *AbsoluteNode) Children() []Node { return []Node{n.child} }

// InvertNode negates the child's output; inverting twice is an identity.
type InvertNode struct {
	child Node
}

// NewInvert creates a node evaluating -child.
func NewInvert(child Node) *InvertNode {
	mustChildren("Invert", child)
	return &InvertNode{child: child}
}

func (n *InvertNode) Evaluate2D(seed int32, x, y float64) float64 {
	return -n.child.Evaluate2D(seed, x, y)
}

func (n *InvertNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return -n.child.Evaluate3D(seed, x, y, z)
}

func (n *InvertNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return -n.child.Evaluate4D(seed, x, y, z, w)
}

func (n *InvertNode) Supports4D() bool { return n.child.Supports4D() }

func (n *InvertNode) Type() string { return "Invert" }

func (n *InvertNode) Children() []Node { return []Node{n.child} }

// TransformNode pipes the child's output through a value transform. The
// transform boundary is single precision: the child value is narrowed to
// float32 before Apply and widened back afterwards.
type TransformNode struct {
	child Node
	tr    transform.Transform
}

// NewTransform creates a node applying tr to child output; panics on nil tr.
func NewTransform(child Node, tr transform.Transform) *TransformNode {
	mustChildren("Transform", child)
	if tr == nil {
		panic("graph: Transform node requires a non-nil transform")
	}
	return &TransformNode{child: child, tr: tr}
}

// Transform reports the applied value transform.
func (n *TransformNode) Transform() transform.Transform { return n.tr }

func (n *TransformNode) Evaluate2D(seed int32, x, y float64) float64 {
	return float64(n.tr.Apply(float32(n.child.Evaluate2D(seed, x, y))))
}

func (n *TransformNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	return float64(n.tr.Apply(float32(n.child.Evaluate3D(seed, x, y, z))))
}

func (n *TransformNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)
	return float64(n.tr.Apply(float32(n.child.Evaluate4D(seed, x, y, z, w))))
}

func (n *TransformNode) Supports4D() bool { return n.child.Supports4D() }

func (n *TransformNode) Type() string { return "Transform" }

func (n *TransformNode) Children() []Node { return []Node{n.child} }
