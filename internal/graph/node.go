// Package graph implements a composable procedural-noise graph.
//
// A graph is an immutable DAG of evaluation nodes: sources wrapping lattice
// generators, fractal octave combiners, arithmetic combiners, coordinate and
// value modifiers, and a domain warp. Nodes hold only construction-time
// parameters and child references, never a seed and never mutable state, so
// any node may be shared between parents and evaluated concurrently from any
// number of goroutines. The seed travels as an explicit per-call parameter.
//
// Construction validates its arguments and panics on contract violations
// (nil children, octave counts below one, inverted clamp bounds). Evaluating
// 4D on a node whose Supports4D reports false panics as well; both are
// programmer errors in graph assembly, not runtime conditions to recover
// from.
package graph

// Node is the contract every graph element satisfies.
//
// Evaluate calls are pure: the same seed and coordinates always produce the
// same value, regardless of goroutine or call order. Evaluate4D must only be
// called when Supports4D reports true. Type is a diagnostic tag for logging,
// never an identity. Children reports the direct child nodes for validation
// walks; leaves return nil.
type Node interface {
	Evaluate2D(seed int32, x, y float64) float64
	Evaluate3D(seed int32, x, y, z float64) float64
	Evaluate4D(seed int32, x, y, z, w float64) float64
	Supports4D() bool
	Type() string
	Children() []Node
}

func mustChildren(nodeType string, children ...Node) {
	for _, c := range children {
		if c == nil {
			panic("graph: " + nodeType + " node requires non-nil children")
		}
	}
}

func must4D(n Node) {
	if !n.Supports4D() {
		panic("graph: 4D evaluation not supported by " + n.Type() + " node")
	}
}

func all4D(children ...Node) bool {
	for _, c := range children {
		if !c.Supports4D() {
			return false
		}
	}
	return true
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
