package graph

// DomainWarpNode distorts the coordinates fed into one node using a second
// node's output, producing organic, turbulent patterns. Each coordinate axis
// samples the warp node at a fixed stagger (multiples of 100 added to every
// axis) so one warp node and one seed yield decorrelated per-axis offsets.
// An amplitude of zero reduces exactly to the unwarped source.
type DomainWarpNode struct {
	child     Node
	warp      Node
	amplitude float64
}

// NewDomainWarp creates a node sampling child at coordinates displaced by
// warp's output scaled by amplitude.
func NewDomainWarp(child, warp Node, amplitude float64) *DomainWarpNode {
	mustChildren("DomainWarp", child, warp)
	return &DomainWarpNode{child: child, warp: warp, amplitude: amplitude}
}

// Amplitude reports the distortion strength.
func (n *DomainWarpNode) Amplitude() float64 { return n.amplitude }

func (n *DomainWarpNode) Evaluate2D(seed int32, x, y float64) float64 {
	warpX := n.warp.Evaluate2D(seed, x, y) * n.amplitude
	warpY := n.warp.Evaluate2D(seed, x+100, y+100) * n.amplitude

	return n.child.Evaluate2D(seed, x+warpX, y+warpY)
}

func (n *DomainWarpNode) Evaluate3D(seed int32, x, y, z float64) float64 {
	warpX := n.warp.Evaluate3D(seed, x, y, z) * n.amplitude
	warpY := n.warp.Evaluate3D(seed, x+100, y+100, z+100) * n.amplitude
	warpZ := n.warp.Evaluate3D(seed, x+200, y+200, z+200) * n.amplitude

	return n.child.Evaluate3D(seed, x+warpX, y+warpY, z+warpZ)
}

func (n *DomainWarpNode) Evaluate4D(seed int32, x, y, z, w float64) float64 {
	must4D(n)

	warpX := n.warp.Evaluate4D(seed, x, y, z, w) * n.amplitude
	warpY := n.warp.Evaluate4D(seed, x+100, y+100, z+100, w+100) * n.amplitude
	warpZ := n.warp.Evaluate4D(seed, x+200, y+200, z+200, w+200) * n.amplitude
	warpW := n.warp.Evaluate4D(seed, x+300, y+300, z+300, w+300) * n.amplitude

	return n.child.Evaluate4D(seed, x+warpX, y+warpY, z+warpZ, w+warpW)
}

func (n *DomainWarpNode) Supports4D() bool { return all4D(n.child, n.warp) }

func (n *DomainWarpNode) Type() string { return "DomainWarp" }

func (n *DomainWarpNode) Children() []Node { return []Node{n.child, n.warp} }
