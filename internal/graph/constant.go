package graph

// ConstantNode returns a fixed value for any seed and coordinates. It is the
// only leaf that always supports 4D, making it useful as a mask bias or a
// degenerate blend endpoint in otherwise 4D-capable graphs.
type ConstantNode struct {
	value float64
}

// NewConstant creates a node that always evaluates to value.
func NewConstant(value float64) *ConstantNode {
	return &ConstantNode{value: value}
}

// Value reports the fixed value.
func (n *ConstantNode) Value() float64 { return n.value }

func (n *ConstantNode) Evaluate2D(seed int32, x, y float64) float64 { return n.value }

func (n *ConstantNode) Evaluate3D(seed int32, x, y, z float64) float64 { return n.value }

func (n *ConstantNode) Evaluate4D(seed int32, x, y, z, w float64) float64 { return n.value }

func (n *ConstantNode) Supports4D() bool { return true }

func (n *ConstantNode) Type() string { return "Constant" }

func (n *ConstantNode) Children() []Node { return nil }
