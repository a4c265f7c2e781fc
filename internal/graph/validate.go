package graph

import (
	"errors"
	"fmt"
)

// ErrNilNode reports a nil node encountered during validation.
var ErrNilNode = errors.New("graph: nil node")

// Validate walks the graph below root and returns an error if any child is
// nil or if a node is its own ancestor. Cycles cannot be built through the
// public constructors, which only accept already-constructed children, but a
// hand-rolled Node implementation can still close a loop; evaluating such a
// graph recurses without bound, so this pre-flight check is worth running on
// graphs assembled from untrusted node implementations.
func Validate(root Node) error {
	if root == nil {
		return ErrNilNode
	}
	return validate(root, make(map[Node]bool))
}

func validate(n Node, onPath map[Node]bool) error {
	if onPath[n] {
		return fmt.Errorf("graph: cycle through %s node", n.Type())
	}
	onPath[n] = true
	defer delete(onPath, n)

	for _, child := range n.Children() {
		if child == nil {
			return fmt.Errorf("%w: %s node has a nil child", ErrNilNode, n.Type())
		}
		if err := validate(child, onPath); err != nil {
			return err
		}
	}
	return nil
}
