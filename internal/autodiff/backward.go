package autodiff

import "github.com/born-ml/grad/internal/autodiff/ops"

// TopologicalOrder returns every node reachable from root, each exactly once,
// with every node placed after all nodes it was built from. The last element
// is root.
//
// The traversal is an iterative depth-first post-order, so graph depth is not
// limited by the goroutine stack.
func TopologicalOrder(root *Value) []*Value {
	if root == nil {
		return nil
	}

	type frame struct {
		node *Value
		next int // next operand slot to visit
	}

	var order []*Value
	visited := map[*Value]bool{root: true}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next < len(top.node.args) {
			child := top.node.args[top.next]
			top.next++
			if !visited[child] {
				visited[child] = true
				stack = append(stack, frame{node: child})
			}
			continue
		}
		order = append(order, top.node)
		stack = stack[:len(stack)-1]
	}

	return order
}

// Backward computes d(root)/d(node) for every node reachable from root.
//
// Algorithm:
//  1. Order the reachable subgraph topologically
//  2. Seed root with 1.0
//  3. Walk the order in reverse; each node, once all its consumers have
//     contributed, pushes ops.Backward contributions into its operand slots
//
// The contributions of this pass are summed separately and then added to the
// existing gradients, so a second call on the same graph adds the same
// amounts again. The root's gradient is set to 1.0, not incremented. Nodes
// not reachable from root are untouched.
func Backward(root *Value) {
	order := TopologicalOrder(root)
	if len(order) == 0 {
		return
	}

	pass := make(map[*Value]float64, len(order))
	pass[root] = 1.0

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		outGrad := pass[node]
		if node != root {
			node.grad += outGrad
		}
		if node.op.Kind == ops.Leaf {
			continue
		}
		in := make([]float64, len(node.args))
		for j, a := range node.args {
			in[j] = a.data
		}
		contrib := ops.Backward(node.op, node.data, outGrad, in...)
		for j, a := range node.args {
			pass[a] += contrib[j]
		}
	}

	root.grad = 1.0
}

// Backward runs the reverse pass with v as the root. See Backward.
func (v *Value) Backward() {
	Backward(v)
}
