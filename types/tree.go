package types

// Node is the portable shape of a subscription tree.
//
// It is the format accepted by WithInitialTree and produced by Vault.Snapshot:
//
//	{children: {segment: node, ...}, subscriptions: [...]}
//
// Children keys are raw segments, including the literal wildcard tokens.
// Subscriptions hold the handles registered exactly at the node's path, in
// registration order.
type Node[S comparable] struct {
	Children      map[string]*Node[S] `json:"children,omitempty" yaml:"children,omitempty"`
	Subscriptions []S                 `json:"subscriptions,omitempty" yaml:"subscriptions,omitempty"`
}

// NewNode creates an empty node.
func NewNode[S comparable]() *Node[S] {
	return &Node[S]{}
}

// Child returns the child at segment, creating it when absent.
//
// Useful for building initial trees by hand:
//
//	root := types.NewNode[string]()
//	root.Child("sensors").Child("+").Subscriptions = []string{"dashboard"}
func (n *Node[S]) Child(segment string) *Node[S] {
	if n.Children == nil {
		n.Children = make(map[string]*Node[S])
	}

	child, ok := n.Children[segment]
	if !ok {
		child = NewNode[S]()
		n.Children[segment] = child
	}

	return child
}

// IsEmpty reports whether the node has neither children nor subscriptions.
func (n *Node[S]) IsEmpty() bool {
	return n == nil || (len(n.Children) == 0 && len(n.Subscriptions) == 0)
}

// Count returns the number of descendant nodes, excluding n itself.
func (n *Node[S]) Count() int {
	if n == nil {
		return 0
	}

	total := 0
	for _, child := range n.Children {
		total += 1 + child.Count()
	}

	return total
}
