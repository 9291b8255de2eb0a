package trie

import (
	"slices"

	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

// Stats summarizes the size of a tree.
type Stats struct {
	// Nodes is the number of nodes, excluding the root.
	Nodes int

	// Topics is the number of nodes holding at least one subscription.
	Topics int

	// Subscriptions is the total number of registrations.
	Subscriptions int
}

// Import replaces the tree with a copy of root.
//
// The tree is taken as-is: empty branches in root are kept until a Remove
// walks through them. A nil root leaves an empty tree.
func (t *Trie[S]) Import(root *types.Node[S]) {
	t.Reset()
	if root.IsEmpty() {
		return
	}

	t.importNode(rootID, root)
}

func (t *Trie[S]) importNode(id nodeID, src *types.Node[S]) {
	if len(src.Subscriptions) > 0 {
		t.nodes[id].subscriptions = append([]S(nil), src.Subscriptions...)
	}

	for segment, child := range src.Children {
		if child == nil {
			continue
		}
		t.importNode(t.ensureChild(id, segment), child)
	}
}

// Export returns a deep copy of the tree in the portable Node shape.
func (t *Trie[S]) Export() *types.Node[S] {
	return t.exportNode(rootID)
}

func (t *Trie[S]) exportNode(id nodeID) *types.Node[S] {
	n := &t.nodes[id]
	out := types.NewNode[S]()
	if len(n.subscriptions) > 0 {
		out.Subscriptions = append([]S(nil), n.subscriptions...)
	}
	if len(n.children) > 0 {
		out.Children = make(map[string]*types.Node[S], len(n.children))
		for segment, c := range n.children {
			out.Children[segment] = t.exportNode(c)
		}
	}

	return out
}

// Topics returns every topic holding at least one subscription, sorted.
func (t *Trie[S]) Topics() []string {
	var topics []string
	t.visit(rootID, nil, func(path []string, n *node[S]) {
		if len(n.subscriptions) > 0 {
			topics = append(topics, t.tokens.Join(path))
		}
	})
	slices.Sort(topics)

	return topics
}

// Stats returns node, topic and registration counts.
func (t *Trie[S]) Stats() Stats {
	st := Stats{Nodes: t.Len()}
	t.visit(rootID, nil, func(_ []string, n *node[S]) {
		if len(n.subscriptions) > 0 {
			st.Topics++
			st.Subscriptions += len(n.subscriptions)
		}
	})

	return st
}

// visit calls fn for every node below id in depth-first order with the
// segments leading to it. The root itself is not visited.
func (t *Trie[S]) visit(id nodeID, path []string, fn func(path []string, n *node[S])) {
	for segment, c := range t.nodes[id].children {
		childPath := append(slices.Clip(path), segment)
		fn(childPath, &t.nodes[c])
		t.visit(c, childPath, fn)
	}
}
