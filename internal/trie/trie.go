package trie

// nodeID addresses a node in the arena. The root is always rootID.
type nodeID int32

const rootID nodeID = 0

// node is one tree position.
//
// subscriptions is a multiset in registration order; the same handle may
// appear more than once.
type node[S comparable] struct {
	children      map[string]nodeID
	subscriptions []S
}

// Trie is an arena-backed subscription tree.
type Trie[S comparable] struct {
	tokens Tokens
	nodes  []node[S]
	free   []nodeID
}

// New creates an empty trie. Zero-valued fields of tokens fall back to DefaultTokens.
func New[S comparable](tokens Tokens) *Trie[S] {
	t := &Trie[S]{tokens: tokens.withDefaults()}
	t.Reset()

	return t
}

// Tokens returns the tokens the trie was built with.
func (t *Trie[S]) Tokens() Tokens {
	return t.tokens
}

// Reset discards every node and starts over with an empty root.
func (t *Trie[S]) Reset() {
	t.nodes = make([]node[S], 1, 16)
	t.free = nil
}

// Len returns the number of nodes in the tree, excluding the root.
func (t *Trie[S]) Len() int {
	return len(t.nodes) - 1 - len(t.free)
}

func (t *Trie[S]) alloc() nodeID {
	if n := len(t.free); n > 0 {
		id := t.free[n-1]
		t.free = t.free[:n-1]

		return id
	}

	t.nodes = append(t.nodes, node[S]{})

	return nodeID(len(t.nodes) - 1)
}

func (t *Trie[S]) release(id nodeID) {
	t.nodes[id] = node[S]{}
	t.free = append(t.free, id)
}

func (t *Trie[S]) child(id nodeID, segment string) (nodeID, bool) {
	c, ok := t.nodes[id].children[segment]
	return c, ok
}

// ensureChild returns the child of id at segment, creating it when absent.
func (t *Trie[S]) ensureChild(id nodeID, segment string) nodeID {
	if c, ok := t.child(id, segment); ok {
		return c
	}

	// alloc may grow t.nodes, so index after it.
	c := t.alloc()
	if t.nodes[id].children == nil {
		t.nodes[id].children = make(map[string]nodeID)
	}
	t.nodes[id].children[segment] = c

	return c
}

// detach removes the child at segment from parent and recycles its slot.
func (t *Trie[S]) detach(parent nodeID, segment string) {
	c, ok := t.child(parent, segment)
	if !ok {
		return
	}

	delete(t.nodes[parent].children, segment)
	if len(t.nodes[parent].children) == 0 {
		t.nodes[parent].children = nil
	}
	t.release(c)
}

func (t *Trie[S]) isEmpty(id nodeID) bool {
	n := &t.nodes[id]
	return len(n.children) == 0 && len(n.subscriptions) == 0
}
