package trie

// downStep is invoked at each node of a downward walk, before descending into segment.
type downStep func(id nodeID, segment string, index int)

// upStep is invoked at each node of an upward walk. parent is the node the
// downward walk came from when it reached id through segment.
type upStep func(id, parent nodeID, segment string, index int)

// walkDown walks path from start.
//
// For each segment it calls step on the current node and then advances to the
// child at that segment. A missing child silently ends the walk, so callers
// must cope with step being called for a prefix of path only.
//
// The returned trail holds the node at which each step ran; when the whole
// path resolved it also holds the final node, i.e. len(trail) == len(path)+1.
func (t *Trie[S]) walkDown(path []string, start nodeID, step downStep) []nodeID {
	trail := make([]nodeID, 0, len(path)+1)
	current := start

	for i, segment := range path {
		trail = append(trail, current)
		if step != nil {
			step(current, segment, i)
		}

		next, ok := t.child(current, segment)
		if !ok {
			return trail
		}
		current = next
	}

	return append(trail, current)
}

// walkUp walks back from the deepest node of trail toward its first node,
// calling step for each resolved segment of path in reverse order.
func (t *Trie[S]) walkUp(path []string, trail []nodeID, step upStep) {
	for i := len(trail) - 2; i >= 0; i-- {
		step(trail[i+1], trail[i], path[i], i)
	}
}

// resolve returns the node at the end of path, if every segment exists.
func (t *Trie[S]) resolve(path []string) (nodeID, bool) {
	trail := t.walkDown(path, rootID, nil)
	if len(trail) != len(path)+1 {
		return 0, false
	}

	return trail[len(path)], true
}
