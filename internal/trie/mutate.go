package trie

import "slices"

// RemoveResult describes the outcome of Remove.
type RemoveResult struct {
	// Found is true if the handle was registered at the topic and has been removed.
	Found bool

	// Emptied is true if the topic's node exists and holds no subscriptions
	// after the removal attempt, whether or not the handle was found.
	Emptied bool

	// Pruned is the number of nodes detached by the upward pruning pass.
	Pruned int
}

// Add registers sub at topic, creating the missing part of its path.
//
// Registering the same handle twice stores two entries. Add returns true when
// the topic had no subscriptions before this call.
func (t *Trie[S]) Add(topic string, sub S) bool {
	path := t.tokens.Tokenize(topic)
	last := len(path) - 1

	var end nodeID
	t.walkDown(path, rootID, func(id nodeID, segment string, index int) {
		child := t.ensureChild(id, segment)
		if index == last {
			end = child
		}
	})

	created := len(t.nodes[end].subscriptions) == 0
	t.nodes[end].subscriptions = append(t.nodes[end].subscriptions, sub)

	return created
}

// Remove removes one registration of sub at topic and prunes every node the
// removal left without children and subscriptions.
//
// Pruning runs bottom-up along the path just walked, so an emptied leaf is
// detached before its parent is examined. The root is never detached.
func (t *Trie[S]) Remove(topic string, sub S) RemoveResult {
	var res RemoveResult

	path := t.tokens.Tokenize(topic)
	trail := t.walkDown(path, rootID, nil)
	if len(trail) != len(path)+1 {
		return res
	}

	end := trail[len(path)]
	subs := t.nodes[end].subscriptions
	if i := slices.Index(subs, sub); i >= 0 {
		subs = slices.Delete(subs, i, i+1)
		if len(subs) == 0 {
			subs = nil
		}
		t.nodes[end].subscriptions = subs
		res.Found = true
	}
	res.Emptied = len(subs) == 0

	t.walkUp(path, trail, func(id, parent nodeID, segment string, _ int) {
		if t.isEmpty(id) {
			t.detach(parent, segment)
			res.Pruned++
		}
	})

	return res
}
