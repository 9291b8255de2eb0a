package trie

import (
	"fmt"
	"io"
	"slices"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns an xxh3 hash of the tree's shape and registrations.
//
// Children are visited in sorted segment order and handles are formatted with
// %v, so two trees with the same paths and the same registrations in the same
// order hash equally regardless of how their arenas are laid out.
func (t *Trie[S]) Fingerprint() uint64 {
	h := xxh3.New()
	t.hashNode(h, rootID)

	return h.Sum64()
}

func (t *Trie[S]) hashNode(w io.Writer, id nodeID) {
	n := &t.nodes[id]

	fmt.Fprintf(w, "s%d[", len(n.subscriptions))
	for _, sub := range n.subscriptions {
		v := fmt.Sprint(sub)
		fmt.Fprintf(w, "%d:%s", len(v), v)
	}

	segments := make([]string, 0, len(n.children))
	for segment := range n.children {
		segments = append(segments, segment)
	}
	slices.Sort(segments)

	fmt.Fprintf(w, "]c%d{", len(segments))
	for _, segment := range segments {
		fmt.Fprintf(w, "%d:%s", len(segment), segment)
		t.hashNode(w, n.children[segment])
	}
	io.WriteString(w, "}")
}
