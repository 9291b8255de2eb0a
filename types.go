package subvault

import (
	"github.com/kevin-dyer/mqtt-subscription-vault/internal/trie"
	"github.com/kevin-dyer/mqtt-subscription-vault/types"
)

// Re-export types from the types package.
//
// Internal packages depend on types rather than on the root package, which
// keeps the import graph acyclic while users still write subvault.Hooks,
// subvault.Logger and so on.
type (
	Node[S comparable] = types.Node[S]
	Stats              = trie.Stats
)

// Re-export interfaces from the types package for convenience.
type (
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// NewNode creates an empty tree node, e.g. to build a tree for WithInitialTree.
func NewNode[S comparable]() *Node[S] {
	return types.NewNode[S]()
}
