package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode_Child(t *testing.T) {
	t.Run("creates missing children", func(t *testing.T) {
		root := NewNode[string]()
		leaf := root.Child("a").Child("b")
		leaf.Subscriptions = append(leaf.Subscriptions, "s1")

		require.Len(t, root.Children, 1)
		require.Same(t, leaf, root.Children["a"].Children["b"])
		require.Equal(t, 2, root.Count())
	})

	t.Run("reuses existing children", func(t *testing.T) {
		root := NewNode[string]()
		first := root.Child("a")
		second := root.Child("a")

		require.Same(t, first, second)
		require.Equal(t, 1, root.Count())
	})
}

func TestNode_IsEmpty(t *testing.T) {
	var nilNode *Node[int]
	require.True(t, nilNode.IsEmpty())
	require.True(t, NewNode[int]().IsEmpty())

	n := NewNode[int]()
	n.Subscriptions = []int{1}
	require.False(t, n.IsEmpty())
}

func TestNode_Encoding(t *testing.T) {
	t.Run("parses the documented YAML shape", func(t *testing.T) {
		doc := `
children:
  sensors:
    children:
      "+":
        subscriptions: [dashboard, archiver]
  "#":
    subscriptions: [audit]
`
		var root Node[string]
		require.NoError(t, yaml.Unmarshal([]byte(doc), &root))

		require.Equal(t, []string{"dashboard", "archiver"}, root.Children["sensors"].Children["+"].Subscriptions)
		require.Equal(t, []string{"audit"}, root.Children["#"].Subscriptions)
		require.Equal(t, 3, root.Count())
	})

	t.Run("omits empty fields in JSON", func(t *testing.T) {
		root := NewNode[string]()
		root.Child("a").Subscriptions = []string{"s"}

		data, err := json.Marshal(root)
		require.NoError(t, err)
		require.JSONEq(t, `{"children":{"a":{"subscriptions":["s"]}}}`, string(data))
	})
}
