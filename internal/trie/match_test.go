package trie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrie_FindMatches(t *testing.T) {
	t.Run("fresh trie matches nothing", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		for _, topic := range []string{"", "a", "a/b/c", "#", "+"} {
			require.Empty(t, tr.FindMatches(topic), "topic %q", topic)
		}
	})

	t.Run("exact registration round-trip", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/b/c", "s1")

		require.Equal(t, []string{"s1"}, tr.FindMatches("a/b/c"))
		require.Empty(t, tr.FindMatches("a/b"))
		require.Empty(t, tr.FindMatches("a/b/c/d"))
	})

	t.Run("single-level wildcard matches exactly one segment", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/+/c", "s1")

		require.Equal(t, []string{"s1"}, tr.FindMatches("a/x/c"))
		require.Equal(t, []string{"s1"}, tr.FindMatches("a/y/c"))
		require.Empty(t, tr.FindMatches("a/x/y/c"))
		require.Empty(t, tr.FindMatches("a/c"))
	})

	t.Run("trailing single-level wildcard", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/+", "s1")

		require.Equal(t, []string{"s1"}, tr.FindMatches("a/x"))
		require.Empty(t, tr.FindMatches("a"))
		require.Empty(t, tr.FindMatches("a/x/y"))
	})

	t.Run("multi-level wildcard matches the remainder", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/#", "s1")

		require.Equal(t, []string{"s1"}, tr.FindMatches("a/b"))
		require.Equal(t, []string{"s1"}, tr.FindMatches("a/b/c/d"))
		require.Empty(t, tr.FindMatches("z/b"))
		require.Empty(t, tr.FindMatches("a"), "at least one segment must follow the prefix")
	})

	t.Run("root multi-level wildcard matches everything", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("#", "all")

		require.Equal(t, []string{"all"}, tr.FindMatches("x"))
		require.Equal(t, []string{"all"}, tr.FindMatches("x/y/z"))
		require.Equal(t, []string{"all"}, tr.FindMatches(""))
	})

	t.Run("wildcards combine", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("+/+/#", "s1")
		tr.Add("a/+/c/#", "s2")

		require.Equal(t, []string{"s1", "s2"}, tr.FindMatches("a/b/c/d"))
		require.Equal(t, []string{"s1"}, tr.FindMatches("q/b/c"))
		require.Empty(t, tr.FindMatches("q/b"))
	})

	t.Run("orders shallow wildcard matches before deeper and exact matches", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/b/c", "exact")
		tr.Add("a/b/#", "deep-multi")
		tr.Add("a/+/c", "single")
		tr.Add("#", "root-multi")
		tr.Add("a/#", "shallow-multi")

		got := tr.FindMatches("a/b/c")
		require.Equal(t, []string{"root-multi", "shallow-multi", "single", "deep-multi", "exact"}, got)
	})

	t.Run("does not deduplicate across patterns", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/b", "s1")
		tr.Add("a/+", "s1")
		tr.Add("a/#", "s1")

		require.Equal(t, []string{"s1", "s1", "s1"}, tr.FindMatches("a/b"))
	})

	t.Run("literal wildcard segments in the query do not expand", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/x", "under-a")
		tr.Add("a/+", "literal-plus")

		require.Equal(t, []string{"literal-plus"}, tr.FindMatches("a/+"))
		require.Equal(t, []string{"literal-plus", "under-a"}, tr.FindMatches("a/x"))
	})

	t.Run("literal multi-level segment in the query only matches literally", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a/#", "multi")

		require.Equal(t, []string{"multi"}, tr.FindMatches("a/#"))
		require.Equal(t, []string{"multi"}, tr.FindMatches("a/b"))
	})

	t.Run("custom tokens", func(t *testing.T) {
		tr := New[string](Tokens{Delimiter: ".", SingleLevel: "*", MultiLevel: ">"})
		tr.Add("orders.*.created", "s1")
		tr.Add("orders.>", "s2")
		tr.Add("orders/+", "s3")

		require.Equal(t, []string{"s2", "s1"}, tr.FindMatches("orders.eu.created"))
		require.Empty(t, tr.FindMatches("orders/x"), "slash is a literal character here")
	})

	t.Run("results do not alias the tree", func(t *testing.T) {
		tr := New[string](DefaultTokens())
		tr.Add("a", "s1")

		got := tr.FindMatches("a")
		got[0] = "mutated"
		require.Equal(t, []string{"s1"}, tr.FindMatches("a"))
	})
}

func TestTrie_Subscriptions(t *testing.T) {
	tr := New[string](DefaultTokens())
	tr.Add("a/+", "wild")
	tr.Add("a/b", "exact")

	require.Equal(t, []string{"wild"}, tr.Subscriptions("a/+"))
	require.Equal(t, []string{"exact"}, tr.Subscriptions("a/b"))
	require.Nil(t, tr.Subscriptions("a"))
	require.Nil(t, tr.Subscriptions("a/c"))
}
