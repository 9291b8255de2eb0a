// Package trie implements the topic subscription tree behind subvault.Vault.
//
// Topics are split into segments by a delimiter and stored one segment per
// level. Two segment tokens are special during matching: the single-level
// wildcard (default "+") matches exactly one segment, and the multi-level
// wildcard (default "#") matches one or more remaining segments.
//
// Nodes live in an arena slice and are addressed by integer ids. Nodes do not
// store a parent reference: the upward walk used for pruning takes each node's
// parent from the trail recorded by the downward walk that reached it, so a
// parent can never be stale.
//
// A Trie is not safe for concurrent use.
package trie
