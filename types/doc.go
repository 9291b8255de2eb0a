// Package types provides core type definitions and interfaces for the subscription vault.
//
// This package contains shared types that are used across multiple packages of the
// module. By keeping these types in a separate package, we avoid import cycles
// between the root subvault package and its internal implementations.
//
// Key types:
//   - Node: Snapshot shape of a subscription tree
//   - Hooks: Topic lifecycle callbacks
//   - Logger: Structured logging interface
//   - MetricsCollector: Metrics recording interface
package types
