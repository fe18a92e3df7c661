// Package types defines the data model shared by the materializer, the
// bootstrap orchestrator and the output layer: template entries discovered
// while walking a template root, the destination entries they turn into,
// and the FS interface generated trees are written through.
package types
