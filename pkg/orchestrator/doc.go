// Package orchestrator wires placeholder grouping, content resolution,
// sequence composition and write-back into a single Generate call for
// hosts that prefer one entry point.
package orchestrator
