// Package main hosts the clipmeta CLI entrypoint and command graph.
//
// The Cobra command tree turns terminal invocations into calls against the
// clip parser, the directory scanner, and the per-source summary. It resolves
// configuration once, builds the stderr logger, and renders results as a
// table, JSON, or YAML on stdout.
//
// Parsing rules live in internal/clip; keep this package limited to flags,
// wiring, and presentation.
package main
