// Package logging assembles the slog loggers used by clipmeta.
//
// It owns the console and JSON handlers, maps configured levels and outputs
// onto them, and tags every record with the run identifier of the current
// invocation. A no-op logger is provided for tests and library callers that
// do not care about diagnostics.
package logging
