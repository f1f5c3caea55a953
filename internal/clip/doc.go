// Package clip classifies and parses filenames written by screen-capture
// software into clip records.
//
// A Registry holds the known filename grammars in precedence order. Parsing a
// filename is a linear pipeline: the registry detects the grammar by marker,
// the grammar's anchored pattern extracts the title, date, and time tokens,
// and the grammar's formats turn the tokens into calendar values. Each stage
// has its own error type, and the first failing stage ends the parse.
//
// Parser.ParseBatch runs the pipeline over many filenames in parallel and
// keeps successes and failures in input order. Nothing in this package
// performs I/O; registries are immutable and safe to share across goroutines.
package clip
