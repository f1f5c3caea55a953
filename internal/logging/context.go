package logging

import (
	"context"

	"github.com/google/uuid"
)

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldRunID is the standardized structured logging key for the invocation identifier.
	FieldRunID = "run_id"
	// FieldFilename is the standardized structured logging key for clip filenames.
	FieldFilename = "filename"
	// FieldPath is the standardized structured logging key for filesystem paths.
	FieldPath = "path"
	// FieldGrammar is the standardized structured logging key for filename grammar names.
	FieldGrammar = "grammar"
	// FieldErrorKind is the standardized structured logging key for classified failure kinds.
	FieldErrorKind = "error_kind"
	// FieldErrorHint carries a short next step for the reader of a warning.
	FieldErrorHint = "error_hint"
	// FieldEventType is the standardized structured logging key for event categories.
	FieldEventType = "event_type"
	// FieldCount is the standardized structured logging key for item totals.
	FieldCount = "count"
)

type runIDKey struct{}

// NewRunID returns a fresh identifier for one invocation.
func NewRunID() string {
	return uuid.NewString()
}

// WithRunID stores the run identifier on ctx.
func WithRunID(ctx context.Context, runID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunIDFromContext returns the run identifier stored by WithRunID.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(runIDKey{}).(string)
	return id, ok && id != ""
}
