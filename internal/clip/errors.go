package clip

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownFormat   = errors.New("unknown clip format")
	ErrGrammarMismatch = errors.New("grammar mismatch")
	ErrMissingField    = errors.New("missing field")
	ErrFieldParse      = errors.New("field parse error")
)

// Error kinds reported by ErrorKind and Kind.
const (
	KindUnknownFormat   = "unknown_format"
	KindGrammarMismatch = "grammar_mismatch"
	KindMissingField    = "missing_field"
	KindFieldParse      = "field_parse"
)

// Field names used in MissingFieldError and FieldParseError.
const (
	FieldSourceName = "source_name"
	FieldDate       = "date"
	FieldTime       = "time"
)

// UnknownFormatError reports a filename that carries no known grammar marker.
type UnknownFormatError struct {
	Filename string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unable to detect clip program format for video %s", e.Filename)
}

func (e *UnknownFormatError) Is(target error) bool { return target == ErrUnknownFormat }

func (e *UnknownFormatError) ErrorKind() string { return KindUnknownFormat }

// GrammarMismatchError reports a filename whose marker selected a grammar
// but whose structure does not match that grammar's pattern.
type GrammarMismatchError struct {
	Filename string
	Grammar  string
}

func (e *GrammarMismatchError) Error() string {
	return fmt.Sprintf("video %s does not match the %s clip format", e.Filename, e.Grammar)
}

func (e *GrammarMismatchError) Is(target error) bool { return target == ErrGrammarMismatch }

func (e *GrammarMismatchError) ErrorKind() string { return KindGrammarMismatch }

// MissingFieldError reports a capture slot that was absent or empty after the
// pattern matched. A well-formed grammar never produces it for a filename with
// a non-empty title.
type MissingFieldError struct {
	Field    string
	Filename string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("failed to find attribute %s for video %s", e.Field, e.Filename)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }

func (e *MissingFieldError) ErrorKind() string { return KindMissingField }

// FieldParseError reports a date or time token that is not valid under the
// grammar's format. Err holds the underlying cause.
type FieldParseError struct {
	Field    string
	Value    string
	Filename string
	Err      error
}

func (e *FieldParseError) Error() string {
	msg := fmt.Sprintf("failed to parse %s str %s for video %s", e.Field, e.Value, e.Filename)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *FieldParseError) Unwrap() error { return e.Err }

func (e *FieldParseError) Is(target error) bool { return target == ErrFieldParse }

func (e *FieldParseError) ErrorKind() string { return KindFieldParse }

// ErrorClassifier is implemented by every error type in this package.
type ErrorClassifier interface {
	ErrorKind() string
}

// Kind returns the classification of err, or "" when err did not come from
// the parsing pipeline.
func Kind(err error) string {
	var classifier ErrorClassifier
	if errors.As(err, &classifier) {
		return classifier.ErrorKind()
	}
	return ""
}
