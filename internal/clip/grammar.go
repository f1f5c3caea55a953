package clip

import (
	"regexp"

	"cloud.google.com/go/civil"
)

// Slot positions inside a grammar pattern.
const (
	slotTitle = 1
	slotDate  = 2
	slotTime  = 3
	slotCount = 3
)

// Grammar describes one capture program's filename layout.
type Grammar struct {
	Name       string
	Marker     string
	Pattern    *regexp.Regexp
	DateFormat Format
	TimeFormat Format
}

// Tokens are the raw substrings captured by a grammar pattern.
type Tokens struct {
	Title string
	Date  string
	Time  string
}

// Fields holds the independent results of parsing the date and time tokens.
type Fields struct {
	Date    civil.Date
	DateErr error
	Time    civil.Time
	TimeErr error
}

// Err returns the first field failure, date before time.
func (f Fields) Err() error {
	if f.DateErr != nil {
		return f.DateErr
	}
	return f.TimeErr
}

// Match applies the anchored pattern to filename and returns the raw tokens.
func (g Grammar) Match(filename string) (Tokens, error) {
	idx := g.Pattern.FindStringSubmatchIndex(filename)
	if idx == nil {
		return Tokens{}, &GrammarMismatchError{Filename: filename, Grammar: g.Name}
	}
	title, ok := submatch(filename, idx, slotTitle)
	if !ok || title == "" {
		return Tokens{}, &MissingFieldError{Field: FieldSourceName, Filename: filename}
	}
	date, ok := submatch(filename, idx, slotDate)
	if !ok {
		return Tokens{}, &MissingFieldError{Field: FieldDate, Filename: filename}
	}
	clock, ok := submatch(filename, idx, slotTime)
	if !ok {
		return Tokens{}, &MissingFieldError{Field: FieldTime, Filename: filename}
	}
	return Tokens{Title: title, Date: date, Time: clock}, nil
}

func submatch(s string, idx []int, slot int) (string, bool) {
	lo, hi := 2*slot, 2*slot+1
	if hi >= len(idx) || idx[lo] < 0 {
		return "", false
	}
	return s[idx[lo]:idx[hi]], true
}

// ParseFields parses the date and time tokens independently.
func (g Grammar) ParseFields(filename string, tokens Tokens) Fields {
	var fields Fields
	date, err := g.DateFormat.ParseDate(tokens.Date)
	if err != nil {
		fields.DateErr = &FieldParseError{Field: FieldDate, Value: tokens.Date, Filename: filename, Err: err}
	} else {
		fields.Date = date
	}
	clock, err := g.TimeFormat.ParseTime(tokens.Time)
	if err != nil {
		fields.TimeErr = &FieldParseError{Field: FieldTime, Value: tokens.Time, Filename: filename, Err: err}
	} else {
		fields.Time = clock
	}
	return fields
}
