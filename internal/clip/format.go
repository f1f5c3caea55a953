package clip

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Format is a fixed-width numeric field layout such as year.month.day.
//
// Layout uses Go reference-time elements (2006, 01, 02, 15, 04, 05) joined by
// literal separators. Every digit in the layout stands for exactly one ASCII
// digit in the token, so tokens are checked for width before the calendar
// ranges are checked.
type Format struct {
	Name   string
	Layout string
	shape  *regexp.Regexp
}

var (
	DateYMD = NewFormat("year.month.day", "2006.01.02")
	TimeHMS = NewFormat("hour.minute.second", "15.04.05")
	TimeHM  = NewFormat("hour.minute", "15.04")
)

// NewFormat builds a Format from a descriptive name and a Go time layout.
func NewFormat(name, layout string) Format {
	var b strings.Builder
	b.WriteByte('^')
	for _, r := range layout {
		if r >= '0' && r <= '9' {
			b.WriteString("[0-9]")
			continue
		}
		b.WriteString(regexp.QuoteMeta(string(r)))
	}
	b.WriteByte('$')
	return Format{Name: name, Layout: layout, shape: regexp.MustCompile(b.String())}
}

func (f Format) String() string { return f.Name }

// HasSeconds reports whether the layout carries a seconds element.
func (f Format) HasSeconds() bool {
	return strings.Contains(f.Layout, "05")
}

func (f Format) parse(token string) (time.Time, error) {
	if f.shape == nil {
		return time.Time{}, fmt.Errorf("format %q is not initialized", f.Name)
	}
	if !f.shape.MatchString(token) {
		return time.Time{}, fmt.Errorf("expected %s layout %s", f.Name, f.Layout)
	}
	ts, err := time.Parse(f.Layout, token)
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

// ParseDate converts token to a calendar date. Out-of-range months and days
// are rejected, never normalized.
func (f Format) ParseDate(token string) (civil.Date, error) {
	ts, err := f.parse(token)
	if err != nil {
		return civil.Date{}, err
	}
	return civil.DateOf(ts), nil
}

// ParseTime converts token to a time of day. Seconds are zero when the layout
// has none.
func (f Format) ParseTime(token string) (civil.Time, error) {
	ts, err := f.parse(token)
	if err != nil {
		return civil.Time{}, err
	}
	return civil.TimeOf(ts), nil
}
