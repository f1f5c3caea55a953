package clip

import (
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestDefaultRegistryOrder(t *testing.T) {
	grammars := DefaultRegistry().Grammars()
	if len(grammars) != 2 {
		t.Fatalf("expected 2 built-in grammars, got %d", len(grammars))
	}
	if grammars[0].Name != GrammarAMD || grammars[1].Name != GrammarNvidia {
		t.Fatalf("unexpected precedence: %s, %s", grammars[0].Name, grammars[1].Name)
	}
	if DefaultRegistry() != DefaultRegistry() {
		t.Fatal("expected default registry to be built once")
	}
}

func TestDetect(t *testing.T) {
	reg := DefaultRegistry()
	tests := []struct {
		filename string
		want     string
	}{
		{"Monster Hunter Rise 2023.06.11 - 00.31.42.02.DVR.mp4", GrammarNvidia},
		{"MONSTER HUNTER RISE_replay_2023.06.12-01.15.mp4", GrammarAMD},
		{"x_replay_y.DVR.z", GrammarAMD},
		{"x.DVR.y_replay_z", GrammarAMD},
	}
	for _, tt := range tests {
		g, err := reg.Detect(tt.filename)
		if err != nil {
			t.Fatalf("Detect(%q) returned error: %v", tt.filename, err)
		}
		if g.Name != tt.want {
			t.Errorf("Detect(%q) = %s, want %s", tt.filename, g.Name, tt.want)
		}
	}

	if _, err := reg.Detect("clip.mp4"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestRegistryAddsGrammarWithoutNewLogic(t *testing.T) {
	obs := Grammar{
		Name:       "obs",
		Marker:     " REC ",
		Pattern:    regexp.MustCompile(`^(.*) REC ([0-9]{4}\.[0-9]{2}\.[0-9]{2}) ([0-9]{2}\.[0-9]{2}\.[0-9]{2})\.mkv$`),
		DateFormat: DateYMD,
		TimeFormat: TimeHMS,
	}
	reg, err := NewRegistry(append(builtinGrammars(), obs)...)
	if err != nil {
		t.Fatalf("NewRegistry returned error: %v", err)
	}
	rec, err := NewParser(reg).Parse("Elden Ring REC 2024.03.01 21.05.09.mkv")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if rec.Grammar != "obs" || rec.SourceName != "Elden Ring" || rec.Time.Second != 9 {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if _, ok := reg.Lookup("obs"); !ok {
		t.Fatal("expected Lookup to find obs grammar")
	}
}

func TestNewRegistryRejectsMalformedGrammars(t *testing.T) {
	valid := builtinGrammars()[0]
	tests := []struct {
		name   string
		mutate func(*Grammar)
		want   string
	}{
		{"no name", func(g *Grammar) { g.Name = " " }, "no name"},
		{"no marker", func(g *Grammar) { g.Marker = "" }, "no marker"},
		{"no pattern", func(g *Grammar) { g.Pattern = nil }, "no pattern"},
		{"two slots", func(g *Grammar) { g.Pattern = regexp.MustCompile(`^(.*)_replay_(.*)$`) }, "capture groups"},
		{"four slots", func(g *Grammar) { g.Pattern = regexp.MustCompile(`^(.*)_(.*)_(.*)_(.*)$`) }, "capture groups"},
		{"unanchored", func(g *Grammar) { g.Pattern = regexp.MustCompile(`(.*)_replay_(.*)-(.*)`) }, "anchored"},
		{"no formats", func(g *Grammar) { g.DateFormat = Format{} }, "format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := valid
			tt.mutate(&g)
			_, err := NewRegistry(g)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := NewRegistry(); err == nil {
		t.Fatal("expected error for empty registry")
	}
	if _, err := NewRegistry(valid, valid); err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestMatchMissingSlot(t *testing.T) {
	// Optional groups can leave a slot unset even when the pattern matches.
	g := Grammar{
		Name:       "optional",
		Marker:     "_opt_",
		Pattern:    regexp.MustCompile(`^(.*)_opt_([0-9.]+)?-([0-9.]+)?$`),
		DateFormat: DateYMD,
		TimeFormat: TimeHM,
	}
	_, err := g.Match("Title_opt_-01.15")
	var missing *MissingFieldError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingFieldError, got %v", err)
	}
	if missing.Field != FieldDate {
		t.Fatalf("unexpected field: %q", missing.Field)
	}

	_, err = g.Match("Title_opt_2023.06.12-")
	if !errors.As(err, &missing) || missing.Field != FieldTime {
		t.Fatalf("expected missing time, got %v", err)
	}

	twoSlot := g
	twoSlot.Pattern = regexp.MustCompile(`^(.*)_opt_(.*)$`)
	_, err = twoSlot.Match("Title_opt_2023.06.12")
	if !errors.As(err, &missing) || missing.Field != FieldTime {
		t.Fatalf("expected missing time for two-slot pattern, got %v", err)
	}
}

func TestParseFieldsReportsBothSlots(t *testing.T) {
	g := builtinGrammars()[1]
	fields := g.ParseFields("f", Tokens{Title: "t", Date: "2023.13.01", Time: "00.61.00"})
	if fields.DateErr == nil || fields.TimeErr == nil {
		t.Fatalf("expected both fields to fail: %+v", fields)
	}
	if !errors.Is(fields.Err(), ErrFieldParse) {
		t.Fatalf("unexpected combined error: %v", fields.Err())
	}

	fields = g.ParseFields("f", Tokens{Title: "t", Date: "2023.13.01", Time: "00.31.42"})
	if fields.DateErr == nil {
		t.Fatal("expected date failure")
	}
	if fields.TimeErr != nil || fields.Time.Minute != 31 || fields.Time.Second != 42 {
		t.Fatalf("expected time to parse independently: %+v", fields)
	}
}
