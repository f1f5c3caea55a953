package summary_test

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"

	"clipmeta/internal/clip"
	"clipmeta/internal/summary"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Monster Hunter Rise", "monster hunter rise"},
		{"MONSTER HUNTER RISE", "monster hunter rise"},
		{"  Monster   Hunter Rise ", "monster hunter rise"},
		{"ＨＡＬＯ", "halo"},
		{"Straße", "strasse"},
	}
	for _, tt := range tests {
		if got := summary.Key(tt.in); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSummarizeGroupsAcrossGrammars(t *testing.T) {
	names := []string{
		"Monster Hunter Rise 2023.06.11 - 00.31.42.02.DVR.mp4",
		"MONSTER HUNTER RISE_replay_2023.06.12-01.15.mp4",
		"Halo_replay_2024.01.02-10.20.mp4",
		"Monster Hunter Rise 2023.06.10 - 22.00.00.01.DVR.mp4",
	}
	batch := clip.NewParser(nil).ParseBatch(context.Background(), names)
	if len(batch.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", batch.Failures)
	}

	sources := summary.Summarize(batch.Records)
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	halo, mhr := sources[0], sources[1]
	if halo.Name != "Halo" || halo.Clips != 1 {
		t.Fatalf("unexpected halo summary: %+v", halo)
	}
	if mhr.Name != "Monster Hunter Rise" {
		t.Fatalf("expected first spelling to be kept, got %q", mhr.Name)
	}
	if mhr.Clips != 3 {
		t.Fatalf("expected 3 clips, got %d", mhr.Clips)
	}
	wantFirst := civil.DateTime{Date: civil.Date{Year: 2023, Month: 6, Day: 10}, Time: civil.Time{Hour: 22}}
	wantLast := civil.DateTime{Date: civil.Date{Year: 2023, Month: 6, Day: 12}, Time: civil.Time{Hour: 1, Minute: 15}}
	if mhr.First != wantFirst || mhr.Last != wantLast {
		t.Fatalf("unexpected range: %v – %v", mhr.First, mhr.Last)
	}
	if len(mhr.Grammars) != 2 || mhr.Grammars[0] != clip.GrammarNvidia || mhr.Grammars[1] != clip.GrammarAMD {
		t.Fatalf("unexpected grammars: %v", mhr.Grammars)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := summary.Summarize(nil); len(got) != 0 {
		t.Fatalf("expected no sources, got %v", got)
	}
}
