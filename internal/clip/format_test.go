package clip

import (
	"testing"

	"cloud.google.com/go/civil"
)

func TestFormatParseDate(t *testing.T) {
	tests := []struct {
		token   string
		want    civil.Date
		wantErr bool
	}{
		{"2023.06.11", civil.Date{Year: 2023, Month: 6, Day: 11}, false},
		{"1999.12.31", civil.Date{Year: 1999, Month: 12, Day: 31}, false},
		{"2023.00.10", civil.Date{}, true},
		{"2023.13.01", civil.Date{}, true},
		{"2023.04.31", civil.Date{}, true},
		{"2023.4.01", civil.Date{}, true},
		{"23.04.01", civil.Date{}, true},
		{"2023-04-01", civil.Date{}, true},
		{"2023.04.01 ", civil.Date{}, true},
		{"+023.04.01", civil.Date{}, true},
		{"", civil.Date{}, true},
	}
	for _, tt := range tests {
		got, err := DateYMD.ParseDate(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDate(%q) = %v, want error", tt.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) returned error: %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tt.token, got, tt.want)
		}
		if !got.IsValid() {
			t.Errorf("ParseDate(%q) produced invalid date %v", tt.token, got)
		}
	}
}

func TestFormatParseTime(t *testing.T) {
	tests := []struct {
		format  Format
		token   string
		want    civil.Time
		wantErr bool
	}{
		{TimeHMS, "00.31.42", civil.Time{Minute: 31, Second: 42}, false},
		{TimeHMS, "23.59.59", civil.Time{Hour: 23, Minute: 59, Second: 59}, false},
		{TimeHMS, "24.00.00", civil.Time{}, true},
		{TimeHMS, "12.00.60", civil.Time{}, true},
		{TimeHMS, "12.00", civil.Time{}, true},
		{TimeHM, "01.15", civil.Time{Hour: 1, Minute: 15}, false},
		{TimeHM, "1.15", civil.Time{}, true},
		{TimeHM, "01.15.00", civil.Time{}, true},
		{TimeHM, "00.60", civil.Time{}, true},
	}
	for _, tt := range tests {
		got, err := tt.format.ParseTime(tt.token)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s ParseTime(%q) = %v, want error", tt.format, tt.token, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s ParseTime(%q) returned error: %v", tt.format, tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s ParseTime(%q) = %v, want %v", tt.format, tt.token, got, tt.want)
		}
	}
}

func TestFormatHasSeconds(t *testing.T) {
	if !TimeHMS.HasSeconds() {
		t.Error("expected hour.minute.second to have seconds")
	}
	if TimeHM.HasSeconds() {
		t.Error("expected hour.minute to have no seconds")
	}
}

func TestZeroFormatFails(t *testing.T) {
	var f Format
	if _, err := f.ParseDate("2023.06.11"); err == nil {
		t.Fatal("expected zero format to fail")
	}
}
