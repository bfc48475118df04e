package helper

import (
	"testing"
	"time"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name string
		lap  time.Duration
		want string
	}{
		{name: "zero", lap: 0, want: "0:00:00.000"},
		{name: "five and a half seconds", lap: 5500 * time.Millisecond, want: "0:00:05.500"},
		{name: "whole seconds keep the fraction", lap: 72 * time.Second, want: "0:01:12.000"},
		{name: "microseconds are truncated", lap: 64*time.Second + 415999*time.Microsecond, want: "0:01:04.415"},
		{name: "hours are not padded", lap: 10*time.Hour + 3*time.Minute, want: "10:03:00.000"},
		{name: "more than a day", lap: 25*time.Hour + time.Millisecond, want: "25:00:00.001"},
		{name: "negative", lap: -(5*time.Second + 500999*time.Microsecond), want: "-0:00:05.500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLapTime(tt.lap); got != tt.want {
				t.Errorf("FormatLapTime(%v) = %q, want %q", tt.lap, got, tt.want)
			}
		})
	}
}

func TestIsDriverCode(t *testing.T) {
	tests := map[string]bool{
		"SVF":  true,
		"ÄBC":  true,
		"SV":   false,
		"SVFX": false,
		"S F":  false,
		"":     false,
	}

	for code, want := range tests {
		if got := IsDriverCode(code); got != want {
			t.Errorf("IsDriverCode(%q) = %v, want %v", code, got, want)
		}
	}
}

func TestSplitDriverCode(t *testing.T) {
	code, rest, ok := SplitDriverCode("SVF2018-05-24_12:02:58.917")
	if !ok {
		t.Fatal("SplitDriverCode: expected ok")
	}
	if code != "SVF" {
		t.Errorf("code = %q, want %q", code, "SVF")
	}
	if rest != "2018-05-24_12:02:58.917" {
		t.Errorf("rest = %q, want %q", rest, "2018-05-24_12:02:58.917")
	}

	if _, _, ok := SplitDriverCode("SV"); ok {
		t.Error("SplitDriverCode(\"SV\") should fail")
	}
	code, rest, ok = SplitDriverCode("S F2018-05-24_12:02:58.917")
	if !ok || code != "S F" || rest != "2018-05-24_12:02:58.917" {
		t.Errorf("SplitDriverCode = %q, %q, %v, want the first three characters as the code", code, rest, ok)
	}
}
