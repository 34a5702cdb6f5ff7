package timeutil_test

import (
	"testing"
	"time"

	"github.com/HF7weatherman/hfutils/internal/timeutil"
)

func TestFileDatestamp(t *testing.T) {
	in := time.Date(2024, 1, 31, 23, 59, 59, 0, time.UTC)
	if got, want := timeutil.FileDatestamp(in), "20240131T235959Z"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFileDatestamp_ConvertsToUTC(t *testing.T) {
	zone := time.FixedZone("UTC+2", 2*3600)
	in := time.Date(2024, 6, 1, 2, 0, 0, 0, zone)
	if got, want := timeutil.FileDatestamp(in), "20240601T000000Z"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFileDatestamp_RoundTrip(t *testing.T) {
	want := time.Date(2019, 12, 24, 18, 30, 0, 0, time.UTC)
	got, err := timeutil.ParseFileDatestamp(timeutil.FileDatestamp(want))
	if err != nil {
		t.Fatalf("ParseFileDatestamp: %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestParseFileDatestamp_Invalid(t *testing.T) {
	if _, err := timeutil.ParseFileDatestamp("2024-01-31"); err == nil {
		t.Fatal("expected parse error")
	}
}
