package diurnal_test

import (
	"errors"
	"testing"
	"time"

	"github.com/HF7weatherman/hfutils/internal/diurnal"
	"github.com/HF7weatherman/hfutils/internal/domain"
)

func TestApproxLocalTime_RawOffsets(t *testing.T) {
	ref := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		lon  float64
		want time.Time
	}{
		{0, ref},
		{180, ref.Add(12 * time.Hour)},
		{-90, ref.Add(-6 * time.Hour)},
		{15, ref.Add(time.Hour)},
	}
	for _, c := range cases {
		got := diurnal.ApproxLocalTime(ref, c.lon, 3600, domain.LocalTimeOptions{})
		if !got.Equal(c.want) {
			t.Fatalf("lon %v: got %v, want %v", c.lon, got, c.want)
		}
	}
}

func TestApproxLocalTime_KeepResolutionTruncates(t *testing.T) {
	ref := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	opts := domain.LocalTimeOptions{KeepResolution: true}

	// 10 degrees east = 2400 s, which truncates to zero hours.
	got := diurnal.ApproxLocalTime(ref, 10, 3600, opts)
	if !got.Equal(ref) {
		t.Fatalf("lon 10: got %v, want %v", got, ref)
	}

	// 20 degrees east = 4800 s, one full hour.
	got = diurnal.ApproxLocalTime(ref, 20, 3600, opts)
	if want := ref.Add(time.Hour); !got.Equal(want) {
		t.Fatalf("lon 20: got %v, want %v", got, want)
	}

	// Westward offsets truncate toward zero, not down.
	got = diurnal.ApproxLocalTime(ref, -10, 3600, opts)
	if !got.Equal(ref) {
		t.Fatalf("lon -10: got %v, want %v", got, ref)
	}
}

func TestApproxLocalTime_Center(t *testing.T) {
	ref := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	opts := domain.LocalTimeOptions{KeepResolution: true, Center: true}

	got := diurnal.ApproxLocalTime(ref, 10, 3600, opts)
	if want := ref.Add(30 * time.Minute); !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolution_Uniform(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		start,
		start.Add(30 * time.Minute),
		start.Add(60 * time.Minute),
	}
	got, err := diurnal.Resolution(times)
	if err != nil {
		t.Fatalf("Resolution: %v", err)
	}
	if got != 1800 {
		t.Fatalf("got %d, want 1800", got)
	}
}

func TestResolution_Uneven(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	times := []time.Time{
		start,
		start.Add(30 * time.Minute),
		start.Add(90 * time.Minute),
	}
	if _, err := diurnal.Resolution(times); !errors.Is(err, diurnal.ErrUnevenSampling) {
		t.Fatalf("got %v, want ErrUnevenSampling", err)
	}
}

func TestResolution_TooShort(t *testing.T) {
	times := []time.Time{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)}
	if _, err := diurnal.Resolution(times); !errors.Is(err, diurnal.ErrUnevenSampling) {
		t.Fatalf("got %v, want ErrUnevenSampling", err)
	}
}
