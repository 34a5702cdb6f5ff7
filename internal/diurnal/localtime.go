package diurnal

import (
	"errors"
	"time"

	"github.com/HF7weatherman/hfutils/internal/domain"
)

// secondsPerDegree is the local-time offset per degree of longitude:
// 12 hours per 180 degrees.
const secondsPerDegree = 240.0

// ErrUnevenSampling is returned when a dataset's time axis is not evenly
// spaced, or has fewer than two samples.
var ErrUnevenSampling = errors.New(
	"dataset samples are not evenly spaced in time")

// OffsetSeconds returns the local-time offset for a longitude in whole
// seconds, truncated toward zero.
func OffsetSeconds(lon float64) int64 {
	return int64(lon * secondsPerDegree)
}

// ApproxLocalTime approximates the local time of a UTC reference time at the
// given longitude. resolutionSec is the sampling resolution of the dataset
// in seconds.
//
// With opts.KeepResolution the offset is truncated toward zero to a multiple
// of the resolution, so the adjusted times keep the sampling granularity.
// With opts.Center half a sampling interval is added after truncation.
func ApproxLocalTime(
	t time.Time,
	lon float64,
	resolutionSec int,
	opts domain.LocalTimeOptions,
) time.Time {
	offset := OffsetSeconds(lon)

	if opts.KeepResolution && resolutionSec > 0 {
		offset = offset / int64(resolutionSec) * int64(resolutionSec)
		if opts.Center {
			offset += int64(resolutionSec / 2)
		}
	}

	return t.Add(time.Duration(offset) * time.Second)
}

// Resolution returns the sampling resolution of a time axis in whole
// seconds. All consecutive differences must be equal, otherwise
// ErrUnevenSampling is returned.
func Resolution(times []time.Time) (int, error) {
	if len(times) < 2 {
		return 0, ErrUnevenSampling
	}
	step := times[1].Sub(times[0])
	for i := 2; i < len(times); i++ {
		if times[i].Sub(times[i-1]) != step {
			return 0, ErrUnevenSampling
		}
	}
	if step <= 0 || step%time.Second != 0 {
		return 0, ErrUnevenSampling
	}
	return int(step / time.Second), nil
}
