// Package timeutil provides compact datetime stamps for data file names.
package timeutil

import "time"

// fileDatestampLayout is the compact UTC stamp used in granule file names,
// e.g. 20240131T235959Z.
const fileDatestampLayout = "20060102T150405Z"

// FileDatestamp formats a time as a compact UTC datestamp.
func FileDatestamp(t time.Time) string {
	return t.UTC().Format(fileDatestampLayout)
}

// ParseFileDatestamp parses a compact UTC datestamp.
func ParseFileDatestamp(s string) (time.Time, error) {
	return time.Parse(fileDatestampLayout, s)
}
