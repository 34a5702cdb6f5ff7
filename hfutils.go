// Package hfutils is a toolbox with various utility functions for climate
// data operations: area-averaged diurnal cycles, 2-D histogram analysis, and
// compact datetime stamps for data files.
//
// The analysis packages live under internal/ and are exposed through the
// hfutils command line tool in cmd/hfutils.
package hfutils

// Version is the library version. Release tooling resolves the package
// version from this constant rather than hardcoding it in the manifest.
const Version = "0.3.0"
