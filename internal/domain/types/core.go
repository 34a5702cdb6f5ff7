package types

import "fmt"

// VarName identifies a variable within a dataset.
type VarName string

// String returns the string form of the variable name.
func (v VarName) String() string { return string(v) }

// SecondOfDay is a wall-clock instant within a day, in whole seconds since
// midnight (0..86399). It is the grouping key for diurnal-cycle averaging.
type SecondOfDay int

// SecondsPerDay is the number of whole seconds in a civil day.
const SecondsPerDay = 24 * 60 * 60

// Clock returns the HH:MM:SS form of the second of day.
func (s SecondOfDay) Clock() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(s)/3600, int(s)/60%60, int(s)%60)
}

// NormAxis selects the normalisation axis of a conditional 2-D histogram.
type NormAxis string

// NormX and NormY enumerate the supported normalisation axes.
const (
	NormX NormAxis = "x"
	NormY NormAxis = "y"
)
