// Package cycle orchestrates diurnal-cycle runs: dataset loading, averaging,
// and result persistence.
package cycle
