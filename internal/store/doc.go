// Package store provides file-based persistence for hfutils data.
//
// It contains concrete implementations of the domain storage interfaces,
// exchanging gridded datasets and analysis results as CSV on disk. All
// methods are concurrency-safe via internal locking; writes go through a
// temp file and rename.
//
// Formats:
//   - Dataset: long form, header "time,lon,<var...>", RFC 3339 times,
//     empty cells are NaN.
//   - Diurnal cycle: header "local_time,<var>,<var>_count,...", local_time
//     as HH:MM:SS.
//   - 2-D histogram: y-bin centers down the first column, x-bin centers
//     across the header.
package store
