// Package hist orchestrates 2-D histogram runs over paired sample columns.
package hist
