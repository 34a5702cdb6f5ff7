// Package watch monitors a directory for incoming dataset granules and runs
// a handler per settled file. Events are debounced per path so a granule
// still being written is only processed once.
package watch
