// Package diurnal computes area-averaged diurnal cycles.
//
// The approach approximates local solar time from longitude alone (240
// seconds per degree east), optionally snapped to the dataset's sampling
// resolution, and then averages every variable over the wall-clock time of
// day of those local times.
package diurnal
