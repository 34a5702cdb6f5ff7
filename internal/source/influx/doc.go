// Package influx fetches gridded variables from InfluxDB and exports
// computed diurnal cycles back as points.
//
// Datasets are expected as one measurement per dataset with the longitude
// stored in a "lon" tag; FetchGrid pivots that tag into the longitude axis
// of a Dataset.
package influx
