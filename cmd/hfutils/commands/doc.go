// Package commands defines the hfutils CLI and wires dependencies for subcommands.
//
// Commands
//
//   - version    Print the library version
//   - info       Summarise a dataset CSV
//   - localtime  Approximate the local time for a longitude
//   - diurnal    Compute the average diurnal cycle of a dataset
//   - hist2d     Compute a compound or conditional 2-D histogram
//   - fetch      Pull a gridded variable from InfluxDB into a dataset CSV
//   - export     Push a computed diurnal cycle back to InfluxDB
//   - watch      Process incoming dataset granules as they arrive
//
// # Implementation
//
// The root command loads the YAML config and builds a dependency graph
// (stores, services, optional InfluxDB client) before any subcommand runs,
// so handlers share one app context.
package commands
