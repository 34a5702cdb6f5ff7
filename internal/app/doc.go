// Package app wires stores, services, and the optional remote source into a
// shared context for the CLI commands.
package app
