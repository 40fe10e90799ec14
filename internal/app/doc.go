// Package app wires application dependencies for the CLI.
//
// It builds the concrete store and the wallet service from Config,
// exposing the service via the Wire struct for commands to use.
package app
