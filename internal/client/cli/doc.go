// Package cli provides the customer desk command-line client.
//
// It wires configuration, the HTTP client, the record store and the
// workflow controller, and exposes them two ways: an interactive shell
// (the default when no subcommand is given) and one-shot cobra commands
// (list, create, update, delete, version).
//
// The shell is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL and NewRootCmd for details.
package cli
