// Package app wires application dependencies for the CLI.
//
// It loads Config from citylaw.yaml and the environment, then builds the
// concrete stores, renderer, services, preview server and watcher from it,
// exposing them via the Wire struct for commands to use.
package app
