// Package commands defines the citylaw CLI and wires dependencies for subcommands.
//
// Commands
//
//   - build      Validate the data packs and write the static site
//   - validate   Check every city pack, cluster file and cross-reference
//   - routes     List every generated path
//   - sitemap    Print sitemap.xml (or robots.txt with --robots)
//   - serve      Run the preview server, rendering from disk per request
//
// # Implementation
//
// The root command loads citylaw.yaml, applies environment and flag
// overrides, and builds the dependency graph (stores, renderer, services,
// server) before any subcommand runs. Every command runs under a context
// cancelled by SIGINT or SIGTERM.
package commands
