// Package main hosts the multitube CLI entrypoint and command graph.
//
// The Cobra command tree manages channel groups, prints embeddable player
// addresses, scaffolds configuration, and runs an interactive watch session
// that drives the players of the active group. Configuration resolution,
// snapshot loading, and logging setup are centralized in the command context
// so subcommands only deal with the view-state store.
package main
