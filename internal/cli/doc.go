// Package cli defines the Cobra command tree for the deplink CLI. The root
// command performs the link pass; each other file registers one subcommand
// (plan, status, doctor, config, version) with the root. Commands delegate to
// internal packages and only handle arguments and output formatting.
package cli
