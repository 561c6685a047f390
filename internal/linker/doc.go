// Package linker performs the link pass: it symlinks a fixed set of paths and
// every directory of the discovery groups from the secondary tree into the
// primary tree, then writes a sentinel so later runs are no-ops. It also
// plans link sets and reports their status without modifying anything.
package linker
