// Package checkout resolves paths within the primary tree: where the
// secondary tree lives, where the sentinel marker goes, and the source and
// destination of each (group, name) link. It also runs read-only health
// checks on a checkout.
package checkout
