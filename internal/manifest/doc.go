// Package manifest defines the link manifest: the fixed (group, name) links
// and the discovery groups a link pass processes. The default manifest,
// describing the Chromium paths a WebRTC checkout borrows, is embedded in the
// binary. Manifests are YAML, validated against an embedded JSON schema, and
// may constrain the tool version with a semver range.
package manifest
