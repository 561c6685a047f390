// Package config manages user-level settings stored at ~/.deplink/config.yaml
// and DEPLINK_* environment variables. The settings locate the secondary tree,
// the sentinel marker, and an optional custom link manifest; every key has a
// default, so no config file is needed for the standard Chromium/WebRTC layout.
package config
