// Package platform provides the symlink primitives the linker is built on:
// plain creation, atomic create-or-replace, target reading, and a support
// probe. On Windows native symlinks need developer mode; when they are
// unavailable the error carries a hint instead of falling back to copies,
// since linked entries are whole directory trees.
package platform
