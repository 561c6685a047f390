package checkout

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/webrtc-build/deplink/internal/config"
)

// ErrEscapesRoot is returned when a configured relative path is absolute or
// climbs out of the primary tree.
var ErrEscapesRoot = errors.New("path must be relative to the checkout root")

// Layout anchors both trees at the primary checkout root.
type Layout struct {
	Root       string // absolute path of the primary tree
	SourceTree string // secondary tree, relative to Root
	Sentinel   string // marker file, relative to Root
}

// New builds a Layout, rejecting sourceTree or sentinel values that are not
// plain relative paths inside root.
func New(root, sourceTree, sentinel string) (Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, fmt.Errorf("resolving checkout root: %w", err)
	}
	for _, p := range []struct{ key, value string }{
		{config.KeySourceTree, sourceTree},
		{config.KeySentinel, sentinel},
	} {
		if err := checkRelative(p.value); err != nil {
			return Layout{}, fmt.Errorf("%s %q: %w", p.key, p.value, err)
		}
	}
	return Layout{
		Root:       abs,
		SourceTree: filepath.Clean(sourceTree),
		Sentinel:   filepath.Clean(sentinel),
	}, nil
}

// FromWorkingDir builds a Layout rooted at the current working directory.
func FromWorkingDir(s config.Settings) (Layout, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return Layout{}, fmt.Errorf("getting current directory: %w", err)
	}
	return New(cwd, s.SourceTree, s.Sentinel)
}

// SourceRoot returns the absolute path of the secondary tree.
func (l Layout) SourceRoot() string {
	return filepath.Join(l.Root, l.SourceTree)
}

// SentinelPath returns the absolute path of the marker file.
func (l Layout) SentinelPath() string {
	return filepath.Join(l.Root, l.Sentinel)
}

// Source returns the path inside the secondary tree for group/name.
func (l Layout) Source(group, name string) string {
	return filepath.Join(l.SourceRoot(), filepath.FromSlash(group), name)
}

// Destination returns the path inside the primary tree for group/name.
func (l Layout) Destination(group, name string) string {
	return filepath.Join(l.Root, filepath.FromSlash(group), name)
}

// Rel returns path relative to Root for display, or path itself if it is
// outside the tree.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

func checkRelative(p string) error {
	if p == "" {
		return errors.New("must not be empty")
	}
	if filepath.IsAbs(p) || !filepath.IsLocal(p) {
		return ErrEscapesRoot
	}
	return nil
}
