package checkout

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/webrtc-build/deplink/internal/manifest"
	"github.com/webrtc-build/deplink/internal/platform"
)

// Report tallies the problems found by Doctor.
type Report struct {
	Failures int
	Warnings int
}

// Healthy reports whether no check failed.
func (r Report) Healthy() bool { return r.Failures == 0 }

// Doctor inspects a checkout without modifying it and writes one line per
// check to w.
func Doctor(w io.Writer, l Layout, m *manifest.Manifest) Report {
	var r Report

	fmt.Fprintln(w, "Checkout check:")
	fmt.Fprintf(w, "  [INFO] root %s\n", l.Root)

	root := l.SourceRoot()
	info, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		fmt.Fprintf(w, "  [MISS] %s tree not found at %s\n", m.SourceLabel(), l.SourceTree)
		r.Failures++
	case err != nil:
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", l.SourceTree, err)
		r.Failures++
	case !info.IsDir():
		fmt.Fprintf(w, "  [FAIL] %s exists but is not a directory\n", l.SourceTree)
		r.Failures++
	default:
		fmt.Fprintf(w, "  [ OK ] %s tree at %s\n", m.SourceLabel(), l.SourceTree)
	}

	for _, d := range m.Discover {
		checkDiscoveryDir(w, l, d.Group, &r)
	}

	missing := 0
	for _, link := range m.Links {
		if _, err := os.Stat(l.Source(link.Group, link.Name)); err != nil {
			missing++
		}
	}
	if missing > 0 {
		fmt.Fprintf(w, "  [WARN] %d of %d fixed link sources missing (links would dangle)\n", missing, len(m.Links))
		r.Warnings++
	} else {
		fmt.Fprintf(w, "  [ OK ] all %d fixed link sources present\n", len(m.Links))
	}

	if platform.IsSymlinkSupported() {
		fmt.Fprintln(w, "  [ OK ] symlinks supported")
	} else {
		fmt.Fprintln(w, "  [FAIL] symlinks not supported (enable developer mode on Windows)")
		r.Failures++
	}

	if _, err := os.Lstat(l.SentinelPath()); err == nil {
		fmt.Fprintf(w, "  [INFO] %s present: links already created, runs will skip\n", l.Sentinel)
	} else {
		fmt.Fprintf(w, "  [INFO] %s absent: next run will create links\n", l.Sentinel)
	}

	return r
}

func checkDiscoveryDir(w io.Writer, l Layout, group string, r *Report) {
	dir := filepath.Join(l.SourceRoot(), filepath.FromSlash(group))
	display := filepath.Join(l.SourceTree, filepath.FromSlash(group))

	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s not readable: %v\n", display, err)
		r.Failures++
		return
	}

	dirs := 0
	for _, e := range entries {
		if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && info.IsDir() {
			dirs++
		}
	}
	fmt.Fprintf(w, "  [ OK ] %s readable (%d directories to link)\n", display, dirs)

	dest := l.Destination(group, "")
	if info, err := os.Stat(dest); err != nil || !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s does not exist in the checkout; its links cannot be created\n", l.Rel(dest))
		r.Warnings++
	}
}
