package linker

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/manifest"
	"github.com/webrtc-build/deplink/internal/platform"
)

const sentinelName = ".get-chromium-deps-ran"

// setupCheckout creates a primary tree with a nested chromium/src holding the
// given directories and files, plus empty tools/ and third_party/ in the
// primary tree.
func setupCheckout(t *testing.T, dirs []string, files []string) checkout.Layout {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this machine")
	}

	root := t.TempDir()
	for _, d := range append([]string{"tools", "third_party", "chromium/src/third_party"}, dirs...) {
		if err := os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755); err != nil {
			t.Fatal(err)
		}
	}
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	l, err := checkout.New(root, "chromium/src", sentinelName)
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func smallManifest() *manifest.Manifest {
	return &manifest.Manifest{
		Name: "test",
		From: "chromium",
		Into: "webrtc",
		Links: []manifest.LinkEntry{
			{Name: "build"},
			{Group: "tools", Name: "gn"},
			{Group: "tools", Name: "protoc_wrapper"},
			{Group: "tools", Name: "protoc_wrapper"},
		},
		Discover: []manifest.DiscoverEntry{{Group: "third_party"}},
	}
}

type entry struct {
	mode   fs.FileMode
	target string
}

// snapshot records every path under the primary tree, excluding the
// secondary tree, without following symlinks.
func snapshot(t *testing.T, l checkout.Layout) map[string]entry {
	t.Helper()
	out := make(map[string]entry)
	err := filepath.WalkDir(l.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == l.SourceRoot() {
			return filepath.SkipDir
		}
		e := entry{mode: d.Type()}
		if d.Type()&fs.ModeSymlink != 0 {
			e.target, _ = os.Readlink(path)
		}
		out[l.Rel(path)] = e
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	return out
}

func assertLink(t *testing.T, path, want string) {
	t.Helper()
	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("%s is not a symlink: %v", path, err)
		return
	}
	if got != want {
		t.Errorf("%s -> %s, want %s", path, got, want)
	}
}

func assertNotExist(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Errorf("expected %s not to exist (err=%v)", path, err)
	}
}
