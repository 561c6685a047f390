//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/config"
)

// testEnv holds paths to an isolated primary checkout.
type testEnv struct {
	HomeDir string // HOME, so ~/.deplink/config.yaml is sandboxed
	Root    string // primary (webrtc/src) tree, also the working directory
}

// setupTestEnv creates an isolated HOME and primary tree, changes into the
// tree, and resets viper. Everything is restored after the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir: t.TempDir(),
		Root:    t.TempDir(),
	}
	t.Setenv("HOME", env.HomeDir)
	t.Setenv("USERPROFILE", env.HomeDir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Chdir(env.Root)

	for _, d := range []string{"tools", "third_party"} {
		mkdir(t, filepath.Join(env.Root, d))
	}
	return env
}

// setupChromium populates chromium/src with the fixed link sources and the
// given third_party directories and files.
func setupChromium(t *testing.T, root string, thirdPartyDirs, thirdPartyFiles []string) {
	t.Helper()

	src := filepath.Join(root, "chromium", "src")
	for _, d := range []string{"build", "buildtools", "tools/clang", "tools/gn", "tools/protoc_wrapper"} {
		mkdir(t, filepath.Join(src, filepath.FromSlash(d)))
	}
	writeFile(t, filepath.Join(src, "tools", "isolate_driver.py"), "#!/usr/bin/env python3\n")

	tp := filepath.Join(src, "third_party")
	mkdir(t, tp)
	for _, d := range thirdPartyDirs {
		mkdir(t, filepath.Join(tp, d))
		writeFile(t, filepath.Join(tp, d, "BUILD.gn"), "# "+d+"\n")
	}
	for _, f := range thirdPartyFiles {
		writeFile(t, filepath.Join(tp, f), f+"\n")
	}
}

// layout loads settings the way the CLI does and resolves the checkout.
func layout(t *testing.T) (checkout.Layout, config.Settings) {
	t.Helper()
	config.Load()
	settings := config.Current()
	l, err := checkout.FromWorkingDir(settings)
	if err != nil {
		t.Fatalf("FromWorkingDir: %v", err)
	}
	return l, settings
}

func mkdir(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected %s to exist: %v", path, err)
	}
}

func assertSymlink(t *testing.T, path, target string) {
	t.Helper()
	got, err := os.Readlink(path)
	if err != nil {
		t.Errorf("expected symlink at %s: %v", path, err)
		return
	}
	if got != target {
		t.Errorf("%s -> %s, want %s", path, got, target)
	}
}
