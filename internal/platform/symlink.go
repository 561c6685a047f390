package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ErrDirectoryInTheWay is returned by ReplaceSymlink when a real directory
// occupies the link path.
var ErrDirectoryInTheWay = errors.New("a directory is in the way")

// CreateSymlink creates a symbolic link at link pointing to target.
// On Windows a failure is annotated with a developer-mode hint.
func CreateSymlink(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}
	return fmt.Errorf("%w (symlinks on Windows require developer mode or an elevated shell)", err)
}

// ReplaceSymlink makes link a symbolic link to target, replacing whatever
// file or symlink is currently there. The new link is created under a
// temporary name in the same directory and renamed over link, so link is
// never observed missing. Directories are never replaced.
func ReplaceSymlink(target, link string) error {
	if info, err := os.Lstat(link); err == nil && info.IsDir() {
		return fmt.Errorf("%s: %w", link, ErrDirectoryInTheWay)
	}

	tmp := tempLinkPath(link)
	_ = os.Remove(tmp) // leftover from an interrupted run

	if err := CreateSymlink(target, tmp); err != nil {
		return err
	}
	if err := os.Rename(tmp, link); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ReadSymlinkTarget returns the target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	return os.Readlink(path)
}

// IsSymlinkSupported returns true if the current platform supports native symlinks.
// On Windows this attempts a test symlink to check developer mode.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	tmpDir := os.TempDir()
	link := filepath.Join(tmpDir, ".deplink-symlink-test")
	defer os.Remove(link)

	return os.Symlink(tmpDir, link) == nil
}

// tempLinkPath returns a hidden sibling of link unique to this process.
func tempLinkPath(link string) string {
	dir, base := filepath.Split(link)
	return filepath.Join(dir, fmt.Sprintf(".%s.%d.tmp", base, os.Getpid()))
}
