package linker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/webrtc-build/deplink/internal/checkout"
)

// Sentinel is the marker file recording that a checkout has been linked.
// Access goes through an os.Root so the marker can never be read or written
// outside the checkout.
type Sentinel struct {
	root string
	name string
}

// SentinelFor returns the sentinel of l.
func SentinelFor(l checkout.Layout) Sentinel {
	return Sentinel{root: l.Root, name: l.Sentinel}
}

// Exists reports whether the marker file is present. A symlink counts only
// if its target exists.
func (s Sentinel) Exists() (bool, error) {
	r, err := os.OpenRoot(s.root)
	if err != nil {
		return false, fmt.Errorf("opening checkout root: %w", err)
	}
	defer r.Close()

	_, err = r.Stat(s.name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("checking sentinel %s: %w", s.name, err)
	}
}

// Mark creates the marker file, truncating it if present.
func (s Sentinel) Mark() error {
	r, err := os.OpenRoot(s.root)
	if err != nil {
		return fmt.Errorf("opening checkout root: %w", err)
	}
	defer r.Close()

	f, err := r.Create(s.name)
	if err != nil {
		return fmt.Errorf("writing sentinel %s: %w", s.name, err)
	}
	return f.Close()
}
