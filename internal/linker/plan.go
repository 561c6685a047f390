package linker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/manifest"
)

// Spec names one link: an optional group (path segments below the tree
// root) and a leaf name.
type Spec struct {
	Group string
	Name  string
}

// Link is a Spec resolved against a layout.
type Link struct {
	Spec
	Source      string
	Destination string
	Discovered  bool
}

// Resolve computes the source and destination of s within l.
func (s Spec) Resolve(l checkout.Layout) Link {
	return Link{
		Spec:        s,
		Source:      l.Source(s.Group, s.Name),
		Destination: l.Destination(s.Group, s.Name),
	}
}

// FixedSpecs returns the manifest's fixed links in order, keeping only the
// first entry for any repeated group/name.
func FixedSpecs(m *manifest.Manifest) []Spec {
	seen := make(map[Spec]bool, len(m.Links))
	specs := make([]Spec, 0, len(m.Links))
	for _, e := range m.Links {
		s := Spec{Group: e.Group, Name: e.Name}
		if seen[s] {
			continue
		}
		seen[s] = true
		specs = append(specs, s)
	}
	return specs
}

// Discover lists the directories directly under group in the secondary tree
// and returns one Spec per directory, in directory order (sorted by name). Entries that are
// symlinks to directories count as directories; everything else is skipped.
func Discover(l checkout.Layout, group string) ([]Spec, error) {
	dir := filepath.Join(l.SourceRoot(), filepath.FromSlash(group))
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", l.Rel(dir), err)
	}

	var specs []Spec
	for _, e := range entries {
		info, err := os.Stat(filepath.Join(dir, e.Name()))
		if err != nil || !info.IsDir() {
			continue
		}
		specs = append(specs, Spec{Group: group, Name: e.Name()})
	}
	return specs, nil
}

// Plan resolves every link a run would create: the fixed links followed by
// the discovered ones, with duplicate destinations dropped.
func Plan(l checkout.Layout, m *manifest.Manifest) ([]Link, error) {
	var links []Link
	seen := make(map[string]bool)
	add := func(s Spec, discovered bool) {
		link := s.Resolve(l)
		if seen[link.Destination] {
			return
		}
		seen[link.Destination] = true
		link.Discovered = discovered
		links = append(links, link)
	}

	for _, s := range FixedSpecs(m) {
		add(s, false)
	}
	for _, d := range m.Discover {
		specs, err := Discover(l, d.Group)
		if err != nil {
			return nil, err
		}
		for _, s := range specs {
			add(s, true)
		}
	}
	return links, nil
}
