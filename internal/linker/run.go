package linker

import (
	"fmt"
	"io"
	"strings"

	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/manifest"
	"github.com/webrtc-build/deplink/internal/platform"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Result summarizes a Run.
type Result struct {
	Skipped    bool // sentinel was present, nothing done
	Fixed      int
	Discovered int
}

// Linked returns the total number of links created.
func (r *Result) Linked() int { return r.Fixed + r.Discovered }

// Run performs the link pass for l as described by m, writing progress to w.
//
// If the sentinel exists Run returns immediately. Otherwise it force-links
// every link of Plan (fixed entries first, then each directory of every
// discovery group, each destination once) and finally writes the sentinel. The first failure aborts the run and leaves the
// sentinel unwritten, so a re-run starts over.
func Run(w io.Writer, l checkout.Layout, m *manifest.Manifest) (*Result, error) {
	sentinel := SentinelFor(l)
	done, err := sentinel.Exists()
	if err != nil {
		return nil, err
	}
	if done {
		fmt.Fprintf(w, "Already linked to %s deps, skipping\n", m.SourceLabel())
		return &Result{Skipped: true}, nil
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "Linking paths in %s tree to %s tree...\n", m.SourceLabel(), m.TargetLabel())

	links, err := Plan(l, m)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	for _, link := range links {
		if err := forceLink(w, l, link); err != nil {
			return nil, err
		}
		if link.Discovered {
			result.Discovered++
		} else {
			result.Fixed++
		}
	}

	if err := sentinel.Mark(); err != nil {
		return nil, err
	}

	printer.Fprintf(w, "Linked %d paths (%d discovered)\n", result.Linked(), result.Discovered)
	return result, nil
}

func forceLink(w io.Writer, l checkout.Layout, link Link) error {
	if err := platform.ReplaceSymlink(link.Source, link.Destination); err != nil {
		return fmt.Errorf("linking %s: %w", l.Rel(link.Destination), err)
	}
	fmt.Fprintf(w, "  %s -> %s\n", l.Rel(link.Destination), link.Source)
	return nil
}
