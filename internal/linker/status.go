package linker

import (
	"os"

	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/manifest"
	"github.com/webrtc-build/deplink/internal/platform"
)

// LinkState classifies what currently sits at a link destination.
type LinkState string

const (
	StateOK      LinkState = "ok"      // symlink to the expected source
	StateStale   LinkState = "stale"   // symlink to somewhere else
	StateMissing LinkState = "missing" // nothing there
	StateBlocked LinkState = "blocked" // a file or directory occupies the path
)

// LinkStatus pairs a planned link with its current state.
type LinkStatus struct {
	Link
	State  LinkState
	Actual string // current symlink target, for stale links
}

// StatusReport is the read-only view of a checkout's links.
type StatusReport struct {
	Linked bool // sentinel present
	Links  []LinkStatus
}

// Counts tallies links by state.
func (r *StatusReport) Counts() map[LinkState]int {
	counts := make(map[LinkState]int)
	for _, s := range r.Links {
		counts[s.State]++
	}
	return counts
}

// Status inspects every link a run would create without modifying anything.
func Status(l checkout.Layout, m *manifest.Manifest) (*StatusReport, error) {
	linked, err := SentinelFor(l).Exists()
	if err != nil {
		return nil, err
	}
	links, err := Plan(l, m)
	if err != nil {
		return nil, err
	}

	report := &StatusReport{Linked: linked, Links: make([]LinkStatus, 0, len(links))}
	for _, link := range links {
		report.Links = append(report.Links, inspect(link))
	}
	return report, nil
}

func inspect(link Link) LinkStatus {
	st := LinkStatus{Link: link}

	info, err := os.Lstat(link.Destination)
	if err != nil {
		st.State = StateMissing
		return st
	}
	if info.Mode()&os.ModeSymlink == 0 {
		st.State = StateBlocked
		return st
	}

	target, err := platform.ReadSymlinkTarget(link.Destination)
	if err != nil {
		st.State = StateBlocked
		return st
	}
	if target == link.Source {
		st.State = StateOK
	} else {
		st.State = StateStale
		st.Actual = target
	}
	return st
}
