package manifest

// Manifest describes one link pass.
type Manifest struct {
	Name     string          `yaml:"name"`
	From     string          `yaml:"from,omitempty"`     // label of the secondary tree
	Into     string          `yaml:"into,omitempty"`     // label of the primary tree
	Requires string          `yaml:"requires,omitempty"` // semver constraint on the tool version
	Links    []LinkEntry     `yaml:"links"`
	Discover []DiscoverEntry `yaml:"discover,omitempty"`
}

// LinkEntry is one fixed link. An empty Group places the link at the top level.
type LinkEntry struct {
	Group string `yaml:"group,omitempty"`
	Name  string `yaml:"name"`
}

// DiscoverEntry names a directory of the secondary tree whose subdirectories
// are each linked under the same group.
type DiscoverEntry struct {
	Group string `yaml:"group"`
}

// SourceLabel returns the label used for the secondary tree in messages.
func (m *Manifest) SourceLabel() string {
	if m.From != "" {
		return m.From
	}
	return "source"
}

// TargetLabel returns the label used for the primary tree in messages.
func (m *Manifest) TargetLabel() string {
	if m.Into != "" {
		return m.Into
	}
	return "target"
}
