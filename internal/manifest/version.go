package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckVersion reports an error if version does not satisfy the manifest's
// requires constraint. Development builds ("dev" or any non-semver string)
// and manifests without a constraint always pass.
func (m *Manifest) CheckVersion(version string) error {
	if m.Requires == "" {
		return nil
	}
	constraint, err := semver.NewConstraint(m.Requires)
	if err != nil {
		return fmt.Errorf("manifest %s: parsing requires %q: %w", m.Name, m.Requires, err)
	}

	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return nil
	}
	if !constraint.Check(v) {
		return fmt.Errorf("manifest %s requires version %s, running %s", m.Name, m.Requires, version)
	}
	return nil
}
