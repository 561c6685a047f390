package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/webrtc-build/deplink/internal/branding"
	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/config"
	"github.com/webrtc-build/deplink/internal/linker"
	"github.com/webrtc-build/deplink/internal/manifest"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// loadManifest is replaced in tests.
var loadManifest = manifest.Load

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` links build tooling and third-party directories from a nested
secondary checkout (chromium/src by default) into the current checkout.

Run it with no arguments from the root of the primary tree. It runs once: after
a successful pass a sentinel file is written and later runs skip.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, m, err := resolve()
		if err != nil {
			return err
		}
		if err := m.CheckVersion(buildVersion); err != nil {
			return err
		}
		_, err = linker.Run(cmd.OutOrStdout(), layout, m)
		return err
	},
}

// resolve builds the checkout layout and loads the manifest from the
// current settings.
func resolve() (checkout.Layout, *manifest.Manifest, error) {
	settings := config.Current()
	layout, err := checkout.FromWorkingDir(settings)
	if err != nil {
		return checkout.Layout{}, nil, err
	}
	m, err := loadManifest(settings.Manifest)
	if err != nil {
		return checkout.Layout{}, nil, err
	}
	return layout, m, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
