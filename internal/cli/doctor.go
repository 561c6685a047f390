package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/webrtc-build/deplink/internal/checkout"
	"github.com/webrtc-build/deplink/internal/config"
	"github.com/webrtc-build/deplink/internal/manifest"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a manifest file at the given path and exit")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for this checkout",
	Long: `Run read-only diagnostic checks: the secondary tree is present, discovery
directories are readable, symlinks are supported, and the sentinel state.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if checkManifest != "" {
			return runManifestCheck(out, checkManifest)
		}

		settings := config.Current()
		if err := runManifestCheck(out, settings.Manifest); err != nil {
			return err
		}

		layout, err := checkout.FromWorkingDir(settings)
		if err != nil {
			return err
		}
		m, err := loadManifest(settings.Manifest)
		if err != nil {
			return err
		}

		report := checkout.Doctor(out, layout, m)
		if !report.Healthy() {
			return fmt.Errorf("%d check(s) failed", report.Failures)
		}
		return nil
	},
}

func runManifestCheck(w io.Writer, path string) error {
	if path == "" {
		m, err := manifest.Default()
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return err
		}
		fmt.Fprintf(w, "Manifest: built-in %s (%d links)\n", m.Name, len(m.Links))
		return nil
	}

	fmt.Fprintf(w, "Manifest validation: %s\n", path)

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return fmt.Errorf("manifest validation failed: %w", err)
	}

	if result.Valid {
		m, err := loadManifest(path)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return fmt.Errorf("loading manifest %s: %w", path, err)
		}
		fmt.Fprintf(w, "  [ OK ] Valid manifest %s: %d links, %d discovery groups\n", m.Name, len(m.Links), len(m.Discover))
		if err := m.CheckVersion(buildVersion); err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			return err
		}
		return nil
	}

	fmt.Fprintf(w, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(w, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(w, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest %s has %d validation issue(s)", path, len(result.Issues))
}
