package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/webrtc-build/deplink/internal/branding"
	"github.com/webrtc-build/deplink/internal/config"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.
Environment variables override the file.

Keys:
  source_tree  secondary tree relative to the checkout root (default chromium/src), env %s
  sentinel     marker file relative to the checkout root (default .get-chromium-deps-ran), env %s
  manifest     path to a link manifest (default: built-in), env %s`,
		branding.HomeDir(),
		branding.EnvVar(config.KeySourceTree),
		branding.EnvVar(config.KeySentinel),
		branding.EnvVar(config.KeyManifest)),
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
