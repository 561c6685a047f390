package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/webrtc-build/deplink/internal/linker"
)

func init() {
	rootCmd.AddCommand(planCmd)
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "List the links a run would create",
	Long: `Resolve the fixed and discovered links for this checkout and print them
without touching the filesystem. The sentinel is ignored.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, m, err := resolve()
		if err != nil {
			return err
		}

		links, err := linker.Plan(layout, m)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		discovered := 0
		for _, l := range links {
			marker := " "
			if l.Discovered {
				marker = "+"
				discovered++
			}
			fmt.Fprintf(out, "%s %s -> %s\n", marker, layout.Rel(l.Destination), l.Source)
		}
		fmt.Fprintf(out, "%d links (%d discovered)\n", len(links), discovered)
		return nil
	},
}
