package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/webrtc-build/deplink/internal/linker"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of each link in this checkout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, m, err := resolve()
		if err != nil {
			return err
		}

		report, err := linker.Status(layout, m)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if report.Linked {
			fmt.Fprintf(out, "Sentinel %s present: linking done\n", layout.Sentinel)
		} else {
			fmt.Fprintf(out, "Sentinel %s absent: not yet linked\n", layout.Sentinel)
		}

		for _, s := range report.Links {
			icon := "??"
			switch s.State {
			case linker.StateOK:
				icon = "OK"
			case linker.StateStale:
				icon = "!!"
			case linker.StateMissing:
				icon = "--"
			case linker.StateBlocked:
				icon = "XX"
			}

			fmt.Fprintf(out, "  [%s] %-8s %s", icon, s.State, layout.Rel(s.Destination))
			if s.State == linker.StateStale {
				fmt.Fprintf(out, " (-> %s)", s.Actual)
			}
			fmt.Fprintln(out)
		}

		counts := report.Counts()
		fmt.Fprintf(out, "%d ok, %d stale, %d missing, %d blocked\n",
			counts[linker.StateOK], counts[linker.StateStale],
			counts[linker.StateMissing], counts[linker.StateBlocked])
		return nil
	},
}
