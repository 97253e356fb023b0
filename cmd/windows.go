package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"noteremote/internal/model"
	"noteremote/internal/output"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List OneNote windows",
	Long: "List the visible windows that classify as OneNote. With --all, list\n" +
		"every visible top-level window instead.",
	RunE: runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
	windowsCmd.Flags().Bool("all", false, "List every visible window, not just OneNote")
}

func runWindows(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")

	var windows []model.WindowInfo
	if all {
		windows = a.provider.Enumerator.Enumerate(nil)
	} else {
		windows = a.resolver.EnumerateTarget()
	}
	if windows == nil {
		windows = []model.WindowInfo{}
	}

	if output.OutputFormat == output.FormatTable {
		candidates := make([]model.ScoredCandidate, len(windows))
		for i, w := range windows {
			candidates[i] = model.ScoredCandidate{Window: w}
		}
		output.PrintWindowTable(os.Stdout, candidates, false, 0)
		return nil
	}
	return output.Print(windows)
}
