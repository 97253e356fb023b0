package cmd

import (
	"github.com/spf13/cobra"

	"noteremote/internal/output"
)

var centerCmd = &cobra.Command{
	Use:   "center",
	Short: "Center the selected row in the navigation pane",
	Long: "Re-find the connected window, locate its navigation Tree or List,\n" +
		"and scroll so the currently selected row sits in the vertical center.",
	RunE: runCenter,
}

func init() {
	rootCmd.AddCommand(centerCmd)
}

func runCenter(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	w, sig, err := a.resolveConnected()
	if err != nil {
		return err
	}
	a.refreshSignature(w, sig)

	result := a.session.CenterSelection(w)
	return output.Print(result)
}
