package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"noteremote/internal/output"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Select a row in the navigation pane by text",
	Long: "Find a row in the connected window's navigation pane by its display\n" +
		"text and select it. With --fuzzy, the closest match wins; with\n" +
		"--center, the row is centered afterwards.",
	RunE: runSelect,
}

func init() {
	rootCmd.AddCommand(selectCmd)
	selectCmd.Flags().String("text", "", "Row text to select (required)")
	selectCmd.Flags().Bool("fuzzy", false, "Use fuzzy matching instead of exact normalized matching")
	selectCmd.Flags().Bool("center", false, "Center the row after selecting it")
}

func runSelect(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	if text == "" {
		return fmt.Errorf("--text is required")
	}
	fuzzy, _ := cmd.Flags().GetBool("fuzzy")
	center, _ := cmd.Flags().GetBool("center")

	a, err := newApp()
	if err != nil {
		return err
	}

	w, sig, err := a.resolveConnected()
	if err != nil {
		return err
	}
	a.refreshSignature(w, sig)

	result, err := a.session.SelectItem(w, text, fuzzy, center)
	if err != nil {
		return err
	}
	return output.Print(result)
}
