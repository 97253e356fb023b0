package cmd

import (
	"github.com/spf13/cobra"

	"noteremote/internal/output"
	"noteremote/internal/resolve"
)

var connectCmd = &cobra.Command{
	Use:   "connect",
	Short: "Connect to a OneNote window and store its signature",
	Long: "Pick one OneNote window, capture its identity signature, and persist\n" +
		"it. Later commands re-find the window from the signature even after\n" +
		"OneNote restarts.",
	RunE: runConnect,
}

func init() {
	rootCmd.AddCommand(connectCmd)
	connectCmd.Flags().String("title", "", "Pick the window whose title contains this substring")
	connectCmd.Flags().Uint64("handle", 0, "Pick the window with this exact handle")
}

func runConnect(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	handle, _ := cmd.Flags().GetUint64("handle")

	picked, err := pickWindow(a.resolver.EnumerateTarget(), handle, title)
	if err != nil {
		return err
	}

	w, err := a.provider.Desktop.OpenWindow(picked.Handle)
	if err != nil {
		return err
	}

	sig := resolve.BuildSignature(w, a.provider.Inspector)
	if err := a.store.Save(sig); err != nil {
		return err
	}

	log.Info().
		Uint64("handle", uint64(sig.Handle)).
		Str("title", sig.Title).
		Str("executable", sig.ExecutableName).
		Msg("connected")
	return output.Print(sig)
}
