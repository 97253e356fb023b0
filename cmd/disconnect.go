package cmd

import (
	"github.com/spf13/cobra"

	"noteremote/internal/config"
	"noteremote/internal/output"
)

var disconnectCmd = &cobra.Command{
	Use:   "disconnect",
	Short: "Forget the stored window signature",
	RunE:  runDisconnect,
}

func init() {
	rootCmd.AddCommand(disconnectCmd)
}

func runDisconnect(cmd *cobra.Command, args []string) error {
	// Clearing the signature needs no live platform backend.
	store := config.NewStore(cfg.Paths.SignatureFile)
	if err := store.Clear(); err != nil {
		return err
	}

	log.Info().Msg("disconnected")
	return output.Print(map[string]bool{"disconnected": true})
}
