package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"noteremote/internal/model"
	"noteremote/internal/output"
	"noteremote/internal/resolve"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored signature and whether it still resolves",
	Long: "Report the persisted window signature, whether a live window\n" +
		"currently resolves for it, and (with --scores) how every visible\n" +
		"window scored against it.",
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().Bool("scores", false, "Include per-window match scores")
}

// statusReport is the status command's output document.
type statusReport struct {
	Connected bool                    `yaml:"connected"           json:"connected"`
	Resolved  bool                    `yaml:"resolved"            json:"resolved"`
	Signature *model.WindowSignature  `yaml:"signature,omitempty" json:"signature,omitempty"`
	Window    *model.WindowInfo       `yaml:"window,omitempty"    json:"window,omitempty"`
	Scores    []model.ScoredCandidate `yaml:"scores,omitempty"    json:"scores,omitempty"`
}

func runStatus(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}

	withScores, _ := cmd.Flags().GetBool("scores")

	sig, ok, err := a.store.Load()
	if err != nil {
		return err
	}

	report := statusReport{Connected: ok}
	if !ok {
		return output.Print(report)
	}
	report.Signature = &sig

	w, err := a.resolver.Resolve(sig)
	switch {
	case err == nil:
		report.Resolved = true
		info := model.WindowInfo{Handle: w.Handle()}
		if title, terr := w.Title(); terr == nil {
			info.Title = title
		}
		if class, cerr := w.ClassName(); cerr == nil {
			info.ClassName = class
		}
		if pid, perr := w.ProcessID(); perr == nil {
			info.ProcessID = pid
		}
		report.Window = &info
	case errors.Is(err, resolve.ErrNoMatch):
		// Still connected on disk, just not resolvable right now.
	default:
		return err
	}

	if withScores {
		report.Scores = a.resolver.ScoreAgainst(sig)
		if output.OutputFormat == output.FormatTable {
			output.PrintWindowTable(os.Stdout, report.Scores, true, a.resolver.MinScore)
			return nil
		}
	}
	return output.Print(report)
}
