package output

import (
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"noteremote/internal/model"
)

var (
	scoreGood = color.New(color.FgGreen)
	scoreBad  = color.New(color.Faint)
)

// PrintWindowTable renders candidate windows as a human-readable table.
// When scored is true the score column is colored against minScore.
func PrintWindowTable(w io.Writer, candidates []model.ScoredCandidate, scored bool, minScore int) {
	header := []string{"Handle", "PID", "Class", "Title"}
	if scored {
		header = append(header, "Score")
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader(header),
		tablewriter.WithAlignment(tw.MakeAlign(len(header), tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, c := range candidates {
		row := []any{
			"0x" + strconv.FormatUint(uint64(c.Window.Handle), 16),
			strconv.FormatUint(uint64(c.Window.ProcessID), 10),
			c.Window.ClassName,
			c.Window.Title,
		}
		if scored {
			score := strconv.Itoa(c.Score)
			if c.Score >= minScore {
				score = scoreGood.Sprint(score)
			} else {
				score = scoreBad.Sprint(score)
			}
			row = append(row, score)
		}
		table.Append(row...)
	}

	table.Render()
}
