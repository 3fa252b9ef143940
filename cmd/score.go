// file: cmd/score.go
// version: 1.0.0
// guid: 8c934640-95cb-47f0-9cde-586687f7334d

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jdfalk/fuzzymatch/internal/config"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
)

var scoreCmd = &cobra.Command{
	Use:   "score <s1> <s2>",
	Short: "Similarity of two strings on a 0-100 scale",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		p, err := config.AppConfig.ProcessorFunc()
		if err != nil {
			return err
		}
		opts := []fuzz.Option{fuzz.WithProcessor(p)}
		if config.AppConfig.ScoreCutoff >= 0 {
			opts = append(opts, fuzz.WithScoreCutoff(config.AppConfig.ScoreCutoff))
		}

		names := fuzz.Names()
		if !all {
			if _, err := config.AppConfig.ScorerFunc(); err != nil {
				return err
			}
			names = []string{config.AppConfig.Scorer}
		}

		scores := make(map[string]float64, len(names))
		for _, name := range names {
			scorer, _ := fuzz.Lookup(name)
			scores[name] = scorer(args[0], args[1], opts...)
		}

		out := cmd.OutOrStdout()
		switch config.AppConfig.Format {
		case "yaml":
			return writeYAML(out, scores)
		case "csv":
			rows := [][]string{{"scorer", "score"}}
			for _, name := range names {
				rows = append(rows, []string{name, formatScore(scores[name])})
			}
			return writeCSV(out, rows)
		}
		if !all {
			fmt.Fprintln(out, formatScore(scores[names[0]]))
			return nil
		}
		for _, name := range names {
			fmt.Fprintf(out, "%-24s %s\n", name, formatScore(scores[name]))
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("all", false, "print every scorer instead of the configured one")
}
