// file: cmd/cdist.go
// version: 1.0.0
// guid: fc763827-9aa2-4dbe-ba90-274cd1d732a7

package cmd

import (
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/jdfalk/fuzzymatch/internal/config"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
	"github.com/jdfalk/fuzzymatch/pkg/process"
)

var cdistCmd = &cobra.Command{
	Use:   "cdist",
	Short: "Score every query line against every choice line",
	Long: `Score every line of --queries against every line of --choices and print
the matrix, one row per query. Without --choices the queries are compared
with themselves.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		queriesPath, _ := cmd.Flags().GetString("queries")
		choicesPath, _ := cmd.Flags().GetString("choices")
		useDistance, _ := cmd.Flags().GetBool("distance")
		progress, _ := cmd.Flags().GetBool("progress")

		if err := config.AppConfig.CheckFormat(); err != nil {
			return err
		}
		queries, err := readLines(queriesPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
		choices := queries
		if choicesPath != "" {
			if choices, err = readLines(choicesPath, cmd.InOrStdin()); err != nil {
				return err
			}
		}

		if useDistance {
			lev, err := configuredMetric()
			if err != nil {
				return err
			}
			opts, err := config.AppConfig.DistanceOptions()
			if err != nil {
				return err
			}
			return runCdist(cmd, queries, choices, process.DistanceFunc(lev.Distance), opts, progress)
		}

		scorer, err := config.AppConfig.ScorerFunc()
		if err != nil {
			return err
		}
		opts, err := config.AppConfig.SimilarityOptions()
		if err != nil {
			return err
		}
		return runCdist(cmd, queries, choices, process.Similarity[fuzz.Option](scorer), opts, progress)
	},
}

func init() {
	cdistCmd.Flags().String("queries", "", "file with one query per line (- for stdin)")
	cdistCmd.Flags().String("choices", "", "file with one choice per line (default: the queries)")
	cdistCmd.Flags().Bool("distance", false, "fill the matrix with weighted edit distances instead of --scorer")
	cdistCmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	cdistCmd.MarkFlagRequired("queries")
}

func runCdist[T process.Score](cmd *cobra.Command, queries, choices []string,
	scorer process.Scorer[T], opts process.Options[T], progress bool) error {
	if progress {
		bar := progressbar.NewOptions(len(queries),
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionSetDescription("cdist"),
			progressbar.OptionShowCount(),
		)
		opts.OnRowComplete = func(int) { _ = bar.Add(1) }
		defer bar.Finish()
	}

	m, err := process.Cdist(queries, choices, scorer, opts)
	if err != nil {
		return err
	}
	return writeMatrix(cmd.OutOrStdout(), config.AppConfig.Format, queries, choices, m)
}
