// file: cmd/extract.go
// version: 1.0.0
// guid: f3e91afe-5836-478f-a251-18b217763346

package cmd

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jdfalk/fuzzymatch/internal/config"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
	"github.com/jdfalk/fuzzymatch/pkg/process"
)

// extractMode selects which process function serves the extract command.
type extractMode int

const (
	modeRanked extractMode = iota
	modeBest
	modeStream
)

var extractCmd = &cobra.Command{
	Use:   "extract <query>",
	Short: "Rank the lines of a file by similarity to a query",
	Long: `Rank the lines of --choices (one choice per line, "-" for stdin) against
the query. --best prints only the top match, --stream prints matches in
input order and stops reading scores after --limit matches.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		choicesPath, _ := cmd.Flags().GetString("choices")
		prefilter, _ := cmd.Flags().GetBool("prefilter")
		useDistance, _ := cmd.Flags().GetBool("distance")
		best, _ := cmd.Flags().GetBool("best")
		stream, _ := cmd.Flags().GetBool("stream")

		if err := config.AppConfig.CheckFormat(); err != nil {
			return err
		}
		mode := modeRanked
		switch {
		case best && stream:
			return fmt.Errorf("--best and --stream are mutually exclusive")
		case best:
			mode = modeBest
		case stream:
			mode = modeStream
		}

		query := args[0]
		choices, err := readLines(choicesPath, cmd.InOrStdin())
		if err != nil {
			return err
		}
		var index []int
		if prefilter {
			choices, index = prefilterChoices(query, choices)
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
			return runExtract(cmd, query, choices, index, process.DistanceFunc(lev.Distance), opts, mode)
		}

		scorer, err := config.AppConfig.ScorerFunc()
		if err != nil {
			return err
		}
		opts, err := config.AppConfig.SimilarityOptions()
		if err != nil {
			return err
		}
		return runExtract(cmd, query, choices, index, process.Similarity[fuzz.Option](scorer), opts, mode)
	},
}

func init() {
	extractCmd.Flags().String("choices", "", "file with one choice per line (- for stdin)")
	extractCmd.Flags().Bool("prefilter", false, "only score choices containing the query's characters in order")
	extractCmd.Flags().Bool("distance", false, "rank by weighted edit distance instead of --scorer")
	extractCmd.Flags().Bool("best", false, "print only the best match")
	extractCmd.Flags().Bool("stream", false, "print matches in input order")
	extractCmd.MarkFlagRequired("choices")
}

func runExtract[T process.Score](cmd *cobra.Command, query string, choices []string, index []int,
	scorer process.Scorer[T], opts process.Options[T], mode extractMode) error {
	var matches []process.Match[T]
	switch mode {
	case modeBest:
		m, ok, err := process.ExtractOne(query, choices, scorer, opts)
		if err != nil {
			return err
		}
		if ok {
			matches = append(matches, m)
		}
	case modeStream:
		for m, err := range process.ExtractIter(query, choices, scorer, opts) {
			if err != nil {
				return err
			}
			matches = append(matches, m)
			if opts.Limit > 0 && len(matches) == opts.Limit {
				break
			}
		}
	default:
		var err error
		matches, err = process.Extract(query, choices, scorer, opts)
		if err != nil {
			return err
		}
	}

	// report positions in the unfiltered input
	if index != nil {
		for i := range matches {
			matches[i].Index = index[matches[i].Index]
		}
	}
	log.WithFields(log.Fields{"choices": len(choices), "matches": len(matches)}).Debug("extract finished")
	return writeMatches(cmd.OutOrStdout(), config.AppConfig.Format, matches)
}

// prefilterChoices keeps the choices that contain every character of query
// in order, ignoring case, and returns their original positions.
func prefilterChoices(query string, choices []string) ([]string, []int) {
	q := strings.ToLower(query)
	kept := make([]string, 0, len(choices))
	index := make([]int, 0, len(choices))
	for i, c := range choices {
		if fuzzy.Match(q, strings.ToLower(c)) {
			kept = append(kept, c)
			index = append(index, i)
		}
	}
	log.WithFields(log.Fields{"before": len(choices), "after": len(kept)}).Debug("prefilter applied")
	return kept, index
}
