// file: cmd/distance.go
// version: 1.1.0
// guid: c7acd55d-95bd-4687-a1bf-c0ee5448151b

package cmd

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/jdfalk/fuzzymatch/internal/config"
	"github.com/jdfalk/fuzzymatch/pkg/distance"
)

type distanceResult struct {
	Distance    int     `yaml:"distance"`
	MaxDistance int     `yaml:"max_distance"`
	Similarity  float64 `yaml:"similarity"`
	Weights     string  `yaml:"weights"`
}

var distanceCmd = &cobra.Command{
	Use:   "distance <s1> <s2>",
	Short: "Weighted edit distance between two strings",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lev, err := configuredMetric()
		if err != nil {
			return err
		}
		s1, s2, err := processArgs(args[0], args[1])
		if err != nil {
			return err
		}

		res := distanceResult{
			Distance:    lev.Distance(s1, s2),
			MaxDistance: lev.MaxDistance(utf8.RuneCountInString(s1), utf8.RuneCountInString(s2)),
			Similarity:  lev.NormalizedSimilarity(s1, s2),
			Weights:     lev.Weights().String(),
		}

		out := cmd.OutOrStdout()
		switch config.AppConfig.Format {
		case "yaml":
			return writeYAML(out, res)
		case "csv":
			return writeCSV(out, [][]string{
				{"distance", "max_distance", "similarity"},
				{strconv.Itoa(res.Distance), strconv.Itoa(res.MaxDistance), formatScore(res.Similarity)},
			})
		}
		fmt.Fprintf(out, "distance=%d max=%d similarity=%s weights=%s\n",
			res.Distance, res.MaxDistance, formatScore(res.Similarity), res.Weights)
		return nil
	},
}

var editopsCmd = &cobra.Command{
	Use:   "editops <s1> <s2>",
	Short: "Minimal edit script turning s1 into s2",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		indel, _ := cmd.Flags().GetBool("indel")
		opcodes, _ := cmd.Flags().GetBool("opcodes")

		s1, s2, err := processArgs(args[0], args[1])
		if err != nil {
			return err
		}

		var ops distance.EditScript
		if indel {
			ops = distance.IndelEditops(s1, s2)
		} else {
			lev, err := configuredMetric()
			if err != nil {
				return err
			}
			ops = lev.Editops(s1, s2)
		}

		out := cmd.OutOrStdout()
		if opcodes {
			blocks := ops.Opcodes(utf8.RuneCountInString(s1), utf8.RuneCountInString(s2))
			switch config.AppConfig.Format {
			case "yaml":
				return writeYAML(out, blocks)
			case "csv":
				rows := [][]string{{"kind", "src_start", "src_end", "dest_start", "dest_end"}}
				for _, b := range blocks {
					rows = append(rows, []string{b.Kind.String(),
						strconv.Itoa(b.SrcStart), strconv.Itoa(b.SrcEnd),
						strconv.Itoa(b.DestStart), strconv.Itoa(b.DestEnd)})
				}
				return writeCSV(out, rows)
			}
			for _, b := range blocks {
				fmt.Fprintf(out, "%-7s s1[%d:%d] s2[%d:%d]\n", b.Kind, b.SrcStart, b.SrcEnd, b.DestStart, b.DestEnd)
			}
			return nil
		}

		switch config.AppConfig.Format {
		case "yaml":
			if ops == nil {
				ops = distance.EditScript{}
			}
			return writeYAML(out, ops)
		case "csv":
			rows := [][]string{{"kind", "src_pos", "dest_pos"}}
			for _, op := range ops {
				rows = append(rows, []string{op.Kind.String(), strconv.Itoa(op.SrcPos), strconv.Itoa(op.DestPos)})
			}
			return writeCSV(out, rows)
		}
		for _, op := range ops {
			fmt.Fprintf(out, "%-7s %d %d\n", op.Kind, op.SrcPos, op.DestPos)
		}
		return nil
	},
}

func init() {
	editopsCmd.Flags().Bool("indel", false, "only insertions and deletions")
	editopsCmd.Flags().Bool("opcodes", false, "print aligned blocks instead of single edits")
}

// configuredMetric builds the metric for the weights setting.
func configuredMetric() (*distance.Levenshtein, error) {
	w, err := config.AppConfig.ParsedWeights()
	if err != nil {
		return nil, err
	}
	return distance.New(w)
}

// processArgs applies the configured processor to a pair of arguments.
func processArgs(a, b string) (string, string, error) {
	p, err := config.AppConfig.ProcessorFunc()
	if err != nil {
		return "", "", err
	}
	return p(a), p(b), nil
}
