// file: cmd/output.go
// version: 1.0.0
// guid: 22204e94-b658-4b35-a3ee-9f1e756cb00f

package cmd

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jdfalk/fuzzymatch/pkg/process"
)

// readLines reads one string per line from path, or from stdin when path
// is "-". Blank lines are skipped.
func readLines(path string, stdin io.Reader) ([]string, error) {
	var r io.Reader = stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return lines, nil
}

func formatScore[T process.Score](v T) string {
	switch x := any(v).(type) {
	case float64:
		return strconv.FormatFloat(x, 'f', 2, 64)
	case int:
		return strconv.Itoa(x)
	}
	return fmt.Sprint(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}

func writeCSV(w io.Writer, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	return nil
}

// writeMatches prints extract results in the configured format.
func writeMatches[T process.Score](w io.Writer, format string, matches []process.Match[T]) error {
	switch format {
	case "yaml":
		if matches == nil {
			matches = []process.Match[T]{}
		}
		return writeYAML(w, matches)
	case "csv":
		rows := [][]string{{"index", "score", "choice"}}
		for _, m := range matches {
			rows = append(rows, []string{strconv.Itoa(m.Index), formatScore(m.Score), m.Choice})
		}
		return writeCSV(w, rows)
	}
	for _, m := range matches {
		fmt.Fprintf(w, "%s\t%d\t%s\n", formatScore(m.Score), m.Index, m.Choice)
	}
	return nil
}

// writeMatrix prints a Cdist result in the configured format.
func writeMatrix[T process.Score](w io.Writer, format string, queries, choices []string, m *process.Matrix[T]) error {
	switch format {
	case "yaml":
		rows := make([][]T, m.Rows)
		for i := range rows {
			rows[i] = m.Row(i)
		}
		return writeYAML(w, map[string]any{
			"queries": queries,
			"choices": choices,
			"scores":  rows,
		})
	case "csv":
		header := append([]string{""}, choices...)
		out := [][]string{header}
		for i, q := range queries {
			row := []string{q}
			for _, v := range m.Row(i) {
				row = append(row, formatScore(v))
			}
			out = append(out, row)
		}
		return writeCSV(w, out)
	}
	for i := 0; i < m.Rows; i++ {
		cells := make([]string, m.Cols)
		for j, v := range m.Row(i) {
			cells[j] = formatScore(v)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	return nil
}
