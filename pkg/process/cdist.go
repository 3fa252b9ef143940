// file: pkg/process/cdist.go
// version: 1.0.0
// guid: 04f8b7c8-81a5-4e6c-8836-1fe0e5dcf38c

package process

import (
	"time"

	"golang.org/x/sync/errgroup"
)

// Matrix is a dense row-major score matrix.
type Matrix[T Score] struct {
	Rows int `json:"rows" yaml:"rows"`
	Cols int `json:"cols" yaml:"cols"`
	Data []T `json:"data" yaml:"data"`
}

// NewMatrix allocates a rows x cols matrix of zero scores.
func NewMatrix[T Score](rows, cols int) *Matrix[T] {
	return &Matrix[T]{Rows: rows, Cols: cols, Data: make([]T, rows*cols)}
}

func (m *Matrix[T]) At(i, j int) T     { return m.Data[i*m.Cols+j] }
func (m *Matrix[T]) Set(i, j int, v T) { m.Data[i*m.Cols+j] = v }

// Row returns row i, sharing storage with the matrix.
func (m *Matrix[T]) Row(i int) []T {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// Cdist scores every query against every choice. Cell (i, j) holds
// scorer(queries[i], choices[j]) after processing. Cells failing the cutoff
// hold 0 for similarities and cutoff+1 for distances.
//
// Both sides share one processing memo, so Cdist(xs, xs, ...) processes each
// distinct string once. Rows are spread over Workers goroutines.
func Cdist[T Score](queries, choices []string, scorer Scorer[T], opts Options[T]) (*Matrix[T], error) {
	start := time.Now()
	prep := newPreparer(opts.Processor)

	m, err := cdist(queries, choices, scorer, opts, prep)
	finish("cdist", start, len(queries)*len(choices), prep, err)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func cdist[T Score](queries, choices []string, scorer Scorer[T], opts Options[T], prep *preparer) (*Matrix[T], error) {
	pq, err := prepareAll(prep, SideQueries, queries)
	if err != nil {
		return nil, err
	}
	pc, err := prepareAll(prep, SideChoices, choices)
	if err != nil {
		return nil, err
	}

	order := scorer.Order()
	var rejected T
	if order == LowerIsBetter && opts.ScoreCutoff != nil {
		rejected = *opts.ScoreCutoff + 1
	}

	m := NewMatrix[T](len(pq), len(pc))
	var g errgroup.Group
	g.SetLimit(opts.workers())
	for i := range pq {
		g.Go(func() error {
			row := m.Row(i)
			for j := range pc {
				score := scorer.Score(pq[i], pc[j])
				if !passes(order, score, opts.ScoreCutoff) {
					score = rejected
				}
				row[j] = score
			}
			if opts.OnRowComplete != nil {
				opts.OnRowComplete(i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return m, nil
}

func prepareAll(prep *preparer, side string, texts []string) ([]string, error) {
	out := make([]string, len(texts))
	for i, s := range texts {
		p, err := prep.prepare(side, i, s)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
