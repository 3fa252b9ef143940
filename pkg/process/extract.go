// file: pkg/process/extract.go
// version: 1.1.0
// guid: 00a82bec-1d1c-4cbe-93d1-f919886c08fa

package process

import (
	"context"
	"iter"
	"slices"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/jdfalk/fuzzymatch/internal/metrics"
)

// Match is one scored choice. Choice is the original, unprocessed text and
// Index its position in the choices slice.
type Match[T Score] struct {
	Choice string `json:"choice" yaml:"choice"`
	Score  T      `json:"score" yaml:"score"`
	Index  int    `json:"index" yaml:"index"`
}

// ExtractOne returns the best choice for query. Ties keep the earliest
// choice. The boolean is false when no choice passes the cutoff.
func ExtractOne[T Score](query string, choices []string, scorer Scorer[T], opts Options[T]) (Match[T], bool, error) {
	start := time.Now()
	prep := newPreparer(opts.Processor)
	order := scorer.Order()

	var best Match[T]
	found := false
	err := func() error {
		q, err := prep.prepare(SideQuery, 0, query)
		if err != nil {
			return err
		}
		for i, c := range choices {
			pc, err := prep.prepare(SideChoices, i, c)
			if err != nil {
				return err
			}
			score := scorer.Score(q, pc)
			if !passes(order, score, opts.ScoreCutoff) {
				continue
			}
			if !found || better(order, score, best.Score) {
				best = Match[T]{Choice: c, Score: score, Index: i}
				found = true
			}
		}
		return nil
	}()
	finish("extract_one", start, len(choices), prep, err)
	if err != nil {
		return Match[T]{}, false, err
	}
	return best, found, nil
}

// Extract scores every choice against query and returns those passing the
// cutoff, best first. Equal scores keep input order. When Limit > 0 only the
// first Limit matches are returned. Scoring is split into Workers contiguous
// chunks.
func Extract[T Score](query string, choices []string, scorer Scorer[T], opts Options[T]) ([]Match[T], error) {
	start := time.Now()
	prep := newPreparer(opts.Processor)

	matches, err := scoreAll(query, choices, scorer, opts, prep)
	finish("extract", start, len(choices), prep, err)
	if err != nil {
		return nil, err
	}

	order := scorer.Order()
	slices.SortStableFunc(matches, func(a, b Match[T]) int {
		switch {
		case better(order, a.Score, b.Score):
			return -1
		case better(order, b.Score, a.Score):
			return 1
		}
		return 0
	})
	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

func scoreAll[T Score](query string, choices []string, scorer Scorer[T], opts Options[T], prep *preparer) ([]Match[T], error) {
	q, err := prep.prepare(SideQuery, 0, query)
	if err != nil {
		return nil, err
	}

	n := len(choices)
	if n == 0 {
		return nil, nil
	}
	order := scorer.Order()
	scored := make([]Match[T], n)
	kept := make([]bool, n)
	chunk := (n + opts.workers() - 1) / opts.workers()

	g, ctx := errgroup.WithContext(context.Background())
	for lo := 0; lo < n; lo += chunk {
		hi := min(n, lo+chunk)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if ctx.Err() != nil {
					return nil
				}
				pc, err := prep.prepare(SideChoices, i, choices[i])
				if err != nil {
					return err
				}
				score := scorer.Score(q, pc)
				if passes(order, score, opts.ScoreCutoff) {
					scored[i] = Match[T]{Choice: choices[i], Score: score, Index: i}
					kept[i] = true
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	matches := scored[:0]
	for i := range scored {
		if kept[i] {
			matches = append(matches, scored[i])
		}
	}
	return matches, nil
}

// ExtractIter yields the choices passing the cutoff in input order, scoring
// lazily: breaking out of the loop stops all further work. Each range over
// the returned sequence starts a fresh pass. A processor failure is yielded
// once as the error and ends the sequence. Metrics for a pass are recorded
// when it ends, counting only the choices actually scored.
func ExtractIter[T Score](query string, choices []string, scorer Scorer[T], opts Options[T]) iter.Seq2[Match[T], error] {
	return func(yield func(Match[T], error) bool) {
		start := time.Now()
		prep := newPreparer(opts.Processor)
		scored := 0
		var err error
		defer func() { finish("extract_iter", start, scored, prep, err) }()

		q, err := prep.prepare(SideQuery, 0, query)
		if err != nil {
			yield(Match[T]{}, err)
			return
		}
		order := scorer.Order()
		for i, c := range choices {
			var pc string
			pc, err = prep.prepare(SideChoices, i, c)
			if err != nil {
				yield(Match[T]{Index: i}, err)
				return
			}
			score := scorer.Score(q, pc)
			scored++
			if !passes(order, score, opts.ScoreCutoff) {
				continue
			}
			if !yield(Match[T]{Choice: c, Score: score, Index: i}, nil) {
				return
			}
		}
	}
}

// finish records metrics and a debug summary for one batch call.
func finish(op string, start time.Time, comparisons int, prep *preparer, err error) {
	elapsed := time.Since(start)
	hits, misses := prep.stats()
	metrics.ObserveBatchDuration(op, elapsed)
	metrics.AddMemoStats(hits, misses)

	fields := log.Fields{
		"operation":   op,
		"comparisons": comparisons,
		"memo_hits":   hits,
		"memo_misses": misses,
		"elapsed":     elapsed,
	}
	if err != nil {
		metrics.IncBatchFailed(op)
		log.WithFields(fields).WithError(err).Debug("batch aborted")
		return
	}
	metrics.AddComparisons(op, comparisons)
	metrics.IncBatchCompleted(op)
	log.WithFields(fields).Debug("batch complete")
}
