// file: pkg/process/options.go
// version: 1.1.0
// guid: 2ca83fee-5ecd-4794-9cc6-de367eec98b0

package process

import (
	"fmt"

	"github.com/jdfalk/fuzzymatch/internal/cache"
	"github.com/jdfalk/fuzzymatch/pkg/processor"
)

// Options configures a batch call. The zero value means: no preprocessing,
// no cutoff, no limit and one worker.
type Options[T Score] struct {
	// Processor is applied to the query and to every choice before scoring.
	Processor processor.Processor
	// ScoreCutoff drops results worse than the cutoff; the cutoff itself is kept.
	ScoreCutoff *T
	// Limit truncates Extract results when > 0.
	Limit int
	// Workers bounds the goroutines used by Extract and Cdist.
	Workers int
	// OnRowComplete is called by Cdist after each finished row. It may be
	// called from several goroutines at once.
	OnRowComplete func(row int)
}

// Cutoff returns a pointer to v for Options.ScoreCutoff.
func Cutoff[T Score](v T) *T { return &v }

func (o Options[T]) workers() int {
	return max(1, o.Workers)
}

// Sides of a batch call, as reported by ProcessError.
const (
	SideQuery   = "query"
	SideQueries = "queries"
	SideChoices = "choices"
)

// ProcessError reports a processor failure and which input caused it.
type ProcessError struct {
	Side  string
	Index int
	Err   error
}

func (e *ProcessError) Error() string {
	return fmt.Sprintf("processing %s[%d]: %v", e.Side, e.Index, e.Err)
}

func (e *ProcessError) Unwrap() error { return e.Err }

// preparer applies the call's processor, memoised for the lifetime of one call.
type preparer struct {
	proc processor.Processor
	memo *cache.Memo[string]
}

func newPreparer(p processor.Processor) *preparer {
	pr := &preparer{proc: p}
	if p != nil {
		pr.memo = cache.NewMemo[string]()
	}
	return pr
}

func (p *preparer) prepare(side string, index int, s string) (string, error) {
	var out string
	var err error
	if p.memo == nil {
		out, err = processor.Apply(p.proc, s)
	} else {
		out, err = p.memo.Get(s, p.apply)
	}
	if err != nil {
		return "", &ProcessError{Side: side, Index: index, Err: err}
	}
	return out, nil
}

func (p *preparer) apply(s string) (string, error) {
	return processor.Apply(p.proc, s)
}

func (p *preparer) stats() (hits, misses int64) {
	if p.memo == nil {
		return 0, 0
	}
	return p.memo.Stats()
}
