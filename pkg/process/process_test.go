// file: pkg/process/process_test.go
// version: 1.1.0
// guid: 0e57439c-cb15-4eed-917e-c595e3c1102a

package process

import (
	"errors"
	"slices"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/jdfalk/fuzzymatch/internal/metrics"
	"github.com/jdfalk/fuzzymatch/pkg/distance"
	"github.com/jdfalk/fuzzymatch/pkg/fuzz"
	"github.com/jdfalk/fuzzymatch/pkg/processor"
)

var errRejected = errors.New("rejected")

// referenceDistance is the textbook weighted edit distance.
func referenceDistance(a, b string, w distance.Weights) int {
	s1, s2 := []rune(a), []rune(b)
	prev := make([]int, len(s2)+1)
	for j := range prev {
		prev[j] = j * w.Insert
	}
	for i := 1; i <= len(s1); i++ {
		cur := make([]int, len(s2)+1)
		cur[0] = i * w.Delete
		for j := 1; j <= len(s2); j++ {
			sub := prev[j-1]
			if s1[i-1] != s2[j-1] {
				sub += w.Substitute
			}
			cur[j] = min(sub, prev[j]+w.Delete, cur[j-1]+w.Insert)
		}
		prev = cur
	}
	return prev[len(s2)]
}

func genWeights() *rapid.Generator[distance.Weights] {
	return rapid.Custom(func(t *rapid.T) distance.Weights {
		return distance.Weights{
			Insert:     rapid.IntRange(1, 4).Draw(t, "ins"),
			Delete:     rapid.IntRange(1, 4).Draw(t, "del"),
			Substitute: rapid.IntRange(1, 8).Draw(t, "sub"),
		}
	})
}

func genChoices() *rapid.Generator[[]string] {
	text := rapid.StringOfN(rapid.RuneFrom([]rune("abcd é漢")), 0, 12, -1)
	return rapid.SliceOfN(text, 0, 20)
}

func TestExtractOne_MatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := genWeights().Draw(t, "weights")
		query := rapid.StringOfN(rapid.RuneFrom([]rune("abcd é漢")), 0, 12, -1).Draw(t, "query")
		choices := genChoices().Draw(t, "choices")
		lev, err := distance.New(w)
		if err != nil {
			t.Fatal(err)
		}

		got, ok, err := ExtractOne(query, choices, DistanceFunc(lev.Distance), Options[int]{})
		if err != nil {
			t.Fatal(err)
		}
		if ok != (len(choices) > 0) {
			t.Fatalf("found = %v with %d choices", ok, len(choices))
		}
		if !ok {
			return
		}

		wantIdx := 0
		for i, c := range choices {
			if referenceDistance(query, c, w) < referenceDistance(query, choices[wantIdx], w) {
				wantIdx = i
			}
		}
		if got.Index != wantIdx || got.Score != referenceDistance(query, choices[wantIdx], w) {
			t.Fatalf("ExtractOne = %+v, want index %d", got, wantIdx)
		}
	})
}

func TestExtract_MatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w := genWeights().Draw(t, "weights")
		query := rapid.StringOfN(rapid.RuneFrom([]rune("abcd é漢")), 0, 12, -1).Draw(t, "query")
		choices := genChoices().Draw(t, "choices")
		workers := rapid.IntRange(1, 4).Draw(t, "workers")
		lev, err := distance.New(w)
		if err != nil {
			t.Fatal(err)
		}

		got, err := Extract(query, choices, DistanceFunc(lev.Distance), Options[int]{Workers: workers})
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(choices) {
			t.Fatalf("Extract returned %d of %d choices", len(got), len(choices))
		}
		for k, m := range got {
			if m.Choice != choices[m.Index] || m.Score != referenceDistance(query, m.Choice, w) {
				t.Fatalf("match %d = %+v", k, m)
			}
			if k > 0 {
				prev := got[k-1]
				if prev.Score > m.Score || (prev.Score == m.Score && prev.Index > m.Index) {
					t.Fatalf("matches out of order: %+v before %+v", prev, m)
				}
			}
		}
	})
}

func TestExtractIter_MatchesReference(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		query := rapid.StringOfN(rapid.RuneFrom([]rune("abcd é漢")), 0, 12, -1).Draw(t, "query")
		choices := genChoices().Draw(t, "choices")

		i := 0
		for m, err := range ExtractIter(query, choices, DistanceFunc(distance.Distance), Options[int]{}) {
			if err != nil {
				t.Fatal(err)
			}
			if m.Index != i || m.Score != referenceDistance(query, choices[i], distance.Uniform) {
				t.Fatalf("yield %d = %+v", i, m)
			}
			i++
		}
		if i != len(choices) {
			t.Fatalf("yielded %d of %d choices", i, len(choices))
		}
	})
}

func TestExtract_SimilarityOrderAndLimit(t *testing.T) {
	choices := []string{"new york jets", "new york mets", "new york giants", "atlanta braves", "new york mets"}
	scorer := Similarity(fuzz.Ratio)

	got, err := Extract("new york mets", choices, scorer, Options[float64]{Limit: 3})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, 4, got[1].Index, "equal scores keep input order")
	assert.Equal(t, 100.0, got[0].Score)
	assert.Equal(t, 0, got[2].Index)

	best, ok, err := ExtractOne("new york mets", choices, scorer, Options[float64]{})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1, best.Index, "first of equal best scores wins")
}

func TestExtract_CutoffIsInclusive(t *testing.T) {
	choices := []string{"abc", "abd", "xyz"}
	dist := DistanceFunc(distance.Distance)

	got, err := Extract("abc", choices, dist, Options[int]{ScoreCutoff: Cutoff(1)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 0, got[0].Score)
	assert.Equal(t, 1, got[1].Score)

	sim := Similarity(fuzz.Ratio)
	want := fuzz.Ratio("abc", "abd")
	got2, err := Extract("abc", choices, sim, Options[float64]{ScoreCutoff: Cutoff(want)})
	require.NoError(t, err)
	assert.Len(t, got2, 2)

	_, ok, err := ExtractOne("abc", []string{"xyz"}, sim, Options[float64]{ScoreCutoff: Cutoff(50.0)})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExtract_Processor(t *testing.T) {
	choices := []string{"NEW YORK!", "Boston"}
	opts := Options[float64]{Processor: processor.Func(processor.Default)}

	best, ok, err := ExtractOne("new york", choices, Similarity(fuzz.Ratio), opts)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Match[float64]{Choice: "NEW YORK!", Score: 100, Index: 0}, best)
}

func TestEmptyChoices(t *testing.T) {
	scorer := Similarity(fuzz.WRatio)

	_, ok, err := ExtractOne("q", nil, scorer, Options[float64]{})
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := Extract("q", nil, scorer, Options[float64]{Workers: 3})
	require.NoError(t, err)
	assert.Empty(t, got)

	m, err := Cdist(nil, []string{"a"}, scorer, Options[float64]{})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Rows)
	assert.Empty(t, m.Data)
}

func failingProcessor(bad string) processor.Processor {
	return processor.FallibleFunc(func(s string) (string, error) {
		if s == bad {
			return "", errRejected
		}
		return s, nil
	})
}

func TestProcessError(t *testing.T) {
	choices := []string{"ok", "fine", "bad", "good"}
	scorer := Similarity(fuzz.Ratio)
	opts := Options[float64]{Processor: failingProcessor("bad")}

	_, _, err := ExtractOne("query", choices, scorer, opts)
	var pe *ProcessError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, SideChoices, pe.Side)
	assert.Equal(t, 2, pe.Index)
	assert.ErrorIs(t, err, errRejected)

	got, err := Extract("query", choices, scorer, opts)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Index)
	assert.Nil(t, got)

	_, err = Extract("bad", choices, scorer, opts)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, SideQuery, pe.Side)

	_, err = Cdist([]string{"ok", "bad"}, []string{"x"}, scorer, opts)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, SideQueries, pe.Side)
	assert.Equal(t, 1, pe.Index)

	_, err = Cdist([]string{"ok"}, choices, scorer, opts)
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, SideChoices, pe.Side)
	assert.Equal(t, 2, pe.Index)
	assert.Contains(t, err.Error(), "choices[2]")
}

func TestExtractIter_ProcessError(t *testing.T) {
	choices := []string{"ok", "bad", "never"}
	var yielded []int
	var errs []error
	for m, err := range ExtractIter("query", choices, Similarity(fuzz.Ratio), Options[float64]{Processor: failingProcessor("bad")}) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		yielded = append(yielded, m.Index)
	}
	assert.Equal(t, []int{0}, yielded)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], errRejected)
}

func TestExtractIter_StopsEarly(t *testing.T) {
	var calls atomic.Int64
	counting := SimilarityFunc(func(a, b string) float64 {
		calls.Add(1)
		return fuzz.Ratio(a, b)
	})
	choices := []string{"a", "b", "c", "d", "e", "f"}
	seq := ExtractIter("a", choices, counting, Options[float64]{})

	n := 0
	for range seq {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, int64(2), calls.Load())

	// a fresh range starts a fresh pass
	total := 0
	for range seq {
		total++
	}
	assert.Equal(t, len(choices), total)
	assert.Equal(t, int64(2+len(choices)), calls.Load())
}

// counterValue reads one operation's counter from the default registry.
func counterValue(t *testing.T, name, op string) float64 {
	t.Helper()
	metrics.Register()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, l := range m.GetLabel() {
				if l.GetName() == "operation" && l.GetValue() == op {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}

func TestExtractIter_RecordsMetrics(t *testing.T) {
	completed := counterValue(t, "fuzzymatch_batches_completed_total", "extract_iter")
	failed := counterValue(t, "fuzzymatch_batches_failed_total", "extract_iter")
	compared := counterValue(t, "fuzzymatch_comparisons_total", "extract_iter")

	choices := []string{"a", "b", "c", "d", "e", "f"}
	for range ExtractIter("a", choices, Similarity(fuzz.Ratio), Options[float64]{}) {
	}
	for range ExtractIter("a", choices, Similarity(fuzz.Ratio), Options[float64]{}) {
		break
	}
	for range ExtractIter("query", []string{"ok", "bad"}, Similarity(fuzz.Ratio), Options[float64]{Processor: failingProcessor("bad")}) {
	}

	assert.Equal(t, completed+2, counterValue(t, "fuzzymatch_batches_completed_total", "extract_iter"))
	assert.Equal(t, failed+1, counterValue(t, "fuzzymatch_batches_failed_total", "extract_iter"))
	// exhausted pass plus the single choice scored before the break
	assert.Equal(t, compared+7, counterValue(t, "fuzzymatch_comparisons_total", "extract_iter"))
}

func TestCdist_MatchesScorer(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		queries := genChoices().Draw(t, "queries")
		choices := genChoices().Draw(t, "choices")
		workers := rapid.IntRange(1, 4).Draw(t, "workers")
		scorer := Similarity(fuzz.WRatio)
		opts := Options[float64]{Processor: processor.Func(processor.Default), Workers: workers}

		m, err := Cdist(queries, choices, scorer, opts)
		if err != nil {
			t.Fatal(err)
		}
		if m.Rows != len(queries) || m.Cols != len(choices) {
			t.Fatalf("matrix is %dx%d", m.Rows, m.Cols)
		}
		for i, q := range queries {
			for j, c := range choices {
				want := fuzz.WRatio(q, c, fuzz.WithProcessor(processor.Default))
				if m.At(i, j) != want {
					t.Fatalf("cell (%d,%d) = %v, want %v", i, j, m.At(i, j), want)
				}
			}
		}
	})
}

func TestCdist_SelfComparison(t *testing.T) {
	names := []string{"kitten", "sitting", "mitten", "kitten", "smitten"}
	var processed atomic.Int64
	counting := processor.FallibleFunc(func(s string) (string, error) {
		processed.Add(1)
		return strings.ToLower(s), nil
	})
	lev, err := distance.New(distance.Uniform)
	require.NoError(t, err)

	var rows atomic.Int64
	m, err := Cdist(names, names, DistanceFunc(lev.Distance), Options[int]{
		Processor:     counting,
		Workers:       3,
		OnRowComplete: func(int) { rows.Add(1) },
	})
	require.NoError(t, err)

	assert.Equal(t, int64(4), processed.Load(), "each distinct string is processed once")
	assert.Equal(t, int64(len(names)), rows.Load())
	for i := range names {
		assert.Equal(t, 0, m.At(i, i))
		for j := range names {
			assert.Equal(t, referenceDistance(names[i], names[j], distance.Uniform), m.At(i, j))
			assert.Equal(t, m.At(i, j), m.At(j, i))
		}
	}
	assert.Equal(t, 3, m.At(0, 1))
	assert.True(t, slices.Equal(m.Row(0), m.Row(3)))
}

func TestCdist_Cutoff(t *testing.T) {
	dist := DistanceFunc(distance.Distance)
	m, err := Cdist([]string{"kitten"}, []string{"kitten", "sitting", "mitten"}, dist, Options[int]{ScoreCutoff: Cutoff(1)})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1}, m.Row(0))

	sim, err := Cdist([]string{"abc"}, []string{"abc", "xyz"}, Similarity(fuzz.Ratio), Options[float64]{ScoreCutoff: Cutoff(50.0)})
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 0}, sim.Row(0))
}

func TestOrder(t *testing.T) {
	assert.Equal(t, HigherIsBetter, SimilarityFunc(nil).Order())
	assert.Equal(t, LowerIsBetter, DistanceFunc(nil).Order())
	assert.Equal(t, "lower-is-better", LowerIsBetter.String())
	assert.True(t, better(HigherIsBetter, 2.0, 1.0))
	assert.True(t, better(LowerIsBetter, 1, 2))
	assert.False(t, better(LowerIsBetter, 2, 2))
}
