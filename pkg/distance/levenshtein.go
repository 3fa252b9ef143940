// file: pkg/distance/levenshtein.go
// version: 1.0.0
// guid: c5e93952-ce62-4654-975c-023650a79cf5

package distance

import "fmt"

// Levenshtein computes weighted edit distances. The zero value is not usable;
// construct one with New.
type Levenshtein struct {
	weights Weights
}

// New returns a Levenshtein metric for w, rejecting non-positive costs.
func New(w Weights) (*Levenshtein, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("new levenshtein metric: %w", err)
	}
	return &Levenshtein{weights: w}, nil
}

var (
	uniformMetric = &Levenshtein{weights: Uniform}
	indelMetric   = &Levenshtein{weights: Indel}
)

// Weights returns the cost triple of the metric.
func (l *Levenshtein) Weights() Weights { return l.weights }

// Distance returns the minimum cost of transforming s1 into s2.
func (l *Levenshtein) Distance(s1, s2 string) int {
	return l.DistanceRunes([]rune(s1), []rune(s2))
}

// DistanceRunes is Distance over code point slices.
func (l *Levenshtein) DistanceRunes(s1, s2 []rune) int {
	s1, s2, _ = trimCommonAffix(s1, s2)
	w := l.weights

	switch {
	case len(s1) == 0:
		return len(s2) * w.Insert
	case len(s2) == 0:
		return len(s1) * w.Delete
	}

	if w.Insert == w.Delete {
		if w.Substitute == w.Insert {
			return w.Insert * uniformRunes(s1, s2)
		}
		if w.Substitute >= w.Insert+w.Delete {
			return w.Insert * indelRunes(s1, s2)
		}
	}
	return weightedDistance(s1, s2, w)
}

// MaxDistance returns the normalisation bound for inputs of the given lengths.
func (l *Levenshtein) MaxDistance(len1, len2 int) int {
	return l.weights.MaxDistance(len1, len2)
}

// NormalizedSimilarity returns 100 - 100*distance/MaxDistance, or 100 when
// both inputs are empty.
func (l *Levenshtein) NormalizedSimilarity(s1, s2 string) float64 {
	r1, r2 := []rune(s1), []rune(s2)
	return Similarity(l.DistanceRunes(r1, r2), l.MaxDistance(len(r1), len(r2)))
}

// uniformRunes is the unit-cost Levenshtein distance. The shorter input is
// compiled into the bit-vector pattern, which is valid because the metric is
// symmetric.
func uniformRunes(s1, s2 []rune) int {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	return NewPattern(s1).Levenshtein(s2)
}

// indelRunes is the insertion/deletion-only distance.
func indelRunes(s1, s2 []rune) int {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	lcs := NewPattern(s1).LCS(s2)
	return len(s1) + len(s2) - 2*lcs
}

// trimCommonAffix strips the shared prefix and suffix and returns the prefix length.
func trimCommonAffix(s1, s2 []rune) ([]rune, []rune, int) {
	prefix := 0
	for prefix < len(s1) && prefix < len(s2) && s1[prefix] == s2[prefix] {
		prefix++
	}
	s1, s2 = s1[prefix:], s2[prefix:]

	suffix := 0
	for suffix < len(s1) && suffix < len(s2) && s1[len(s1)-1-suffix] == s2[len(s2)-1-suffix] {
		suffix++
	}
	return s1[:len(s1)-suffix], s2[:len(s2)-suffix], prefix
}

// Distance returns the uniform Levenshtein distance between s1 and s2.
func Distance(s1, s2 string) int {
	return uniformMetric.Distance(s1, s2)
}

// NormalizedDistance returns the uniform Levenshtein similarity of s1 and s2 in [0,100].
func NormalizedDistance(s1, s2 string) float64 {
	return uniformMetric.NormalizedSimilarity(s1, s2)
}

// IndelDistance returns the number of insertions and deletions needed to turn s1 into s2.
func IndelDistance(s1, s2 string) int {
	return indelMetric.Distance(s1, s2)
}

// LCS returns the length of the longest common subsequence of s1 and s2.
func LCS(s1, s2 []rune) int {
	if len(s1) > len(s2) {
		s1, s2 = s2, s1
	}
	return NewPattern(s1).LCS(s2)
}
