// file: pkg/fuzz/ratio.go
// version: 1.1.0
// guid: 17bd8e48-c59f-4d04-9482-d639e7a36b38

package fuzz

import (
	"unicode/utf8"

	"github.com/jdfalk/fuzzymatch/pkg/distance"
)

const (
	// unbaseScale discounts token-based candidates in WRatio.
	unbaseScale = 0.95
	// partialScale discounts partial candidates when the lengths differ a lot;
	// farPartialScale applies from a length ratio of 8 upward.
	partialScale    = 0.9
	farPartialScale = 0.6
)

// Ratio returns the Indel similarity of s1 and s2 in [0,100].
func Ratio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, ratio)
}

// PartialRatio returns the best Ratio between the shorter text and any
// equally long window of the longer one, including windows that hang over
// either edge.
func PartialRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, partialRatio)
}

// QRatio is Ratio, except that an empty input on either side scores 0.
func QRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, qRatio)
}

// WRatio blends Ratio with the partial and token scorers, weighting by how
// different the two lengths are. Only identical inputs reach 100.
func WRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, wRatio)
}

func ratio(s1, s2 string) float64 {
	return ratioRunes([]rune(s1), []rune(s2))
}

func ratioRunes(a, b []rune) float64 {
	return distance.IndelSimilarity(len(a), len(b), distance.LCS(a, b))
}

// partialRatio slides the shorter text across the longer one, including
// windows clipped at either end, and keeps the best window score. Each window
// runs a bit-parallel LCS against the precomputed needle pattern, so the cost
// is O((|hay|+n) * n * ceil(n/64)) for a needle of n runes, less whatever the
// per-window upper bound prunes.
func partialRatio(s1, s2 string) float64 {
	needle, hay := []rune(s1), []rune(s2)
	if len(needle) > len(hay) {
		needle, hay = hay, needle
	}
	if len(needle) == 0 {
		if len(hay) == 0 {
			return 100
		}
		return 0
	}

	n := len(needle)
	pattern := distance.NewPattern(needle)
	best := 0.0
	for start := 1 - n; start < len(hay); start++ {
		lo, hi := max(0, start), min(len(hay), start+n)
		width := hi - lo
		// a window can share at most width symbols with the needle
		if distance.IndelSimilarity(n, width, width) <= best {
			continue
		}
		score := distance.IndelSimilarity(n, width, pattern.LCS(hay[lo:hi]))
		if score > best {
			best = score
			if best == 100 {
				break
			}
		}
	}
	return best
}

func qRatio(s1, s2 string) float64 {
	if s1 == "" || s2 == "" {
		return 0
	}
	return ratio(s1, s2)
}

func wRatio(s1, s2 string) float64 {
	len1, len2 := utf8.RuneCountInString(s1), utf8.RuneCountInString(s2)
	if len1 == 0 || len2 == 0 {
		return 0
	}

	lenRatio := float64(max(len1, len2)) / float64(min(len1, len2))
	best := ratio(s1, s2)
	if lenRatio < 1.5 {
		return max(best, tokenRatio(s1, s2)*unbaseScale)
	}

	scale := partialScale
	if lenRatio >= 8 {
		scale = farPartialScale
	}
	best = max(best, partialRatio(s1, s2)*scale)
	return max(best, partialTokenRatio(s1, s2)*unbaseScale*scale)
}
