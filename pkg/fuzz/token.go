// file: pkg/fuzz/token.go
// version: 1.0.0
// guid: 38bd5467-2188-4694-ae62-8642808775a9

package fuzz

import (
	"slices"
	"strings"
)

// TokenSortRatio sorts the whitespace-separated tokens of each text before
// comparing them with Ratio.
func TokenSortRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, tokenSortRatio)
}

// TokenSetRatio compares the shared tokens against each side's shared plus
// unique tokens and keeps the best Ratio.
func TokenSetRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, tokenSetRatio)
}

// TokenRatio is max(TokenSortRatio, TokenSetRatio).
func TokenRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, tokenRatio)
}

// PartialTokenSortRatio is TokenSortRatio built on PartialRatio.
func PartialTokenSortRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, partialTokenSortRatio)
}

// PartialTokenSetRatio is TokenSetRatio built on PartialRatio.
func PartialTokenSetRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, partialTokenSetRatio)
}

// PartialTokenRatio is max(PartialTokenSortRatio, PartialTokenSetRatio).
func PartialTokenRatio(s1, s2 string, opts ...Option) float64 {
	return run(s1, s2, opts, partialTokenRatio)
}

func tokenSortRatio(s1, s2 string) float64 {
	return ratio(sortedJoin(s1), sortedJoin(s2))
}

func partialTokenSortRatio(s1, s2 string) float64 {
	return partialRatio(sortedJoin(s1), sortedJoin(s2))
}

func tokenSetRatio(s1, s2 string) float64 {
	return tokenSet(s1, s2, ratio)
}

func partialTokenSetRatio(s1, s2 string) float64 {
	return tokenSet(s1, s2, partialRatio)
}

func tokenRatio(s1, s2 string) float64 {
	return max(tokenSortRatio(s1, s2), tokenSetRatio(s1, s2))
}

func partialTokenRatio(s1, s2 string) float64 {
	return max(partialTokenSortRatio(s1, s2), partialTokenSetRatio(s1, s2))
}

func sortedJoin(s string) string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return strings.Join(tokens, " ")
}

func uniqueTokens(s string) []string {
	tokens := strings.Fields(s)
	slices.Sort(tokens)
	return slices.Compact(tokens)
}

// decompose splits two sorted, duplicate-free token lists into their
// intersection and the two differences, all still sorted.
func decompose(a, b []string) (sect, onlyA, onlyB []string) {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch strings.Compare(a[i], b[j]) {
		case 0:
			sect = append(sect, a[i])
			i++
			j++
		case -1:
			onlyA = append(onlyA, a[i])
			i++
		default:
			onlyB = append(onlyB, b[j])
			j++
		}
	}
	onlyA = append(onlyA, a[i:]...)
	onlyB = append(onlyB, b[j:]...)
	return sect, onlyA, onlyB
}

// tokenSet scores "sect+diffA" against "sect+diffB", and the intersection
// alone against each side, with score.
func tokenSet(s1, s2 string, score func(a, b string) float64) float64 {
	a, b := uniqueTokens(s1), uniqueTokens(s2)
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	sect, onlyA, onlyB := decompose(a, b)
	if len(sect) > 0 && (len(onlyA) == 0 || len(onlyB) == 0) {
		return 100
	}

	sectStr := strings.Join(sect, " ")
	combinedA := joinNonEmpty(sectStr, strings.Join(onlyA, " "))
	combinedB := joinNonEmpty(sectStr, strings.Join(onlyB, " "))

	best := score(combinedA, combinedB)
	if len(sect) == 0 {
		return best
	}
	return max(best, score(sectStr, combinedA), score(sectStr, combinedB))
}

func joinNonEmpty(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	}
	return a + " " + b
}
