// file: pkg/distance/normalize.go
// version: 1.0.0
// guid: 5f927d03-cd8e-4168-9105-e58695375343

package distance

// Similarity maps a raw distance onto [0,100] relative to the largest distance
// possible for the inputs. A zero maximum (both inputs empty) scores 100.
func Similarity(dist, maxDist int) float64 {
	if maxDist == 0 {
		return 100
	}
	return 100 - 100*float64(dist)/float64(maxDist)
}

// IndelSimilarity scores two sequences of the given lengths sharing a longest
// common subsequence of length lcs. Every Indel-based ratio goes through here.
func IndelSimilarity(len1, len2, lcs int) float64 {
	return Similarity(len1+len2-2*lcs, len1+len2)
}

// MaxDistance returns the cost of the cheaper of two worst-case scripts:
// delete everything then insert everything, or substitute over the shorter
// length and insert or delete the remainder.
func (w Weights) MaxDistance(len1, len2 int) int {
	all := len1*w.Delete + len2*w.Insert
	if len1 >= len2 {
		return min(all, len2*w.Substitute+(len1-len2)*w.Delete)
	}
	return min(all, len1*w.Substitute+(len2-len1)*w.Insert)
}
