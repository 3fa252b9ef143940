// file: pkg/distance/reference_test.go
// version: 1.0.0
// guid: 0f5faf22-1e2f-47e7-9817-838a64569ead

package distance

import "pgregory.net/rapid"

// referenceDistance is the textbook full-matrix recurrence. It is slow and
// obviously correct, which is the point.
func referenceDistance(s1, s2 string, w Weights) int {
	a, b := []rune(s1), []rune(s2)
	rows, cols := len(a)+1, len(b)+1

	dist := make([][]int, rows)
	for i := range dist {
		dist[i] = make([]int, cols)
	}
	for i := 1; i < rows; i++ {
		dist[i][0] = i * w.Delete
	}
	for j := 1; j < cols; j++ {
		dist[0][j] = j * w.Insert
	}

	for j := 1; j < cols; j++ {
		for i := 1; i < rows; i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = w.Substitute
			}
			dist[i][j] = min(
				dist[i-1][j]+w.Delete,
				dist[i][j-1]+w.Insert,
				dist[i-1][j-1]+cost,
			)
		}
	}
	return dist[rows-1][cols-1]
}

// referenceSimilarity normalizes independently of Weights.MaxDistance.
func referenceSimilarity(dist int, s1, s2 string, w Weights) float64 {
	l1, l2 := len([]rune(s1)), len([]rune(s2))
	var maxDist int
	if l1 > l2 {
		maxDist = min(l1*w.Delete+l2*w.Insert, l2*w.Substitute+(l1-l2)*w.Delete)
	} else {
		maxDist = min(l1*w.Delete+l2*w.Insert, l1*w.Substitute+(l2-l1)*w.Insert)
	}
	if maxDist == 0 {
		return 100
	}
	return 100 - 100*float64(dist)/float64(maxDist)
}

// textAlphabet is small so random pairs share plenty of symbols, and mixes
// ASCII with runes outside the ASCII match table.
var textAlphabet = []rune("abcdeAB xyé漢字🙂")

func genText(minRunes, maxRunes int) *rapid.Generator[string] {
	return rapid.StringOfN(rapid.RuneFrom(textAlphabet), minRunes, maxRunes, -1)
}

func genWeights() *rapid.Generator[Weights] {
	return rapid.Custom(func(t *rapid.T) Weights {
		return Weights{
			Insert:     rapid.IntRange(1, 4).Draw(t, "insert"),
			Delete:     rapid.IntRange(1, 4).Draw(t, "delete"),
			Substitute: rapid.IntRange(1, 8).Draw(t, "substitute"),
		}
	})
}
