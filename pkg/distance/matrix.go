// file: pkg/distance/matrix.go
// version: 1.0.0
// guid: d4f3a346-8a47-441e-8d21-4da4046c85c1

package distance

// weightedDistance is the classic dynamic program, keeping two rows.
// Rows walk s1 (deletions), columns walk s2 (insertions).
func weightedDistance(s1, s2 []rune, w Weights) int {
	cols := len(s2) + 1
	prev := make([]int, cols)
	curr := make([]int, cols)

	for j := range prev {
		prev[j] = j * w.Insert
	}

	for i := 1; i <= len(s1); i++ {
		curr[0] = i * w.Delete
		for j := 1; j < cols; j++ {
			cost := w.Substitute
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+w.Delete,   // deletion
				curr[j-1]+w.Insert, // insertion
				prev[j-1]+cost,     // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[cols-1]
}

// costMatrix is the full (len(s1)+1) x (len(s2)+1) dynamic programming table
// stored row-major in a flat slice.
type costMatrix struct {
	rows, cols int
	cells      []int
}

func (m *costMatrix) at(i, j int) int {
	return m.cells[i*m.cols+j]
}

func newCostMatrix(s1, s2 []rune, w Weights) *costMatrix {
	m := &costMatrix{
		rows:  len(s1) + 1,
		cols:  len(s2) + 1,
		cells: make([]int, (len(s1)+1)*(len(s2)+1)),
	}

	for j := 1; j < m.cols; j++ {
		m.cells[j] = j * w.Insert
	}

	for i := 1; i < m.rows; i++ {
		row := i * m.cols
		up := row - m.cols
		m.cells[row] = i * w.Delete
		for j := 1; j < m.cols; j++ {
			cost := w.Substitute
			if s1[i-1] == s2[j-1] {
				cost = 0
			}
			m.cells[row+j] = min(
				m.cells[up+j]+w.Delete,
				m.cells[row+j-1]+w.Insert,
				m.cells[up+j-1]+cost,
			)
		}
	}

	return m
}
