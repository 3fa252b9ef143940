// file: pkg/distance/weights.go
// version: 1.0.0
// guid: 92dac211-d1d1-4eea-86b6-c40c9a3d4294

package distance

import (
	"errors"
	"fmt"
)

// ErrInvalidWeights is returned when a cost triple contains a non-positive entry.
var ErrInvalidWeights = errors.New("invalid edit weights")

// Weights holds the cost of each edit operation.
type Weights struct {
	Insert     int
	Delete     int
	Substitute int
}

var (
	// Uniform is the classic Levenshtein cost triple.
	Uniform = Weights{Insert: 1, Delete: 1, Substitute: 1}
	// Indel prices a substitution as a deletion plus an insertion.
	Indel = Weights{Insert: 1, Delete: 1, Substitute: 2}
)

// Validate reports an error wrapping ErrInvalidWeights when any cost is not positive.
func (w Weights) Validate() error {
	if w.Insert <= 0 || w.Delete <= 0 || w.Substitute <= 0 {
		return fmt.Errorf("%w: insert=%d delete=%d substitute=%d",
			ErrInvalidWeights, w.Insert, w.Delete, w.Substitute)
	}
	return nil
}

// Swap returns the weights with insert and delete exchanged. Distance(a, b, w)
// equals Distance(b, a, w.Swap()).
func (w Weights) Swap() Weights {
	return Weights{Insert: w.Delete, Delete: w.Insert, Substitute: w.Substitute}
}

// allowsReplace reports whether a substitution can ever be strictly cheaper
// than a deletion followed by an insertion.
func (w Weights) allowsReplace() bool {
	return w.Substitute < w.Insert+w.Delete
}

func (w Weights) String() string {
	return fmt.Sprintf("(%d,%d,%d)", w.Insert, w.Delete, w.Substitute)
}
