// file: pkg/process/scorer.go
// version: 1.0.0
// guid: 48a7e1be-778d-42c3-9213-7b2130e06c9c

package process

// Score is the value type a Scorer produces: integer distances or
// floating-point similarities.
type Score interface {
	~int | ~float64
}

// Order tells the process functions which direction of a score is better.
type Order int

const (
	// HigherIsBetter is used by similarities such as fuzz.Ratio.
	HigherIsBetter Order = iota
	// LowerIsBetter is used by distances.
	LowerIsBetter
)

func (o Order) String() string {
	if o == LowerIsBetter {
		return "lower-is-better"
	}
	return "higher-is-better"
}

// Scorer compares two processed texts.
type Scorer[T Score] interface {
	Score(a, b string) T
	Order() Order
}

// SimilarityFunc adapts a similarity function to Scorer.
type SimilarityFunc func(a, b string) float64

func (f SimilarityFunc) Score(a, b string) float64 { return f(a, b) }
func (SimilarityFunc) Order() Order                  { return HigherIsBetter }

// DistanceFunc adapts a distance function to Scorer.
type DistanceFunc func(a, b string) int

func (f DistanceFunc) Score(a, b string) int { return f(a, b) }
func (DistanceFunc) Order() Order             { return LowerIsBetter }

// Similarity binds options to a variadic scorer such as fuzz.WRatio:
//
//	process.Similarity(fuzz.WRatio, fuzz.WithScoreCutoff(50))
//
// Preprocessing belongs in Options.Processor, not in the bound options, so
// each choice is processed once per call.
func Similarity[O any](fn func(s1, s2 string, opts ...O) float64, opts ...O) Scorer[float64] {
	return SimilarityFunc(func(a, b string) float64 { return fn(a, b, opts...) })
}

// better reports whether a strictly beats b.
func better[T Score](o Order, a, b T) bool {
	if o == LowerIsBetter {
		return a < b
	}
	return a > b
}

// passes reports whether score satisfies an inclusive cutoff.
func passes[T Score](o Order, score T, cutoff *T) bool {
	if cutoff == nil {
		return true
	}
	if o == LowerIsBetter {
		return score <= *cutoff
	}
	return score >= *cutoff
}
