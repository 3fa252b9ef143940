// file: pkg/process/doc.go
// version: 1.0.0
// guid: 8ca85ce8-ea44-44d5-bb15-2be2056bee9b

// Package process runs a scorer over collections of texts.
//
// ExtractOne, Extract and ExtractIter compare one query with many choices;
// Cdist compares every query with every choice. Scorers carry their own
// Order, so the same functions serve similarities (higher is better) and
// distances (lower is better):
//
//	best, ok, err := process.ExtractOne("new york", cities,
//		process.Similarity(fuzz.WRatio),
//		process.Options[float64]{Processor: processor.Func(processor.Default)})
//
//	lev, _ := distance.New(distance.Uniform)
//	m, err := process.Cdist(names, names, process.DistanceFunc(lev.Distance),
//		process.Options[int]{Workers: 4})
//
// A processor failure aborts the call with a *ProcessError naming the input.
package process
