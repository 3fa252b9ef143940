// file: pkg/fuzz/doc.go
// version: 1.0.0
// guid: 88377019-b28b-44da-8d45-2dc2ccb6181b

// Package fuzz scores the similarity of two texts on a 0-100 scale.
//
// Every scorer is built on the Indel distance from package distance:
//
//	fuzz.Ratio("kitten", "sitting")                 // 61.538...
//	fuzz.PartialRatio("york", "new york mets")      // 100
//	fuzz.TokenSortRatio("b a", "a b")               // 100
//	fuzz.WRatio("Fuzzy Wuzzy", "fuzzy wuzzy was a bear",
//		fuzz.WithProcessor(processor.Default))
//
// Scorers accept WithProcessor, applied to both inputs once before scoring,
// and WithScoreCutoff, below which the result is reported as 0.
package fuzz
