// file: pkg/distance/doc.go
// version: 1.0.0
// guid: 56ec4d16-ebe0-42b6-bb2c-83feb5783e19

// Package distance computes weighted edit distances, normalized similarities
// and edit scripts between two texts.
//
// Texts are compared code point by code point. The metric picks its
// algorithm from the cost triple:
//   - unit costs use the bit-parallel algorithm of Myers as reformulated by
//     Hyyro, in a single machine word when the shorter text has at most 64
//     code points and blockwise otherwise;
//   - equal insert/delete costs with substitution at least their sum reduce
//     to the Indel distance, computed from a bit-parallel LCS;
//   - every other triple uses the two-row dynamic program.
//
// All paths return exactly what the textbook O(n*m) recurrence returns.
//
// Key functions:
//   - New: builds a validated *Levenshtein for a Weights triple
//   - Distance, IndelDistance, NormalizedDistance: unit and Indel helpers
//   - Editops, IndelEditops: minimal edit scripts, replayable with Apply
//   - NewPattern: compiles a needle once for scoring against many texts
package distance
