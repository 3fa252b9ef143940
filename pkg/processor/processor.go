// file: pkg/processor/processor.go
// version: 1.1.0
// guid: cf7e7f97-8392-4820-9052-b30bc071916c

// Package processor defines the text normalization applied before scoring.
//
// A processor must be pure and idempotent: Process(Process(x)) == Process(x).
package processor

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Processor normalizes a text before it is scored.
type Processor interface {
	Process(s string) (string, error)
}

// Func adapts an infallible transform to Processor.
type Func func(s string) string

// Process implements Processor.
func (f Func) Process(s string) (string, error) { return f(s), nil }

// FallibleFunc adapts a transform that may reject its input.
type FallibleFunc func(s string) (string, error)

// Process implements Processor.
func (f FallibleFunc) Process(s string) (string, error) { return f(s) }

// Apply runs p on s, treating a nil Processor as the identity.
func Apply(p Processor, s string) (string, error) {
	if p == nil {
		return s, nil
	}
	return p.Process(s)
}

// Identity returns its input unchanged.
func Identity(s string) string { return s }

// Default lowercases letters, replaces every rune that is neither a letter
// nor a digit with a space and trims surrounding whitespace.
func Default(s string) string {
	return strings.TrimSpace(strings.Map(defaultRune, s))
}

func defaultRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return unicode.ToLower(r)
	}
	return ' '
}

// Fold applies full Unicode case folding ("Straße" and "STRASSE" both become
// "strasse"), lowercases the result rune by rune and then filters like
// Default. Folding repeats until the text is stable, so Fold(Fold(x)) ==
// Fold(x) also for scripts such as Cherokee whose folds target uppercase.
func Fold(s string) string {
	out := foldOnce(s)
	for range maxFoldPasses {
		next := foldOnce(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

const maxFoldPasses = 4

func foldOnce(s string) string {
	return strings.TrimSpace(strings.Map(foldRune, cases.Fold().String(s)))
}

func foldRune(r rune) rune {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return unicode.ToLower(r)
	}
	return ' '
}

// Lookup returns the processor registered under name: "none", "default" or "fold".
func Lookup(name string) (Func, bool) {
	switch strings.ToLower(name) {
	case "", "none", "identity":
		return Identity, true
	case "default":
		return Default, true
	case "fold":
		return Fold, true
	}
	return nil, false
}
