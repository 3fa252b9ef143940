// file: pkg/fuzz/registry.go
// version: 1.0.0
// guid: ccf6e86f-4eb6-4ad3-b880-afa6952cf4fe

package fuzz

import (
	"maps"
	"slices"
	"strings"
)

var scorers = map[string]Scorer{
	"ratio":                    Ratio,
	"partial_ratio":            PartialRatio,
	"token_sort_ratio":         TokenSortRatio,
	"token_set_ratio":          TokenSetRatio,
	"token_ratio":              TokenRatio,
	"partial_token_sort_ratio": PartialTokenSortRatio,
	"partial_token_set_ratio":  PartialTokenSetRatio,
	"partial_token_ratio":      PartialTokenRatio,
	"wratio":                   WRatio,
	"qratio":                   QRatio,
}

// Lookup returns the scorer registered under name, e.g. "wratio" or "token_set_ratio".
func Lookup(name string) (Scorer, bool) {
	s, ok := scorers[strings.ToLower(name)]
	return s, ok
}

// Names lists the registered scorer names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(scorers))
}
