// Package wordlist provides word list normalization helpers.
package wordlist

import (
	"strings"

	"github.com/verte-zerg/wordstat/internal/analyzer"
)

// NewSet normalizes words the way the analyzer does and collects them into a set.
// Entries that do not form a single token are dropped.
func NewSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		tokens := analyzer.Tokenize(strings.TrimSpace(word))
		if len(tokens) != 1 {
			continue
		}
		set[tokens[0]] = struct{}{}
	}
	return set
}
