// Package skills parses the comma-separated skill lists found in employee rows.
package skills

import (
	"slices"
	"strings"

	"github.com/okian/workforce-analyzer/internal/domain/dedupe"
)

// Separator splits skills inside a single CSV field.
const Separator = ","

// Parse splits raw on commas, trims each token, drops empty tokens, removes
// exact duplicates and returns the rest sorted ascending. Blank input yields
// an empty, non-nil slice.
func Parse(raw string) []string {
	tokens := strings.Split(raw, Separator)
	trimmed := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if tok = strings.TrimSpace(tok); tok != "" {
			trimmed = append(trimmed, tok)
		}
	}

	out := dedupe.Strings(trimmed)
	slices.Sort(out)
	return out
}

// Join renders skills in the canonical form accepted by Parse.
func Join(skills []string) string {
	return strings.Join(skills, Separator+" ")
}
