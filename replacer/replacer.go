/*
Package replacer rebuilds a text with every matched keyword span swapped for
its clean name, using package scanner's single-pass match list as its only
source of truth: spans never overlap and are already in left-to-right order,
so the rewrite is a single forward pass over the original runes.
*/
package replacer

import (
	"strings"

	"github.com/tanagra-dev/flashkw/boundary"
	"github.com/tanagra-dev/flashkw/scanner"
	"github.com/tanagra-dev/flashkw/trie"
)

// Record describes one substitution made during Replace: the original
// matched text, what it was replaced with, and the span (in code points,
// over the original text) it occupied.
type Record struct {
	Original    string
	Replacement string
	Start       int
	End         int
}

// Replace scans text for keyword occurrences and returns the rewritten
// string together with one Record per substitution, in the order the
// matches occurred. A multi-valued payload contributes a single
// replacement built by joining its values with a space, since a rewritten
// text has no room for more than one token per span.
func Replace(reg *trie.Registry, cls *boundary.Classifier, text string, maxCost int) (string, []Record) {
	matches := scanner.Extract(reg, cls, text, maxCost)
	if len(matches) == 0 {
		return text, nil
	}

	runes := []rune(text)
	merged := mergeBySpan(matches)

	var out strings.Builder
	records := make([]Record, 0, len(merged))
	cursor := 0
	for _, m := range merged {
		out.WriteString(string(runes[cursor:m.start]))
		out.WriteString(m.replacement)
		records = append(records, Record{
			Original:    string(runes[m.start:m.end]),
			Replacement: m.replacement,
			Start:       m.start,
			End:         m.end,
		})
		cursor = m.end
	}
	out.WriteString(string(runes[cursor:]))
	return out.String(), records
}

type mergedMatch struct {
	start, end  int
	replacement string
}

// mergeBySpan collapses the possibly-multiple Match entries scanner.Extract
// emits for a single span (one per multi-valued payload element) into one
// replacement per span, in original left-to-right order.
func mergeBySpan(matches []scanner.Match) []mergedMatch {
	var out []mergedMatch
	for _, m := range matches {
		if n := len(out); n > 0 && out[n-1].start == m.Start && out[n-1].end == m.End {
			out[n-1].replacement += " " + m.Payload
			continue
		}
		out = append(out, mergedMatch{start: m.Start, end: m.End, replacement: m.Payload})
	}
	return out
}
