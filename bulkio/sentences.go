package bulkio

import (
	"strings"

	"github.com/tanagra-dev/flashkw/boundary"
	"github.com/tanagra-dev/flashkw/deque"
	"github.com/tanagra-dev/flashkw/scanner"
	"github.com/tanagra-dev/flashkw/set"
	"github.com/tanagra-dev/flashkw/trie"
)

// defaultSentenceDelimiters are used when SplitSentences is called with no
// explicit delimiter set.
const defaultSentenceDelimiters = ".?!;\n"

// SentenceMatch pairs one sentence with the keyword matches found inside
// it.
type SentenceMatch struct {
	Sentence string
	Matches  []scanner.Match
}

// SplitSentences splits text on any rune in delimiters (defaulting to
// ".?!;\n" when delimiters is empty), greedily absorbing consecutive
// delimiter runes into the sentence that precedes them. Empty or
// whitespace-only sentences are dropped. Every surviving sentence is then
// scanned against reg, and only sentences with at least one match are
// returned, in left-to-right order.
func SplitSentences(reg *trie.Registry, cls *boundary.Classifier, text string, maxCost int, delimiters string) []SentenceMatch {
	if delimiters == "" {
		delimiters = defaultSentenceDelimiters
	}
	delimSet := set.NewUnorderedSetFrom([]rune(delimiters))

	runes := []rune(text)
	acc := deque.NewDeque[string]()

	start := 0
	i := 0
	for i < len(runes) {
		if !delimSet.Contain(runes[i]) {
			i++
			continue
		}
		for i < len(runes) && delimSet.Contain(runes[i]) {
			i++
		}
		acc.OfferLast(string(runes[start:i]))
		start = i
	}
	if start < len(runes) {
		acc.OfferLast(string(runes[start:]))
	}

	var out []SentenceMatch
	for !acc.IsEmpty() {
		sentence, _ := acc.PollFirst()
		trimmed := strings.TrimSpace(sentence)
		if trimmed == "" {
			continue
		}
		matches := scanner.Extract(reg, cls, sentence, maxCost)
		if len(matches) == 0 {
			continue
		}
		out = append(out, SentenceMatch{Sentence: sentence, Matches: matches})
	}
	return out
}
