package scanner

import (
	"github.com/tanagra-dev/flashkw/boundary"
	"github.com/tanagra-dev/flashkw/deque"
	"github.com/tanagra-dev/flashkw/trie"
)

// pendingBest tracks the longest boundary-anchored match found so far
// while walking the trie from a single starting cursor position.
type pendingBest struct {
	payload trie.Payload
	end     int
}

// Extract runs a single left-to-right longest-match scan over text,
// escalating to the fuzzy extender whenever the exact trie walk dead-ends
// and maxCost still allows edit-distance budget. Matches are returned
// left-to-right and never overlap: the cursor always jumps past the
// previous match's End.
func Extract(reg *trie.Registry, cls *boundary.Classifier, text string, maxCost int) []Match {
	runes := []rune(text)
	n := len(runes)
	acc := deque.NewDeque[Match]()

	i := 0
	for i < n {
		if !cls.IsWordBoundary(runes, i) {
			i++
			continue
		}

		node := reg.Root()
		j := i
		budget := maxCost
		var best *pendingBest

		for j < n {
			if child, ok := reg.Descend(node, runes[j]); ok {
				node = child
				if payload, isTerminal := reg.PayloadAt(node); isTerminal {
					if cls.IsWordBoundary(runes, j+1) {
						best = &pendingBest{payload: payload, end: j + 1}
					}
				}
				j++
				continue
			}

			if budget <= 0 {
				break
			}
			nextNode, cost, consumed, ok := fuzzyExtend(reg, cls, node, runes[j:], budget)
			if !ok {
				break
			}
			budget -= cost
			node = nextNode
			j += consumed
			if payload, isTerminal := reg.PayloadAt(node); isTerminal {
				if cls.IsWordBoundary(runes, j) {
					best = &pendingBest{payload: payload, end: j}
				}
			}
		}

		if best != nil {
			for _, v := range best.payload.Values() {
				acc.OfferLast(Match{Payload: v, Start: i, End: best.end})
			}
			i = best.end
		} else {
			i++
		}
	}

	out := make([]Match, 0, acc.Size())
	for !acc.IsEmpty() {
		m, _ := acc.PollFirst()
		out = append(out, m)
	}
	return out
}
