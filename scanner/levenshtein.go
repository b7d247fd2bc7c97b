package scanner

import (
	"github.com/tanagra-dev/flashkw/queue"
	"github.com/tanagra-dev/flashkw/trie"
)

// Neighbor is one trie entry reported by LevenshteinNeighbors: a registered
// keyword's clean name, the edit distance from the query word that reached
// it, and its depth (rune length) in the trie.
type Neighbor struct {
	CleanName string
	Cost      int
	Depth     int
}

// LevenshteinNeighbors lazily walks the entire trie breadth-first,
// reporting every terminal node whose stored keyword is within edit
// distance maxCost of word. The returned channel is fed by a goroutine and
// closes once the walk completes; a caller that stops ranging early simply
// leaves the goroutine blocked on an unbuffered send, the same lazy
// generator shape set.Iter uses.
func LevenshteinNeighbors(reg *trie.Registry, word string, maxCost int) <-chan Neighbor {
	out := make(chan Neighbor)

	go func() {
		defer close(out)

		runes := []rune(word)
		caseFold := !reg.CaseSensitive()
		foldRune := func(r rune) rune {
			if caseFold && r >= 'A' && r <= 'Z' {
				return r + ('a' - 'A')
			}
			return r
		}

		initialRow := make([]int, len(runes)+1)
		for i := range initialRow {
			initialRow[i] = i
		}

		frontier := queue.NewQueue[*frontierNode]()
		frontier.Enqueue(&frontierNode{handle: reg.Root(), row: initialRow, depth: 0})

		for !frontier.IsEmpty() {
			current, err := frontier.Dequeue()
			if err != nil {
				break
			}

			for letter, child := range dedupedChildren(reg, current.handle) {
				row := stepRow(current.row, foldRune(letter), runes, foldRune)
				if rowMin(row) > maxCost {
					continue
				}
				depth := current.depth + 1
				if payload, isTerminal := reg.PayloadAt(child); isTerminal && row[len(runes)] <= maxCost {
					for _, v := range payload.Values() {
						out <- Neighbor{CleanName: v, Cost: row[len(runes)], Depth: depth}
					}
				}
				frontier.Enqueue(&frontierNode{handle: child, row: row, depth: depth})
			}
		}
	}()

	return out
}
