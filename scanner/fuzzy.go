package scanner

import (
	"github.com/tanagra-dev/flashkw/boundary"
	"github.com/tanagra-dev/flashkw/priorityqueue"
	"github.com/tanagra-dev/flashkw/queue"
	"github.com/tanagra-dev/flashkw/trie"
)

// isCJK reports whether r falls in one of the CJK-ish ranges that get
// single-character "word" extraction: Hiragana, Katakana, CJK Unified
// Ideographs (and its extension block), and Hangul syllables.
func isCJK(r rune) bool {
	switch {
	case r >= 0x3040 && r <= 0x309F: // Hiragana
		return true
	case r >= 0x30A0 && r <= 0x30FF: // Katakana
		return true
	case r >= 0x3400 && r <= 0x4DBF: // CJK extension A
		return true
	case r >= 0x4E00 && r <= 0x9FFF: // CJK Unified Ideographs
		return true
	case r >= 0xAC00 && r <= 0xD7AF: // Hangul syllables
		return true
	default:
		return false
	}
}

// NextWord extracts the "next input word" starting at the front of text:
// a single CJK-ish code point if text starts with one that isn't already a
// configured word character, otherwise the longest leading run of
// configured word characters (which may be empty). This is the exported
// form of the fuzzy extender's internal lookahead, used directly by
// Engine.GetNextWord.
func NextWord(text []rune, cls *boundary.Classifier) []rune {
	return nextWord(text, cls)
}

// nextWord is the internal lookahead fuzzyExtend uses against a scan
// suffix.
func nextWord(suffix []rune, cls *boundary.Classifier) []rune {
	if len(suffix) == 0 {
		return nil
	}
	if isCJK(suffix[0]) && !cls.IsWordChar(suffix[0]) {
		return suffix[:1]
	}
	end := 0
	for end < len(suffix) && cls.IsWordChar(suffix[end]) {
		end++
	}
	return suffix[:end]
}

// frontierNode is one node pending exploration in the fuzzy extender's
// breadth-first trie walk. row[j] holds the edit distance between the
// trie path consumed since the walk started and word[:j].
type frontierNode struct {
	handle int
	row    []int
	depth  int
}

// candidate is a terminal trie node reachable within the edit-distance
// budget: a possible landing spot for the fuzzy extension.
type candidate struct {
	handle int
	cost   int
	depth  int
}

// fuzzyExtend handles a dead-end node in the exact walk: it extracts the
// next input word from suffix and searches the trie
// rooted at node for the admissible descent with lowest edit-distance cost
// to that word (ties broken by greatest trie depth). consumed is always
// the rune length of the extracted next word, regardless of how deep the
// winning trie match actually went.
func fuzzyExtend(reg *trie.Registry, cls *boundary.Classifier, node int, suffix []rune, budget int) (nextNode, cost, consumed int, ok bool) {
	word := nextWord(suffix, cls)
	if len(word) == 0 {
		return 0, 0, 0, false
	}

	caseFold := !reg.CaseSensitive()
	foldRune := func(r rune) rune {
		if caseFold && r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}

	initialRow := make([]int, len(word)+1)
	for i := range initialRow {
		initialRow[i] = i
	}

	best := priorityqueue.NewBinaryHeapWithComparator(func(a, b candidate) bool {
		if a.cost != b.cost {
			return a.cost < b.cost
		}
		return a.depth > b.depth
	})

	frontier := queue.NewQueue[*frontierNode]()
	frontier.Enqueue(&frontierNode{handle: node, row: initialRow, depth: 0})

	for !frontier.IsEmpty() {
		current, err := frontier.Dequeue()
		if err != nil {
			break
		}

		for letter, child := range dedupedChildren(reg, current.handle) {
			row := stepRow(current.row, foldRune(letter), word, foldRune)
			if rowMin(row) > budget {
				continue
			}
			depth := current.depth + 1
			if payload, isTerminal := reg.PayloadAt(child); isTerminal {
				_ = payload
				if row[len(word)] <= budget {
					best.Add(candidate{handle: child, cost: row[len(word)], depth: depth})
				}
			}
			frontier.Enqueue(&frontierNode{handle: child, row: row, depth: depth})
		}
	}

	if best.IsEmpty() {
		return 0, 0, 0, false
	}
	winner, _ := best.Poll()
	return winner.handle, winner.cost, len(word), true
}

// dedupedChildren snapshots the rune->handle edges out of handle,
// collapsing the upper/lower case-fold duplicates trie.Registry writes
// into a single edge per distinct child so the BFS doesn't do the same
// work twice.
func dedupedChildren(reg *trie.Registry, handle int) map[rune]int {
	all := reg.ChildrenAt(handle)
	seen := make(map[int]bool, len(all))
	out := make(map[rune]int, len(all))
	for r, h := range all {
		if seen[h] {
			continue
		}
		seen[h] = true
		out[r] = h
	}
	return out
}

// stepRow computes the next Levenshtein DP row for a trie edge labeled
// letter, given the previous row (over the trie path consumed so far) and
// the target word.
func stepRow(prevRow []int, letter rune, word []rune, fold func(rune) rune) []int {
	n := len(word)
	row := make([]int, n+1)
	row[0] = prevRow[0] + 1
	for i := 1; i <= n; i++ {
		insertCost := row[i-1] + 1
		deleteCost := prevRow[i] + 1
		substCost := prevRow[i-1]
		if fold(word[i-1]) != letter {
			substCost++
		}
		row[i] = min3(insertCost, deleteCost, substCost)
	}
	return row
}

func rowMin(row []int) int {
	m := row[0]
	for _, v := range row[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
