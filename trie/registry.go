package trie

import (
	"golang.org/x/exp/slices"

	"github.com/tanagra-dev/flashkw/stack"
)

// Entry is one (keyword, payload) pair as produced by AllEntries.
type Entry struct {
	Keyword string
	Payload Payload
}

// Registry is the public, trie-backed keyword index: insert, remove, and
// look up keywords, with an ASCII case-folding policy applied uniformly
// (or overridden per insert) and automatic pruning of dead branches on
// removal.
//
// Registry itself performs no locking — per the concurrency model, a
// Registry may be read by many goroutines concurrently as long as no
// writer is active, but enforcing that discipline is the caller's job (see
// the root package's Engine, which adds a RWMutex around a Registry for
// exactly this purpose).
type Registry struct {
	store         *store
	caseSensitive bool
	size          int
}

// NewRegistry creates an empty Registry. When caseSensitive is false (the
// default a caller should normally choose), inserts and lookups fold ASCII
// letters so that "Python" and "PYTHON" resolve to the same trie path.
func NewRegistry(caseSensitive bool) *Registry {
	return &Registry{store: newStore(), caseSensitive: caseSensitive}
}

// CaseSensitive reports the registry's default case-folding policy.
func (r *Registry) CaseSensitive() bool {
	return r.caseSensitive
}

func asciiLower(ch rune) rune {
	if ch >= 'A' && ch <= 'Z' {
		return ch + ('a' - 'A')
	}
	return ch
}

func asciiUpper(ch rune) rune {
	if ch >= 'a' && ch <= 'z' {
		return ch - ('a' - 'A')
	}
	return ch
}

// step walks one rune from the given handle. When fold is true, both the
// ASCII lowercase and uppercase forms of ch are consulted and, if
// allocate is true, both are written to point at the same child handle —
// this is what keeps case-insensitive lookups branchless and symmetric.
// Returns -1 when the rune has no child and allocate is false.
func (r *Registry) step(handle int, ch rune, fold, allocate bool) int {
	if !fold {
		n := r.store.at(handle)
		if h, ok := n.children[ch]; ok {
			return h
		}
		if !allocate {
			return -1
		}
		h := r.store.allocate()
		n = r.store.at(handle)
		n.children[ch] = h
		return h
	}

	lower, upper := asciiLower(ch), asciiUpper(ch)
	n := r.store.at(handle)
	if h, ok := n.children[lower]; ok {
		return h
	}
	if h, ok := n.children[upper]; ok {
		if allocate {
			n.children[lower] = h
		}
		return h
	}
	if !allocate {
		return -1
	}
	h := r.store.allocate()
	n = r.store.at(handle)
	n.children[lower] = h
	n.children[upper] = h
	return h
}

// Insert registers keyword with the registry's default case policy,
// defaulting the clean name to the keyword itself when cleanName is empty.
// Returns true if this call created a new terminal node, false if it only
// updated (or re-set) an existing one.
func (r *Registry) Insert(keyword, cleanName string) bool {
	return r.InsertWithCase(keyword, cleanName, r.caseSensitive)
}

// InsertMulti registers keyword with a multi-valued payload: the scanner
// will emit every element of cleanNames, in order, each time the keyword
// is matched.
func (r *Registry) InsertMulti(keyword string, cleanNames []string) bool {
	if keyword == "" {
		return false
	}
	handle := r.walkInsert(keyword, r.caseSensitive)
	n := r.store.at(handle)
	wasTerminal := n.payload != nil
	p := NewMultiPayload(cleanNames)
	n.payload = &p
	if !wasTerminal {
		r.size++
	}
	return !wasTerminal
}

// InsertWithCase registers keyword under an explicit case-sensitivity
// override for this call only; the registry's stored default is
// unaffected for subsequent calls.
func (r *Registry) InsertWithCase(keyword, cleanName string, caseSensitive bool) bool {
	if keyword == "" {
		return false
	}
	if cleanName == "" {
		cleanName = keyword
	}
	handle := r.walkInsert(keyword, caseSensitive)
	n := r.store.at(handle)
	wasTerminal := n.payload != nil
	p := NewPayload(cleanName)
	n.payload = &p
	if !wasTerminal {
		r.size++
	}
	return !wasTerminal
}

func (r *Registry) walkInsert(keyword string, caseSensitive bool) int {
	fold := !caseSensitive
	current := rootHandle
	for _, ch := range keyword {
		current = r.step(current, ch, fold, true)
	}
	return current
}

// pruneFrame records one step of the path walked by Remove, so the
// backtracking pass can delete the exact child-map entries it created.
type pruneFrame struct {
	parent       int
	lower, upper rune
}

// Remove deletes keyword from the registry, then prunes any ancestor nodes
// left with no children and no payload. Returns false if keyword was never
// registered (including an empty string or a prefix-only path).
func (r *Registry) Remove(keyword string) bool {
	if keyword == "" {
		return false
	}
	fold := !r.caseSensitive
	current := rootHandle
	frames := stack.NewStack[pruneFrame]()
	for _, ch := range keyword {
		lower, upper := ch, ch
		if fold {
			lower, upper = asciiLower(ch), asciiUpper(ch)
		}
		n := r.store.at(current)
		h, ok := n.children[lower]
		if !ok {
			h, ok = n.children[upper]
		}
		if !ok {
			return false
		}
		_, _ = frames.Push(pruneFrame{parent: current, lower: lower, upper: upper})
		current = h
	}

	terminal := r.store.at(current)
	if terminal.payload == nil {
		return false
	}
	terminal.payload = nil
	r.size--

	child := current
	for !frames.IsEmpty() {
		frame, _ := frames.Pop()
		childNode := r.store.at(child)
		if len(childNode.children) != 0 || childNode.payload != nil {
			break
		}
		parentNode := r.store.at(frame.parent)
		if parentNode.children[frame.lower] == child {
			delete(parentNode.children, frame.lower)
		}
		if frame.upper != frame.lower && parentNode.children[frame.upper] == child {
			delete(parentNode.children, frame.upper)
		}
		child = frame.parent
	}
	return true
}

// Lookup returns the payload registered for keyword, if any.
func (r *Registry) Lookup(keyword string) (Payload, bool) {
	handle, ok := r.walk(keyword)
	if !ok {
		return Payload{}, false
	}
	n := r.store.at(handle)
	if n.payload == nil {
		return Payload{}, false
	}
	return *n.payload, true
}

// Contains reports whether keyword resolves to a terminal node.
func (r *Registry) Contains(keyword string) bool {
	_, ok := r.Lookup(keyword)
	return ok
}

// Size returns the number of terminal (registered) nodes in the trie.
func (r *Registry) Size() int {
	return r.size
}

// walk follows keyword from the root under the registry's default case
// policy without allocating; ok is false if the path doesn't exist.
func (r *Registry) walk(keyword string) (int, bool) {
	fold := !r.caseSensitive
	current := rootHandle
	for _, ch := range keyword {
		h := r.step(current, ch, fold, false)
		if h == -1 {
			return 0, false
		}
		current = h
	}
	return current, true
}

// Descend walks from an arbitrary handle, used by the scanner to continue
// an exact trie walk one character at a time without re-allocating.
func (r *Registry) Descend(handle int, ch rune) (int, bool) {
	fold := !r.caseSensitive
	h := r.step(handle, ch, fold, false)
	if h == -1 {
		return 0, false
	}
	return h, true
}

// Root returns the handle of the trie's root node (always 0).
func (r *Registry) Root() int {
	return rootHandle
}

// PayloadAt returns the payload stored at handle, if the node is terminal.
func (r *Registry) PayloadAt(handle int) (Payload, bool) {
	n := r.store.at(handle)
	if n.payload == nil {
		return Payload{}, false
	}
	return *n.payload, true
}

// ChildrenAt returns a snapshot of the rune->handle edges out of handle.
// Used by the fuzzy extender to explore candidate descents.
func (r *Registry) ChildrenAt(handle int) map[rune]int {
	n := r.store.at(handle)
	out := make(map[rune]int, len(n.children))
	for ch, h := range n.children {
		out[ch] = h
	}
	return out
}

// AllEntries enumerates every (keyword, payload) pair by depth-first
// traversal of the trie. Order is unspecified but stable across calls on
// an unmodified registry. Case-insensitive registries fold duplicate
// upper/lower edges down to a single visit per child, rendering the
// reconstructed keyword text in lowercase.
func (r *Registry) AllEntries() []Entry {
	var entries []Entry
	var visit func(handle int, prefix []rune)
	visit = func(handle int, prefix []rune) {
		n := r.store.at(handle)
		if n.payload != nil {
			entries = append(entries, Entry{Keyword: string(prefix), Payload: *n.payload})
		}

		runes := make([]rune, 0, len(n.children))
		for ch := range n.children {
			runes = append(runes, ch)
		}
		slices.Sort(runes)

		seen := make(map[int]bool, len(runes))
		for _, ch := range runes {
			child := n.children[ch]
			if seen[child] {
				continue
			}
			seen[child] = true
			label := ch
			if !r.caseSensitive {
				label = asciiLower(ch)
			}
			next := make([]rune, len(prefix)+1)
			copy(next, prefix)
			next[len(prefix)] = label
			visit(child, next)
		}
	}
	visit(rootHandle, nil)
	return entries
}
