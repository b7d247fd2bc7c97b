/*
Package flashkw is a trie-backed keyword extraction and replacement engine:
register a set of keywords against clean names, then scan arbitrary text
for exact and near (edit-distance-bounded) occurrences in a single
left-to-right pass.

Engine is the single public entry point. It composes trie.Registry (the
keyword index), boundary.Classifier (word-boundary policy), and the
scanner/replacer/bulkio packages, adding the sync.RWMutex every top-level
exported type in this module's lineage carries: readers (Lookup, Extract,
Replace, ...) take a read lock, writers (Insert, Remove, SetBoundary, ...)
take a write lock.
*/
package flashkw

import (
	"sync"

	"github.com/tanagra-dev/flashkw/boundary"
	"github.com/tanagra-dev/flashkw/bulkio"
	"github.com/tanagra-dev/flashkw/replacer"
	"github.com/tanagra-dev/flashkw/scanner"
	"github.com/tanagra-dev/flashkw/trie"
)

// SentenceMatch pairs one sentence with the keyword matches found inside
// it, as returned by ExtractSentences.
type SentenceMatch = bulkio.SentenceMatch

// Neighbor is one trie entry reported by LevenshteinNeighbors.
type Neighbor = scanner.Neighbor

// Engine is a case-policy-fixed keyword registry plus the scanning
// machinery built on top of it.
type Engine struct {
	mu       sync.RWMutex
	registry *trie.Registry
	cls      *boundary.Classifier
}

// New creates an empty Engine. When caseSensitive is false, keyword
// matching folds ASCII letters so "Python" and "PYTHON" are the same
// entry.
func New(caseSensitive bool) *Engine {
	return &Engine{
		registry: trie.NewRegistry(caseSensitive),
		cls:      boundary.NewClassifier(),
	}
}

// Insert registers keyword with cleanName, defaulting cleanName to keyword
// when empty. Returns true if this created a new entry.
func (e *Engine) Insert(keyword, cleanName string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Insert(keyword, cleanName)
}

// Remove deletes keyword from the registry. Returns false if it was never
// registered.
func (e *Engine) Remove(keyword string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.registry.Remove(keyword)
}

// InsertMany registers every keyword in keywords, each defaulting its
// clean name to itself. Returns the number of new entries created.
func (e *Engine) InsertMany(keywords []string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	created := 0
	for _, kw := range keywords {
		if e.registry.Insert(kw, "") {
			created++
		}
	}
	return created
}

// InsertManyClean registers every keyword in keywords under the single
// shared clean name. Returns the number of new entries created.
func (e *Engine) InsertManyClean(keywords []string, cleanName string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	created := 0
	for _, kw := range keywords {
		if e.registry.Insert(kw, cleanName) {
			created++
		}
	}
	return created
}

// InsertDict bulk-registers keywords from a decoded dictionary document,
// accepting either {clean_name: [keyword,...]} or {keyword: clean_name}.
// Returns the number of new entries created and
// a TypeError naming the offending key if any value is the wrong shape.
// The whole dictionary is decoded before anything is inserted, so on a
// TypeError no entry is inserted.
func (e *Engine) InsertDict(dict map[string]any) (int, error) {
	entries, err := bulkio.EntriesFromMap(dict)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	created := 0
	for _, entry := range entries {
		if e.registry.Insert(entry.Keyword, entry.CleanName) {
			created++
		}
	}
	return created, nil
}

// RemoveMany deletes every keyword in keywords. Returns the number that
// were actually registered (and so removed).
func (e *Engine) RemoveMany(keywords []string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	removed := 0
	for _, kw := range keywords {
		if e.registry.Remove(kw) {
			removed++
		}
	}
	return removed
}

// RemoveManyDict deletes every keyword named by a decoded dictionary
// document, accepting either {clean_name: [keyword,...]} or
// {keyword: clean_name} — the clean names themselves are ignored, only the
// keywords they name are removed. Returns the number that were actually
// registered (and so removed), and a TypeError naming the offending key if
// any value is the wrong shape. The whole dictionary is decoded before
// anything is removed, so on a TypeError no keyword is removed.
func (e *Engine) RemoveManyDict(dict map[string]any) (int, error) {
	entries, err := bulkio.EntriesFromMap(dict)
	if err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	removed := 0
	for _, entry := range entries {
		if e.registry.Remove(entry.Keyword) {
			removed++
		}
	}
	return removed, nil
}

// SetBoundary replaces the word-boundary rune set wholesale. charsOrSet
// must be a string (its code points become the new set) or a []string of
// single-character entries (the shape BoundarySet returns); anything else
// is a TypeError.
func (e *Engine) SetBoundary(charsOrSet any) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch v := charsOrSet.(type) {
	case string:
		e.cls.SetBoundary(v)
		return nil
	case []string:
		runes := make([]rune, 0, len(v))
		for _, s := range v {
			for _, r := range s {
				runes = append(runes, r)
			}
		}
		e.cls.SetBoundaryRunes(runes)
		return nil
	default:
		return &TypeError{Key: "boundary", Expected: "a string or a sequence of single-character strings"}
	}
}

// Lookup returns the clean name registered for keyword, if any.
func (e *Engine) Lookup(keyword string) (string, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	payload, ok := e.registry.Lookup(keyword)
	if !ok {
		return "", false
	}
	return payload.First(), true
}

// Contains reports whether keyword is registered.
func (e *Engine) Contains(keyword string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.Contains(keyword)
}

// Size returns the number of registered keywords.
func (e *Engine) Size() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.Size()
}

// AllEntries enumerates every registered (keyword, payload) pair.
func (e *Engine) AllEntries() []trie.Entry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.registry.AllEntries()
}

// GetNextWord extracts the same "next input word" the fuzzy extender would
// opportunistically consume from the start of text: a single CJK-ish code
// point, or the longest leading run of configured word characters.
func (e *Engine) GetNextWord(text string) string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return string(scanner.NextWord([]rune(text), e.cls))
}

// Extract runs the single-pass longest-match scan over text. spanInfo is
// accepted for interface parity with the conceptual surface (span offsets
// are always present on Match) and otherwise has no effect.
func (e *Engine) Extract(text string, spanInfo bool, maxCost int) []scanner.Match {
	_ = spanInfo
	e.mu.RLock()
	defer e.mu.RUnlock()
	return scanner.Extract(e.registry, e.cls, text, maxCost)
}

// Replace rewrites text with every matched keyword span swapped for its
// clean name. spanInfo is accepted for interface parity (Record always
// carries span offsets) and otherwise has no effect.
func (e *Engine) Replace(text string, spanInfo bool, maxCost int) (string, []replacer.Record) {
	_ = spanInfo
	e.mu.RLock()
	defer e.mu.RUnlock()
	return replacer.Replace(e.registry, e.cls, text, maxCost)
}

// ExtractSentences splits text into sentences on the given delimiters
// (defaulting to ".?!;\n" when none are given) and returns only the
// sentences that contain at least one keyword match.
func (e *Engine) ExtractSentences(text string, delimiters ...string) []SentenceMatch {
	e.mu.RLock()
	defer e.mu.RUnlock()
	delimSet := ""
	if len(delimiters) > 0 {
		delimSet = joinRunSet(delimiters)
	}
	return bulkio.SplitSentences(e.registry, e.cls, text, 0, delimSet)
}

func joinRunSet(delimiters []string) string {
	out := make([]rune, 0, len(delimiters))
	for _, d := range delimiters {
		out = append(out, []rune(d)...)
	}
	return string(out)
}

// LevenshteinNeighbors lazily yields every registered keyword whose edit
// distance from word is within maxCost, in the trie's traversal order. The
// walk runs on a background goroutine that outlives this call, so unlike
// Engine's other methods it is not covered by the RWMutex for its full
// duration: a caller draining the channel must not concurrently mutate
// this Engine, mirroring the no-internal-locking contract the core
// packages already carry.
func (e *Engine) LevenshteinNeighbors(word string, maxCost int) <-chan Neighbor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return scanner.LevenshteinNeighbors(e.registry, word, maxCost)
}

// BoundarySet returns the current word-boundary set as single-character
// strings.
func (e *Engine) BoundarySet() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cls.Runes()
}

// ContainsKey is an alias for Contains, matching the conceptual indexing
// operator surface callers expect from a map-like lookup.
func (e *Engine) ContainsKey(key string) bool {
	return e.Contains(key)
}

// Get is Lookup with a KeyError on miss, matching the conceptual
// lookup[key] indexing operator.
func (e *Engine) Get(key string) (string, error) {
	cleanName, ok := e.Lookup(key)
	if !ok {
		return "", &KeyError{Key: key}
	}
	return cleanName, nil
}

// Assign is Insert with no return value, matching the conceptual
// assign[key] = clean_name indexing operator.
func (e *Engine) Assign(key, cleanName string) {
	e.Insert(key, cleanName)
}

// Delete is Remove with a KeyError on miss, matching the conceptual
// delete[key] indexing operator.
func (e *Engine) Delete(key string) error {
	if !e.Remove(key) {
		return &KeyError{Key: key}
	}
	return nil
}

// Iterate always returns ErrNotImplemented: this engine does not support
// generic iteration over its entries, only the bulk AllEntries snapshot.
func (e *Engine) Iterate() error {
	return ErrNotImplemented
}
