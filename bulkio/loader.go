/*
Package bulkio is the only package in this module that touches the
filesystem or external serialization formats: it loads keyword/clean-name
pairs from plain-text and JSON dictionary files, and splits free text into
sentences for per-sentence keyword extraction.

Dictionary loading drives insertion through a treemap.TreeMap keyed on the
dictionary's keys, so that the order entries are produced in (and thus
which offending key a TypeError names when several values are malformed)
does not depend on Go's randomized map iteration order.
*/
package bulkio

import (
	"bufio"
	"encoding/json"
	"os"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/tanagra-dev/flashkw/treemap"
)

// IOError reports that a bulk-load file could not be opened or read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "bulkio: cannot read " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError reports a .json dictionary file whose top level is not an
// object.
type ParseError struct {
	Path    string
	Message string
}

func (e *ParseError) Error() string {
	return "bulkio: cannot parse " + e.Path + ": " + e.Message
}

// TypeError reports a dictionary value that is neither a string nor a
// sequence of strings.
type TypeError struct {
	Key      string
	Expected string
}

func (e *TypeError) Error() string {
	return "bulkio: value for key " + e.Key + " is not " + e.Expected
}

// Entry is one (keyword, clean name) pair produced by a loader, ready to
// be fed to a keyword registry's Insert.
type Entry struct {
	Keyword   string
	CleanName string
}

// LoadPlainText reads a plain keyword list: each line is either
// "keyword => clean_name" (both sides trimmed) or a bare keyword, whose
// clean name defaults to itself. Blank lines are ignored. A path ending in
// ".json" is instead dispatched to LoadDictionaryFile.
func LoadPlainText(path string) ([]Entry, error) {
	if strings.HasSuffix(path, ".json") {
		return LoadDictionaryFile(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if idx := strings.Index(line, "=>"); idx != -1 {
			keyword := strings.TrimSpace(line[:idx])
			cleanName := strings.TrimSpace(line[idx+2:])
			entries = append(entries, Entry{Keyword: keyword, CleanName: cleanName})
			continue
		}
		entries = append(entries, Entry{Keyword: line, CleanName: line})
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return entries, nil
}

// LoadDictionaryFile reads a JSON dictionary document from path and
// dispatches it to LoadDictionary.
func LoadDictionaryFile(path string) ([]Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	return LoadDictionary(raw, path)
}

// LoadDictionary parses a JSON document into keyword entries. Two shapes
// are accepted:
//
//   - {"clean_name": ["keyword", ...], ...} — every keyword in the array
//     maps to the shared clean name given by the object key.
//   - {"keyword": "clean_name", ...} — flat form, one keyword per key.
//
// A value that is neither a JSON string nor an array of strings produces a
// TypeError naming the offending key. path is used only to annotate
// errors; pass "" when there is no originating file.
func LoadDictionary(raw []byte, path string) ([]Entry, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error()}
	}
	return EntriesFromMap(doc)
}

// EntriesFromMap converts an already-decoded dictionary document into
// keyword entries, accepting the same two shapes as LoadDictionary. It is
// the shared core behind both the JSON file loader and a caller passing an
// in-memory map directly (see flashkw.Engine.InsertDict).
func EntriesFromMap(doc map[string]interface{}) ([]Entry, error) {
	ordered := treemap.NewTreeMap[string, interface{}]()
	for _, k := range maps.Keys(doc) {
		ordered.Put(k, doc[k])
	}

	var entries []Entry
	for _, key := range ordered.Keys() {
		value, _ := ordered.Get(key)
		switch v := value.(type) {
		case string:
			entries = append(entries, Entry{Keyword: key, CleanName: v})
		case []interface{}:
			for _, item := range v {
				kw, ok := item.(string)
				if !ok {
					return nil, &TypeError{Key: key, Expected: "a string or a sequence of strings"}
				}
				entries = append(entries, Entry{Keyword: kw, CleanName: key})
			}
		default:
			return nil, &TypeError{Key: key, Expected: "a string or a sequence of strings"}
		}
	}
	return entries, nil
}
