package bulkio

import (
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
)

func TestLoadPlainTextMixedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keywords.txt")
	content := "Taj Mahal => Monument\n\nDelhi\n  Python => py  \n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := LoadPlainText(path)
	if err != nil {
		t.Fatalf("LoadPlainText() error = %v", err)
	}
	want := []Entry{
		{Keyword: "Taj Mahal", CleanName: "Monument"},
		{Keyword: "Delhi", CleanName: "Delhi"},
		{Keyword: "Python", CleanName: "py"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadPlainText() = %#v; want %#v", got, want)
	}
}

func TestLoadPlainTextMissingFile(t *testing.T) {
	_, err := LoadPlainText(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("LoadPlainText() error = nil; want an IOError")
	}
	if _, ok := err.(*IOError); !ok {
		t.Fatalf("LoadPlainText() error = %v (%T); want *IOError", err, err)
	}
}

func TestLoadPlainTextDispatchesJSONSuffix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.json")
	content := `{"javascript": ["js", "node"]}`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := LoadPlainText(path)
	if err != nil {
		t.Fatalf("LoadPlainText() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("LoadPlainText() = %#v; want 2 entries", got)
	}
}

func TestLoadDictionaryGroupedShape(t *testing.T) {
	raw := []byte(`{"fruit": ["apple", "banana"], "veg": ["carrot"]}`)
	got, err := LoadDictionary(raw, "")
	if err != nil {
		t.Fatalf("LoadDictionary() error = %v", err)
	}
	sort.Slice(got, func(i, j int) bool { return got[i].Keyword < got[j].Keyword })
	want := []Entry{
		{Keyword: "apple", CleanName: "fruit"},
		{Keyword: "banana", CleanName: "fruit"},
		{Keyword: "carrot", CleanName: "veg"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadDictionary() = %#v; want %#v", got, want)
	}
}

func TestLoadDictionaryFlatShape(t *testing.T) {
	raw := []byte(`{"js": "javascript", "py": "python"}`)
	got, err := LoadDictionary(raw, "")
	if err != nil {
		t.Fatalf("LoadDictionary() error = %v", err)
	}
	sort.Slice(got, func(i, j int) bool { return got[i].Keyword < got[j].Keyword })
	want := []Entry{
		{Keyword: "js", CleanName: "javascript"},
		{Keyword: "py", CleanName: "python"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadDictionary() = %#v; want %#v", got, want)
	}
}

func TestLoadDictionaryRejectsBadValueType(t *testing.T) {
	raw := []byte(`{"bad": 42}`)
	_, err := LoadDictionary(raw, "")
	if err == nil {
		t.Fatal("LoadDictionary() error = nil; want a TypeError")
	}
	if _, ok := err.(*TypeError); !ok {
		t.Fatalf("LoadDictionary() error = %v (%T); want *TypeError", err, err)
	}
}

func TestEntriesFromMapOrdersByKeySorted(t *testing.T) {
	doc := map[string]interface{}{
		"zebra":  "z",
		"apple":  "a",
		"mango":  "m",
		"banana": "b",
	}
	want := []Entry{
		{Keyword: "apple", CleanName: "a"},
		{Keyword: "banana", CleanName: "b"},
		{Keyword: "mango", CleanName: "m"},
		{Keyword: "zebra", CleanName: "z"},
	}
	for i := 0; i < 5; i++ {
		got, err := EntriesFromMap(doc)
		if err != nil {
			t.Fatalf("EntriesFromMap() error = %v", err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("EntriesFromMap() = %#v; want %#v (sorted by key)", got, want)
		}
	}
}

func TestLoadDictionaryRejectsNonObjectTopLevel(t *testing.T) {
	raw := []byte(`["not", "an", "object"]`)
	_, err := LoadDictionary(raw, "some/path.json")
	if err == nil {
		t.Fatal("LoadDictionary() error = nil; want a ParseError")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("LoadDictionary() error = %v (%T); want *ParseError", err, err)
	}
}
